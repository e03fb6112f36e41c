// Copyright 2026 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// The elementwise apply engine. Every operation without a dedicated lane
// kernel (format conversions in particular) is a pure per-lane map through
// one of these. Lane order is preserved exactly and lanes never share state.

// Apply maps a pure scalar function over every lane of v, producing a
// vector of the same width with lane i equal to f(v[i]).
func Apply[A, B Lanes](v Vec[A], f func(A) B) Vec[B] {
	result := make([]B, len(v.data))
	for i, x := range v.data {
		result[i] = f(x)
	}
	return Vec[B]{data: result}
}

// Apply2 maps a pure binary scalar function over the lanes of a and b,
// which must have equal width.
func Apply2[A, B, C Lanes](a Vec[A], b Vec[B], f func(A, B) C) Vec[C] {
	checkSameWidth(len(a.data), len(b.data))
	result := make([]C, len(a.data))
	for i := range a.data {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[C]{data: result}
}

// Apply3 maps a pure ternary scalar function over the lanes of a, b and c.
func Apply3[A, B, C, D Lanes](a Vec[A], b Vec[B], c Vec[C], f func(A, B, C) D) Vec[D] {
	checkSameWidth(len(a.data), len(b.data))
	checkSameWidth(len(a.data), len(c.data))
	result := make([]D, len(a.data))
	for i := range a.data {
		result[i] = f(a.data[i], b.data[i], c.data[i])
	}
	return Vec[D]{data: result}
}

func checkSameWidth(a, b int) {
	if a != b {
		panic("lanes: vector widths differ")
	}
}
