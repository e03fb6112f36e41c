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

import "fmt"

// The reduction engine: width-halving tree reduction for associative
// operators. The vector is repeatedly split into halves that are combined
// with the operator, so the evaluation order is a balanced pairwise tree.
// For floating point this order is part of the contract: callers get the
// tree sum, not the left-to-right sum, and the pairing must not change.

// Reduce combines v down to outWidth lanes by repeatedly splitting it in
// half and merging the halves with op. outWidth must be a power of two
// not exceeding the vector width. With outWidth == NumLanes the input is
// returned unchanged.
func Reduce[T Lanes](v Vec[T], op func(a, b Vec[T]) Vec[T], outWidth int) Vec[T] {
	checkWidth(outWidth)
	if outWidth > len(v.data) {
		panic(fmt.Sprintf("lanes: reduce output width %d exceeds vector width %d", outWidth, len(v.data)))
	}
	for len(v.data) > outWidth {
		lo, hi := Split(v)
		v = op(lo, hi)
	}
	return v
}

// ReduceSum returns the balanced-tree pairwise sum of all lanes.
func ReduceSum[T Numeric](v Vec[T]) T {
	return GetLane(Reduce(v, Add[T], 1), 0)
}

// ReduceMul returns the balanced-tree pairwise product of all lanes.
func ReduceMul[T Numeric](v Vec[T]) T {
	return GetLane(Reduce(v, Mul[T], 1), 0)
}

// ReduceMin returns the smallest lane. For float lanes any NaN input
// makes the result NaN, matching hardware min semantics.
func ReduceMin[T Numeric](v Vec[T]) T {
	return GetLane(Reduce(v, Min[T], 1), 0)
}

// ReduceMax returns the largest lane, propagating NaN like ReduceMin.
func ReduceMax[T Numeric](v Vec[T]) T {
	return GetLane(Reduce(v, Max[T], 1), 0)
}

// ReduceAnd returns the bitwise AND of all lanes.
func ReduceAnd[T Integers](v Vec[T]) T {
	return GetLane(Reduce(v, And[T], 1), 0)
}

// ReduceOr returns the bitwise OR of all lanes.
func ReduceOr[T Integers](v Vec[T]) T {
	return GetLane(Reduce(v, Or[T], 1), 0)
}

// ReduceBitCount returns the total number of set bits across all lanes.
func ReduceBitCount[T Integers](v Vec[T]) int {
	// Count per lane first, then tree-sum the counts. Counts are summed
	// as int64 so no lane type can overflow (32768 lanes * 64 bits fits
	// easily).
	counts := Apply(v, func(x T) int64 { return int64(popCountLane(x)) })
	return int(ReduceSum(counts))
}
