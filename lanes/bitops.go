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

import "math/bits"

// Bitwise operations on integer vectors. Floating lanes are rejected at
// the constraint level: there is no bitwise surface for float types, use
// Reinterpret to operate on their bit patterns.

// And performs elementwise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, func(x, y T) T { return x & y })
}

// Or performs elementwise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, func(x, y T) T { return x | y })
}

// Xor performs elementwise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, func(x, y T) T { return x ^ y })
}

// AndNot computes a AND (NOT b) elementwise.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, func(x, y T) T { return x &^ y })
}

// Not inverts all bits in each lane.
func Not[T Integers](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return ^x })
}

// MaskAnd performs elementwise logical AND on boolean vectors.
func MaskAnd(a, b Vec[bool]) Vec[bool] {
	return Apply2(a, b, func(x, y bool) bool { return x && y })
}

// MaskOr performs elementwise logical OR on boolean vectors.
func MaskOr(a, b Vec[bool]) Vec[bool] {
	return Apply2(a, b, func(x, y bool) bool { return x || y })
}

// MaskNot inverts each lane of a boolean vector.
func MaskNot(v Vec[bool]) Vec[bool] {
	return Apply(v, func(x bool) bool { return !x })
}

// PopCount counts the set bits in each lane.
func PopCount[T Integers](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return T(popCountLane(x)) })
}

// popCountLane counts set bits for a single lane value.
func popCountLane[T Integers](val T) int {
	switch v := any(val).(type) {
	case int8:
		return bits.OnesCount8(uint8(v))
	case uint8:
		return bits.OnesCount8(v)
	case int16:
		return bits.OnesCount16(uint16(v))
	case uint16:
		return bits.OnesCount16(v)
	case int32:
		return bits.OnesCount32(uint32(v))
	case uint32:
		return bits.OnesCount32(v)
	case int64:
		return bits.OnesCount64(uint64(v))
	case uint64:
		return bits.OnesCount64(v)
	default:
		return 0
	}
}

// ShiftLeft shifts the bits in each lane left by count.
func ShiftLeft[T Integers](v Vec[T], count uint) Vec[T] {
	return Apply(v, func(x T) T { return x << count })
}

// ShiftRight shifts the bits in each lane right by count: arithmetic for
// signed lane types, logical for unsigned.
func ShiftRight[T Integers](v Vec[T], count uint) Vec[T] {
	return Apply(v, func(x T) T { return x >> count })
}
