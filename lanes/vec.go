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

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxWidth is the largest supported lane count.
const MaxWidth = 1 << 15

// ErrBadWidth is returned (or carried by a panic message) when a requested
// lane count is not a power of two in [1, MaxWidth].
var ErrBadWidth = errors.New("lanes: width must be a power of two in [1, 32768]")

// ErrBadLength is returned when a byte buffer cannot be divided into
// whole lanes.
var ErrBadLength = errors.New("lanes: buffer length is not a multiple of the lane size")

// ValidWidth reports whether n is a legal lane count.
func ValidWidth(n int) bool {
	return n >= 1 && n <= MaxWidth && n&(n-1) == 0
}

func checkWidth(n int) {
	if !ValidWidth(n) {
		panic(fmt.Sprintf("lanes: invalid width %d (must be a power of two in [1, %d])", n, MaxWidth))
	}
}

// Zero creates a vector of n lanes, all set to the zero value of T.
// Panics if n is not a valid width.
func Zero[T Lanes](n int) Vec[T] {
	checkWidth(n)
	return Vec[T]{data: make([]T, n)}
}

// Splat creates a vector of n lanes, all set to value.
// Panics if n is not a valid width.
func Splat[T Lanes](n int, value T) Vec[T] {
	checkWidth(n)
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// FromSlice creates a vector from an explicit lane list. The length of
// vals determines the width and must be a valid power of two.
func FromSlice[T Lanes](vals []T) (Vec[T], error) {
	if !ValidWidth(len(vals)) {
		return Vec[T]{}, fmt.Errorf("%w: got %d elements", ErrBadWidth, len(vals))
	}
	data := make([]T, len(vals))
	copy(data, vals)
	return Vec[T]{data: data}, nil
}

// VecOf creates a vector from an explicit lane list, panicking if the
// element count is not a valid width. It is the literal-style constructor:
//
//	v := lanes.VecOf[float32](1, 2, 3, 4)
func VecOf[T Lanes](vals ...T) Vec[T] {
	v, err := FromSlice(vals)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Iota creates a vector of n lanes holding 0, 1, 2, ..., n-1.
// Panics if n is not a valid width.
func Iota[T Numeric](n int) Vec[T] {
	checkWidth(n)
	data := make([]T, n)
	for i := range data {
		data[i] = fromInt[T](i)
	}
	return Vec[T]{data: data}
}

// GetLane returns the value of lane idx. Panics if idx is out of range;
// bounds are always checked in this build of the library.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		panic(fmt.Sprintf("lanes: lane index %d out of range [0, %d)", idx, len(v.data)))
	}
	return v.data[idx]
}

// InsertLane returns a copy of v with lane idx replaced by val.
// Panics if idx is out of range.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	if idx < 0 || idx >= len(v.data) {
		panic(fmt.Sprintf("lanes: lane index %d out of range [0, %d)", idx, len(v.data)))
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	data[idx] = val
	return Vec[T]{data: data}
}

// String renders the vector for display: a single-lane vector renders as
// its scalar value, wider vectors as a bracketed comma-separated lane list.
func (v Vec[T]) String() string {
	if len(v.data) == 1 {
		return formatLane(v.data[0])
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatLane(x))
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatLane renders one scalar. Narrow floats render as their decoded
// numeric value, not their bit pattern.
func formatLane[T Lanes](x T) string {
	switch val := any(x).(type) {
	case Float16:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	case BFloat16:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	case Float8E4M3:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	case Float8E4M3UZ:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	case Float8E5M2:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	case Float8E5M2UZ:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// fromInt converts a small non-negative int to lane type T.
func fromInt[T Numeric](i int) T {
	switch any(*new(T)).(type) {
	case Float16:
		return any(Float32ToFloat16(float32(i))).(T)
	case BFloat16:
		return any(Float32ToBFloat16(float32(i))).(T)
	case Float8E4M3:
		return any(Float32ToFloat8E4M3(float32(i))).(T)
	case Float8E4M3UZ:
		return any(Float32ToFloat8E4M3UZ(float32(i))).(T)
	case Float8E5M2:
		return any(Float32ToFloat8E5M2(float32(i))).(T)
	case Float8E5M2UZ:
		return any(Float32ToFloat8E5M2UZ(float32(i))).(T)
	case float32:
		return any(float32(i)).(T)
	case float64:
		return any(float64(i)).(T)
	case int8:
		return any(int8(i)).(T)
	case int16:
		return any(int16(i)).(T)
	case int32:
		return any(int32(i)).(T)
	case int64:
		return any(int64(i)).(T)
	case uint8:
		return any(uint8(i)).(T)
	case uint16:
		return any(uint16(i)).(T)
	case uint32:
		return any(uint32(i)).(T)
	case uint64:
		return any(uint64(i)).(T)
	default:
		var zero T
		return zero
	}
}
