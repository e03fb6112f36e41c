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
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Byte-level access: every vector has a defined lane-major layout of
// exactly NumLanes * LaneBytes bytes with no padding. AsBytes/FromBytes
// expose it under an explicit byte order; Reinterpret moves bits between
// vectors of equal total width through the little-endian layout.

// LaneBytes returns the storage size of lane type T in bytes.
func LaneBytes[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// AsBytes serializes the vector lane-major under the given byte order.
// The result has exactly NumLanes * LaneBytes bytes.
func AsBytes[T Lanes](v Vec[T], order binary.ByteOrder) []byte {
	size := LaneBytes[T]()
	buf := make([]byte, len(v.data)*size)
	for i, x := range v.data {
		putLane(buf[i*size:], x, order)
	}
	return buf
}

// FromBytes deserializes a vector from a lane-major byte buffer. The
// buffer length must be an exact multiple of the lane size and describe
// a valid power-of-two lane count.
func FromBytes[T Lanes](buf []byte, order binary.ByteOrder) (Vec[T], error) {
	size := LaneBytes[T]()
	if len(buf)%size != 0 {
		return Vec[T]{}, fmt.Errorf("%w: %d bytes over %d-byte lanes", ErrBadLength, len(buf), size)
	}
	n := len(buf) / size
	if !ValidWidth(n) {
		return Vec[T]{}, fmt.Errorf("%w: buffer describes %d lanes", ErrBadWidth, n)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = getLane[T](buf[i*size:], order)
	}
	return Vec[T]{data: data}, nil
}

// Reinterpret reuses the bits of v as a vector of a different lane type.
// The total bit width must be preserved and the resulting lane count must
// be a valid power of two.
func Reinterpret[To, From Lanes](v Vec[From]) (Vec[To], error) {
	total := len(v.data) * LaneBytes[From]()
	toSize := LaneBytes[To]()
	if total%toSize != 0 || !ValidWidth(total/toSize) {
		return Vec[To]{}, fmt.Errorf("lanes: cannot reinterpret %d lanes of %d bytes as %d-byte lanes",
			len(v.data), LaneBytes[From](), toSize)
	}
	return FromBytes[To](AsBytes(v, binary.LittleEndian), binary.LittleEndian)
}

// putLane stores one lane value into buf under the given byte order.
func putLane[T Lanes](buf []byte, x T, order binary.ByteOrder) {
	switch v := any(x).(type) {
	case bool:
		if v {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
	case int8:
		buf[0] = byte(v)
	case uint8:
		buf[0] = v
	case Float8E4M3:
		buf[0] = byte(v)
	case Float8E4M3UZ:
		buf[0] = byte(v)
	case Float8E5M2:
		buf[0] = byte(v)
	case Float8E5M2UZ:
		buf[0] = byte(v)
	case int16:
		order.PutUint16(buf, uint16(v))
	case uint16:
		order.PutUint16(buf, v)
	case Float16:
		order.PutUint16(buf, uint16(v))
	case BFloat16:
		order.PutUint16(buf, uint16(v))
	case int32:
		order.PutUint32(buf, uint32(v))
	case uint32:
		order.PutUint32(buf, v)
	case float32:
		order.PutUint32(buf, math.Float32bits(v))
	case int64:
		order.PutUint64(buf, uint64(v))
	case uint64:
		order.PutUint64(buf, v)
	case float64:
		order.PutUint64(buf, math.Float64bits(v))
	}
}

// getLane loads one lane value from buf under the given byte order.
func getLane[T Lanes](buf []byte, order binary.ByteOrder) T {
	switch any(*new(T)).(type) {
	case bool:
		return any(buf[0] != 0).(T)
	case int8:
		return any(int8(buf[0])).(T)
	case uint8:
		return any(buf[0]).(T)
	case Float8E4M3:
		return any(Float8E4M3(buf[0])).(T)
	case Float8E4M3UZ:
		return any(Float8E4M3UZ(buf[0])).(T)
	case Float8E5M2:
		return any(Float8E5M2(buf[0])).(T)
	case Float8E5M2UZ:
		return any(Float8E5M2UZ(buf[0])).(T)
	case int16:
		return any(int16(order.Uint16(buf))).(T)
	case uint16:
		return any(order.Uint16(buf)).(T)
	case Float16:
		return any(Float16(order.Uint16(buf))).(T)
	case BFloat16:
		return any(BFloat16(order.Uint16(buf))).(T)
	case int32:
		return any(int32(order.Uint32(buf))).(T)
	case uint32:
		return any(order.Uint32(buf)).(T)
	case float32:
		return any(math.Float32frombits(order.Uint32(buf))).(T)
	case int64:
		return any(int64(order.Uint64(buf))).(T)
	case uint64:
		return any(order.Uint64(buf)).(T)
	default:
		return any(math.Float64frombits(order.Uint64(buf))).(T)
	}
}
