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

import "math"

// BFloat16 represents a Brain Float 16 number: float32 with the low 16
// mantissa bits dropped. Same exponent range as float32, 7 mantissa bits.
//
// Format: Sign (1 bit) | Exponent (8 bits, bias 127) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM
type BFloat16 uint16

// BFloat16 constants for special values.
const (
	BFloat16Zero     BFloat16 = 0x0000
	BFloat16NegZero  BFloat16 = 0x8000
	BFloat16One      BFloat16 = 0x3F80
	BFloat16MaxValue BFloat16 = 0x7F7F // ~3.39e38
	BFloat16MinValue BFloat16 = 0x0001 // smallest subnormal
	BFloat16Inf      BFloat16 = 0x7F80
	BFloat16NegInf   BFloat16 = 0xFF80
	BFloat16NaN      BFloat16 = 0x7FC0 // canonical quiet NaN
)

// BFloat16ToFloat32 converts a single BFloat16 to float32.
// This is a pure bit shift: every BFloat16 value is exactly representable.
func BFloat16ToFloat32(b BFloat16) float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float32ToBFloat16 converts a float32 to BFloat16 with round-to-nearest-
// even. Rounding is done by bias-plus-truncate on the integer pattern:
// adding 0x7FFF plus the low bit of the kept mantissa, then shifting,
// rounds half-to-even without explicit sticky-bit tracking.
func Float32ToBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)

	if bits&0x7FFFFFFF > 0x7F800000 {
		// NaN input: canonical quiet NaN, sign preserved.
		return BFloat16(bits>>16 | 0x0040)
	}

	bits += 0x7FFF + (bits >> 16 & 1)
	return BFloat16(bits >> 16)
}

// BFloat16ToFloat64 converts a BFloat16 to float64 exactly.
func BFloat16ToFloat64(b BFloat16) float64 {
	return float64(BFloat16ToFloat32(b))
}

// Float64ToBFloat16 converts a float64 to BFloat16. The value is first
// demoted to float32; values that already round at that step can double-
// round, which matches the reference truncation path.
func Float64ToBFloat16(f float64) BFloat16 {
	return Float32ToBFloat16(float32(f))
}

// IsNaN reports whether b is a NaN value.
func (b BFloat16) IsNaN() bool {
	return b>>7&0xFF == 0xFF && b&0x7F != 0
}

// IsInf reports whether b is positive or negative infinity.
func (b BFloat16) IsInf() bool {
	return b>>7&0xFF == 0xFF && b&0x7F == 0
}

// IsZero reports whether b is positive or negative zero.
func (b BFloat16) IsZero() bool {
	return b&0x7FFF == 0
}

// IsNegative reports whether the sign bit is set.
func (b BFloat16) IsNegative() bool {
	return b&0x8000 != 0
}

// IsSubnormal reports whether b is a subnormal number.
func (b BFloat16) IsSubnormal() bool {
	return b>>7&0xFF == 0 && b&0x7F != 0
}

// Float32 converts this BFloat16 to float32.
func (b BFloat16) Float32() float32 {
	return BFloat16ToFloat32(b)
}

// Float64 converts this BFloat16 to float64.
func (b BFloat16) Float64() float64 {
	return BFloat16ToFloat64(b)
}

// Bits returns the raw uint16 representation.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// BFloat16FromBits creates a BFloat16 from raw bits.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}
