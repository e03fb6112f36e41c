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

// Float16 represents an IEEE 754 half-precision (binary16) floating-point
// number. It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Max finite value: 65504. Smallest positive normal: 2^-14.
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero     Float16 = 0x0000
	Float16NegZero  Float16 = 0x8000
	Float16One      Float16 = 0x3C00
	Float16MaxValue Float16 = 0x7BFF // 65504
	Float16MinValue Float16 = 0x0001 // smallest subnormal
	Float16Inf      Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16NaN      Float16 = 0x7E00 // canonical quiet NaN
)

// Float16ToFloat32 converts a single Float16 to float32.
// Handles all special cases: zero, subnormals, infinity, NaN.
func Float16ToFloat32(h Float16) float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := bits >> 10 & 0x1F
	mant := bits & 0x3FF

	switch {
	case exp == 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign<<31 | 0x7F800000)
		}
		return math.Float32frombits(f32QuietNaN)
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Subnormal: normalize into a float32 normal.
		exp = 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
		exp += f32Bias - 15
	default:
		exp += f32Bias - 15
	}

	return math.Float32frombits(sign<<31 | exp<<23 | mant<<13)
}

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even.
// Unlike the 8-bit encoders, half precision keeps its infinity: overflow
// rounds to ±Inf rather than saturating.
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits >> 16 & 0x8000)
	exp := int(bits>>23&0xFF) - f32Bias + 15
	mant := bits & f32MantMask

	if exp <= 0 {
		if exp < -10 {
			// Below half the smallest subnormal: underflow to zero.
			return Float16(sign)
		}
		// Subnormal result: shift in the implicit bit, folding the bits
		// about to be shifted out into a sticky bit so rounding still
		// sees them.
		full := mant | 0x800000
		rsh := uint(1 - exp)
		var sticky uint32
		if full&(1<<rsh-1) != 0 {
			sticky = 1
		}
		mant = full>>rsh | sticky
		if mant&0x1000 != 0 && mant&0x2FFF != 0 {
			mant += 0x2000
		}
		return Float16(sign | uint16(mant>>13))
	}

	if exp == 0xFF-f32Bias+15 {
		if mant != 0 {
			return Float16(sign | uint16(Float16NaN))
		}
		return Float16(sign | uint16(Float16Inf))
	}
	if exp >= 0x1F {
		return Float16(sign | uint16(Float16Inf))
	}

	// Round to nearest even: bit 12 is the round bit, bits 0-11 sticky.
	if mant&0x1000 != 0 && mant&0x2FFF != 0 {
		mant += 0x2000
		if mant&0x800000 != 0 {
			mant = 0
			exp++
			if exp >= 0x1F {
				return Float16(sign | uint16(Float16Inf))
			}
		}
	}

	return Float16(sign | uint16(exp<<10) | uint16(mant>>13))
}

// IsNaN reports whether h is a NaN value.
func (h Float16) IsNaN() bool {
	return h>>10&0x1F == 0x1F && h&0x3FF != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h>>10&0x1F == 0x1F && h&0x3FF == 0
}

// IsZero reports whether h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative reports whether the sign bit is set.
func (h Float16) IsNegative() bool {
	return h&0x8000 != 0
}

// IsSubnormal reports whether h is a subnormal number.
func (h Float16) IsSubnormal() bool {
	return h>>10&0x1F == 0 && h&0x3FF != 0
}

// Float32 converts this Float16 to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Float64 converts this Float16 to float64.
func (h Float16) Float64() float64 {
	return float64(Float16ToFloat32(h))
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float16FromBits creates a Float16 from raw bits.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}
