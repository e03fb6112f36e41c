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

// This file implements the four 8-bit floating-point encodings and the
// generic bit-level codec they share. Encoding uses round-to-nearest-even
// with saturation to the largest finite magnitude ("satfinite"): infinities
// and out-of-range values never encode to an infinity bit pattern, even in
// the one format that has one.

// Float8E4M3 is an 8-bit float with a 4-bit exponent (bias 7) and 3-bit
// mantissa. It has no infinity: the all-ones exponent row encodes finite
// values up to 448, except S.1111.111 which is NaN.
//
//	S | EEEE | MMM
type Float8E4M3 uint8

// Float8E4M3UZ is the "fnuz" variant of E4M3: bias 8, no infinity, no
// negative zero. The only NaN is 0x80 (the would-be negative zero).
// Max finite value: 240.
type Float8E4M3UZ uint8

// Float8E5M2 is an 8-bit float with a 5-bit exponent (bias 15) and 2-bit
// mantissa, laid out like a truncated IEEE half: it has signed infinities
// (S.11111.00) and NaNs (S.11111.MM, MM != 0). Max finite value: 57344.
//
//	S | EEEEE | MM
type Float8E5M2 uint8

// Float8E5M2UZ is the "fnuz" variant of E5M2: bias 16, no infinity, no
// negative zero, NaN = 0x80. Max finite value: 57344.
type Float8E5M2UZ uint8

// FloatFormat describes the bit layout of a narrow float encoding.
// It is pure metadata: the codec below interprets raw bytes according to
// one of these descriptions.
type FloatFormat struct {
	Name       string
	ExpBits    uint32
	MantBits   uint32
	Bias       int32
	HasInf     bool // all-ones exponent encodes inf/NaN (IEEE layout)
	HasNegZero bool // 0x80 is negative zero; if false, 0x80 is the NaN
}

// The four supported 8-bit encodings.
var (
	FormatE4M3   = FloatFormat{Name: "e4m3", ExpBits: 4, MantBits: 3, Bias: 7, HasInf: false, HasNegZero: true}
	FormatE4M3UZ = FloatFormat{Name: "e4m3uz", ExpBits: 4, MantBits: 3, Bias: 8, HasInf: false, HasNegZero: false}
	FormatE5M2   = FloatFormat{Name: "e5m2", ExpBits: 5, MantBits: 2, Bias: 15, HasInf: true, HasNegZero: true}
	FormatE5M2UZ = FloatFormat{Name: "e5m2uz", ExpBits: 5, MantBits: 2, Bias: 16, HasInf: false, HasNegZero: false}
)

const (
	float8SignMask = 0x80

	// Canonical float32 quiet NaN: all-ones exponent, top mantissa bit set.
	f32QuietNaN = 0x7FC00000

	f32ExpMask  = 0xFF
	f32MantBits = 23
	f32MantMask = 0x7FFFFF
	f32Bias     = 127
)

func (f FloatFormat) expMask() uint32  { return 1<<f.ExpBits - 1 }
func (f FloatFormat) mantMask() uint32 { return 1<<f.MantBits - 1 }

// MaxFinite returns the bit pattern of the largest positive finite value.
func (f FloatFormat) MaxFinite() uint8 {
	switch {
	case f.HasInf:
		// One below the inf/NaN exponent row, mantissa all ones.
		return uint8((f.expMask()-1)<<f.MantBits | f.mantMask())
	case f.HasNegZero:
		// Finite-only with a dedicated NaN at exponent/mantissa all ones:
		// everything below that pattern is a value.
		return uint8(f.expMask()<<f.MantBits | (f.mantMask() - 1))
	default:
		// fnuz: the whole positive range is finite.
		return uint8(f.expMask()<<f.MantBits | f.mantMask())
	}
}

// NaN returns the encoding's canonical NaN bit pattern.
func (f FloatFormat) NaN() uint8 {
	switch {
	case f.HasInf:
		// Top mantissa bit set, like the float32 quiet NaN.
		return uint8(f.expMask()<<f.MantBits | 1<<(f.MantBits-1))
	case f.HasNegZero:
		return uint8(f.expMask()<<f.MantBits | f.mantMask())
	default:
		return float8SignMask
	}
}

// IsNaN reports whether raw encodes a NaN in this format.
func (f FloatFormat) IsNaN(raw uint8) bool {
	exp := uint32(raw) >> f.MantBits & f.expMask()
	mant := uint32(raw) & f.mantMask()
	switch {
	case f.HasInf:
		return exp == f.expMask() && mant != 0
	case f.HasNegZero:
		return uint32(raw)&^uint32(float8SignMask) == f.expMask()<<f.MantBits|f.mantMask()
	default:
		return raw == float8SignMask
	}
}

// IsInf reports whether raw encodes an infinity. Only formats with a
// dedicated infinity pattern can return true.
func (f FloatFormat) IsInf(raw uint8) bool {
	if !f.HasInf {
		return false
	}
	exp := uint32(raw) >> f.MantBits & f.expMask()
	mant := uint32(raw) & f.mantMask()
	return exp == f.expMask() && mant == 0
}

// Decode converts a raw 8-bit pattern to the exact float32 value it
// represents. Decoding is lossless: float32 has strictly more exponent
// range and mantissa width than any of the 8-bit formats.
func (f FloatFormat) Decode(raw uint8) float32 {
	if f.IsNaN(raw) {
		return math.Float32frombits(f32QuietNaN)
	}

	sign := uint32(raw) >> 7
	exp := uint32(raw) >> f.MantBits & f.expMask()
	mant := uint32(raw) & f.mantMask()

	if f.HasInf && exp == f.expMask() {
		// Mantissa is zero here (NaN was handled above): signed infinity.
		return math.Float32frombits(sign<<31 | 0x7F800000)
	}

	var e int32
	switch {
	case exp != 0:
		// Normal: rebias into float32.
		e = int32(exp) - f.Bias + f32Bias
	case mant == 0:
		// Signed zero.
		return math.Float32frombits(sign << 31)
	default:
		// Subnormal: shift the mantissa up until the implicit leading bit
		// reaches its position, decrementing the exponent per shift.
		e = 1 - f.Bias + f32Bias
		for mant&(1<<f.MantBits) == 0 {
			mant <<= 1
			e--
		}
		mant &= f.mantMask()
	}

	return math.Float32frombits(sign<<31 | uint32(e)<<f32MantBits | mant<<(f32MantBits-f.MantBits))
}

// Encode converts value to the nearest representable 8-bit pattern using
// round-to-nearest-even. Out-of-range magnitudes and infinities saturate
// to the largest finite magnitude; NaN maps to the canonical NaN pattern
// with the sign dropped.
func (f FloatFormat) Encode(value float32) uint8 {
	bits := math.Float32bits(value)
	sign := uint8(bits>>24) & float8SignMask
	absBits := bits & 0x7FFFFFFF

	if absBits > 0x7F800000 {
		return f.NaN()
	}
	if absBits == 0x7F800000 {
		// Satfinite: infinities clamp to the max finite magnitude.
		return sign | f.MaxFinite()
	}
	if absBits < 0x00800000 {
		// Zero and float32 subnormals. The largest float32 subnormal is
		// below 2^-126, far under half of any format's smallest subnormal.
		return f.signedZero(sign)
	}

	e := int32(absBits>>f32MantBits) - f32Bias
	mant := absBits & f32MantMask
	shift := f32MantBits - f.MantBits
	minNormExp := 1 - f.Bias

	if e < minNormExp {
		// Subnormal range of the narrow format: shift the implicit-bit-
		// prefixed mantissa right, tracking round and sticky bits.
		rsh := shift + uint32(minNormExp-e)
		if rsh > f32MantBits+1 {
			return f.signedZero(sign)
		}
		full := uint32(1<<f32MantBits) | mant
		kept := full >> rsh
		round := full >> (rsh - 1) & 1
		sticky := full&(1<<(rsh-1)-1) != 0
		if round == 1 && (sticky || kept&1 == 1) {
			// Rounding overflow carries into the exponent field by
			// construction: all-ones subnormal + 1 is the min normal.
			kept++
		}
		if kept == 0 {
			return f.signedZero(sign)
		}
		return sign | uint8(kept)
	}

	biased := e + f.Bias
	if uint32(biased) > f.expMask() {
		return sign | f.MaxFinite()
	}

	code := uint32(biased)<<f.MantBits | mant>>shift
	round := mant >> (shift - 1) & 1
	sticky := mant&(1<<(shift-1)-1) != 0
	if round == 1 && (sticky || code&1 == 1) {
		code++
	}
	// Saturate anything past the max finite code. For the finite-only
	// formats this also catches values in the all-ones exponent row that
	// rounded up into the NaN pattern; for the IEEE layout it catches the
	// whole inf/NaN row.
	if code > uint32(f.MaxFinite()) {
		return sign | f.MaxFinite()
	}
	return sign | uint8(code)
}

// signedZero returns the encoding of zero with the given sign bit.
// Formats without a negative zero fold both signs to +0 (0x80 is NaN).
func (f FloatFormat) signedZero(sign uint8) uint8 {
	if f.HasNegZero {
		return sign
	}
	return 0
}

// Per-type conversion functions, one pair per encoding.

// Float8E4M3ToFloat32 converts an E4M3 value to float32 exactly.
func Float8E4M3ToFloat32(x Float8E4M3) float32 { return FormatE4M3.Decode(uint8(x)) }

// Float32ToFloat8E4M3 converts a float32 to E4M3 with round-to-nearest-even
// and satfinite saturation.
func Float32ToFloat8E4M3(f float32) Float8E4M3 { return Float8E4M3(FormatE4M3.Encode(f)) }

// Float8E4M3UZToFloat32 converts an E4M3UZ value to float32 exactly.
func Float8E4M3UZToFloat32(x Float8E4M3UZ) float32 { return FormatE4M3UZ.Decode(uint8(x)) }

// Float32ToFloat8E4M3UZ converts a float32 to E4M3UZ.
func Float32ToFloat8E4M3UZ(f float32) Float8E4M3UZ { return Float8E4M3UZ(FormatE4M3UZ.Encode(f)) }

// Float8E5M2ToFloat32 converts an E5M2 value to float32 exactly.
func Float8E5M2ToFloat32(x Float8E5M2) float32 { return FormatE5M2.Decode(uint8(x)) }

// Float32ToFloat8E5M2 converts a float32 to E5M2.
func Float32ToFloat8E5M2(f float32) Float8E5M2 { return Float8E5M2(FormatE5M2.Encode(f)) }

// Float8E5M2UZToFloat32 converts an E5M2UZ value to float32 exactly.
func Float8E5M2UZToFloat32(x Float8E5M2UZ) float32 { return FormatE5M2UZ.Decode(uint8(x)) }

// Float32ToFloat8E5M2UZ converts a float32 to E5M2UZ.
func Float32ToFloat8E5M2UZ(f float32) Float8E5M2UZ { return Float8E5M2UZ(FormatE5M2UZ.Encode(f)) }

// Scalar method surface, matching the Float16/BFloat16 types.

// Float32 converts this value to float32.
func (x Float8E4M3) Float32() float32 { return Float8E4M3ToFloat32(x) }

// Float32 converts this value to float32.
func (x Float8E4M3UZ) Float32() float32 { return Float8E4M3UZToFloat32(x) }

// Float32 converts this value to float32.
func (x Float8E5M2) Float32() float32 { return Float8E5M2ToFloat32(x) }

// Float32 converts this value to float32.
func (x Float8E5M2UZ) Float32() float32 { return Float8E5M2UZToFloat32(x) }

// IsNaN reports whether x is the format's NaN.
func (x Float8E4M3) IsNaN() bool { return FormatE4M3.IsNaN(uint8(x)) }

// IsNaN reports whether x is the format's NaN.
func (x Float8E4M3UZ) IsNaN() bool { return FormatE4M3UZ.IsNaN(uint8(x)) }

// IsNaN reports whether x is a NaN pattern.
func (x Float8E5M2) IsNaN() bool { return FormatE5M2.IsNaN(uint8(x)) }

// IsNaN reports whether x is the format's NaN.
func (x Float8E5M2UZ) IsNaN() bool { return FormatE5M2UZ.IsNaN(uint8(x)) }

// IsInf reports whether x is an infinity (always false: E4M3 has none).
func (x Float8E4M3) IsInf() bool { return false }

// IsInf reports whether x is an infinity (always false for fnuz formats).
func (x Float8E4M3UZ) IsInf() bool { return false }

// IsInf reports whether x is positive or negative infinity.
func (x Float8E5M2) IsInf() bool { return FormatE5M2.IsInf(uint8(x)) }

// IsInf reports whether x is an infinity (always false for fnuz formats).
func (x Float8E5M2UZ) IsInf() bool { return false }

// Bits returns the raw bit pattern.
func (x Float8E4M3) Bits() uint8 { return uint8(x) }

// Bits returns the raw bit pattern.
func (x Float8E4M3UZ) Bits() uint8 { return uint8(x) }

// Bits returns the raw bit pattern.
func (x Float8E5M2) Bits() uint8 { return uint8(x) }

// Bits returns the raw bit pattern.
func (x Float8E5M2UZ) Bits() uint8 { return uint8(x) }
