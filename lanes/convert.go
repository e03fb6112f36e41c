package lanes

import (
	"math"

	"github.com/chewxy/math32"
)

// This file is the cast dispatch surface. Same-type casts are the
// identity; native numeric casts use Go conversion semantics, which match
// the contract exactly: widening a signed integer sign-extends, widening
// an unsigned integer zero-extends, narrowing drops high bits, and
// float-to-int truncates toward zero. Conversions involving the narrow
// float formats route through the scalar codec via the apply engine; a
// native conversion path, when one exists, must agree with the codec bit
// for bit (see Capabilities).

// Converts is the constraint for lane types handled by Convert: every
// native numeric type. Narrow formats use PromoteToF32/DemoteF32To
// instead, and booleans use ToBool/FromBool.
type Converts interface {
	Integers | Floats
}

// Convert casts each lane of v to type To. Two's-complement wraparound
// for integer narrowing, sign/zero extension for widening, truncation
// toward zero for float-to-int.
func Convert[To, From Converts](v Vec[From]) Vec[To] {
	result := make([]To, len(v.data))
	for i, x := range v.data {
		result[i] = To(x)
	}
	return Vec[To]{data: result}
}

// PromoteToF32 decodes each narrow-float lane to its exact float32 value.
// Decoding is lossless for every finite input.
func PromoteToF32[T NarrowFloats](v Vec[T]) Vec[float32] {
	return Apply(v, func(x T) float32 {
		f, _ := narrowValue(x)
		return f
	})
}

// DemoteF32To encodes each float32 lane into narrow format T with
// round-to-nearest-even (and satfinite saturation for the 8-bit formats).
func DemoteF32To[T NarrowFloats](v Vec[float32]) Vec[T] {
	return Apply(v, encodeNarrow[T])
}

func encodeNarrow[T NarrowFloats](f float32) T {
	switch any(*new(T)).(type) {
	case Float16:
		return any(Float32ToFloat16(f)).(T)
	case BFloat16:
		return any(Float32ToBFloat16(f)).(T)
	case Float8E4M3:
		return any(Float32ToFloat8E4M3(f)).(T)
	case Float8E4M3UZ:
		return any(Float32ToFloat8E4M3UZ(f)).(T)
	case Float8E5M2:
		return any(Float32ToFloat8E5M2(f)).(T)
	default:
		return any(Float32ToFloat8E5M2UZ(f)).(T)
	}
}

// PromoteBF16ToF64 decodes bfloat16 lanes to float64 exactly.
func PromoteBF16ToF64(v Vec[BFloat16]) Vec[float64] {
	return Apply(v, BFloat16ToFloat64)
}

// DemoteF64ToBF16 encodes float64 lanes to bfloat16 through float32.
func DemoteF64ToBF16(v Vec[float64]) Vec[BFloat16] {
	return Apply(v, Float64ToBFloat16)
}

// ToBool converts numeric lanes to boolean with a nonzero test.
func ToBool[T Numeric](v Vec[T]) Vec[bool] {
	return Apply(v, func(x T) bool { return !isZeroLane(x) })
}

// FromBool converts boolean lanes to numeric: true becomes 1, false 0.
func FromBool[T Numeric](v Vec[bool]) Vec[T] {
	return Apply(v, func(b bool) T {
		if b {
			return fromInt[T](1)
		}
		return fromInt[T](0)
	})
}

// Floor rounds float lanes down toward negative infinity.
// Integer lanes are returned unchanged.
func Floor[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return roundLane(x, math32.Floor, math.Floor) })
}

// Ceil rounds float lanes up toward positive infinity.
// Integer lanes are returned unchanged.
func Ceil[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return roundLane(x, math32.Ceil, math.Ceil) })
}

// Trunc rounds float lanes toward zero. Integer lanes are unchanged.
func Trunc[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return roundLane(x, math32.Trunc, math.Trunc) })
}

// Round rounds float lanes to the nearest integer, ties away from zero.
// Integer lanes are unchanged.
func Round[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return roundLane(x, roundF32, math.Round) })
}

// RoundEven rounds float lanes to the nearest integer, ties to even.
// Integer lanes are unchanged.
func RoundEven[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, func(x T) T { return roundLane(x, roundEvenF32, math.RoundToEven) })
}

// roundF32 and roundEvenF32 go through float64, which is exact: float32
// widens losslessly and the rounded integer narrows back losslessly.
func roundF32(x float32) float32     { return float32(math.Round(float64(x))) }
func roundEvenF32(x float32) float32 { return float32(math.RoundToEven(float64(x))) }

// roundLane applies the float32 or float64 rounding function to float
// lanes and passes integer lanes through.
func roundLane[T Numeric](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if r, ok := narrowUnary(x, f32); ok {
		return r
	}
	switch xv := any(x).(type) {
	case float32:
		return any(f32(xv)).(T)
	case float64:
		return any(f64(xv)).(T)
	default:
		return x
	}
}

// BitCastF32ToU32 reinterprets float32 lane bits as uint32.
func BitCastF32ToU32(v Vec[float32]) Vec[uint32] {
	return Apply(v, math.Float32bits)
}

// BitCastU32ToF32 reinterprets uint32 lane bits as float32.
func BitCastU32ToF32(v Vec[uint32]) Vec[float32] {
	return Apply(v, math.Float32frombits)
}

// BitCastF64ToU64 reinterprets float64 lane bits as uint64.
func BitCastF64ToU64(v Vec[float64]) Vec[uint64] {
	return Apply(v, math.Float64bits)
}

// BitCastU64ToF64 reinterprets uint64 lane bits as float64.
func BitCastU64ToF64(v Vec[uint64]) Vec[float64] {
	return Apply(v, math.Float64frombits)
}
