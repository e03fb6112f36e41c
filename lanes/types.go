// Package lanes provides fixed-width numeric vectors with software codecs
// for narrow floating-point formats.
//
// A Vec[T] holds a power-of-two number of lanes of scalar type T. All
// operations are value-semantic: they return new vectors and never mutate
// their inputs. Conversions between the narrow formats (the four 8-bit
// float encodings, bfloat16, and IEEE half) and float32/float64 are
// bit-exact software implementations; where native conversion hardware
// exists, it is required to agree with these implementations bit for bit.
//
// Basic usage:
//
//	a := lanes.VecOf[float32](1, 2, 3, 4)
//	b := lanes.Splat[float32](4, 10)
//
//	sum := lanes.Add(a, b)
//	total := lanes.ReduceSum(sum)
package lanes

// Floats is a constraint for the native floating-point types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// NarrowFloats is a constraint for the reduced-precision float formats.
// These are stored as raw bit patterns (uint8/uint16 wrappers) and all
// arithmetic on them goes through the float32 codec in this package.
//
// The constraint lists exact types rather than ~uint8/~uint16 so that the
// narrow formats stay out of the integer constraints: adding a Float8E4M3
// to a uint8 must go through the codec, never through integer addition.
type NarrowFloats interface {
	Float16 | BFloat16 | Float8E4M3 | Float8E4M3UZ | Float8E5M2 | Float8E5M2UZ
}

// FloatLanes is a constraint for every lane type with float semantics,
// native or narrow.
type FloatLanes interface {
	Floats | NarrowFloats
}

// Numeric is a constraint for every lane type that supports arithmetic.
type Numeric interface {
	Integers | FloatLanes
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Numeric | bool
}

// Vec is an immutable fixed-width vector of N lanes of type T.
// N is fixed at construction time and is always a power of two in
// [1, MaxWidth]. Operations return new vectors; a Vec is never mutated
// after construction.
//
// Vec instances should not be created directly; use Zero, Splat, VecOf,
// FromSlice, or Reinterpret instead.
type Vec[T Lanes] struct {
	// data holds the lane values, lane-major, exactly NumLanes entries.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// The returned slice must not be modified; it is primarily for testing.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst, which must have room for at
// least NumLanes elements.
func (v Vec[T]) Store(dst []T) {
	if len(dst) < len(v.data) {
		panic("lanes: Store destination shorter than vector")
	}
	copy(dst, v.data)
}

// AllTrue reports whether every lane of a boolean vector is true.
func AllTrue(v Vec[bool]) bool {
	for _, b := range v.data {
		if !b {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane of a boolean vector is true.
func AnyTrue(v Vec[bool]) bool {
	for _, b := range v.data {
		if b {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes in a boolean vector.
func CountTrue(v Vec[bool]) int {
	count := 0
	for _, b := range v.data {
		if b {
			count++
		}
	}
	return count
}
