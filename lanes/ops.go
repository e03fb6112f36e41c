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
	"math"
)

// Elementwise arithmetic. Narrow-float lanes are computed in float32 space
// through the codec and re-encoded once per operation, so every narrow
// result is correctly rounded for its format.

// ErrDivideByZero is returned when a divisor vector carries a zero lane.
// The whole operation fails: there are no partially-poisoned results.
var ErrDivideByZero = errors.New("lanes: division by zero")

// narrowBinary applies f in float32 space when T is one of the narrow
// float formats. The bool result reports whether T was narrow.
func narrowBinary[T Numeric](a, b T, f func(x, y float32) float32) (T, bool) {
	switch av := any(a).(type) {
	case Float16:
		return any(Float32ToFloat16(f(av.Float32(), any(b).(Float16).Float32()))).(T), true
	case BFloat16:
		return any(Float32ToBFloat16(f(av.Float32(), any(b).(BFloat16).Float32()))).(T), true
	case Float8E4M3:
		return any(Float32ToFloat8E4M3(f(av.Float32(), any(b).(Float8E4M3).Float32()))).(T), true
	case Float8E4M3UZ:
		return any(Float32ToFloat8E4M3UZ(f(av.Float32(), any(b).(Float8E4M3UZ).Float32()))).(T), true
	case Float8E5M2:
		return any(Float32ToFloat8E5M2(f(av.Float32(), any(b).(Float8E5M2).Float32()))).(T), true
	case Float8E5M2UZ:
		return any(Float32ToFloat8E5M2UZ(f(av.Float32(), any(b).(Float8E5M2UZ).Float32()))).(T), true
	}
	var zero T
	return zero, false
}

// narrowUnary applies f in float32 space when T is a narrow float format.
func narrowUnary[T Numeric](a T, f func(x float32) float32) (T, bool) {
	switch av := any(a).(type) {
	case Float16:
		return any(Float32ToFloat16(f(av.Float32()))).(T), true
	case BFloat16:
		return any(Float32ToBFloat16(f(av.Float32()))).(T), true
	case Float8E4M3:
		return any(Float32ToFloat8E4M3(f(av.Float32()))).(T), true
	case Float8E4M3UZ:
		return any(Float32ToFloat8E4M3UZ(f(av.Float32()))).(T), true
	case Float8E5M2:
		return any(Float32ToFloat8E5M2(f(av.Float32()))).(T), true
	case Float8E5M2UZ:
		return any(Float32ToFloat8E5M2UZ(f(av.Float32()))).(T), true
	}
	var zero T
	return zero, false
}

// narrowValue returns the decoded float32 value when T is a narrow format.
func narrowValue[T Lanes](a T) (float32, bool) {
	switch av := any(a).(type) {
	case Float16:
		return av.Float32(), true
	case BFloat16:
		return av.Float32(), true
	case Float8E4M3:
		return av.Float32(), true
	case Float8E4M3UZ:
		return av.Float32(), true
	case Float8E5M2:
		return av.Float32(), true
	case Float8E5M2UZ:
		return av.Float32(), true
	}
	return 0, false
}

// Add performs elementwise addition.
func Add[T Numeric](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, addLane[T])
}

func addLane[T Numeric](a, b T) T {
	if r, ok := narrowBinary(a, b, func(x, y float32) float32 { return x + y }); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(av + any(b).(float32)).(T)
	case float64:
		return any(av + any(b).(float64)).(T)
	case int8:
		return any(av + any(b).(int8)).(T)
	case int16:
		return any(av + any(b).(int16)).(T)
	case int32:
		return any(av + any(b).(int32)).(T)
	case int64:
		return any(av + any(b).(int64)).(T)
	case uint8:
		return any(av + any(b).(uint8)).(T)
	case uint16:
		return any(av + any(b).(uint16)).(T)
	case uint32:
		return any(av + any(b).(uint32)).(T)
	case uint64:
		return any(av + any(b).(uint64)).(T)
	default:
		return a
	}
}

// Sub performs elementwise subtraction.
func Sub[T Numeric](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, subLane[T])
}

func subLane[T Numeric](a, b T) T {
	if r, ok := narrowBinary(a, b, func(x, y float32) float32 { return x - y }); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(av - any(b).(float32)).(T)
	case float64:
		return any(av - any(b).(float64)).(T)
	case int8:
		return any(av - any(b).(int8)).(T)
	case int16:
		return any(av - any(b).(int16)).(T)
	case int32:
		return any(av - any(b).(int32)).(T)
	case int64:
		return any(av - any(b).(int64)).(T)
	case uint8:
		return any(av - any(b).(uint8)).(T)
	case uint16:
		return any(av - any(b).(uint16)).(T)
	case uint32:
		return any(av - any(b).(uint32)).(T)
	case uint64:
		return any(av - any(b).(uint64)).(T)
	default:
		return a
	}
}

// Mul performs elementwise multiplication.
func Mul[T Numeric](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, mulLane[T])
}

func mulLane[T Numeric](a, b T) T {
	if r, ok := narrowBinary(a, b, func(x, y float32) float32 { return x * y }); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(av * any(b).(float32)).(T)
	case float64:
		return any(av * any(b).(float64)).(T)
	case int8:
		return any(av * any(b).(int8)).(T)
	case int16:
		return any(av * any(b).(int16)).(T)
	case int32:
		return any(av * any(b).(int32)).(T)
	case int64:
		return any(av * any(b).(int64)).(T)
	case uint8:
		return any(av * any(b).(uint8)).(T)
	case uint16:
		return any(av * any(b).(uint16)).(T)
	case uint32:
		return any(av * any(b).(uint32)).(T)
	case uint64:
		return any(av * any(b).(uint64)).(T)
	default:
		return a
	}
}

// Div performs elementwise true division on float lanes with IEEE
// semantics: a zero divisor yields an infinity or NaN, never an error.
func Div[T FloatLanes](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, divLane[T])
}

func divLane[T FloatLanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(av / any(b).(float32)).(T)
	case float64:
		return any(av / any(b).(float64)).(T)
	}
	r, _ := narrowBinary(a, b, func(x, y float32) float32 { return x / y })
	return r
}

// Quo performs elementwise integer division, truncated toward zero.
// If any divisor lane is zero the whole operation fails with
// ErrDivideByZero; no partial result is produced.
func Quo[T Integers](a, b Vec[T]) (Vec[T], error) {
	checkSameWidth(len(a.data), len(b.data))
	if i := firstZeroLane(b); i >= 0 {
		return Vec[T]{}, fmt.Errorf("%w: divisor lane %d", ErrDivideByZero, i)
	}
	return Apply2(a, b, func(x, y T) T { return intQuo(x, y) }), nil
}

func intQuo[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return any(av / any(b).(int8)).(T)
	case int16:
		return any(av / any(b).(int16)).(T)
	case int32:
		return any(av / any(b).(int32)).(T)
	case int64:
		return any(av / any(b).(int64)).(T)
	case uint8:
		return any(av / any(b).(uint8)).(T)
	case uint16:
		return any(av / any(b).(uint16)).(T)
	case uint32:
		return any(av / any(b).(uint32)).(T)
	case uint64:
		return any(av / any(b).(uint64)).(T)
	default:
		return a
	}
}

// FloorDiv performs elementwise floored division (the // operator): the
// quotient is rounded toward negative infinity. A zero divisor lane fails
// the whole operation with ErrDivideByZero.
func FloorDiv[T Numeric](a, b Vec[T]) (Vec[T], error) {
	checkSameWidth(len(a.data), len(b.data))
	if i := firstZeroLane(b); i >= 0 {
		return Vec[T]{}, fmt.Errorf("%w: divisor lane %d", ErrDivideByZero, i)
	}
	return Apply2(a, b, floorDivLane[T]), nil
}

func floorDivLane[T Numeric](a, b T) T {
	if r, ok := narrowBinary(a, b, floorDivF32); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(floorDivF32(av, any(b).(float32))).(T)
	case float64:
		return any(math.Floor(av / any(b).(float64))).(T)
	case int8:
		return any(floorDivInt(av, any(b).(int8))).(T)
	case int16:
		return any(floorDivInt(av, any(b).(int16))).(T)
	case int32:
		return any(floorDivInt(av, any(b).(int32))).(T)
	case int64:
		return any(floorDivInt(av, any(b).(int64))).(T)
	case uint8:
		return any(av / any(b).(uint8)).(T)
	case uint16:
		return any(av / any(b).(uint16)).(T)
	case uint32:
		return any(av / any(b).(uint32)).(T)
	case uint64:
		return any(av / any(b).(uint64)).(T)
	default:
		return a
	}
}

func floorDivF32(a, b float32) float32 {
	return float32(math.Floor(float64(a) / float64(b)))
}

// floorDivInt rounds the quotient toward negative infinity instead of
// Go's truncation toward zero.
func floorDivInt[T SignedInts](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod performs elementwise floored modulo, the companion of FloorDiv:
// the result takes the sign of the divisor, so a == b*FloorDiv(a,b) +
// Mod(a,b) holds lane by lane. A zero divisor lane fails the whole
// operation with ErrDivideByZero.
func Mod[T Numeric](a, b Vec[T]) (Vec[T], error) {
	checkSameWidth(len(a.data), len(b.data))
	if i := firstZeroLane(b); i >= 0 {
		return Vec[T]{}, fmt.Errorf("%w: divisor lane %d", ErrDivideByZero, i)
	}
	return Apply2(a, b, modLane[T]), nil
}

func modLane[T Numeric](a, b T) T {
	if r, ok := narrowBinary(a, b, floorModF32); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(floorModF32(av, any(b).(float32))).(T)
	case float64:
		bv := any(b).(float64)
		return any(av - math.Floor(av/bv)*bv).(T)
	case int8:
		return any(floorModInt(av, any(b).(int8))).(T)
	case int16:
		return any(floorModInt(av, any(b).(int16))).(T)
	case int32:
		return any(floorModInt(av, any(b).(int32))).(T)
	case int64:
		return any(floorModInt(av, any(b).(int64))).(T)
	case uint8:
		return any(av % any(b).(uint8)).(T)
	case uint16:
		return any(av % any(b).(uint16)).(T)
	case uint32:
		return any(av % any(b).(uint32)).(T)
	case uint64:
		return any(av % any(b).(uint64)).(T)
	default:
		return a
	}
}

func floorModF32(a, b float32) float32 {
	return a - floorDivF32(a, b)*b
}

func floorModInt[T SignedInts](a, b T) T {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// firstZeroLane returns the index of the first zero lane, or -1.
func firstZeroLane[T Numeric](v Vec[T]) int {
	for i, x := range v.data {
		if isZeroLane(x) {
			return i
		}
	}
	return -1
}

func isZeroLane[T Numeric](x T) bool {
	if f, ok := narrowValue(x); ok {
		return f == 0
	}
	switch xv := any(x).(type) {
	case float32:
		return xv == 0
	case float64:
		return xv == 0
	case int8:
		return xv == 0
	case int16:
		return xv == 0
	case int32:
		return xv == 0
	case int64:
		return xv == 0
	case uint8:
		return xv == 0
	case uint16:
		return xv == 0
	case uint32:
		return xv == 0
	case uint64:
		return xv == 0
	default:
		return false
	}
}

// Pow raises each lane of base to the corresponding lane of exp.
// Integer lanes use exponentiation by squaring with wraparound; a negative
// integer exponent yields zero (matching integer floor semantics).
func Pow[T Numeric](base, exp Vec[T]) Vec[T] {
	return Apply2(base, exp, powLane[T])
}

func powLane[T Numeric](a, b T) T {
	if r, ok := narrowBinary(a, b, func(x, y float32) float32 {
		return float32(math.Pow(float64(x), float64(y)))
	}); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(float32(math.Pow(float64(av), float64(any(b).(float32))))).(T)
	case float64:
		return any(math.Pow(av, any(b).(float64))).(T)
	case int8:
		return any(ipow(av, int64(any(b).(int8)))).(T)
	case int16:
		return any(ipow(av, int64(any(b).(int16)))).(T)
	case int32:
		return any(ipow(av, int64(any(b).(int32)))).(T)
	case int64:
		return any(ipow(av, any(b).(int64))).(T)
	case uint8:
		return any(ipow(av, int64(any(b).(uint8)))).(T)
	case uint16:
		return any(ipow(av, int64(any(b).(uint16)))).(T)
	case uint32:
		return any(ipow(av, int64(any(b).(uint32)))).(T)
	case uint64:
		return any(ipowU64(av, any(b).(uint64))).(T)
	default:
		return a
	}
}

// ipow is exponentiation by squaring with two's-complement wraparound.
func ipow[T Integers](base T, exp int64) T {
	if exp < 0 {
		// 1/b**n floors to zero for |b| > 1.
		switch {
		case base == 1:
			return 1
		case int64(base) == -1:
			if exp&1 == 0 {
				return 1
			}
			return base
		default:
			return 0
		}
	}
	return ipowU64(base, uint64(exp))
}

func ipowU64[T Integers](base T, exp uint64) T {
	var result T = 1
	for exp > 0 {
		if exp&1 == 1 {
			result = mulLane(result, base)
		}
		base = mulLane(base, base)
		exp >>= 1
	}
	return result
}

// Neg negates all lanes.
func Neg[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, negLane[T])
}

func negLane[T Numeric](a T) T {
	if r, ok := narrowUnary(a, func(x float32) float32 { return -x }); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(-av).(T)
	case float64:
		return any(-av).(T)
	case int8:
		return any(-av).(T)
	case int16:
		return any(-av).(T)
	case int32:
		return any(-av).(T)
	case int64:
		return any(-av).(T)
	case uint8:
		return any(-av).(T)
	case uint16:
		return any(-av).(T)
	case uint32:
		return any(-av).(T)
	case uint64:
		return any(-av).(T)
	default:
		return a
	}
}

// Abs computes the absolute value of each lane. Unsigned lanes are
// returned unchanged.
func Abs[T Numeric](v Vec[T]) Vec[T] {
	return Apply(v, absLane[T])
}

func absLane[T Numeric](a T) T {
	if r, ok := narrowUnary(a, func(x float32) float32 {
		// Clear the sign bit rather than comparing, so -0 and NaN signs
		// behave like float32 Abs.
		return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
	}); ok {
		return r
	}
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(av) &^ (1 << 31))).(T)
	case float64:
		return any(math.Abs(av)).(T)
	case int8:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	case int16:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	case int32:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	case int64:
		if av < 0 {
			return any(-av).(T)
		}
		return a
	default:
		return a
	}
}

// Min returns the elementwise minimum. For float lanes a NaN input
// propagates: if either lane is NaN, the result lane is NaN.
func Min[T Numeric](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, minLane[T])
}

// Max returns the elementwise maximum. NaN propagates like Min.
func Max[T Numeric](a, b Vec[T]) Vec[T] {
	return Apply2(a, b, maxLane[T])
}

func minLane[T Numeric](a, b T) T {
	if nan, ok := nanPropagate(a, b); ok {
		return nan
	}
	if lessLane(a, b) {
		return a
	}
	return b
}

func maxLane[T Numeric](a, b T) T {
	if nan, ok := nanPropagate(a, b); ok {
		return nan
	}
	if greaterLane(a, b) {
		return a
	}
	return b
}

// nanPropagate returns a NaN of type T when either argument is NaN.
func nanPropagate[T Numeric](a, b T) (T, bool) {
	if fa, ok := narrowValue(a); ok {
		fb, _ := narrowValue(b)
		if fa != fa {
			return a, true
		}
		if fb != fb {
			return b, true
		}
		return a, false
	}
	switch av := any(a).(type) {
	case float32:
		if av != av {
			return a, true
		}
		if bv := any(b).(float32); bv != bv {
			return b, true
		}
	case float64:
		if av != av {
			return a, true
		}
		if bv := any(b).(float64); bv != bv {
			return b, true
		}
	}
	var zero T
	return zero, false
}

// MulAdd computes a*b + c with a single rounding step per lane.
func MulAdd[T Numeric](a, b, c Vec[T]) Vec[T] {
	return Apply3(a, b, c, mulAddLane[T])
}

func mulAddLane[T Numeric](a, b, c T) T {
	if fa, ok := narrowValue(a); ok {
		fb, _ := narrowValue(b)
		fc, _ := narrowValue(c)
		// The float64 FMA is exact to well beyond any narrow mantissa, so
		// encoding its result applies the only rounding that matters.
		r, _ := narrowUnary(a, func(float32) float32 {
			return float32(math.FMA(float64(fa), float64(fb), float64(fc)))
		})
		return r
	}
	switch av := any(a).(type) {
	case float32:
		bv := any(b).(float32)
		cv := any(c).(float32)
		return any(float32(math.FMA(float64(av), float64(bv), float64(cv)))).(T)
	case float64:
		return any(math.FMA(av, any(b).(float64), any(c).(float64))).(T)
	default:
		return addLane(mulLane(a, b), c)
	}
}
