package lanes

import (
	"math"
	"reflect"
	"testing"
)

func TestCompareInts(t *testing.T) {
	a := VecOf[int32](1, 5, 3, 7)
	b := VecOf[int32](1, 3, 5, 7)

	tests := []struct {
		name   string
		got    Vec[bool]
		expect []bool
	}{
		{"Equal", Equal(a, b), []bool{true, false, false, true}},
		{"NotEqual", NotEqual(a, b), []bool{false, true, true, false}},
		{"Less", Less(a, b), []bool{false, false, true, false}},
		{"LessEqual", LessEqual(a, b), []bool{true, false, true, true}},
		{"Greater", Greater(a, b), []bool{false, true, false, false}},
		{"GreaterEqual", GreaterEqual(a, b), []bool{true, true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got.Data(), tt.expect) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got.Data(), tt.expect)
			}
		})
	}
}

// TestCompareNaNUnordered checks IEEE semantics: NaN compares false with
// everything except NotEqual.
func TestCompareNaNUnordered(t *testing.T) {
	nan := float32(math.NaN())
	a := VecOf(nan, 1)
	b := VecOf(nan, nan)

	if AnyTrue(Equal(a, b)) {
		t.Error("NaN == NaN should be false")
	}
	if !AllTrue(NotEqual(a, b)) {
		t.Error("NaN != anything should be true")
	}
	for name, mask := range map[string]Vec[bool]{
		"Less":         Less(a, b),
		"LessEqual":    LessEqual(a, b),
		"Greater":      Greater(a, b),
		"GreaterEqual": GreaterEqual(a, b),
	} {
		if AnyTrue(mask) {
			t.Errorf("%s with NaN lane should be all false, got %v", name, mask.Data())
		}
	}
}

// TestCompareNarrow checks that narrow lanes compare by decoded value:
// +0 and -0 are equal, and the format NaN is unordered.
func TestCompareNarrow(t *testing.T) {
	posZero := Float8E4M3(0x00)
	negZero := Float8E4M3(0x80)
	one := Float32ToFloat8E4M3(1)
	nan := Float8E4M3(0x7F)

	a := VecOf(posZero, one, nan, one)
	b := VecOf(negZero, posZero, nan, one)

	eq := Equal(a, b)
	if !reflect.DeepEqual(eq.Data(), []bool{true, false, false, true}) {
		t.Errorf("Equal = %v", eq.Data())
	}

	lt := Less(b, a)
	if !reflect.DeepEqual(lt.Data(), []bool{false, true, false, false}) {
		t.Errorf("Less = %v", lt.Data())
	}

	ge := GreaterEqual(a, b)
	if !reflect.DeepEqual(ge.Data(), []bool{true, true, false, true}) {
		t.Errorf("GreaterEqual = %v", ge.Data())
	}
}

func TestCompareBools(t *testing.T) {
	a := VecOf(true, false, true, false)
	b := VecOf(true, true, false, false)
	eq := Equal(a, b)
	if !reflect.DeepEqual(eq.Data(), []bool{true, false, false, true}) {
		t.Errorf("Equal bools = %v", eq.Data())
	}
}
