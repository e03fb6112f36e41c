package lanes

import (
	"reflect"
	"testing"
)

func TestSlice(t *testing.T) {
	v := VecOf[int32](1, 2, 3, 4, 5, 6, 7, 8)

	tests := []struct {
		name   string
		offset int
		width  int
		expect []int32
	}{
		{"middle", 2, 4, []int32{3, 4, 5, 6}},
		{"head", 0, 2, []int32{1, 2}},
		{"tail", 7, 1, []int32{8}},
		{"whole", 0, 8, []int32{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(v, tt.offset, tt.width)
			if !reflect.DeepEqual(got.Data(), tt.expect) {
				t.Errorf("Slice(%d, %d) = %v, want %v", tt.offset, tt.width, got.Data(), tt.expect)
			}
		})
	}

	t.Run("out of range panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Slice(v, 6, 4)
	})
}

func TestInsert(t *testing.T) {
	v := VecOf[int32](1, 2, 3, 4)
	sub := VecOf[int32](10, 20)

	got := Insert(v, 1, sub)
	if !reflect.DeepEqual(got.Data(), []int32{1, 10, 20, 4}) {
		t.Errorf("Insert = %v", got.Data())
	}
	if !reflect.DeepEqual(v.Data(), []int32{1, 2, 3, 4}) {
		t.Error("Insert mutated its input")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Insert(v, 3, sub)
}

func TestJoinSplit(t *testing.T) {
	a := VecOf[int32](1, 2)
	b := VecOf[int32](3, 4)

	joined := Join(a, b)
	if !reflect.DeepEqual(joined.Data(), []int32{1, 2, 3, 4}) {
		t.Errorf("Join = %v", joined.Data())
	}

	lo, hi := Split(joined)
	if !reflect.DeepEqual(lo.Data(), a.Data()) || !reflect.DeepEqual(hi.Data(), b.Data()) {
		t.Errorf("Split = %v, %v", lo.Data(), hi.Data())
	}

	t.Run("single lane split panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Split(VecOf[int32](1))
	})
}

func TestInterleaveDeinterleave(t *testing.T) {
	a := VecOf[int32](1, 3, 5, 7)
	b := VecOf[int32](2, 4, 6, 8)

	merged := Interleave(a, b)
	if !reflect.DeepEqual(merged.Data(), []int32{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("Interleave = %v", merged.Data())
	}

	even, odd := Deinterleave(merged)
	if !reflect.DeepEqual(even.Data(), a.Data()) || !reflect.DeepEqual(odd.Data(), b.Data()) {
		t.Errorf("Deinterleave = %v, %v", even.Data(), odd.Data())
	}
}

func TestShuffle(t *testing.T) {
	v := VecOf[int32](10, 20, 30, 40)

	tests := []struct {
		name   string
		mask   []int
		expect []int32
	}{
		{"reverse", []int{3, 2, 1, 0}, []int32{40, 30, 20, 10}},
		{"broadcast", []int{0, 0, 0, 0}, []int32{10, 10, 10, 10}},
		{"widen", []int{0, 1, 2, 3, 3, 2, 1, 0}, []int32{10, 20, 30, 40, 40, 30, 20, 10}},
		{"narrow", []int{1, 2}, []int32{20, 30}},
		{"doubled indices wrap to self", []int{4, 5, 6, 7}, []int32{10, 20, 30, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shuffle(v, tt.mask)
			if !reflect.DeepEqual(got.Data(), tt.expect) {
				t.Errorf("Shuffle(%v) = %v, want %v", tt.mask, got.Data(), tt.expect)
			}
		})
	}

	t.Run("mask entry out of range panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Shuffle(v, []int{0, 1, 2, 8})
	})
}

func TestShuffle2(t *testing.T) {
	a := VecOf[int32](1, 2, 3, 4)
	b := VecOf[int32](5, 6, 7, 8)

	// Indices >= N select from b.
	got := Shuffle2(a, b, []int{0, 4, 3, 7})
	if !reflect.DeepEqual(got.Data(), []int32{1, 5, 4, 8}) {
		t.Errorf("Shuffle2 = %v", got.Data())
	}
}

func TestReverse(t *testing.T) {
	v := VecOf[int32](10, 20, 30, 40)
	got := Reverse(v)
	if !reflect.DeepEqual(got.Data(), []int32{40, 30, 20, 10}) {
		t.Errorf("Reverse = %v", got.Data())
	}

	// Equivalent to the descending shuffle mask.
	shuffled := Shuffle(v, []int{3, 2, 1, 0})
	if !reflect.DeepEqual(got.Data(), shuffled.Data()) {
		t.Error("Reverse should match Shuffle with a descending mask")
	}

	single := Reverse(VecOf[int32](7))
	if !reflect.DeepEqual(single.Data(), []int32{7}) {
		t.Errorf("Reverse single = %v", single.Data())
	}
}

func TestRotateLanes(t *testing.T) {
	v := VecOf[int32](1, 2, 3, 4)

	tests := []struct {
		name   string
		got    Vec[int32]
		expect []int32
	}{
		{"left 2", RotateLanesLeft(v, 2), []int32{3, 4, 1, 2}},
		{"left 0", RotateLanesLeft(v, 0), []int32{1, 2, 3, 4}},
		{"left -1", RotateLanesLeft(v, -1), []int32{4, 1, 2, 3}},
		{"right 1", RotateLanesRight(v, 1), []int32{4, 1, 2, 3}},
		{"right 4 full turn", RotateLanesRight(v, 4), []int32{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got.Data(), tt.expect) {
				t.Errorf("got %v, want %v", tt.got.Data(), tt.expect)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		back := RotateLanesRight(RotateLanesLeft(v, 3), 3)
		if !reflect.DeepEqual(back.Data(), v.Data()) {
			t.Errorf("rotate round trip = %v", back.Data())
		}
	})

	t.Run("shift out of range panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		RotateLanesLeft(v, 4)
	})

	// With one lane the general ranges [-N, N) and (-N, N] still admit a
	// nonzero shift; only 0 is accepted.
	t.Run("single lane shift 0", func(t *testing.T) {
		got := RotateLanesLeft(VecOf[int32](7), 0)
		if !reflect.DeepEqual(got.Data(), []int32{7}) {
			t.Errorf("got %v", got.Data())
		}
	})
	t.Run("single lane left -1 panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		RotateLanesLeft(VecOf[int32](7), -1)
	})
	t.Run("single lane right 1 panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		RotateLanesRight(VecOf[int32](7), 1)
	})
}

func TestShiftLanes(t *testing.T) {
	v := VecOf[int32](1, 2, 3, 4)

	tests := []struct {
		name   string
		got    Vec[int32]
		expect []int32
	}{
		{"left 2 zero fills top", ShiftLanesLeft(v, 2), []int32{3, 4, 0, 0}},
		{"left 0", ShiftLanesLeft(v, 0), []int32{1, 2, 3, 4}},
		{"left N is zero vector", ShiftLanesLeft(v, 4), []int32{0, 0, 0, 0}},
		{"right 2 zero fills bottom", ShiftLanesRight(v, 2), []int32{0, 0, 1, 2}},
		{"right N is zero vector", ShiftLanesRight(v, 4), []int32{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got.Data(), tt.expect) {
				t.Errorf("got %v, want %v", tt.got.Data(), tt.expect)
			}
		})
	}

	t.Run("negative shift panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		ShiftLanesLeft(v, -1)
	})
}
