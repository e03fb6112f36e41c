package lanes

import "fmt"

// Structural operations: lane rearrangement that never looks at lane
// values. All bounds are checked; violations panic with a descriptive
// message, matching the checked-build policy used throughout the package.

// Slice returns lanes [offset, offset+width) of v. width must be a valid
// power of two and offset+width must not exceed the vector width.
func Slice[T Lanes](v Vec[T], offset, width int) Vec[T] {
	checkWidth(width)
	if offset < 0 || offset+width > len(v.data) {
		panic(fmt.Sprintf("lanes: slice [%d, %d) out of range for width %d", offset, offset+width, len(v.data)))
	}
	data := make([]T, width)
	copy(data, v.data[offset:offset+width])
	return Vec[T]{data: data}
}

// Insert returns a copy of v with lanes [offset, offset+sub.NumLanes())
// replaced by the lanes of sub.
func Insert[T Lanes](v Vec[T], offset int, sub Vec[T]) Vec[T] {
	if offset < 0 || offset+len(sub.data) > len(v.data) {
		panic(fmt.Sprintf("lanes: insert [%d, %d) out of range for width %d", offset, offset+len(sub.data), len(v.data)))
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	copy(data[offset:], sub.data)
	return Vec[T]{data: data}
}

// Join concatenates two vectors of equal width into one of double width:
// a's lanes followed by b's lanes.
func Join[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameWidth(len(a.data), len(b.data))
	checkWidth(len(a.data) * 2)
	data := make([]T, len(a.data)*2)
	copy(data, a.data)
	copy(data[len(a.data):], b.data)
	return Vec[T]{data: data}
}

// Split divides v into its lower and upper halves. The inverse of Join.
// Panics for single-lane vectors.
func Split[T Lanes](v Vec[T]) (lo, hi Vec[T]) {
	n := len(v.data)
	if n < 2 {
		panic("lanes: cannot split a single-lane vector")
	}
	half := n / 2
	loData := make([]T, half)
	hiData := make([]T, half)
	copy(loData, v.data[:half])
	copy(hiData, v.data[half:])
	return Vec[T]{data: loData}, Vec[T]{data: hiData}
}

// Interleave merges two vectors of equal width into one of double width
// with alternating lanes: a[0], b[0], a[1], b[1], ...
func Interleave[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameWidth(len(a.data), len(b.data))
	checkWidth(len(a.data) * 2)
	data := make([]T, len(a.data)*2)
	for i := range a.data {
		data[2*i] = a.data[i]
		data[2*i+1] = b.data[i]
	}
	return Vec[T]{data: data}
}

// Deinterleave separates alternating lanes into two half-width vectors.
// The inverse of Interleave. Panics for single-lane vectors.
func Deinterleave[T Lanes](v Vec[T]) (even, odd Vec[T]) {
	n := len(v.data)
	if n < 2 {
		panic("lanes: cannot deinterleave a single-lane vector")
	}
	half := n / 2
	evenData := make([]T, half)
	oddData := make([]T, half)
	for i := 0; i < half; i++ {
		evenData[i] = v.data[2*i]
		oddData[i] = v.data[2*i+1]
	}
	return Vec[T]{data: evenData}, Vec[T]{data: oddData}
}

// Shuffle gathers lanes of v by a dynamic mask: output[i] = v[mask[i]].
// Mask entries index into v doubled onto itself, so they may range over
// [0, 2N); entries >= N select from v again. The mask length becomes the
// output width and must be a valid power of two.
func Shuffle[T Lanes](v Vec[T], mask []int) Vec[T] {
	return Shuffle2(v, v, mask)
}

// Shuffle2 gathers lanes from the concatenation of a and b:
// output[i] = concat(a, b)[mask[i]] with mask entries in [0, 2N).
// a and b must have equal width.
func Shuffle2[T Lanes](a, b Vec[T], mask []int) Vec[T] {
	checkSameWidth(len(a.data), len(b.data))
	checkWidth(len(mask))
	n := len(a.data)
	data := make([]T, len(mask))
	for i, m := range mask {
		switch {
		case m >= 0 && m < n:
			data[i] = a.data[m]
		case m >= n && m < 2*n:
			data[i] = b.data[m-n]
		default:
			panic(fmt.Sprintf("lanes: shuffle mask entry %d out of range [0, %d)", m, 2*n))
		}
	}
	return Vec[T]{data: data}
}

// Reverse reverses the lane order, equivalent to a shuffle with mask
// [N-1, N-2, ..., 0].
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	data := make([]T, n)
	for i := 0; i < n; i++ {
		data[i] = v.data[n-1-i]
	}
	return Vec[T]{data: data}
}

// RotateLanesLeft rotates lanes circularly toward lower indices:
// [1,2,3,4] rotated by 2 is [3,4,1,2]. shift must be in [-N, N); a
// negative shift rotates the other way. Single-lane vectors only accept
// shift 0.
func RotateLanesLeft[T Lanes](v Vec[T], shift int) Vec[T] {
	n := len(v.data)
	if shift < -n || shift >= n || (n == 1 && shift != 0) {
		panic(fmt.Sprintf("lanes: rotate shift %d out of range [%d, %d)", shift, -n, n))
	}
	return rotate(v, shift)
}

// RotateLanesRight rotates lanes circularly toward higher indices:
// [1,2,3,4] rotated by 1 is [4,1,2,3]. shift must be in (-N, N]. Single-lane
// vectors only accept shift 0.
func RotateLanesRight[T Lanes](v Vec[T], shift int) Vec[T] {
	n := len(v.data)
	if shift <= -n || shift > n || (n == 1 && shift != 0) {
		panic(fmt.Sprintf("lanes: rotate shift %d out of range (%d, %d]", shift, -n, n))
	}
	return rotate(v, -shift)
}

// rotate moves lane i to position i-shift mod n (a left rotation by
// shift). shift may be negative here; callers validated the range.
func rotate[T Lanes](v Vec[T], shift int) Vec[T] {
	n := len(v.data)
	shift = ((shift % n) + n) % n
	if shift == 0 {
		return v
	}
	data := make([]T, n)
	copy(data, v.data[shift:])
	copy(data[n-shift:], v.data[:shift])
	return Vec[T]{data: data}
}

// ShiftLanesLeft shifts lanes toward lower indices, zero-filling the top:
// [1,2,3,4] shifted by 2 is [3,4,0,0]. shift must be in [0, N]; shifting
// by N yields the zero vector.
func ShiftLanesLeft[T Lanes](v Vec[T], shift int) Vec[T] {
	n := len(v.data)
	if shift < 0 || shift > n {
		panic(fmt.Sprintf("lanes: lane shift %d out of range [0, %d]", shift, n))
	}
	data := make([]T, n)
	copy(data, v.data[shift:])
	return Vec[T]{data: data}
}

// ShiftLanesRight shifts lanes toward higher indices, zero-filling the
// bottom: [1,2,3,4] shifted by 2 is [0,0,1,2]. shift must be in [0, N].
func ShiftLanesRight[T Lanes](v Vec[T], shift int) Vec[T] {
	n := len(v.data)
	if shift < 0 || shift > n {
		panic(fmt.Sprintf("lanes: lane shift %d out of range [0, %d]", shift, n))
	}
	data := make([]T, n)
	copy(data[shift:], v.data[:n-shift])
	return Vec[T]{data: data}
}
