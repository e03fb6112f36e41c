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

// Elementwise comparisons. Each produces a boolean vector of the same
// width. Narrow-float lanes compare by their decoded float32 values, so
// NaN compares unordered exactly as it does for float32.

// Equal compares lanes for equality.
func Equal[T Lanes](a, b Vec[T]) Vec[bool] {
	return Apply2(a, b, equalLane[T])
}

// NotEqual compares lanes for inequality.
func NotEqual[T Lanes](a, b Vec[T]) Vec[bool] {
	return Apply2(a, b, func(x, y T) bool { return !equalLane(x, y) })
}

// Less compares lanes with <.
func Less[T Numeric](a, b Vec[T]) Vec[bool] {
	return Apply2(a, b, lessLane[T])
}

// LessEqual compares lanes with <=.
func LessEqual[T Numeric](a, b Vec[T]) Vec[bool] {
	return Apply2(a, b, func(x, y T) bool { return !greaterLane(x, y) && orderedLane(x, y) })
}

// Greater compares lanes with >.
func Greater[T Numeric](a, b Vec[T]) Vec[bool] {
	return Apply2(a, b, greaterLane[T])
}

// GreaterEqual compares lanes with >=.
func GreaterEqual[T Numeric](a, b Vec[T]) Vec[bool] {
	return Apply2(a, b, func(x, y T) bool { return !lessLane(x, y) && orderedLane(x, y) })
}

func equalLane[T Lanes](a, b T) bool {
	if fa, ok := narrowValue(a); ok {
		fb, _ := narrowValue(b)
		return fa == fb
	}
	switch av := any(a).(type) {
	case bool:
		return av == any(b).(bool)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	default:
		return false
	}
}

func lessLane[T Numeric](a, b T) bool {
	if fa, ok := narrowValue(a); ok {
		fb, _ := narrowValue(b)
		return fa < fb
	}
	switch av := any(a).(type) {
	case float32:
		return av < any(b).(float32)
	case float64:
		return av < any(b).(float64)
	case int8:
		return av < any(b).(int8)
	case int16:
		return av < any(b).(int16)
	case int32:
		return av < any(b).(int32)
	case int64:
		return av < any(b).(int64)
	case uint8:
		return av < any(b).(uint8)
	case uint16:
		return av < any(b).(uint16)
	case uint32:
		return av < any(b).(uint32)
	case uint64:
		return av < any(b).(uint64)
	default:
		return false
	}
}

func greaterLane[T Numeric](a, b T) bool {
	if fa, ok := narrowValue(a); ok {
		fb, _ := narrowValue(b)
		return fa > fb
	}
	switch av := any(a).(type) {
	case float32:
		return av > any(b).(float32)
	case float64:
		return av > any(b).(float64)
	case int8:
		return av > any(b).(int8)
	case int16:
		return av > any(b).(int16)
	case int32:
		return av > any(b).(int32)
	case int64:
		return av > any(b).(int64)
	case uint8:
		return av > any(b).(uint8)
	case uint16:
		return av > any(b).(uint16)
	case uint32:
		return av > any(b).(uint32)
	case uint64:
		return av > any(b).(uint64)
	default:
		return false
	}
}

// orderedLane reports whether neither lane is NaN. Integer lanes are
// always ordered.
func orderedLane[T Numeric](a, b T) bool {
	if fa, ok := narrowValue(a); ok {
		fb, _ := narrowValue(b)
		return fa == fa && fb == fb
	}
	switch av := any(a).(type) {
	case float32:
		bv := any(b).(float32)
		return av == av && bv == bv
	case float64:
		bv := any(b).(float64)
		return av == av && bv == bv
	default:
		return true
	}
}
