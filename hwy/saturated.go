// Copyright 2025 go-highway Authors
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

package hwy

// This file provides saturating arithmetic and related operations.
// Saturating operations clamp results to the type's valid range instead of wrapping.

// SaturatedSub performs element-wise unsigned subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T UnsignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i] - b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Clamp clamps each element to the range [lo, hi].
// Elements less than lo become lo, elements greater than hi become hi.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	n := min(len(hi.data), len(lo.data), len(v.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(max(v.data[i], lo.data[i]), hi.data[i])
	}
	return Vec[T]{data: result}
}

// AbsDiff computes the absolute difference |a - b| for each element.
// The larger operand is always subtracted from the smaller, so unsigned
// lanes never wrap: for uint8, AbsDiff(3, 250) = 247.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i] - b.data[i]
		} else {
			result[i] = b.data[i] - a.data[i]
		}
	}
	return Vec[T]{data: result}
}
