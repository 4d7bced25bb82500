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

// This file provides the pure Go implementations of the core vector operations.
// Every operation produces a new vector and leaves its inputs untouched.

// Load creates a vector with d's lane count from the start of src.
// src must hold at least d's lane count elements; use LoadN for partial loads.
func Load[T Lanes](d Tag, src []T) Vec[T] {
	n := lanesFor[T](d)
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN loads the first count elements of src into a vector with d's lane
// count. Lanes at index count and above are zero.
func LoadN[T Lanes](d Tag, src []T, count int) Vec[T] {
	n := lanesFor[T](d)
	data := make([]T, n)
	copy(data, src[:min(count, n, len(src))])
	return Vec[T]{data: data}
}

// Store writes a vector's lanes to dst. If dst is shorter than the vector,
// only the lower len(dst) lanes are written.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](d Tag, value T) Vec[T] {
	data := make([]T, lanesFor[T](d))
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes](d Tag) Vec[T] {
	return Vec[T]{data: make([]T, lanesFor[T](d))}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction. Integer lanes wrap on overflow.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
// Integer lanes keep the low bits of the product (mullo semantics).
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// ShiftLeft shifts each lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x << bits
	}
	return Vec[T]{data: result}
}

// ShiftRight shifts each lane right by bits.
// Unsigned lanes shift in zeros, signed lanes replicate the sign bit.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> bits
	}
	return Vec[T]{data: result}
}

// ReduceMax returns the largest lane. An empty vector reduces to zero.
func ReduceMax[T Lanes](v Vec[T]) T {
	var result T
	for i, x := range v.data {
		if i == 0 || x > result {
			result = x
		}
	}
	return result
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}
