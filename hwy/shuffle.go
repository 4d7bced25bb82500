package hwy

// This file provides shuffle and permutation operations for vectors.
// The interleave and concat operations are the building blocks for moving
// between pixel-interleaved and channel-planar layouts.

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
//
// On a 128-bit vector of uint8 this is the byte unpack-low primitive.
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}

// ConcatLowerLower concatenates the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
//
// On a 128-bit vector this merges the low 64 bits of a and b.
func ConcatLowerLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	result := make([]T, n)
	copy(result[:half], a.data[:half])
	copy(result[half:], b.data[:half])
	return Vec[T]{data: result}
}

// ConcatUpperUpper concatenates the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
//
// On a 128-bit vector this merges the high 64 bits of a and b.
func ConcatUpperUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	half := n / 2
	result := make([]T, n)
	copy(result[:half], a.data[half:n])
	copy(result[half:], b.data[half:n])
	return Vec[T]{data: result}
}
