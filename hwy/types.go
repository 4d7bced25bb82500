// Package hwy provides portable lane-parallel vector operations with runtime
// CPU dispatch detection.
//
// It follows the Highway C++ library's design: kernels are written once
// against a vector handle and a descriptor tag, and the same code runs on
// every target. Tags fix the vector width a kernel works with:
// FixedTag128 always describes a 128-bit register (4 float32 lanes,
// 8 uint16 lanes, 16 uint8 lanes), while ScalableTag adapts to the widest
// register the running CPU offers.
//
// Basic usage:
//
//	import "github.com/go-highway/luma/hwy"
//
//	d := hwy.FixedTag128[float32]{}
//	a := hwy.Load(d, data1)
//	b := hwy.Load(d, data2)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle.
//
// Operations never modify their inputs, so a Vec may be shared freely between
// goroutines once built. Vec instances should not be created directly; use
// Load, Set or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
