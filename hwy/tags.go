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

import "unsafe"

// Tag describes the register width a vector operation works with.
// Constructors such as Load, Set and Zero take a Tag to decide how many
// lanes the resulting vector has.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

// ScalableTag adapts to the widest vector available at runtime.
//
// Usage:
//
//	d := hwy.ScalableTag[uint8]{}
//	lanes := d.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime vector width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the number of T lanes at the current runtime width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// FixedTag128 describes a 128-bit register regardless of the CPU.
// Kernels whose algorithm is defined in terms of 4 float32 or 8 uint16 lanes
// use this tag so their block size never changes across targets.
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return lanesFor[T](t)
}

// lanesFor returns how many T lanes fit in the width described by d.
func lanesFor[T Lanes](d Tag) int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 {
		return 0
	}
	return d.Width() / size
}
