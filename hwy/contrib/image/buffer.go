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

package image

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-highway/luma/hwy"
)

// noCopy may be embedded into structs which must not be copied after first
// use. `go vet` reports value copies of any struct containing it through the
// copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is a 2D array of elements with a byte stride between rows.
// Each logical element (pixel) holds Channels consecutive values of T.
//
// Element (i, j, k) lives at byte offset i*Stride() + (j*Channels()+k)*sizeof(T)
// from the start of the storage, and Stride() >= Cols()*Channels()*sizeof(T).
//
// A Buffer is the sole owner of its storage. It must not be copied by value;
// use Move to hand ownership to another handle. The zero value is an empty
// buffer ready for Init.
type Buffer[T hwy.Lanes] struct {
	_ noCopy

	data     []T
	rows     int
	cols     int
	channels int
	stride   int // bytes between row starts
	rowElems int // stride / sizeof(T)
}

// NewBuffer allocates a buffer with rows x cols elements of channels values
// each, packed without row padding.
func NewBuffer[T hwy.Lanes](rows, cols, channels int) (*Buffer[T], error) {
	b := &Buffer[T]{}
	if err := b.Init(rows, cols, channels); err != nil {
		return nil, err
	}
	return b, nil
}

// NewBufferStride allocates a buffer whose rows start strideBytes apart.
// strideBytes must be a multiple of sizeof(T) and at least the packed row size.
func NewBufferStride[T hwy.Lanes](rows, cols, channels, strideBytes int) (*Buffer[T], error) {
	b := &Buffer[T]{}
	if err := b.init(rows, cols, channels, strideBytes); err != nil {
		return nil, err
	}
	return b, nil
}

// Init releases any existing storage and allocates zeroed storage for
// rows x cols elements of channels values each, with a packed stride.
// On error the buffer is left empty.
func (b *Buffer[T]) Init(rows, cols, channels int) error {
	return b.init(rows, cols, channels, -1)
}

func (b *Buffer[T]) init(rows, cols, channels, strideBytes int) error {
	b.Release()

	if rows < 0 || cols < 0 || channels < 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidShape, rows, cols, channels)
	}

	size := elemSize[T]()
	rowElems, ok := mulNoOverflow(cols, channels)
	if !ok || rowElems > math.MaxInt/size {
		return fmt.Errorf("%w: %d cols x %d channels", ErrTooLarge, cols, channels)
	}
	if strideBytes >= 0 {
		if strideBytes%size != 0 || strideBytes < rowElems*size {
			return fmt.Errorf("%w: stride %d bytes for %d elements of %d bytes",
				ErrInvalidStride, strideBytes, rowElems, size)
		}
		rowElems = strideBytes / size
	}
	total, ok := mulNoOverflow(rows, rowElems)
	if !ok || total > math.MaxInt/size {
		return fmt.Errorf("%w: %d rows x %d elements", ErrTooLarge, rows, rowElems)
	}

	if total > 0 {
		b.data = make([]T, total)
	}
	b.rows = rows
	b.cols = cols
	b.channels = channels
	b.rowElems = rowElems
	b.stride = rowElems * size
	return nil
}

// Release drops the storage and resets the buffer to the empty state.
// Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	b.data = nil
	b.rows = 0
	b.cols = 0
	b.channels = 0
	b.stride = 0
	b.rowElems = 0
}

// Move transfers ownership of the storage to a new handle and leaves b empty.
func (b *Buffer[T]) Move() *Buffer[T] {
	moved := &Buffer[T]{
		data:     b.data,
		rows:     b.rows,
		cols:     b.cols,
		channels: b.channels,
		stride:   b.stride,
		rowElems: b.rowElems,
	}
	b.Release()
	return moved
}

// Empty reports whether the buffer holds no storage.
func (b *Buffer[T]) Empty() bool {
	return len(b.data) == 0
}

// Rows returns the number of rows.
func (b *Buffer[T]) Rows() int { return b.rows }

// Cols returns the number of elements per row.
func (b *Buffer[T]) Cols() int { return b.cols }

// Channels returns the number of values per element.
func (b *Buffer[T]) Channels() int { return b.channels }

// Stride returns the number of bytes between the starts of consecutive rows.
func (b *Buffer[T]) Stride() int { return b.stride }

// Row returns the Cols()*Channels() values of row i, excluding padding.
//
// Indices are not validated beyond Go's slice bounds checks; callers must
// keep i within [0, Rows()). Build with -tags lumadebug for explicit checks.
func (b *Buffer[T]) Row(i int) []T {
	if debugChecks {
		b.checkRow(i)
	}
	start := i * b.rowElems
	return b.data[start : start+b.cols*b.channels]
}

// PaddedRow returns row i including any padding up to the stride.
func (b *Buffer[T]) PaddedRow(i int) []T {
	if debugChecks {
		b.checkRow(i)
	}
	start := i * b.rowElems
	return b.data[start : start+b.rowElems]
}

// Element returns the Channels() values of element (i, j).
func (b *Buffer[T]) Element(i, j int) []T {
	if debugChecks {
		b.checkIndex(i, j, 0)
	}
	start := i*b.rowElems + j*b.channels
	return b.data[start : start+b.channels]
}

// At returns channel k of element (i, j).
func (b *Buffer[T]) At(i, j, k int) T {
	if debugChecks {
		b.checkIndex(i, j, k)
	}
	return b.data[i*b.rowElems+j*b.channels+k]
}

// Set stores value into channel k of element (i, j).
func (b *Buffer[T]) Set(i, j, k int, value T) {
	if debugChecks {
		b.checkIndex(i, j, k)
	}
	b.data[i*b.rowElems+j*b.channels+k] = value
}

// Fill sets every value of every element to value. Padding is left untouched.
func (b *Buffer[T]) Fill(value T) {
	for i := range b.rows {
		row := b.Row(i)
		for j := range row {
			row[j] = value
		}
	}
}

// SameShape reports whether a and b have identical rows, cols and channels.
// Strides may differ.
func SameShape[T, U hwy.Lanes](a *Buffer[T], b *Buffer[U]) bool {
	return a.rows == b.rows && a.cols == b.cols && a.channels == b.channels
}

func (b *Buffer[T]) checkRow(i int) {
	if i < 0 || i >= b.rows {
		panic(fmt.Sprintf("image: row %d out of range [0,%d)", i, b.rows))
	}
}

func (b *Buffer[T]) checkIndex(i, j, k int) {
	b.checkRow(i)
	if j < 0 || j >= b.cols || k < 0 || k >= b.channels {
		panic(fmt.Sprintf("image: element (%d,%d,%d) out of range %dx%dx%d",
			i, j, k, b.rows, b.cols, b.channels))
	}
}

func elemSize[T hwy.Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func mulNoOverflow(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || c < 0 {
		return 0, false
	}
	return c, true
}
