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


package luma

import (
	"context"
	"fmt"

	"github.com/go-highway/luma/hwy/contrib/image"
)

// Reduce converts every pixel of src into out with the strategy k.
//
// out must be a non-empty single-channel buffer with src.Height() rows and
// src.Width() columns; anything else is a programming error and panics.
// The only error returned is ErrUnknownStrategy.
func Reduce(k Kind, src image.PixelSource, out *image.Buffer[uint8]) error {
	r, err := Lookup(k)
	if err != nil {
		return err
	}
	checkOutput(src, out)
	ReduceRows(r, src, out, 0, src.Height())
	return nil
}

// ReduceRows reduces rows [start, end) of src into out with r.
// It is the resumable unit of work: reducing [0, n) in any sequence of
// adjacent ranges gives the same result as a single call.
func ReduceRows(r Reducer, src image.PixelSource, out *image.Buffer[uint8], start, end int) {
	for row := start; row < end; row++ {
		r.ReduceRow(src, out, row)
	}
}

// ReduceContext is like Reduce but checks ctx before every row. When ctx is
// done it stops and returns ctx.Err(); rows already written stay written.
func ReduceContext(ctx context.Context, k Kind, src image.PixelSource, out *image.Buffer[uint8]) error {
	r, err := Lookup(k)
	if err != nil {
		return err
	}
	checkOutput(src, out)
	for row := range src.Height() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.ReduceRow(src, out, row)
	}
	return nil
}

// checkOutput panics unless out can receive the reduction of src.
func checkOutput(src image.PixelSource, out *image.Buffer[uint8]) {
	if out == nil || out.Empty() {
		panic("luma: output buffer is empty")
	}
	if out.Channels() != 1 {
		panic(fmt.Sprintf("luma: output buffer has %d channels, want 1", out.Channels()))
	}
	if out.Rows() != src.Height() || out.Cols() != src.Width() {
		panic(fmt.Sprintf("luma: output buffer is %dx%d, source is %dx%d",
			out.Rows(), out.Cols(), src.Height(), src.Width()))
	}
}
