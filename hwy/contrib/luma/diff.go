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
	"fmt"

	"github.com/go-highway/luma/hwy"
	"github.com/go-highway/luma/hwy/contrib/image"
)

// MaxAbsDifference returns the largest |a-b| over every element of two
// buffers of the same shape. Row padding is never read.
//
// Buffers whose rows, columns or channel counts differ are a programming
// error and cause a panic.
func MaxAbsDifference(a, b *image.Buffer[uint8]) uint8 {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Channels() != b.Channels() {
		panic(fmt.Sprintf("luma: dimensions must match: %dx%dx%d vs %dx%dx%d",
			a.Rows(), a.Cols(), a.Channels(), b.Rows(), b.Cols(), b.Channels()))
	}

	d := hwy.ScalableTag[uint8]{}
	lanes := d.MaxLanes()
	acc := hwy.Zero[uint8](d)
	var tail uint8

	for i := range a.Rows() {
		rowA, rowB := a.Row(i), b.Row(i)
		hwy.ProcessBlocks(len(rowA), lanes,
			func(j int) {
				va := hwy.Load(d, rowA[j:])
				vb := hwy.Load(d, rowB[j:])
				acc = hwy.Max(acc, hwy.AbsDiff(va, vb))
			},
			func(j, count int) {
				for k := j; k < j+count; k++ {
					tail = max(tail, absDiff(rowA[k], rowB[k]))
				}
			},
		)
	}
	return max(hwy.ReduceMax(acc), tail)
}

func absDiff(x, y uint8) uint8 {
	if x > y {
		return x - y
	}
	return y - x
}
