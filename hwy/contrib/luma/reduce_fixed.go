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
	"github.com/go-highway/luma/hwy"
	"github.com/go-highway/luma/hwy/contrib/image"
)

const fixedBlock = 8

type fixedReducer struct{}

func (fixedReducer) Kind() Kind     { return FixedPointVector }
func (fixedReducer) BlockSize() int { return fixedBlock }

func (fixedReducer) ReduceRow(src image.PixelSource, out *image.Buffer[uint8], row int) {
	dst := out.Row(row)
	hwy.ProcessBlocks(src.Width(), fixedBlock,
		func(col int) {
			reduceFixed8(src, dst[col:col+fixedBlock], row, col)
		},
		func(col, count int) {
			reduceTail(src, dst, row, col, count)
		},
	)
}

// reduceFixed8 reduces the 8 pixels at [col, col+8) into dst.
// The weighted sum stays below FixedHeadroom, so 16-bit lanes never wrap.
func reduceFixed8(src image.PixelSource, dst []uint8, row, col int) {
	b, g, r, _ := Deinterleave8(src, row, col)

	sum := hwy.Add(hwy.Add(hwy.Mul(r, fixedRed), hwy.Mul(g, fixedGreen)), hwy.Mul(b, fixedBlue))
	color := hwy.ShiftRight(sum, FixedShift)

	hwy.Store(hwy.DemoteTwoU16ToU8(color, zeroU16), dst)
}
