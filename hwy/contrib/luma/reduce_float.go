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

const floatBlock = 4

type floatReducer struct{}

func (floatReducer) Kind() Kind     { return FloatVector }
func (floatReducer) BlockSize() int { return floatBlock }

func (floatReducer) ReduceRow(src image.PixelSource, out *image.Buffer[uint8], row int) {
	dst := out.Row(row)
	hwy.ProcessBlocks(src.Width(), floatBlock,
		func(col int) {
			reduceFloat4(src, dst[col:col+floatBlock], row, col)
		},
		func(col, count int) {
			reduceTail(src, dst, row, col, count)
		},
	)
}

// reduceFloat4 reduces the 4 pixels at [col, col+4) into dst.
func reduceFloat4(src image.PixelSource, dst []uint8, row, col int) {
	b, g, r, _ := Deinterleave4Float(src, row, col)

	red := hwy.Mul(r, floatRed)
	green := hwy.Mul(g, floatGreen)
	blue := hwy.Mul(b, floatBlue)
	sum := hwy.Add(hwy.Add(red, green), blue)

	narrow := hwy.DemoteTwoI32ToU16(hwy.ConvertToInt32(sum), zeroI32)
	hwy.Store(hwy.DemoteTwoU16ToU8(narrow, zeroU16), dst)
}
