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

import "github.com/go-highway/luma/hwy/contrib/image"

// ReducePixel reduces a single pixel with the reference formula. Each
// product is rounded to float32 before summing and the sum is truncated.
func ReducePixel(p image.Pixel) uint8 {
	red := float32(float32(p.R) * weightRed)
	green := float32(float32(p.G) * weightGreen)
	blue := float32(float32(p.B) * weightBlue)
	return uint8(float32(red+green) + blue)
}

type naiveReducer struct{}

func (naiveReducer) Kind() Kind     { return Naive }
func (naiveReducer) BlockSize() int { return 1 }

func (naiveReducer) ReduceRow(src image.PixelSource, out *image.Buffer[uint8], row int) {
	reduceTail(src, out.Row(row), row, 0, src.Width())
}

// reduceTail writes count pixels starting at col with the scalar formula.
func reduceTail(src image.PixelSource, dst []uint8, row, col, count int) {
	for j := col; j < col+count; j++ {
		dst[j] = ReducePixel(src.PixelAt(j, row))
	}
}
