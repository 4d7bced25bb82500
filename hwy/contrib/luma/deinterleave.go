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

// Deinterleave4 reads the 4 pixels at columns [col, col+4) of row and
// returns their channels zero-extended to 16 bits:
//
//	bg = {B0, B1, B2, B3, G0, G1, G2, G3}
//	ra = {R0, R1, R2, R3, A0, A1, A2, A3}
//
// The columns must be in range; nothing is checked.
func Deinterleave4(src image.PixelSource, row, col int) (bg, ra hwy.Vec[uint16]) {
	p02, p13 := loadPairs(src, row, col)

	// B0 B1 G0 G1 R0 R1 A0 A1 B2 B3 G2 G3 R2 R3 A2 A3
	p0123 := hwy.InterleaveLower(p02, p13)
	// B2 B3 G2 G3 R2 R3 A2 A3 0 ...
	p23xx := hwy.ConcatUpperUpper(p0123, zeroU8)
	// B0 B1 B2 B3 G0 G1 G2 G3 R0 R1 R2 R3 A0 A1 A2 A3
	planar := hwy.BitCastU16ToU8(hwy.InterleaveLower(
		hwy.BitCastU8ToU16(p0123), hwy.BitCastU8ToU16(p23xx)))

	return hwy.PromoteLowerU8ToU16(planar), hwy.PromoteUpperU8ToU16(planar)
}

// Deinterleave8 reads the 8 pixels at columns [col, col+8) of row and returns
// one 8-lane vector per channel.
func Deinterleave8(src image.PixelSource, row, col int) (b, g, r, a hwy.Vec[uint16]) {
	bg0, ra0 := Deinterleave4(src, row, col)
	bg1, ra1 := Deinterleave4(src, row, col+4)
	b = hwy.ConcatLowerLower(bg0, bg1)
	g = hwy.ConcatUpperUpper(bg0, bg1)
	r = hwy.ConcatLowerLower(ra0, ra1)
	a = hwy.ConcatUpperUpper(ra0, ra1)
	return b, g, r, a
}

// Deinterleave4Float reads the 4 pixels at columns [col, col+4) of row and
// returns one float32 vector per channel.
func Deinterleave4Float(src image.PixelSource, row, col int) (b, g, r, a hwy.Vec[float32]) {
	bg, ra := Deinterleave4(src, row, col)
	b = hwy.ConvertToFloat32(hwy.PromoteLowerU16ToU32(bg))
	g = hwy.ConvertToFloat32(hwy.PromoteUpperU16ToU32(bg))
	r = hwy.ConvertToFloat32(hwy.PromoteLowerU16ToU32(ra))
	a = hwy.ConvertToFloat32(hwy.PromoteUpperU16ToU32(ra))
	return b, g, r, a
}

// loadPairs packs pixels 0 and 2 into the low 8 bytes of one vector and
// pixels 1 and 3 into another, in B, G, R, A byte order. The high 8 bytes
// are zero.
func loadPairs(src image.PixelSource, row, col int) (p02, p13 hwy.Vec[uint8]) {
	var lo, hi [16]uint8
	if bgra, ok := src.(*image.BGRA); ok {
		px := bgra.Buffer().Row(row)[4*col : 4*col+16]
		copy(lo[0:4], px[0:4])
		copy(lo[4:8], px[8:12])
		copy(hi[0:4], px[4:8])
		copy(hi[4:8], px[12:16])
	} else {
		putPixel(lo[0:4], src.PixelAt(col, row))
		putPixel(lo[4:8], src.PixelAt(col+2, row))
		putPixel(hi[0:4], src.PixelAt(col+1, row))
		putPixel(hi[4:8], src.PixelAt(col+3, row))
	}
	d := hwy.FixedTag128[uint8]{}
	return hwy.Load(d, lo[:]), hwy.Load(d, hi[:])
}

func putPixel(dst []uint8, p image.Pixel) {
	dst[image.ChannelBlue] = p.B
	dst[image.ChannelGreen] = p.G
	dst[image.ChannelRed] = p.R
	dst[image.ChannelAlpha] = p.A
}
