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
	stdimage "image"

	"golang.org/x/image/draw"
)

// Pixel is a single 4-channel byte pixel.
type Pixel struct {
	R, G, B, A uint8
}

// PixelSource provides random access to the pixels of an image.
//
// PixelAt is valid for 0 <= col < Width() and 0 <= row < Height(). Behavior
// for out-of-range indices is up to the implementation; reducers never check.
type PixelSource interface {
	Width() int
	Height() int
	PixelAt(col, row int) Pixel
}

// BGRA is an in-memory PixelSource storing pixels as 4-channel byte elements
// in blue, green, red, alpha order.
type BGRA struct {
	buf *Buffer[uint8]
}

// Channel offsets within a BGRA element.
const (
	ChannelBlue  = 0
	ChannelGreen = 1
	ChannelRed   = 2
	ChannelAlpha = 3
)

// NewBGRA allocates a zeroed (transparent black) image of the given size.
func NewBGRA(width, height int) (*BGRA, error) {
	buf, err := NewBuffer[uint8](height, width, 4)
	if err != nil {
		return nil, err
	}
	return &BGRA{buf: buf}, nil
}

// Width returns the image width in pixels.
func (p *BGRA) Width() int { return p.buf.Cols() }

// Height returns the image height in pixels.
func (p *BGRA) Height() int { return p.buf.Rows() }

// PixelAt returns the pixel at column col of row row.
func (p *BGRA) PixelAt(col, row int) Pixel {
	px := p.buf.Element(row, col)
	return Pixel{R: px[ChannelRed], G: px[ChannelGreen], B: px[ChannelBlue], A: px[ChannelAlpha]}
}

// SetPixel stores px at column col of row row.
func (p *BGRA) SetPixel(col, row int, px Pixel) {
	e := p.buf.Element(row, col)
	e[ChannelBlue] = px.B
	e[ChannelGreen] = px.G
	e[ChannelRed] = px.R
	e[ChannelAlpha] = px.A
}

// Buffer returns the underlying 4-channel storage. The BGRA keeps ownership.
func (p *BGRA) Buffer() *Buffer[uint8] {
	return p.buf
}

// FromImage converts any decoded image into a BGRA pixel source.
// Colors are converted to non-premultiplied 8-bit RGBA first, matching how
// bitmap files store their pixels.
func FromImage(img stdimage.Image) (*BGRA, error) {
	bounds := img.Bounds()
	nrgba := stdimage.NewNRGBA(stdimage.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	out, err := NewBGRA(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("image: converting %dx%d image: %w", bounds.Dx(), bounds.Dy(), err)
	}
	for y := range out.Height() {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*out.Width()]
		dst := out.buf.Row(y)
		for i := 0; i < len(src); i += 4 {
			dst[i+ChannelBlue] = src[i+2]
			dst[i+ChannelGreen] = src[i+1]
			dst[i+ChannelRed] = src[i]
			dst[i+ChannelAlpha] = src[i+3]
		}
	}
	return out, nil
}

// ToGray copies a single-channel buffer into an *image.Gray for encoding.
func ToGray(buf *Buffer[uint8]) (*stdimage.Gray, error) {
	if buf.Channels() != 1 {
		return nil, fmt.Errorf("%w: gray image needs 1 channel, buffer has %d",
			ErrInvalidShape, buf.Channels())
	}
	gray := stdimage.NewGray(stdimage.Rect(0, 0, buf.Cols(), buf.Rows()))
	for y := range buf.Rows() {
		copy(gray.Pix[y*gray.Stride:], buf.Row(y))
	}
	return gray, nil
}
