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
	"math/rand/v2"
	"testing"

	"github.com/go-highway/luma/hwy/contrib/image"
)

// testWidths covers every remainder modulo both vector block sizes.
var testWidths = []int{1, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 33, 64, 100}

func widthName(w int) string {
	return fmt.Sprintf("w%d", w)
}

// pixelFunc adapts a function to image.PixelSource so tests exercise the
// generic deinterleave path rather than the BGRA fast path.
type pixelFunc struct {
	width, height int
	at            func(col, row int) image.Pixel
}

func (p pixelFunc) Width() int                       { return p.width }
func (p pixelFunc) Height() int                      { return p.height }
func (p pixelFunc) PixelAt(col, row int) image.Pixel { return p.at(col, row) }

func randomBGRA(t testing.TB, width, height int, seed uint64) *image.BGRA {
	t.Helper()
	src, err := image.NewBGRA(width, height)
	if err != nil {
		t.Fatalf("NewBGRA(%d, %d): %v", width, height, err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for row := range height {
		for col := range width {
			v := rng.Uint32()
			src.SetPixel(col, row, image.Pixel{
				R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: uint8(v >> 24),
			})
		}
	}
	return src
}

func uniformBGRA(t testing.TB, width, height int, px image.Pixel) *image.BGRA {
	t.Helper()
	src, err := image.NewBGRA(width, height)
	if err != nil {
		t.Fatalf("NewBGRA(%d, %d): %v", width, height, err)
	}
	for row := range height {
		for col := range width {
			src.SetPixel(col, row, px)
		}
	}
	return src
}

func newOutput(t testing.TB, src image.PixelSource) *image.Buffer[uint8] {
	t.Helper()
	out, err := image.NewBuffer[uint8](src.Height(), src.Width(), 1)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	return out
}
