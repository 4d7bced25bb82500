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


package main

import (
	"fmt"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-highway/luma/hwy/contrib/image"
	"github.com/go-highway/luma/hwy/contrib/luma"
)

// loadImage decodes a BMP, PNG, JPEG or WebP file into a BGRA pixel source.
func loadImage(path string) (*image.BGRA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	src, err := image.FromImage(img)
	if err != nil {
		return nil, err
	}
	luma.Logger().Debug("image loaded", "path", path, "format", format, "width", src.Width(), "height", src.Height())
	return src, nil
}

// saveGray writes a single-channel buffer as an 8-bit BMP.
func saveGray(path string, buf *image.Buffer[uint8]) error {
	gray, err := image.ToGray(buf)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, gray); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
