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


// Package luma converts 4-channel blue, green, red, alpha pixels into
// single-channel luminance.
//
// Three interchangeable strategies compute
//
//	luma = 0.2125*R + 0.7154*G + 0.0721*B
//
// for every pixel, ignoring alpha:
//
//   - Naive: one pixel at a time in float32, truncated to a byte.
//   - FloatVector: four pixels per step in float32 lanes.
//   - FixedPointVector: eight pixels per step in 16-bit lanes with weights
//     pre-scaled by 256.
//
// The vector strategies share a channel deinterleaver that turns pixel-major
// bytes into one lane vector per channel. Columns left over when the width is
// not a multiple of the block size are reduced with the scalar formula.
//
// Example:
//
//	src, _ := image.FromImage(img)
//	out, _ := image.NewBuffer[uint8](src.Height(), src.Width(), 1)
//	if err := luma.Reduce(luma.FixedPointVector, src, out); err != nil {
//	    return err
//	}
//
// MaxAbsDifference compares two results and reports the largest per-element
// difference, which is how the approximation error of a strategy is measured.
package luma
