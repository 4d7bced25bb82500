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

// Package image provides strided 2D buffers and pixel sources for the
// luminance kernels.
//
// Buffer[T] is an owning 2D array with a byte stride between rows and any
// number of channels per element. A 4-channel Buffer[uint8] stores BGRA
// pixels; a 1-channel Buffer[uint8] stores the luma result.
//
//	buf, err := image.NewBuffer[uint8](480, 640, 1)
//	if err != nil {
//	    return err
//	}
//	row := buf.Row(0) // 640 values
//
// # Ownership
//
// A Buffer must not be copied by value (go vet reports it). Hand a buffer
// to another owner with Move, which leaves the original empty:
//
//	owned := buf.Move()
//
// # Pixel Sources
//
// Reducers read pixels through the PixelSource interface. BGRA is the
// in-memory implementation, and FromImage converts any decoded Go image
// into one:
//
//	src, err := image.FromImage(decoded)
//	px := src.PixelAt(col, row)
//
// # Bounds
//
// Accessors perform no validation beyond Go's slice bounds checks. Build
// with -tags lumadebug to get descriptive panics for out-of-range indices.
package image
