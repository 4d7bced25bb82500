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
	"testing"

	"github.com/go-highway/luma/hwy/contrib/image"
)

func filledBuffer(t *testing.T, rows, cols, channels int, seed uint8) *image.Buffer[uint8] {
	t.Helper()
	buf, err := image.NewBuffer[uint8](rows, cols, channels)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	for i := range rows {
		row := buf.Row(i)
		for j := range row {
			row[j] = uint8(i*31+j*7) + seed
		}
	}
	return buf
}

func TestMaxAbsDifferenceIdentity(t *testing.T) {
	for _, w := range testWidths {
		t.Run(widthName(w), func(t *testing.T) {
			a := filledBuffer(t, 3, w, 1, 0)
			if d := MaxAbsDifference(a, a); d != 0 {
				t.Errorf("MaxAbsDifference(A, A) = %d, want 0", d)
			}
		})
	}
}

func TestMaxAbsDifferenceSymmetric(t *testing.T) {
	for _, w := range testWidths {
		t.Run(widthName(w), func(t *testing.T) {
			a := filledBuffer(t, 4, w, 2, 0)
			b := filledBuffer(t, 4, w, 2, 3)
			b.Set(1, w-1, 1, 0)
			if ab, ba := MaxAbsDifference(a, b), MaxAbsDifference(b, a); ab != ba {
				t.Errorf("MaxAbsDifference not symmetric: %d vs %d", ab, ba)
			}
		})
	}
}

func TestMaxAbsDifferenceSingleDelta(t *testing.T) {
	tests := []struct {
		name       string
		row, col   int
		from, to   uint8
		wantResult uint8
	}{
		{"first", 0, 0, 10, 13, 3},
		{"tail", 2, 36, 200, 0, 200},
		{"vector body", 1, 5, 0, 255, 255},
		{"wraparound", 1, 20, 1, 255, 254},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := image.NewBuffer[uint8](3, 37, 1)
			b, _ := image.NewBuffer[uint8](3, 37, 1)
			a.Set(tt.row, tt.col, 0, tt.from)
			b.Set(tt.row, tt.col, 0, tt.to)
			if d := MaxAbsDifference(a, b); d != tt.wantResult {
				t.Errorf("MaxAbsDifference = %d, want %d", d, tt.wantResult)
			}
		})
	}
}

func TestMaxAbsDifferenceIgnoresPadding(t *testing.T) {
	a, _ := image.NewBufferStride[uint8](2, 5, 1, 64)
	b, _ := image.NewBuffer[uint8](2, 5, 1)
	a.PaddedRow(0)[40] = 255
	a.Set(1, 4, 0, 9)
	if d := MaxAbsDifference(a, b); d != 9 {
		t.Errorf("MaxAbsDifference = %d, want 9", d)
	}
}

func TestMaxAbsDifferenceShapeMismatch(t *testing.T) {
	shapes := [][3]int{{2, 4, 1}, {3, 3, 1}, {3, 4, 2}}
	for _, s := range shapes {
		a, _ := image.NewBuffer[uint8](3, 4, 1)
		b, _ := image.NewBuffer[uint8](s[0], s[1], s[2])
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("shape %v: expected panic", s)
				}
			}()
			MaxAbsDifference(a, b)
		}()
	}
}
