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
	"math"
	"sort"

	"github.com/go-highway/luma/hwy"
)

// Luminance weights for linear RGB (ITU-R BT.709 primaries).
const (
	RedWeight   = 0.2125
	GreenWeight = 0.7154
	BlueWeight  = 0.0721
)

// FixedScale is the factor the fixed-point weights are pre-multiplied by.
// Sums are divided by it with a right shift of FixedShift bits.
const (
	FixedScale = 1 << FixedShift
	FixedShift = 8
)

var (
	weightRed   float32 = RedWeight
	weightGreen float32 = GreenWeight
	weightBlue  float32 = BlueWeight
)

// Weight vectors shared by every reduction. They are built once at init and
// never written afterwards.
var (
	floatRed, floatGreen, floatBlue hwy.Vec[float32]
	fixedRed, fixedGreen, fixedBlue hwy.Vec[uint16]

	fixedWeights [3]uint16 // red, green, blue

	zeroU8  hwy.Vec[uint8]
	zeroU16 hwy.Vec[uint16]
	zeroI32 hwy.Vec[int32]
)

func init() {
	fixedWeights = quantizeWeights([3]float64{RedWeight, GreenWeight, BlueWeight}, FixedScale)

	df := hwy.FixedTag128[float32]{}
	floatRed = hwy.Set(df, weightRed)
	floatGreen = hwy.Set(df, weightGreen)
	floatBlue = hwy.Set(df, weightBlue)

	du := hwy.FixedTag128[uint16]{}
	fixedRed = hwy.Set(du, fixedWeights[0])
	fixedGreen = hwy.Set(du, fixedWeights[1])
	fixedBlue = hwy.Set(du, fixedWeights[2])

	zeroU8 = hwy.Zero[uint8](hwy.FixedTag128[uint8]{})
	zeroU16 = hwy.Zero[uint16](du)
	zeroI32 = hwy.Zero[int32](hwy.FixedTag128[int32]{})
}

// quantizeWeights scales ws by total and rounds each to an integer so that
// the results sum to exactly total. Each weight is first rounded down; the
// remaining units go to the weights with the largest fractional parts.
func quantizeWeights(ws [3]float64, total int) [3]uint16 {
	var out [3]uint16
	var frac [3]float64
	sum := 0
	for i, w := range ws {
		scaled := w * float64(total)
		floor := math.Floor(scaled)
		out[i] = uint16(floor)
		frac[i] = scaled - floor
		sum += int(floor)
	}

	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool { return frac[order[a]] > frac[order[b]] })
	for i := 0; sum < total; i++ {
		out[order[i%3]]++
		sum++
	}
	return out
}

// FixedWeights returns the 16-bit red, green and blue weights used by the
// fixed-point strategy. They sum to FixedScale, so a white pixel reduces to
// 255 exactly.
func FixedWeights() (red, green, blue uint16) {
	return fixedWeights[0], fixedWeights[1], fixedWeights[2]
}

// FixedHeadroom returns the largest sum the fixed-point strategy can form in
// a 16-bit lane before the shift: every channel at 255 times its weight.
// It must not exceed math.MaxUint16.
func FixedHeadroom() int {
	return 255 * (int(fixedWeights[0]) + int(fixedWeights[1]) + int(fixedWeights[2]))
}
