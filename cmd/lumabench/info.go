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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/luma/hwy"
	"github.com/go-highway/luma/hwy/contrib/luma"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected vector target and the reduction constants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Target: %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(w, "Lanes: uint8=%d uint16=%d float32=%d\n",
				hwy.MaxLanes[uint8](), hwy.MaxLanes[uint16](), hwy.MaxLanes[float32]())
			fmt.Fprintf(w, "Weights: red=%.4f green=%.4f blue=%.4f\n",
				luma.RedWeight, luma.GreenWeight, luma.BlueWeight)
			fr, fg, fb := luma.FixedWeights()
			fmt.Fprintf(w, "Fixed weights (/%d): red=%d green=%d blue=%d, headroom %d\n",
				luma.FixedScale, fr, fg, fb, luma.FixedHeadroom())

			blocks := lo.Map(luma.Kinds(), func(k luma.Kind, _ int) string {
				r, _ := luma.Lookup(k)
				return fmt.Sprintf("%s(%d)", k, r.BlockSize())
			})
			fmt.Fprintf(w, "Strategies: %v\n", blocks)
		},
	}
}
