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
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-highway/luma/hwy/contrib/image"
	"github.com/go-highway/luma/hwy/contrib/luma"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare IMAGE",
		Short: "Run every strategy once and report its error against the naive reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadImage(args[0])
			if err != nil {
				return err
			}

			kinds := luma.Kinds()
			results := make([]*image.Buffer[uint8], len(kinds))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, k := range kinds {
				g.Go(func() error {
					out, err := image.NewBuffer[uint8](src.Height(), src.Width(), 1)
					if err != nil {
						return err
					}
					results[i] = out
					return luma.ReduceContext(ctx, k, src, out)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			ref := results[slices.Index(kinds, luma.Naive)]
			p := message.NewPrinter(language.English)
			w := cmd.OutOrStdout()
			p.Fprintf(w, "Image: %dx%d (%d pixels)\n", src.Width(), src.Height(), src.Width()*src.Height())
			for i, k := range kinds {
				p.Fprintf(w, "%-20s Error value = %d\n", k, luma.MaxAbsDifference(ref, results[i]))
			}
			return nil
		},
	}
}
