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
	"context"

	"github.com/go-highway/luma/hwy/contrib/image"
	"github.com/go-highway/luma/hwy/contrib/workerpool"
)

// rowsPerTask is how many rows a worker takes from the pool at a time.
const rowsPerTask = 16

// ReduceParallel is like ReduceContext but spreads rows across pool.
// Each worker reduces disjoint row ranges, so the output equals a sequential
// Reduce. When ctx is done no new ranges are started and ctx.Err() is
// returned.
func ReduceParallel(ctx context.Context, pool *workerpool.Pool, k Kind, src image.PixelSource, out *image.Buffer[uint8]) error {
	r, err := Lookup(k)
	if err != nil {
		return err
	}
	checkOutput(src, out)

	height := src.Height()
	Logger().Debug("luma: parallel reduce",
		"strategy", k.String(), "rows", height, "workers", pool.NumWorkers(), "batch", rowsPerTask)

	return pool.ParallelForContext(ctx, height, rowsPerTask, func(start, end int) {
		ReduceRows(r, src, out, start, end)
	})
}
