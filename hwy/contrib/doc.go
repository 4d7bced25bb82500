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


// Package contrib groups the packages built on the hwy lane layer.
//
// # Subpackages
//
//   - image: strided Buffer storage and BGRA pixel sources
//   - luma: BGRA to luminance reduction strategies and the difference oracle
//   - workerpool: persistent worker pool for splitting rows across goroutines
//
// # Luminance (hwy/contrib/luma)
//
//	import (
//	    "github.com/go-highway/luma/hwy/contrib/image"
//	    "github.com/go-highway/luma/hwy/contrib/luma"
//	)
//
//	src, _ := image.FromImage(img)
//	out, _ := image.NewBuffer[uint8](src.Height(), src.Width(), 1)
//	luma.Reduce(luma.FloatVector, src, out)
//
// # Parallel rows (hwy/contrib/workerpool)
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//	luma.ReduceParallel(ctx, pool, luma.FixedPointVector, src, out)
package contrib
