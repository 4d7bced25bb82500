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

package hwy

// ProcessBlocks splits [0, size) into whole blocks of block elements followed
// by a tail shorter than one block.
//
// It calls:
//   - fullFn(offset) for each whole block, in increasing offset order
//   - tailFn(offset, count) once for the remainder if size is not a multiple of block
//
// Every index in [0, size) is covered exactly once.
//
// Example:
//
//	hwy.ProcessBlocks(width, 8,
//	    func(offset int) {
//	        // 8 pixels starting at offset
//	    },
//	    func(offset, count int) {
//	        // count < 8 pixels handled one at a time
//	    },
//	)
func ProcessBlocks(size, block int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 || block <= 0 {
		return
	}

	fullBlocks := size / block
	for i := range fullBlocks {
		fullFn(i * block)
	}

	if remaining := size % block; remaining > 0 {
		tailFn(fullBlocks*block, remaining)
	}
}

// ProcessWithTail is ProcessBlocks with the block size set to d's lane count for T.
func ProcessWithTail[T Lanes](d Tag, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	ProcessBlocks(size, lanesFor[T](d), fullFn, tailFn)
}

// AlignedSize rounds up size to the next multiple of d's lane count for T.
// This is useful for allocating padded rows that will be processed with whole vectors.
func AlignedSize[T Lanes](d Tag, size int) int {
	lanes := lanesFor[T](d)
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}
