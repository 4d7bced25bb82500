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


// Command lumabench converts an image to luminance with one of the luma
// strategies, times it and reports how far the result is from the naive
// reference.
//
// Usage:
//
//	lumabench run -s fixed-point-vector --iterations 1000 Lenna.bmp
//	lumabench run -f --out luma.bmp photo.webp
//	lumabench compare Lenna.bmp
//	lumabench info
//
// Flags not given on the command line fall back to the LUMA_ITERATIONS and
// LUMA_WORKERS environment variables. HWY_NO_SIMD forces the scalar dispatch
// level.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
