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
	"errors"
	"fmt"
	"strings"

	"github.com/go-highway/luma/hwy/contrib/image"
)

// ErrUnknownStrategy is returned when a strategy name or Kind does not name
// one of the reducers.
var ErrUnknownStrategy = errors.New("luma: unknown strategy")

// Kind selects a reduction strategy.
type Kind int

const (
	// Naive reduces one pixel at a time in float32.
	Naive Kind = iota
	// FloatVector reduces 4 pixels at a time in float32 lanes.
	FloatVector
	// FixedPointVector reduces 8 pixels at a time in 16-bit fixed-point lanes.
	FixedPointVector
)

var kindNames = [...]string{
	Naive:            "naive",
	FloatVector:      "float-vector",
	FixedPointVector: "fixed-point-vector",
}

// String returns the canonical name of the strategy.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every strategy, in declaration order.
func Kinds() []Kind {
	return []Kind{Naive, FloatVector, FixedPointVector}
}

// ParseKind maps a strategy name to its Kind. Besides the canonical names it
// accepts the short forms n, f and i and the aliases float and int.
// Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "naive", "n", "scalar":
		return Naive, nil
	case "float-vector", "float", "f":
		return FloatVector, nil
	case "fixed-point-vector", "fixed", "int", "i":
		return FixedPointVector, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Reducer converts one row of a pixel source into luminance bytes.
//
// ReduceRow writes columns [0, src.Width()) of row in out and nothing else,
// so reducers may run on disjoint rows concurrently.
type Reducer interface {
	// Kind reports which strategy this is.
	Kind() Kind

	// BlockSize is the number of pixels reduced per vector step.
	BlockSize() int

	// ReduceRow reduces a single row. out must have the source's shape and
	// one channel.
	ReduceRow(src image.PixelSource, out *image.Buffer[uint8], row int)
}

var reducers = [...]Reducer{
	Naive:            naiveReducer{},
	FloatVector:      floatReducer{},
	FixedPointVector: fixedReducer{},
}

// Lookup returns the reducer implementing k.
func Lookup(k Kind) (Reducer, error) {
	if k < 0 || int(k) >= len(reducers) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, k)
	}
	r := reducers[k]
	Logger().Debug("luma: strategy selected", "strategy", k.String(), "block", r.BlockSize())
	return r, nil
}
