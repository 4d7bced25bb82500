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
	"bytes"
	"fmt"
	stdimage "image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// writeBMP writes a width x height gradient test image and returns its path.
func writeBMP(t *testing.T, width, height int) string {
	t.Helper()
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(width-1, 1)),
				G: uint8(y * 255 / max(height-1, 1)),
				B: uint8((x + y) * 7),
				A: 255,
			})
		}
	}
	path := filepath.Join(t.TempDir(), "input.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunNaive(t *testing.T) {
	path := writeBMP(t, 13, 5)
	out, err := execute(t, "run", "--iterations", "3", path)
	require.NoError(t, err)
	require.Contains(t, out, "Strategy: naive (13x5, 3 iterations)")
	require.Contains(t, out, "Error value = 0")
}

func TestRunStrategies(t *testing.T) {
	path := writeBMP(t, 21, 6)
	tests := []struct {
		args     []string
		strategy string
	}{
		{[]string{"-f"}, "float-vector"},
		{[]string{"--int"}, "fixed-point-vector"},
		{[]string{"-s", "float"}, "float-vector"},
		{[]string{"--strategy", "fixed-point-vector", "--workers", "3"}, "fixed-point-vector"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			args := append([]string{"run", "--iterations", "2"}, tt.args...)
			out, err := execute(t, append(args, path)...)
			require.NoError(t, err)
			require.Contains(t, out, "Strategy: "+tt.strategy)

			var errValue int
			for _, line := range strings.Split(out, "\n") {
				if strings.HasPrefix(line, "Error value = ") {
					_, err := fmt.Sscanf(line, "Error value = %d", &errValue)
					require.NoError(t, err)
				}
			}
			require.LessOrEqual(t, errValue, 2)
		})
	}
}

func TestRunWritesBMP(t *testing.T) {
	path := writeBMP(t, 9, 4)
	dst := filepath.Join(t.TempDir(), "luma.bmp")
	_, err := execute(t, "run", "-i", "--iterations", "1", "--out", dst, path)
	require.NoError(t, err)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	require.Equal(t, stdimage.Rect(0, 0, 9, 4), img.Bounds())
}

func TestRunIterationsFromEnv(t *testing.T) {
	path := writeBMP(t, 4, 4)
	t.Setenv(envIterations, "7")
	out, err := execute(t, "run", path)
	require.NoError(t, err)
	require.Contains(t, out, "7 iterations")

	out, err = execute(t, "run", "--iterations", "2", path)
	require.NoError(t, err)
	require.Contains(t, out, "2 iterations")

	t.Setenv(envWorkers, "many")
	_, err = execute(t, "run", path)
	require.ErrorContains(t, err, envWorkers)
}

func TestRunErrors(t *testing.T) {
	path := writeBMP(t, 4, 4)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown strategy", []string{"run", "-s", "simd", path}, "unknown strategy"},
		{"missing file", []string{"run", filepath.Join(t.TempDir(), "nope.bmp")}, "no such file"},
		{"zero iterations", []string{"run", "--iterations", "0", path}, "--iterations"},
		{"exclusive shorthands", []string{"run", "-f", "-i", path}, "none of the others"},
		{"no image", []string{"run"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestCompare(t *testing.T) {
	path := writeBMP(t, 17, 3)
	out, err := execute(t, "compare", path)
	require.NoError(t, err)
	require.Contains(t, out, "Image: 17x3 (51 pixels)")
	for _, name := range []string{"naive", "float-vector", "fixed-point-vector"} {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "naive                Error value = 0")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	require.Contains(t, out, "Target: ")
	require.Contains(t, out, "Fixed weights (/256): red=54 green=183 blue=19, headroom 65280")
	require.Contains(t, out, "fixed-point-vector(8)")
}

func TestVerboseLogging(t *testing.T) {
	path := writeBMP(t, 8, 8)
	out, err := execute(t, "--verbose", "run", "-i", "--iterations", "1", "--workers", "2", path)
	require.NoError(t, err)
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "format=bmp")
}
