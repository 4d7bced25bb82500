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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-highway/luma/hwy/contrib/image"
	"github.com/go-highway/luma/hwy/contrib/luma"
	"github.com/go-highway/luma/hwy/contrib/workerpool"
)

const (
	envIterations = "LUMA_ITERATIONS"
	envWorkers    = "LUMA_WORKERS"
)

type runOptions struct {
	strategy   string
	naive      bool
	float      bool
	fixed      bool
	iterations int
	workers    int
	out        string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [flags] IMAGE",
		Short: "Time one strategy and report its error against the naive reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyEnv(cmd.Flags()); err != nil {
				return err
			}
			return opts.run(cmd, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.strategy, "strategy", "s", luma.Naive.String(),
		"reduction strategy: "+joinKinds())
	f.BoolVarP(&opts.naive, "naive", "n", false, "shorthand for --strategy naive")
	f.BoolVarP(&opts.float, "float", "f", false, "shorthand for --strategy float-vector")
	f.BoolVarP(&opts.fixed, "int", "i", false, "shorthand for --strategy fixed-point-vector")
	f.IntVar(&opts.iterations, "iterations", 1000, "number of timed reductions (env "+envIterations+")")
	f.IntVar(&opts.workers, "workers", 0, "reduce rows on this many goroutines, 0 for sequential (env "+envWorkers+")")
	f.StringVarP(&opts.out, "out", "o", "", "write the luminance image to this BMP file")
	cmd.MarkFlagsMutuallyExclusive("naive", "float", "int")
	return cmd
}

// applyEnv fills flags that were not set on the command line from the
// environment.
func (o *runOptions) applyEnv(flags *pflag.FlagSet) error {
	fromEnv := func(name, env string, dst *int) error {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", env, v, err)
		}
		*dst = n
		return nil
	}
	return errors.Join(
		fromEnv("iterations", envIterations, &o.iterations),
		fromEnv("workers", envWorkers, &o.workers),
	)
}

// kind resolves the strategy, letting the shorthand flags override --strategy.
func (o *runOptions) kind() (luma.Kind, error) {
	switch {
	case o.naive:
		return luma.Naive, nil
	case o.float:
		return luma.FloatVector, nil
	case o.fixed:
		return luma.FixedPointVector, nil
	}
	return luma.ParseKind(o.strategy)
}

func (o *runOptions) run(cmd *cobra.Command, path string) error {
	k, err := o.kind()
	if err != nil {
		return err
	}
	if o.iterations < 1 {
		return fmt.Errorf("--iterations must be at least 1, got %d", o.iterations)
	}

	src, err := loadImage(path)
	if err != nil {
		return err
	}
	out, err := image.NewBuffer[uint8](src.Height(), src.Width(), 1)
	if err != nil {
		return err
	}
	defer out.Release()

	reduce := func(dst *image.Buffer[uint8]) error { return luma.Reduce(k, src, dst) }
	if o.workers > 0 {
		pool := workerpool.New(o.workers)
		defer pool.Close()
		reduce = func(dst *image.Buffer[uint8]) error {
			return luma.ReduceParallel(cmd.Context(), pool, k, src, dst)
		}
	}

	start := time.Now()
	for range o.iterations {
		if err := reduce(out); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	ref, err := image.NewBuffer[uint8](src.Height(), src.Width(), 1)
	if err != nil {
		return err
	}
	defer ref.Release()
	if err := luma.Reduce(luma.Naive, src, ref); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	w := cmd.OutOrStdout()
	p.Fprintf(w, "Strategy: %s (%dx%d, %d iterations)\n", k, src.Width(), src.Height(), o.iterations)
	p.Fprintf(w, "Elapsed time: %v\n", elapsed.Round(time.Microsecond))
	p.Fprintf(w, "Time per iteration: %d ns\n", elapsed.Nanoseconds()/int64(o.iterations))
	p.Fprintf(w, "Error value = %d\n", luma.MaxAbsDifference(ref, out))

	if o.out != "" {
		if err := saveGray(o.out, out); err != nil {
			return err
		}
		luma.Logger().Debug("luminance written", "path", o.out)
	}
	return nil
}

func joinKinds() string {
	names := lo.Map(luma.Kinds(), func(k luma.Kind, _ int) string { return k.String() })
	return strings.Join(names, "|")
}
