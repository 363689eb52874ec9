// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pdasfilter is the thin outer dispatcher around the core
// solver: it reads a series from a file or stdin, validates the tuning
// parameters the core does not validate itself, calls pdas.Solve, and
// writes the result out.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jingxlim/l1tf/internal/seriesio"
	"github.com/jingxlim/l1tf/pdas"
)

var (
	lambda      float64
	pInit       float64
	queueSize   int
	deltaShrink float64
	deltaExpand float64
	maxIter     int
	verbose     bool
	outPath     string

	logger *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "pdasfilter [input]",
		Short: "Solve the second-order ℓ1 trend filter with a primal active-set / dual-ascent scheme",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}

	flags := root.Flags()
	flags.Float64Var(&lambda, "lambda", 1.0, "regularization weight (lambda > 0)")
	flags.Float64Var(&pInit, "p-init", 1.0, "initial proportion of violators reassigned per iteration (0, 1]")
	flags.IntVar(&queueSize, "queue-size", 5, "safeguard queue window size m (m >= 1)")
	flags.Float64Var(&deltaShrink, "delta-shrink", 0.8, "shrink factor applied to p when stagnating (0, 1)")
	flags.Float64Var(&deltaExpand, "delta-expand", 1.1, "expand factor applied to p on new minimum (> 1)")
	flags.IntVar(&maxIter, "max-iter", 500, "maximum outer iterations")
	flags.BoolVar(&verbose, "verbose", false, "emit per-iteration diagnostics")
	flags.StringVar(&outPath, "out", "-", "output path for the JSON result, - for stdout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("pdasfilter: %w", err)
	}
	logger = built
	defer logger.Sync()

	runID := uuid.New().String()
	log := logger.With(zap.String("run_id", runID))

	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	y, err := seriesio.ReadSeriesFile(input)
	if err != nil {
		return fmt.Errorf("pdasfilter: %w", err)
	}
	n := len(y)

	if err := validate(n); err != nil {
		return fmt.Errorf("pdasfilter: %w", err)
	}

	log.Info("solving", zap.Int("n", n), zap.Float64("lambda", lambda))

	x := make([]float64, n)
	z := make([]float64, n-2)

	var trace pdas.Trace
	opt := pdas.Options{
		PInit:       pInit,
		QueueSize:   queueSize,
		DeltaShrink: deltaShrink,
		DeltaExpand: deltaExpand,
		MaxIter:     maxIter,
	}
	if verbose {
		opt.Logger = &pdas.Logger{Level: pdas.LogIter, Msg: os.Stderr, Trace: &trace}
	}

	status, solveErr := pdas.Solve(n, y, lambda, x, z, opt)
	if solveErr != nil {
		log.Warn("banded solve reported non-positive-definite system", zap.Error(solveErr))
	}

	statusStr := "converged"
	if status == pdas.MaxIterExceeded {
		statusStr = "maxiter_exceeded"
	}
	log.Info("done", zap.String("status", statusStr))

	return seriesio.WriteResultFile(outPath, seriesio.Result{
		Status: statusStr,
		X:      x,
		Z:      z,
		Trace:  trace,
	})
}

func validate(n int) error {
	switch {
	case n < 4:
		return fmt.Errorf("input has %d samples, need at least 4", n)
	case lambda <= 0:
		return fmt.Errorf("lambda must be > 0, got %v", lambda)
	case pInit <= 0 || pInit > 1:
		return fmt.Errorf("p-init must be in (0, 1], got %v", pInit)
	case queueSize < 1:
		return fmt.Errorf("queue-size must be >= 1, got %v", queueSize)
	case deltaShrink <= 0 || deltaShrink >= 1:
		return fmt.Errorf("delta-shrink must be in (0, 1), got %v", deltaShrink)
	case deltaExpand <= 1:
		return fmt.Errorf("delta-expand must be > 1, got %v", deltaExpand)
	case maxIter < 1:
		return fmt.Errorf("max-iter must be >= 1, got %v", maxIter)
	}
	return nil
}
