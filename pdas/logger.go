// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import (
	"fmt"
	"io"
)

// LogLevel controls the frequency and type of diagnostic output,
// generalizing the C source's single verbose on/off flag the way
// github.com/curioloop/optimizer/lbfgsb.LogLevel generalizes
// L-BFGS-B's iprint.
type LogLevel int

const (
	// LogNoop disables all diagnostic output.
	LogNoop LogLevel = -1
	// LogIter prints one (iter, n_vio, n_active, p) record per
	// iteration plus the terminal "Solved"/"MAXITER Exceeded" line —
	// the ordinary verbose mode.
	LogIter LogLevel = 0
	// LogVector additionally prints x and z at the end of the run,
	// mirroring the C source's print_dvec debug helper.
	LogVector LogLevel = 1
)

// Record is one iteration's diagnostic snapshot.
type Record struct {
	Iter    int
	NVio    int
	NActive int
	P       float64
}

// Trace accumulates Records across a Solve call when Logger.Trace is set.
type Trace []Record

// Logger handles diagnostic output for Solve. Msg receives the
// human-readable per-iteration records and status lines; Trace, if
// non-nil, additionally accumulates the same records in memory for
// downstream consumers (e.g. cmd/pdasfilter's --out flag) without
// re-parsing the text stream.
type Logger struct {
	Level LogLevel
	Msg   io.Writer
	Trace *Trace
}

func (l *Logger) enable(level LogLevel) bool {
	return l != nil && l.Level >= level
}

func (l *Logger) header() {
	if l.enable(LogIter) {
		fmt.Fprintf(l.Msg, "____________________________\n")
		fmt.Fprintf(l.Msg, "|Iter|Violators|Active|Prop|\n")
	}
}

func (l *Logger) iteration(rec Record) {
	if l != nil && l.Trace != nil {
		*l.Trace = append(*l.Trace, rec)
	}
	if l.enable(LogIter) {
		fmt.Fprintf(l.Msg, "|%4d|%9d|%6d|%4.2f|\n", rec.Iter, rec.NVio, rec.NActive, rec.P)
	}
}

func (l *Logger) bandedFailure(iter int, err error) {
	if l.enable(LogIter) {
		fmt.Fprintf(l.Msg, "|%4d| %v\n", iter, err)
	}
}

func (l *Logger) solved() {
	if l.enable(LogIter) {
		fmt.Fprintf(l.Msg, "Solved\n")
	}
}

func (l *Logger) maxiter() {
	if l.enable(LogIter) {
		fmt.Fprintf(l.Msg, "MAXITER Exceeded\n")
	}
}

// partitionDrift reports a mismatch between the mirrored partition array
// and z's implicit ±1 encoding, visible only at LogVector since it is a
// diagnostic, never a hard failure.
func (l *Logger) partitionDrift(iter int) {
	if l.enable(LogVector) {
		fmt.Fprintf(l.Msg, "|%4d| partition mirror drifted from z\n", iter)
	}
}

// vector prints a named vector to Msg when verbosity is at least
// LogVector, mirroring the C source's print_dvec debug helper.
func (l *Logger) vector(name string, v []float64) {
	if !l.enable(LogVector) {
		return
	}
	fmt.Fprintf(l.Msg, "\n%s =\n", name)
	for _, e := range v {
		fmt.Fprintf(l.Msg, "%e\n", e)
	}
	fmt.Fprintf(l.Msg, "\n")
}
