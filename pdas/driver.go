// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

// Status is the outcome of a Solve call.
type Status int

const (
	// Converged means locateViolators reported n_vio = 0.
	Converged Status = 0
	// MaxIterExceeded means maxiter outer iterations elapsed without
	// convergence; x and z hold the best-effort result.
	MaxIterExceeded Status = -1
)

// Options carries the solver's tuning parameters.
type Options struct {
	// PInit is the initial proportion of violators reassigned per
	// iteration, 0 < PInit <= 1.
	PInit float64
	// QueueSize is m, the length of the safeguard queue's sliding
	// window of observed violator counts, m >= 1.
	QueueSize int
	// DeltaShrink in (0,1) damps p when the run stagnates or worsens.
	DeltaShrink float64
	// DeltaExpand > 1 grows p when a new minimum violator count is
	// observed.
	DeltaExpand float64
	// MaxIter bounds the number of outer iterations, MaxIter >= 1.
	MaxIter int
	// Logger receives per-iteration diagnostics when non-nil.
	Logger *Logger
}

// Solve computes the PDAS solution x, z for the second-order ℓ1 trend
// filter of y with regularization weight lambda > 0.
//
// z is both the initial dual estimate on entry (typically all zeros)
// and the final dual estimate on return; x receives the final primal.
// Preconditions (n >= 4, lambda > 0, valid Options) are the caller's
// responsibility and are not validated here.
func Solve(n int, y []float64, lambda float64, x, z []float64, opt Options) (Status, error) {
	w := newWorkspace(n)
	q := newSafeguardQueue(opt.QueueSize, n)
	p := opt.PInit

	log := opt.Logger
	log.header()

	var lastErr error
	for iter := 1; iter <= opt.MaxIter; iter++ {
		// Subspace minimization: C4 then C2 then C1.
		nActive, err := updateDual(n, y, z, lambda, w.divZi, w.ab, w.b)
		if err != nil {
			lastErr = err
			log.bandedFailure(iter, err)
		}
		UpdatePrimal(n, x, y, z, lambda)
		ApplyD(n, x, w.diffX)
		w.syncPartition(z)
		if log.enable(LogVector) && !w.checkPartition(z) {
			log.partitionDrift(iter)
		}

		// Update partition: C5 locates violators, C7 adapts p.
		nVio := locateViolators(n, z, lambda, w.diffX, w.vioIndex, w.vioFitness, w.vioSort)

		log.iteration(Record{Iter: iter, NVio: nVio, NActive: nActive, P: p})

		if nVio == 0 {
			log.solved()
			log.vector("x", x)
			log.vector("z", z)
			return Converged, lastErr
		}

		p = q.adjustProportion(nVio, p, opt.DeltaShrink, opt.DeltaExpand)

		// Reassign: C6.
		sortViolatorsByFitness(w.vioSort, w.vioFitness, nVio)
		nReassign := reassignCount(p, nVio)
		reassignViolators(nReassign, z, w.vioIndex, w.vioSort)
	}

	// The last reassignment moved z after x was computed; recompute x so
	// the returned pair satisfies x = y - λDᵀz.
	UpdatePrimal(n, x, y, z, lambda)
	log.maxiter()
	log.vector("x", x)
	log.vector("z", z)
	return MaxIterExceeded, lastErr
}
