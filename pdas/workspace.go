// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

// mark mirrors the implicit ±1 partition encoding carried in z itself.
// The active/inactive split is fragile under compiler optimizations that
// could fuse updates through extended precision, so a parallel explicit
// array is kept in lockstep purely as an internal consistency check
// (syncPartition/checkPartition below), never as the source of truth —
// the source of truth remains the exact bit-equality test against ±1.0.
type mark int8

const (
	markFree mark = iota
	markPinUp
	markPinDown
)

// workspace owns every scratch buffer a single Solve invocation needs, so
// that the solver stays reentrant: no buffer here is ever a package-level
// variable, matching the fix for the C source's global vio_fitness
// comparator hazard.
type workspace struct {
	n int

	diffX []float64 // len n-2, D x
	divZi []float64 // len n, Dᵀz_I

	vioIndex   []int
	vioFitness []float64
	vioSort    []int

	ab []float64 // len 3*(n-2), banded system storage
	b  []float64 // len n-2, banded system RHS/solution

	partition []mark // len n-2, mirrors z's implicit partition
}

func newWorkspace(n int) *workspace {
	k := n - 2
	return &workspace{
		n:          n,
		diffX:      make([]float64, k),
		divZi:      make([]float64, n),
		vioIndex:   make([]int, k),
		vioFitness: make([]float64, k),
		vioSort:    make([]int, k),
		ab:         make([]float64, 3*k),
		b:          make([]float64, k),
		partition:  make([]mark, k),
	}
}

func (w *workspace) syncPartition(z []float64) {
	for i, zi := range z[:w.n-2] {
		switch zi {
		case 1:
			w.partition[i] = markPinUp
		case -1:
			w.partition[i] = markPinDown
		default:
			w.partition[i] = markFree
		}
	}
}

// checkPartition reports whether the mirror array still agrees with z's
// implicit encoding; used only under LogVector diagnostics, never on the
// hot path, since the mirror is a consistency check and not the
// partition's source of truth.
func (w *workspace) checkPartition(z []float64) bool {
	for i, zi := range z[:w.n-2] {
		switch w.partition[i] {
		case markPinUp:
			if zi != 1 {
				return false
			}
		case markPinDown:
			if zi != -1 {
				return false
			}
		default:
			if zi == 1 || zi == -1 {
				return false
			}
		}
	}
	return true
}
