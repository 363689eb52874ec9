// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import (
	"math"
	"slices"
)

// sortViolatorsByFitness stable-sorts vioSort[:nVio] so that
// vioFitness[vioSort[·]] is descending. The comparator closes over
// vioFitness instead of reading a package-level global, which is what
// makes this solver reentrant (the C source sorts via a process-wide
// global read by qsort's comparator).
func sortViolatorsByFitness(vioSort []int, vioFitness []float64, nVio int) {
	slices.SortStableFunc(vioSort[:nVio], func(a, b int) int {
		switch {
		case vioFitness[a] > vioFitness[b]:
			return -1
		case vioFitness[a] < vioFitness[b]:
			return 1
		default:
			return 0
		}
	})
}

// reassignViolators moves the first nReassign highest-fitness violators
// (as ordered by vioSort) across the active/inactive partition boundary:
// pinned coordinates whose stencil value disagrees with their bound are
// released into the active set (z <- 0); active coordinates that strayed
// outside [-1,1] are pinned to the bound they crossed.
func reassignViolators(nReassign int, z []float64, vioIndex, vioSort []int) {
	for i := 0; i < nReassign; i++ {
		idx := vioIndex[vioSort[i]]
		switch {
		case z[idx] == 1 || z[idx] == -1:
			z[idx] = 0
		case z[idx] > 1:
			z[idx] = 1
		case z[idx] < -1:
			z[idx] = -1
		}
	}
}

// reassignCount computes n_reassign = max(floor(p*n_vio + 0.5), 1), the
// rounded proportion of violators to move this iteration, floored at 1
// so a nonzero violator count always makes progress.
func reassignCount(p float64, nVio int) int {
	n := int(math.Floor(p*float64(nVio) + 0.5))
	if n < 1 {
		n = 1
	}
	return n
}
