// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "math"

// locateViolators scans the dual partition for KKT violators and scores
// each by fitness, populating vioIndex/vioFitness for the first n_vio
// entries and vioSort with the identity permutation 0..n_vio-1 (the
// permutation sortViolatorsByFitness later sorts by descending fitness).
func locateViolators(n int, z []float64, lambda float64, diffX []float64, vioIndex []int, vioFitness []float64, vioSort []int) (nVio int) {
	for i := 0; i < n-2; i++ {
		switch {
		case z[i] == 1:
			if diffX[i] < 0 {
				vioIndex[nVio] = i
				vioFitness[nVio] = math.Max(lambda*math.Abs(diffX[i]), 1)
				vioSort[nVio] = nVio
				nVio++
			}
		case z[i] == -1:
			if diffX[i] > 0 {
				vioIndex[nVio] = i
				vioFitness[nVio] = math.Max(lambda*math.Abs(diffX[i]), 1)
				vioSort[nVio] = nVio
				nVio++
			}
		case z[i] > 1, z[i] < -1:
			vioIndex[nVio] = i
			vioFitness[nVio] = math.Max(lambda*math.Abs(diffX[i]), math.Abs(z[i]))
			vioSort[nVio] = nVio
			nVio++
		}
	}
	return nVio
}
