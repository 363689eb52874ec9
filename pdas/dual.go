// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "fmt"

// updateDual solves D_A D_Aᵀ z_A = D_A( y/λ - D_Iᵀ z_I ) for the active
// partition of z and writes the result back into z. div_zi, ab and b are
// caller-owned scratch buffers (div_zi has length n, ab has length
// 3*(n-2), b has length n-2) reused across iterations to avoid per-call
// allocation. Returns the number of active coordinates and a non-nil
// error only to report, not abort on, a loss of positive-definiteness
// in the banded Cholesky factor.
func updateDual(n int, y, z []float64, lambda float64, divZi, ab, b []float64) (nActive int, err error) {
	if len(y) < n || len(z) < n-2 || len(divZi) < n {
		panic("pdas: updateDual bound check error")
	}

	k := n - 2
	divZi[0] = 0
	divZi[1] = 0
	for i := 0; i < n-2; i++ {
		divZi[i+2] = 0
		if z[i] == 1 || z[i] == -1 {
			k--
			divZi[i] -= z[i]
			divZi[i+1] += 2 * z[i]
			divZi[i+2] -= z[i]
		}
	}

	if k == 0 {
		return 0, nil
	}

	sys := &bandedSystem{k: k, ab: ab[:3*k], b: b[:k]}
	d, u1, u2 := sys.diag(), sys.sup1(), sys.sup2()

	prev, prev2 := -3, -3
	ik := 0
	for i := 0; i < n-2; i++ {
		if z[i] == 1 || z[i] == -1 {
			continue
		}

		d[ik] = 6.0
		switch i - prev {
		case 1:
			u1[ik] = -4.0
		case 2:
			u1[ik] = 1.0
		default:
			u1[ik] = 0.0
		}
		if i-prev2 == 2 {
			u2[ik] = 1.0
		} else {
			u2[ik] = 0.0
		}
		prev2, prev = prev, i

		sys.b[ik] = (2*y[i+1]-y[i]-y[i+2])/lambda - 2*divZi[i+1] + divZi[i] + divZi[i+2]
		ik++
	}

	if info := pbtf2(sys); info != 0 {
		err = fmt.Errorf("%w: column %d", ErrBandedNotPD, info)
	} else {
		pbtrs(sys)
	}

	ik = 0
	for i := 0; i < n-2; i++ {
		if z[i] != 1 && z[i] != -1 {
			z[i] = sys.b[ik]
			ik++
		}
	}

	return k, err
}
