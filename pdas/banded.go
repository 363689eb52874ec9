// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "math"

// bandedSystem holds a symmetric positive-definite band matrix with
// bandwidth 2 in LAPACK upper-triangular banded row-major storage: a flat
// array of 3 rows by k columns, row 0 the second superdiagonal, row 1 the
// first superdiagonal, row 2 the main diagonal. AB(r,c) lives at
// ab[r*k+c]. b is both the right-hand side on entry and the solution on
// return, matching LAPACKE_dpbsv's in-place convention.
type bandedSystem struct {
	k  int
	ab []float64 // len 3*k
	b  []float64 // len k
}

func (s *bandedSystem) diag() []float64 { return s.ab[2*s.k : 3*s.k] }
func (s *bandedSystem) sup1() []float64 { return s.ab[1*s.k : 2*s.k] } // sup1[j] = A(j-1,j)
func (s *bandedSystem) sup2() []float64 { return s.ab[0*s.k : 1*s.k] } // sup2[j] = A(j-2,j)

// pbtf2 factors the bandwidth-2 SPD matrix stored in s into its Cholesky
// factor A = UᵀU, U upper triangular bandwidth 2, overwriting diag/sup1/sup2
// with U's diagonal, first and second superdiagonal respectively. This is
// the bandwidth-2 specialization of a dense dpofa (as in
// github.com/curioloop/optimizer/lbfgsb's linpack.go): the same
// column-by-column square-root recursion, but restricted to the
// at-most-two nonzero entries bandwidth 2 leaves per column, which
// collapses the O(k^3) dense factorization into O(k).
//
// Returns info = 0 on success, or the 1-based index of the first column at
// which the matrix is found not positive definite (mirrors dpofa/dpbtf2).
func pbtf2(s *bandedSystem) (info int) {
	k := s.k
	d, u1, u2 := s.diag(), s.sup1(), s.sup2()
	for j := 0; j < k; j++ {
		var e1, e2 float64
		if j >= 2 {
			e2 = u2[j] / d[j-2]
		}
		if j >= 1 {
			e1 = (u1[j] - u1[j-1]*e2) / d[j-1]
		}
		ajj := d[j] - e1*e1 - e2*e2
		if ajj <= 0 {
			return j + 1
		}
		u1[j], u2[j] = e1, e2
		d[j] = math.Sqrt(ajj)
	}
	return 0
}

// pbtrs solves A x = b given the Cholesky factor U computed by pbtf2, via
// forward substitution on Uᵀy = b followed by back substitution on Ux = y,
// both restricted to the bandwidth-2 nonzero pattern. Solution overwrites
// s.b, matching LAPACKE_dpbsv's convention.
func pbtrs(s *bandedSystem) {
	k := s.k
	d, u1, u2, b := s.diag(), s.sup1(), s.sup2(), s.b

	// Forward: Uᵀ y = b
	for j := 0; j < k; j++ {
		v := b[j]
		if j >= 1 {
			v -= u1[j] * b[j-1]
		}
		if j >= 2 {
			v -= u2[j] * b[j-2]
		}
		b[j] = v / d[j]
	}
	// Back: U x = y
	for j := k - 1; j >= 0; j-- {
		v := b[j]
		if j+1 < k {
			v -= u1[j+1] * b[j+1]
		}
		if j+2 < k {
			v -= u2[j+2] * b[j+2]
		}
		b[j] = v / d[j]
	}
}
