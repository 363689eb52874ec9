// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import (
	"math"
	"testing"
)

// denseFromBand expands the bandwidth-2 upper storage into a dense
// symmetric k×k matrix for reference multiplication in tests.
func denseFromBand(s *bandedSystem) [][]float64 {
	k := s.k
	d, u1, u2 := s.diag(), s.sup1(), s.sup2()
	a := make([][]float64, k)
	for i := range a {
		a[i] = make([]float64, k)
	}
	for j := 0; j < k; j++ {
		a[j][j] = d[j]
		if j >= 1 {
			a[j-1][j] = u1[j]
			a[j][j-1] = u1[j]
		}
		if j >= 2 {
			a[j-2][j] = u2[j]
			a[j][j-2] = u2[j]
		}
	}
	return a
}

func TestPbtf2PbtrsSolvesAxEqualsB(t *testing.T) {
	k := 5
	ab := []float64{
		// second superdiag (row 0)
		0, 0, 1, 1, 1,
		// first superdiag (row 1)
		0, -4, -4, -4, -4,
		// main diag (row 2)
		6, 6, 6, 6, 6,
	}
	b := []float64{1, -2, 3, 0.5, -1}
	bCopy := append([]float64(nil), b...)

	sys := &bandedSystem{k: k, ab: append([]float64(nil), ab...), b: append([]float64(nil), b...)}
	a := denseFromBand(sys)

	if info := pbtf2(sys); info != 0 {
		t.Fatalf("pbtf2 reported non-PD at column %d", info)
	}
	pbtrs(sys)
	x := sys.b

	// Verify A x == b.
	for i := 0; i < k; i++ {
		var s float64
		for j := 0; j < k; j++ {
			s += a[i][j] * x[j]
		}
		if !almostEqual(s, bCopy[i], 1e-8) {
			t.Fatalf("row %d: A x = %v, want %v", i, s, bCopy[i])
		}
	}
}

func TestPbtf2DetectsNonPD(t *testing.T) {
	k := 3
	sys := &bandedSystem{
		k: k,
		ab: []float64{
			0, 0, 0,
			0, -10, -10,
			1, 1, 1,
		},
		b: make([]float64, k),
	}
	if info := pbtf2(sys); info == 0 {
		t.Fatal("expected non-positive-definite matrix to be detected")
	}
}

func TestPbtf2PbtrsSingleCoordinate(t *testing.T) {
	sys := &bandedSystem{
		k:  1,
		ab: []float64{0, 0, 6},
		b:  []float64{3},
	}
	if info := pbtf2(sys); info != 0 {
		t.Fatalf("pbtf2 failed on k=1: info=%d", info)
	}
	pbtrs(sys)
	want := 3.0 / 6.0
	if !almostEqual(sys.b[0], want, 1e-12) {
		t.Fatalf("k=1 solve = %v, want %v", sys.b[0], want)
	}
}

func TestPbtf2PbtrsIsSymmetricPositiveDefinite(t *testing.T) {
	// The all-active D_A D_Aᵀ matrix (main=6, sup1=-4, sup2=1) is SPD
	// for any k >= 1.
	k := 12
	d := make([]float64, k)
	u1 := make([]float64, k)
	u2 := make([]float64, k)
	for i := range d {
		d[i] = 6
		if i >= 1 {
			u1[i] = -4
		}
		if i >= 2 {
			u2[i] = 1
		}
	}
	ab := append(append(append([]float64{}, u2...), u1...), d...)
	b := make([]float64, k)
	for i := range b {
		b[i] = math.Sin(float64(i))
	}
	bCopy := append([]float64(nil), b...)

	sys := &bandedSystem{k: k, ab: ab, b: b}
	a := denseFromBand(sys)
	if info := pbtf2(sys); info != 0 {
		t.Fatalf("expected SPD, pbtf2 failed at column %d", info)
	}
	pbtrs(sys)
	for i := 0; i < k; i++ {
		var s float64
		for j := 0; j < k; j++ {
			s += a[i][j] * sys.b[j]
		}
		if !almostEqual(s, bCopy[i], 1e-7) {
			t.Fatalf("row %d: A x = %v, want %v", i, s, bCopy[i])
		}
	}
}
