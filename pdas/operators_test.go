// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "testing"

func TestApplyD(t *testing.T) {
	x := []float64{1, 2, 4, 7, 11}
	out := make([]float64, 3)
	ApplyD(5, x, out)
	want := []float64{-1*1 + 2*2 - 4, -1*2 + 2*4 - 7, -1*4 + 2*7 - 11}
	if !almostEqual(out, want, 1e-12) {
		t.Fatalf("ApplyD = %v, want %v", out, want)
	}
}

func TestApplyDLinearIsZero(t *testing.T) {
	n := 10
	x := make([]float64, n)
	for i := range x {
		x[i] = 2.5*float64(i) + 1.0
	}
	out := make([]float64, n-2)
	ApplyD(n, x, out)
	if !almostEqual(out, make([]float64, n-2), 1e-10) {
		t.Fatalf("ApplyD of a linear ramp should vanish, got %v", out)
	}
}

func TestApplyDAdjointMatchesApplyD(t *testing.T) {
	// <Dx, z> == <x, Dᵀz> for random x, z.
	n := 9
	x := []float64{0.3, -1.2, 2.5, 0.1, -0.7, 1.8, -2.1, 0.9, 0.4}
	z := []float64{1.1, -0.5, 0.2, -1.3, 0.6, 0.8, -0.9}

	dx := make([]float64, n-2)
	ApplyD(n, x, dx)
	var lhs float64
	for i, v := range dx {
		lhs += v * z[i]
	}

	dtz := make([]float64, n)
	ApplyDT(n, z, dtz)
	var rhs float64
	for i, v := range dtz {
		rhs += v * x[i]
	}

	if !almostEqual(lhs, rhs, 1e-9) {
		t.Fatalf("adjoint identity failed: <Dx,z>=%v <x,Dtz>=%v", lhs, rhs)
	}
}

func TestApplyDTBoundary(t *testing.T) {
	n := 6
	z := []float64{1, -2, 3, 0.5}
	out := make([]float64, n)
	ApplyDT(n, z, out)

	want := make([]float64, n)
	want[0] = -z[0]
	want[1] = 2*z[0] - z[1]
	want[2] = -z[0] + 2*z[1] - z[2]
	want[3] = -z[1] + 2*z[2] - z[3]
	want[4] = -z[2] + 2*z[3]
	want[5] = -z[3]

	if !almostEqual(out, want, 1e-12) {
		t.Fatalf("ApplyDT = %v, want %v", out, want)
	}
}
