// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "testing"

func TestUpdateDualAllActiveSatisfiesKKT(t *testing.T) {
	n := 8
	y := []float64{1, 3, 2, 5, 4, 6, 7, 5}
	lambda := 0.5
	z := make([]float64, n-2)

	divZi := make([]float64, n)
	ab := make([]float64, 3*(n-2))
	b := make([]float64, n-2)

	nActive, err := updateDual(n, y, z, lambda, divZi, ab, b)
	if err != nil {
		t.Fatalf("updateDual reported error: %v", err)
	}
	if nActive != n-2 {
		t.Fatalf("nActive = %d, want %d", nActive, n-2)
	}

	// Stationarity: D D^T z == D y / lambda for an all-active partition.
	dtz := make([]float64, n)
	ApplyDT(n, z, dtz)
	ddtz := make([]float64, n-2)
	ApplyD(n, dtz, ddtz)

	dy := make([]float64, n-2)
	ApplyD(n, y, dy)
	for i := range dy {
		dy[i] /= lambda
	}

	if !almostEqual(ddtz, dy, 1e-8) {
		t.Fatalf("KKT stationarity violated: DDtz=%v want=%v", ddtz, dy)
	}
}

func TestUpdateDualRespectsPinnedCoordinates(t *testing.T) {
	n := 8
	y := []float64{1, 3, 2, 5, 4, 6, 7, 5}
	lambda := 0.5
	z := []float64{1, 0, 0, -1, 0, 0}

	divZi := make([]float64, n)
	ab := make([]float64, 3*(n-2))
	b := make([]float64, n-2)

	zBefore := append([]float64(nil), z...)
	nActive, err := updateDual(n, y, z, lambda, divZi, ab, b)
	if err != nil {
		t.Fatalf("updateDual reported error: %v", err)
	}
	if nActive != 4 {
		t.Fatalf("nActive = %d, want 4", nActive)
	}
	if z[0] != zBefore[0] || z[3] != zBefore[3] {
		t.Fatalf("pinned coordinates must not move: z=%v", z)
	}
}

func TestUpdateDualAllInactiveIsNoop(t *testing.T) {
	n := 6
	y := []float64{1, 2, 3, 4, 5, 6}
	lambda := 1.0
	z := []float64{1, -1, 1, 1}

	divZi := make([]float64, n)
	ab := make([]float64, 3*(n-2))
	b := make([]float64, n-2)

	nActive, err := updateDual(n, y, z, lambda, divZi, ab, b)
	if err != nil {
		t.Fatalf("updateDual reported error: %v", err)
	}
	if nActive != 0 {
		t.Fatalf("nActive = %d, want 0", nActive)
	}
	want := []float64{1, -1, 1, 1}
	if !almostEqual(z, want, 0) {
		t.Fatalf("all-inactive z must be untouched: got %v want %v", z, want)
	}
}
