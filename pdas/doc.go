// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdas implements a primal active-set / dual-ascent (PDAS) solver
// for the one-dimensional second-order ℓ₁ trend filter
//
//	x* = argmin_x  ½ ‖y - x‖² + λ ‖D x‖₁
//
// where D is the second-order difference operator. By duality
// x* = y - λ Dᵀz* for a dual maximizer z* ∈ [-1,1]^(n-2) of a bound
// constrained quadratic. Solve maintains a partition of the dual
// coordinates into an active set (|z_i| < 1) and an inactive set
// (z_i = ±1), alternating between an exact reduced solve on the active
// set and a damped reassignment of KKT violators across the partition
// boundary.
package pdas
