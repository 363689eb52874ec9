// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"

	"github.com/curioloop/optimizer/slsqp"
)

// PrimalNLPCrossCheck solves the trend-filtering primal directly as a
// general constrained NLP using an SLSQP solver, rather than exploiting
// the box/dual structure CrossCheck and pdas.Solve both lean on. The
// standard epigraph reformulation
//
//	minimize   ½‖y-x‖² + λ Σ uᵢ
//	subject to uᵢ - (Dx)ᵢ ≥ 0, uᵢ + (Dx)ᵢ ≥ 0   (i = 0 ··· n-3)
//
// over variables v = [x; u] ∈ ℝ^(2n-2) makes the ℓ1 penalty smooth
// wherever the solver evaluates it, since the active inequality at the
// optimum pins uᵢ = |(Dx)ᵢ| exactly. It is a second, structurally
// unrelated reference for pdas.Solve's x, grounded the same way
// CrossCheck grounds lbfgsb: an independent algorithm converging on the
// same optimum.
func PrimalNLPCrossCheck(n int, y []float64, lambda float64, maxIter int) ([]float64, error) {
	k := n - 2
	nv := n + k

	neq := make([]slsqp.Evaluation, 0, 2*k)
	for i := 0; i < k; i++ {
		i := i
		neq = append(neq,
			func(v, g []float64) float64 {
				dx := -v[i] + 2*v[i+1] - v[i+2]
				if g != nil {
					clear(g)
					g[i], g[i+1], g[i+2] = 1, -2, 1
					g[n+i] = 1
				}
				return v[n+i] - dx
			},
			func(v, g []float64) float64 {
				dx := -v[i] + 2*v[i+1] - v[i+2]
				if g != nil {
					clear(g)
					g[i], g[i+1], g[i+2] = -1, 2, -1
					g[n+i] = 1
				}
				return v[n+i] + dx
			},
		)
	}

	objective := func(v, g []float64) float64 {
		var f float64
		for i := 0; i < n; i++ {
			d := y[i] - v[i]
			f += 0.5 * d * d
			if g != nil {
				g[i] = -d
			}
		}
		for i := 0; i < k; i++ {
			f += lambda * v[n+i]
			if g != nil {
				g[n+i] = lambda
			}
		}
		return f
	}

	problem := slsqp.Problem{
		N:       nv,
		Object:  objective,
		NeqCons: neq,
		Stop: slsqp.Termination{
			Accuracy:      1e-9,
			MaxIterations: maxIter,
		},
	}

	optimizer, err := problem.New()
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	v0 := make([]float64, nv)
	copy(v0, y)
	for i := 0; i < k; i++ {
		dx := -v0[i] + 2*v0[i+1] - v0[i+2]
		v0[n+i] = abs(dx)
	}

	ws := optimizer.Init()
	res := optimizer.Fit(v0, ws)

	return res.X[:n], nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
