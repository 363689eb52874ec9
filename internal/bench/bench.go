// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench cross-validates pdas.Solve against independent paths:
// an L-BFGS-B box-constrained optimizer solving the identical dual QP
// as a general-purpose smooth optimization problem, a finite-difference
// check of that same dual objective's analytic gradient, a dense
// Cholesky reference for the banded active-set solve, and an SLSQP
// solve of the primal as a general constrained NLP (primal_nlp.go).
// None of these paths are part of the core solver's tested contract —
// this package exists purely so the fused, allocation-free kernels in
// package pdas have independent references to be checked against, the
// way gonum's specialized solvers sit around a reference numerical
// layer elsewhere in the ecosystem.
package bench

import (
	"fmt"
	"math"

	"github.com/curioloop/optimizer/lbfgsb"
	"github.com/curioloop/optimizer/numdiff"
	"github.com/jingxlim/l1tf/pdas"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DualObjective evaluates g(z) = ½ zᵀ(DDᵀ)z - zᵀ(Dy)/λ and its gradient
// DDᵀz - Dy/λ, the dual of the trend-filtering primal: pdas's banded
// active-set solve and this package's L-BFGS-B cross-check both minimize
// exactly this function over the box [-1,1]^(n-2), the former exploiting
// the box-partition structure, the latter treating it as a generic
// smooth bound-constrained problem.
type DualObjective struct {
	n      int
	y      []float64
	lambda float64

	dy []float64 // Dy, precomputed once
	v  []float64 // scratch, length n, Dᵀz
	dv []float64 // scratch, length n-2, D(Dᵀz)
}

// NewDualObjective precomputes Dy and allocates scratch for repeated
// evaluation.
func NewDualObjective(n int, y []float64, lambda float64) *DualObjective {
	dy := make([]float64, n-2)
	pdas.ApplyD(n, y, dy)
	return &DualObjective{
		n: n, y: y, lambda: lambda,
		dy: dy,
		v:  make([]float64, n),
		dv: make([]float64, n-2),
	}
}

// Eval implements lbfgsb.Evaluation.
func (d *DualObjective) Eval(z, grad []float64) float64 {
	pdas.ApplyDT(d.n, z, d.v)
	pdas.ApplyD(d.n, d.v, d.dv)

	var f float64
	for i, zv := range z {
		f += 0.5*zv*d.dv[i] - zv*d.dy[i]/d.lambda
		if grad != nil {
			grad[i] = d.dv[i] - d.dy[i]/d.lambda
		}
	}
	return f
}

// objectFunc adapts Eval to numdiff's func(x, y []float64) signature with
// a scalar (M=1) output, so the gradient computed analytically by Eval
// can be checked against a finite-difference Jacobian.
func (d *DualObjective) objectFunc(x, out []float64) {
	out[0] = d.Eval(x, nil)
}

// CrossCheckResult reports the L-BFGS-B reference solution alongside the
// metrics used to compare it against pdas.Solve's result.
type CrossCheckResult struct {
	Z          []float64
	Converged  bool
	Iterations int
}

// CrossCheck solves the dual QP for y/lambda using an L-BFGS-B
// optimizer as an independent reference for pdas.Solve.
func CrossCheck(n int, y []float64, lambda float64, maxIter int) (CrossCheckResult, error) {
	k := n - 2
	obj := NewDualObjective(n, y, lambda)

	bounds := make([]lbfgsb.Bound, k)
	for i := range bounds {
		bounds[i] = lbfgsb.Bound{Lower: -1, Upper: 1}
	}

	m := 6
	if k < m {
		m = k
	}

	problem := lbfgsb.Problem{
		N: k,
		M: m,
		Eval: func(x, g []float64) float64 {
			return obj.Eval(x, g)
		},
		Stop: lbfgsb.Termination{
			MaxIterations:     maxIter,
			ProjGradTolerance: 1e-10,
			EpsAccuracyFactor: 1e7,
		},
		Bounds: bounds,
	}

	optimizer, err := problem.New(nil)
	if err != nil {
		return CrossCheckResult{}, fmt.Errorf("bench: %w", err)
	}

	ws := optimizer.Init()
	res := optimizer.Fit(make([]float64, k), ws)

	return CrossCheckResult{
		Z:          res.X,
		Converged:  res.OK,
		Iterations: res.NumIter,
	}, nil
}

// CheckGradient compares DualObjective's analytic gradient at z against
// a central finite-difference approximation, returning the infinity norm
// of their difference.
func CheckGradient(n int, y []float64, lambda float64, z []float64) (float64, error) {
	k := n - 2
	obj := NewDualObjective(n, y, lambda)

	analytic := make([]float64, k)
	obj.Eval(z, analytic)

	spec := numdiff.ApproxSpec{
		N:      k,
		M:      1,
		Object: obj.objectFunc,
		Method: numdiff.Central,
	}

	fd := make([]float64, k)
	if err := spec.Diff(append([]float64(nil), z...), fd); err != nil {
		return 0, fmt.Errorf("bench: %w", err)
	}

	var maxDiff float64
	for i := range analytic {
		maxDiff = math.Max(maxDiff, math.Abs(analytic[i]-fd[i]))
	}
	return maxDiff, nil
}

// DenseCholeskyCrossCheck rebuilds the reduced all-active system
// D_A D_Aᵀ x = b as a general dense matrix and factors it with
// gonum.org/v1/gonum/mat's Cholesky, returning the dense solution x as a
// reference for pdas's specialized bandwidth-2 pbtf2/pbtrs on the same
// right-hand side; it does not call pdas itself. Intended for small k on
// the order of tens; the specialized kernel stays the production path.
func DenseCholeskyCrossCheck(k int, b []float64) ([]float64, error) {
	dense := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		dense.SetSym(i, i, 6)
		if i+1 < k {
			dense.SetSym(i, i+1, -4)
		}
		if i+2 < k {
			dense.SetSym(i, i+2, 1)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(dense); !ok {
		return nil, fmt.Errorf("bench: dense matrix is not positive definite")
	}

	rhs := mat.NewVecDense(k, b)
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, rhs); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	return x.RawVector().Data, nil
}

// ConvergenceDiagnostics reports the dual gradient's 2-norm and the
// relative change between two successive dual iterates, using
// gonum.org/v1/gonum/floats the way the pack's
// other_examples/vladimir-ch-iterative__cg.go leans on floats for its
// residual bookkeeping around a hand-rolled Krylov kernel.
type ConvergenceDiagnostics struct {
	GradNorm    float64
	RelDualStep float64
}

// CheckConvergence evaluates the 2-norm of DualObjective's gradient at
// zNew and the relative step ‖zNew-zOld‖ / max(1,‖zOld‖). The gradient is
// not projected onto the [-1,1]^k box, so components at pinned bounds
// count toward GradNorm.
func CheckConvergence(n int, y []float64, lambda float64, zOld, zNew []float64) ConvergenceDiagnostics {
	obj := NewDualObjective(n, y, lambda)
	grad := make([]float64, len(zNew))
	obj.Eval(zNew, grad)

	step := make([]float64, len(zNew))
	floats.SubTo(step, zNew, zOld)

	return ConvergenceDiagnostics{
		GradNorm:    floats.Norm(grad, 2),
		RelDualStep: floats.Norm(step, 2) / math.Max(1, floats.Norm(zOld, 2)),
	}
}
