// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

// ApplyD writes (D x)_i = -x_i + 2 x_{i+1} - x_{i+2} for i = 0,...,n-3
// into out, where x has length n and out has length n-2.
//
//	D = | -1  2 -1  0  0 |
//	    |  0 -1  2 -1  0 |
//	    |  0  0 -1  2 -1 |
func ApplyD(n int, x, out []float64) {
	if len(x) < n || len(out) < n-2 {
		panic("pdas: ApplyD bound check error")
	}
	for i := 0; i < n-2; i++ {
		out[i] = -x[i] + 2*x[i+1] - x[i+2]
	}
}

// ApplyDT writes the adjoint of ApplyD: out has length n, x has length n-2.
//
//	Dᵀ = | -1  0  0 |
//	     |  2 -1  0 |
//	     | -1  2 -1 |
//	     |  0 -1  2 |
//	     |  0  0 -1 |
func ApplyDT(n int, x, out []float64) {
	if len(x) < n-2 || len(out) < n {
		panic("pdas: ApplyDT bound check error")
	}
	out[0] = -x[0]
	out[1] = 2*x[0] - x[1]
	for i := 2; i < n-2; i++ {
		out[i] = -x[i-2] + 2*x[i-1] - x[i]
	}
	out[n-2] = -x[n-4] + 2*x[n-3]
	out[n-1] = -x[n-3]
}
