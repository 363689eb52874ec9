// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

// UpdatePrimal computes x = y - lambda*Dᵀz in place, walking the output
// index once and materializing each stencil coefficient from up to three
// consecutive z values. No temporary allocation.
func UpdatePrimal(n int, x, y, z []float64, lambda float64) {
	if len(x) < n || len(y) < n || len(z) < n-2 {
		panic("pdas: UpdatePrimal bound check error")
	}
	x[0] = y[0] + lambda*z[0]
	x[1] = y[1] + lambda*(z[1]-2*z[0])
	for i := 2; i < n-2; i++ {
		x[i] = y[i] + lambda*(z[i-2]-2*z[i-1]+z[i])
	}
	x[n-2] = y[n-2] + lambda*(z[n-4]-2*z[n-3])
	x[n-1] = y[n-1] + lambda*z[n-3]
}
