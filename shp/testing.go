// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := make([]float64, shape.Gndim)
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckPartitionOfUnity checks that shape functions sum to 1.0 and their
// derivatives to 0.0 at natural point r
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, r []float64, tol float64) {
	shape.Func(shape.S, shape.DSdR, r, true)
	sum := 0.0
	for m := 0; m < shape.Nverts; m++ {
		sum += shape.S[m]
	}
	chk.Float64(tst, io.Sf("%s: sum(S)", shape.Type), tol, sum, 1.0)
	for i := 0; i < shape.Gndim; i++ {
		sum = 0.0
		for m := 0; m < shape.Nverts; m++ {
			sum += shape.DSdR[m][i]
		}
		chk.Float64(tst, io.Sf("%s: sum(dSdR%d)", shape.Type, i), tol, sum, 0.0)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures against numerical
// differentiation at natural point r
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			chk.DerivScaSca(tst, io.Sf("%s: dS%ddR%d", shape.Type, n, i), tol, shape.DSdR[n][i], r[i], 1e-1, verbose, func(t float64) float64 {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				return S_tmp[n]
			})
		}
	}
}
