// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. Kronecker property and derivatives")

	verb := false
	interior := map[string][]float64{
		"lin2": {0.25},
		"tri3": {0.25, 0.3},
		"qua4": {0.3, -0.2},
	}
	for name, shape := range factory {

		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)

		// check S @ nodes
		CheckShape(tst, shape, 1e-17, verb)

		// check sum of S and dSdR
		CheckPartitionOfUnity(tst, shape, interior[name], 1e-15)

		// check dSdR
		CheckDSdR(tst, shape, interior[name], 1e-11, verb)

		io.PfGreen("OK\n")
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. mapping on a 3 x 1 rectangle")

	// rectangle with x in [10,13] and y in [8,9]
	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	q := Get("qua4", 0)
	if q == nil {
		tst.Errorf("cannot get qua4\n")
		return
	}

	// forward mapping of the centre and one interior point
	y := make([]float64, 2)
	q.RealCoords(y, []float64{0, 0}, xmat)
	chk.Array(tst, "x(0,0)", 1e-15, y, []float64{11.5, 8.5})
	q.RealCoords(y, []float64{0.5, -0.5}, xmat)
	chk.Array(tst, "x(0.5,-0.5)", 1e-15, y, []float64{12.25, 8.25})

	// jacobian
	if err := q.CalcAtR(xmat, []float64{0, 0}, true); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "J", 1e-15, q.J, 0.75)

	// inverse mapping round trip at the vertices
	r := make([]float64, 2)
	for n := 0; n < q.Nverts; n++ {
		y[0], y[1] = xmat[0][n], xmat[1][n]
		if err := q.InvMap(r, y, xmat); err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		chk.Array(tst, io.Sf("r of vertex %d", n), 1e-10, r, []float64{q.NatCoords[0][n], q.NatCoords[1][n]})
	}

	// interior and exterior classification
	if err := q.InvMap(r, []float64{12.25, 8.25}, xmat); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Array(tst, "r interior", 1e-10, r, []float64{0.5, -0.5})
	if !q.InsideRef(r, 1e-8) {
		tst.Errorf("interior point classified outside\n")
		return
	}
	if err := q.InvMap(r, []float64{14.5, 8.5}, xmat); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Array(tst, "r exterior", 1e-10, r, []float64{2, 0})
	if q.InsideRef(r, 1e-8) {
		tst.Errorf("exterior point classified inside\n")
		return
	}
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. tri3 identity mapping and distorted quad")

	// identity mapping: vertices at the natural coordinates
	t3 := Get("tri3", 0)
	xmat := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}
	r := make([]float64, 2)
	if err := t3.InvMap(r, []float64{0.25, 0.3}, xmat); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Array(tst, "tri3 r", 1e-10, r, []float64{0.25, 0.3})
	if err := t3.CalcAtR(xmat, r, true); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "tri3 J", 1e-15, t3.J, 1.0)

	// non-affine quad: inverse of forward must return the same point
	q := Get("qua4", 1)
	xq := [][]float64{
		{0, 1.2, 1.1, -0.1},
		{0, 0.1, 1.3, 0.9},
	}
	y := make([]float64, 2)
	rIn := []float64{0.35, -0.55}
	q.RealCoords(y, rIn, xq)
	if err := q.InvMap(r, y, xq); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Array(tst, "round trip r", 1e-9, r, rIn)
}
