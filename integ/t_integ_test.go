// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integ

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/shp"
)

// integrates sum_a phi_a over a planar quad with the parent Gauss rule and
// compares against the polygon area
func checkQuadArea(tst *testing.T, label string, x, y, z []float64, tol float64) {
	q := shp.Get("qua4", 0)
	ip := NewIntegPts()
	GaussPolyIntQuad(ip)
	areaTest := 0.0
	for a := 0; a < 4; a++ {
		for k := 0; k < ip.NumIPs; k++ {
			ξ, η := ip.Xy[2*k], ip.Xy[2*k+1]
			q.Func(q.S, q.DSdR, []float64{ξ, η}, false)
			phi := q.S[a]
			dJ := DetJ(q, x, y, z, ξ, η)
			areaTest += ip.Wts[k] * phi * dJ
		}
	}
	area := geo.PolyArea(x, y, 4)
	if math.Abs(areaTest-area) > tol {
		tst.Errorf("%s: area mismatch: %g != %g\n", label, areaTest, area)
		return
	}
	io.Pf("%-10s areaTest=%g area=%g\n", label, areaTest, area)
}

func Test_integ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ01. quad areas via parent Gauss rule")

	z := []float64{0.1, 0.1, 0.1, 0.1}
	checkQuadArea(tst, "square",
		[]float64{-0.5, 0.5, 0.5, -0.5},
		[]float64{-0.5, -0.5, 0.5, 0.5}, z, 1e-8)
	checkQuadArea(tst, "rect",
		[]float64{-0.5, 0.5, 0.5, -0.5},
		[]float64{-0.25, -0.25, 0.25, 0.25}, z, 1e-8)
	checkQuadArea(tst, "affine",
		[]float64{-0.5, 0.5, 0.8, -0.2},
		[]float64{-0.415, -0.415, 0.5, 0.5}, z, 1e-5)
	checkQuadArea(tst, "nonaffine",
		[]float64{-0.5, 0.5, 0.235, -0.35},
		[]float64{-0.25, -0.15, 0.25, 0.235}, z, 1e-8)
}

func Test_integ02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ02. TWB rule on polygons")

	// unit square: 4 fan triangles, 3 points each
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	ip := NewIntegPts()
	if err := TWBPolyInt(ip, x, y, 4); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "numIPs", ip.NumIPs, 12)
	sum, sumX, sumXX := 0.0, 0.0, 0.0
	for k := 0; k < ip.NumIPs; k++ {
		sum += ip.Wts[k]
		sumX += ip.Wts[k] * ip.Xy[2*k]
		sumXX += ip.Wts[k] * ip.Xy[2*k] * ip.Xy[2*k]
	}
	chk.Float64(tst, "int 1 dA", 1e-15, sum, 1.0)
	chk.Float64(tst, "int x dA", 1e-15, sumX, 0.5)
	chk.Float64(tst, "int x^2 dA", 1e-15, sumXX, 1.0/3.0)

	// octagon from clipping a square against a diamond
	xo := []float64{0.7, 1, 1, 0.7, 0.3, 0, 0, 0.3}
	yo := []float64{0, 0.3, 0.7, 1, 1, 0.7, 0.3, 0}
	if err := TWBPolyInt(ip, xo, yo, 8); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "octagon numIPs", ip.NumIPs, 24)
	sum = 0.0
	for k := 0; k < ip.NumIPs; k++ {
		sum += ip.Wts[k]
	}
	chk.Float64(tst, "octagon area", 1e-15, sum, geo.PolyArea(xo, yo, 8))

	// degenerate vertex counts
	if err := TWBPolyInt(ip, x, y, 2); err == nil {
		tst.Errorf("2-vertex polygon accepted\n")
		return
	}
}

func Test_integ03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ03. parent triangle rule")

	ip := NewIntegPts()
	GaussPolyIntTri(ip)
	chk.Int(tst, "numIPs", ip.NumIPs, 3)
	sum, sumXi := 0.0, 0.0
	for k := 0; k < ip.NumIPs; k++ {
		sum += ip.Wts[k]
		sumXi += ip.Wts[k] * ip.Xy[2*k]
	}
	chk.Float64(tst, "int 1 dA", 1e-15, sum, 0.5)
	chk.Float64(tst, "int xi dA", 1e-15, sumXi, 1.0/6.0)

	// 3-4 triangle in the z=0 plane via DetJ
	t3 := shp.Get("tri3", 0)
	xf := []float64{0, 2, 0}
	yf := []float64{0, 0, 3}
	zf := []float64{0, 0, 0}
	areaTest := 0.0
	for a := 0; a < 3; a++ {
		for k := 0; k < ip.NumIPs; k++ {
			ξ, η := ip.Xy[2*k], ip.Xy[2*k+1]
			t3.Func(t3.S, t3.DSdR, []float64{ξ, η}, false)
			areaTest += ip.Wts[k] * t3.S[a] * DetJ(t3, xf, yf, zf, ξ, η)
		}
	}
	chk.Float64(tst, "tri area", 1e-14, areaTest, 3.0)
}
