// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/plt"
)

// RotatedSquareOverlap implements the overlap of a square with a copy of
// itself rotated by 45 degrees about the common centre: a regular octagon
//
//      y ^      .
//        |    .' '.
//        |  +-:---:-+
//        |  |.     .|
//        | .:       :.
//        |  |'     '|
//        |  +-:---:-+
//        |    '. .'
//        |      '
//        +----------------> x
//
type RotatedSquareOverlap struct {
	l float64 // side length
}

// Init initialises this structure
func (o *RotatedSquareOverlap) Init(prms fun.Prms) {

	// default values
	o.l = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "l":
			o.l = p.V
		}
	}
}

// Area computes the octagon area
func (o *RotatedSquareOverlap) Area() float64 {
	return 2.0 * (math.Sqrt2 - 1.0) * o.l * o.l
}

// Side computes the octagon side length
func (o *RotatedSquareOverlap) Side() float64 {
	return (math.Sqrt2 - 1.0) * o.l
}

// NumVerts returns the number of overlap vertices
func (o *RotatedSquareOverlap) NumVerts() int {
	return 8
}

// VertsA returns the vertices of the axis-aligned square in counter
// clockwise order, centred at the origin
func (o *RotatedSquareOverlap) VertsA() (x, y []float64) {
	h := o.l / 2.0
	return []float64{-h, h, h, -h}, []float64{-h, -h, h, h}
}

// VertsB returns the vertices of the rotated square in counter clockwise
// order; the rotation turns it into a diamond with circumradius l/sqrt2
func (o *RotatedSquareOverlap) VertsB() (x, y []float64) {
	r := o.l / math.Sqrt2
	return []float64{r, 0, -r, 0}, []float64{0, r, 0, -r}
}

// CompareArea compares a computed overlap area
//  Output:
//   e -- absolute error
func (o *RotatedSquareOverlap) CompareArea(tol, area float64, verbose bool) (e float64) {
	ana := o.Area()
	if verbose {
		chk.PrintAnaNum("area", tol, ana, area, verbose)
	}
	return math.Abs(ana - area)
}

// Draw plots the two squares
func (o *RotatedSquareOverlap) Draw() {
	xa, ya := o.VertsA()
	xb, yb := o.VertsB()
	plt.Plot(append(xa, xa[0]), append(ya, ya[0]), "color='b', label='square'")
	plt.Plot(append(xb, xb[0]), append(yb, yb[0]), "color='r', label='rotated'")
	plt.Equal()
	plt.Gll("$x$", "$y$", "")
}
