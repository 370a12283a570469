// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verifying contact
// geometry and enforcement results
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// SquaresOverlap implements the overlap of two congruent axis-aligned
// squares, the second one translated by (dx, dy)
//
//      y ^
//        |        +---------+
//        |        |         |
//        |    +---+-----+ B |
//        |    |   |/////|   |  dy
//        |    |   +-----+---+
//        |    | A       |
//        |    +---------+
//        |          dx
//        +----------------------> x
//
type SquaresOverlap struct {
	l  float64 // side length
	dx float64 // horizontal offset of the second square
	dy float64 // vertical offset of the second square
}

// Init initialises this structure
func (o *SquaresOverlap) Init(prms fun.Prms) {

	// default values
	o.l = 1.0
	o.dx = 0.0
	o.dy = 0.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "l":
			o.l = p.V
		case "dx":
			o.dx = p.V
		case "dy":
			o.dy = p.V
		}
	}
}

// Area computes the overlap area; zero when the squares do not overlap
func (o *SquaresOverlap) Area() float64 {
	wx := o.l - math.Abs(o.dx)
	wy := o.l - math.Abs(o.dy)
	if wx <= 0 || wy <= 0 {
		return 0
	}
	return wx * wy
}

// Centroid computes the centre of the overlap rectangle, with the first
// square occupying [0,l] x [0,l]. Meaningful only when Area is positive.
func (o *SquaresOverlap) Centroid() (cx, cy float64) {
	xlo, xhi := math.Max(0, o.dx), math.Min(o.l, o.l+o.dx)
	ylo, yhi := math.Max(0, o.dy), math.Min(o.l, o.l+o.dy)
	return (xlo + xhi) / 2.0, (ylo + yhi) / 2.0
}

// VertsA returns the vertices of the first square in counter clockwise order
func (o *SquaresOverlap) VertsA() (x, y []float64) {
	return []float64{0, o.l, o.l, 0}, []float64{0, 0, o.l, o.l}
}

// VertsB returns the vertices of the second square in counter clockwise order
func (o *SquaresOverlap) VertsB() (x, y []float64) {
	return []float64{o.dx, o.l + o.dx, o.l + o.dx, o.dx},
		[]float64{o.dy, o.dy, o.l + o.dy, o.l + o.dy}
}

// CompareArea compares a computed overlap area
//  Output:
//   e -- absolute error
func (o *SquaresOverlap) CompareArea(tol, area float64, verbose bool) (e float64) {
	ana := o.Area()
	if verbose {
		chk.PrintAnaNum("area", tol, ana, area, verbose)
	}
	return math.Abs(ana - area)
}
