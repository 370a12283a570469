// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// FlatBlocksPenalty implements the kinematic penalty response of two
// parallel flat blocks pressed together: a uniform pressure proportional
// to the interpenetration acting over the contact patch
//
//         +--------------+
//         |      B       |
//         +==============+  <- contact patch, area a
//         |      A       |
//         +--------------+
//
type FlatBlocksPenalty struct {
	k float64 // kinematic penalty stiffness
	g float64 // signed gap; negative means interpenetration
	a float64 // contact patch area
}

// Init initialises this structure
func (o *FlatBlocksPenalty) Init(prms fun.Prms) {

	// default values
	o.k = 1.0
	o.g = 0.0
	o.a = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "k":
			o.k = p.V
		case "g":
			o.g = p.V
		case "a":
			o.a = p.V
		}
	}
}

// Pressure computes the contact pressure; zero for a non-negative gap
func (o *FlatBlocksPenalty) Pressure() float64 {
	if o.g >= 0 {
		return 0
	}
	return -o.k * o.g
}

// TotalForce computes the normal force resultant over the patch
func (o *FlatBlocksPenalty) TotalForce() float64 {
	return o.Pressure() * o.a
}

// CompareForce compares a computed force resultant
//  Output:
//   e -- absolute error
func (o *FlatBlocksPenalty) CompareForce(tol, f float64, verbose bool) (e float64) {
	ana := o.TotalForce()
	if verbose {
		chk.PrintAnaNum("force", tol, ana, f, verbose)
	}
	return math.Abs(ana - f)
}
