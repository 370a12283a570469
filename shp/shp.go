// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for the linear contact
// face geometries: "lin2" edges, "tri3" triangles and "qua4" quadrilaterals
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	MINDET     = 1.0e-14 // minimum determinant allowed for dxdR
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data. Usage by concurrent goroutines requires one
// copy per goroutine; see Get.
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // dimension of natural coordinates; e.g. "lin2" => 1
	Nverts    int         // number of vertices
	VtkCode   int         // VTK cell code
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: line
	Jvec []float64 // Jacobian vector dxdR for line elements
	Gvec []float64 // [nverts] G == dSdx. derivative of shape function
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.VtkCode = o.VtkCode
	p.NatCoords = cloneMat(o.NatCoords)
	p.init_scratchpad()
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// CalcAtR calculates S (and G, J when derivs) at natural coordinate r
//  Input:
//   x[gndim][nverts] -- coordinates matrix of element
//   r[gndim]         -- natural coordinates
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtR(x [][]float64, r []float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r, derivs)
	if !derivs {
		return
	}

	if o.Gndim == 1 {
		// calculate Jvec == dxdR
		for i := 0; i < len(x); i++ {
			o.Jvec[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}

		// calculate J = norm of Jvec
		o.J = 0.0
		for i := 0; i < len(x); i++ {
			o.J += o.Jvec[i] * o.Jvec[i]
		}
		o.J = math.Sqrt(o.J)

		// calculate G
		for m := 0; m < o.Nverts; m++ {
			o.Gvec[m] = o.DSdR[m][0] / o.J
		}
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	if err = o.invJacobian(); err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// RealCoords interpolates the real coordinates y of natural point r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   r[gndim]        -- natural coordinates
//  Output:
//   y[ndim] -- real coordinates
func (o *Shape) RealCoords(y, r []float64, x [][]float64) {
	o.Func(o.S, o.DSdR, r, false)
	for i := 0; i < len(x); i++ {
		y[i] = 0.0
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
}

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[gndim]         -- point coordinates
//   x[gndim][nverts] -- coordinates matrix of element
//  Output:
//   r[gndim] -- natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {

	// check
	if o.Gndim == 1 {
		return chk.Err("inverse mapping is not implemented in 1D")
	}

	var δRnorm float64
	e := make([]float64, o.Gndim)  // residual
	δr := make([]float64, o.Gndim) // corrector
	for i := 0; i < o.Gndim; i++ {
		r[i] = 0 // first trial
	}
	it := 0
	derivs := true
	for it = 0; it < INVMAP_NIT; it++ {

		// shape functions and derivatives
		o.Func(o.S, o.DSdR, r, derivs)

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			e[i] = y[i]
			for j := 0; j < o.Nverts; j++ {
				e[i] -= x[i][j] * o.S[j]
			}
		}

		// Jmat == dxdR = x * dSdR
		for i := 0; i < o.Gndim; i++ {
			for j := 0; j < o.Gndim; j++ {
				o.DxdR[i][j] = 0.0
				for k := 0; k < o.Nverts; k++ {
					o.DxdR[i][j] += x[i][k] * o.DSdR[k][j]
				}
			}
		}

		// Jimat == dRdx = Jmat.inverse()
		if err = o.invJacobian(); err != nil {
			return
		}

		// corrector: dR = Jimat * e
		for i := 0; i < o.Gndim; i++ {
			δr[i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				δr[i] += o.DRdx[i][j] * e[j]
			}
		}

		// converged?
		δRnorm = 0.0
		for i := 0; i < o.Gndim; i++ {
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
			// fix r outside range
			if r[i] < -1.0 || r[i] > 1.0 {
				if math.Abs(r[i]-(-1.0)) < INVMAP_TOL {
					r[i] = -1.0
				}
				if math.Abs(r[i]-1.0) < INVMAP_TOL {
					r[i] = 1.0
				}
			}
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			break
		}
	}

	// check
	if it == INVMAP_NIT {
		return chk.Err("%s: inverse mapping did not converge after %d iterations", o.Type, it)
	}
	return
}

// InsideRef tells whether natural coordinates r lie inside (or within tol
// of) the reference domain of this shape
func (o *Shape) InsideRef(r []float64, tol float64) bool {
	switch o.Type {
	case "lin2":
		return r[0] >= -1.0-tol && r[0] <= 1.0+tol
	case "tri3":
		return r[0] >= -tol && r[1] >= -tol && r[0]+r[1] <= 1.0+tol
	case "qua4":
		return r[0] >= -1.0-tol && r[0] <= 1.0+tol && r[1] >= -1.0-tol && r[1] <= 1.0+tol
	}
	chk.Panic("cannot handle Type=%q", o.Type)
	return false
}

// invJacobian inverts DxdR into DRdx, setting J to the determinant
func (o *Shape) invJacobian() (err error) {
	if o.Gndim != 2 {
		return chk.Err("%s: jacobian inversion requires gndim=2", o.Type)
	}
	o.J = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[0][1]*o.DxdR[1][0]
	if math.Abs(o.J) < MINDET {
		return chk.Err("%s: determinant of jacobian is near zero: %g", o.Type, o.J)
	}
	o.DRdx[0][0] = o.DxdR[1][1] / o.J
	o.DRdx[0][1] = -o.DxdR[0][1] / o.J
	o.DRdx[1][0] = -o.DxdR[1][0] / o.J
	o.DRdx[1][1] = o.DxdR[0][0] / o.J
	return
}

// init_scratchpad initialises volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = allocMat(o.Nverts, o.Gndim)
	o.DxdR = allocMat(o.Gndim, o.Gndim)
	o.DRdx = allocMat(o.Gndim, o.Gndim)
	o.G = allocMat(o.Nverts, o.Gndim)
	if o.Gndim == 1 {
		o.Jvec = make([]float64, 3)
		o.Gvec = make([]float64, o.Nverts)
	}
}

func allocMat(m, n int) (mat [][]float64) {
	mat = make([][]float64, m)
	for i := 0; i < m; i++ {
		mat[i] = make([]float64, n)
	}
	return
}

func cloneMat(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := 0; i < len(a); i++ {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}
