// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integ implements quadrature over overlap polygons and reference
// domains for the contact assembly: a Taylor-Wingate-Bos style triangle
// rule fanned about polygon centroids, plus parent-domain Gauss rules for
// quads and triangles
package integ

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/shp"
)

// NPTRI is the number of points of the degree-2 triangle rule
const NPTRI = 3

// barycentric coordinates and weight of the degree-2 triangle rule
var (
	twbL = [NPTRI][3]float64{
		{2.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
		{1.0 / 6.0, 1.0 / 6.0, 2.0 / 3.0},
	}
	twbW = 1.0 / 3.0
)

// IntegPts holds integration point coordinates and weights. For polygon
// rules the coordinates are physical (plane-local) and the weights carry
// the triangle areas, so integrating f=1 returns the polygon area. For
// parent-domain rules the coordinates are natural and the weights exclude
// the Jacobian.
type IntegPts struct {
	NumIPs int
	Xy     []float64 // [2*NumIPs] point coordinates, stride 2
	Wts    []float64 // [NumIPs] weights
}

// NewIntegPts returns workspace sized for the largest overlap polygon
func NewIntegPts() *IntegPts {
	nmax := NPTRI * com.MaxNodesPerOverlap
	return &IntegPts{
		Xy:  make([]float64, 2*nmax),
		Wts: make([]float64, nmax),
	}
}

// TWBPolyInt generates integration points on a polygon given in 2D
// coordinates by fanning triangles about the vertex-averaged centroid and
// applying the degree-2 triangle rule on each. Weights sum to the polygon
// area.
func TWBPolyInt(ip *IntegPts, x, y []float64, numVerts int) (err error) {
	if numVerts < 3 || numVerts > com.MaxNodesPerOverlap {
		return chk.Err("TWBPolyInt: invalid number of polygon vertices: %d", numVerts)
	}
	cx, cy, _ := geo.VertexAvgCentroid(x, y, nil, numVerts)
	ip.NumIPs = 0
	for i := 0; i < numVerts; i++ {
		j := (i + 1) % numVerts
		area := 0.5 * math.Abs((x[j]-x[i])*(cy-y[i])-(cx-x[i])*(y[j]-y[i]))
		for p := 0; p < NPTRI; p++ {
			k := ip.NumIPs
			ip.Xy[2*k] = twbL[p][0]*x[i] + twbL[p][1]*x[j] + twbL[p][2]*cx
			ip.Xy[2*k+1] = twbL[p][0]*y[i] + twbL[p][1]*y[j] + twbL[p][2]*cy
			ip.Wts[k] = twbW * area
			ip.NumIPs++
		}
	}
	return
}

// GaussPolyIntQuad fills ip with the 2x2 Gauss rule on the parent square
// [-1,1] x [-1,1]. Weights exclude the Jacobian.
func GaussPolyIntQuad(ip *IntegPts) {
	g := 1.0 / math.Sqrt(3.0)
	pts := [4][2]float64{{-g, -g}, {g, -g}, {g, g}, {-g, g}}
	ip.NumIPs = 4
	for k := 0; k < 4; k++ {
		ip.Xy[2*k] = pts[k][0]
		ip.Xy[2*k+1] = pts[k][1]
		ip.Wts[k] = 1.0
	}
}

// GaussPolyIntTri fills ip with the degree-2 rule on the parent triangle
// with vertices (0,0), (1,0) and (0,1). Weights sum to 1/2 and exclude the
// Jacobian.
func GaussPolyIntTri(ip *IntegPts) {
	pts := [3][2]float64{{1.0 / 6.0, 1.0 / 6.0}, {2.0 / 3.0, 1.0 / 6.0}, {1.0 / 6.0, 2.0 / 3.0}}
	ip.NumIPs = 3
	for k := 0; k < 3; k++ {
		ip.Xy[2*k] = pts[k][0]
		ip.Xy[2*k+1] = pts[k][1]
		ip.Wts[k] = 1.0 / 6.0
	}
}

// DetJ computes the surface Jacobian of the isoparametric map of a face
// with 3D coordinates at natural point (ξ,η): the norm of the cross product
// of the two tangent vectors
func DetJ(shape *shp.Shape, xf, yf, zf []float64, ξ, η float64) float64 {
	r := []float64{ξ, η}
	shape.Func(shape.S, shape.DSdR, r, true)
	var t1x, t1y, t1z, t2x, t2y, t2z float64
	for a := 0; a < shape.Nverts; a++ {
		t1x += shape.DSdR[a][0] * xf[a]
		t1y += shape.DSdR[a][0] * yf[a]
		t1z += shape.DSdR[a][0] * zf[a]
		t2x += shape.DSdR[a][1] * xf[a]
		t2y += shape.DSdR[a][1] * yf[a]
		t2z += shape.DSdR[a][1] * zf[a]
	}
	cx, cy, cz := geo.Cross3(t1x, t1y, t1z, t2x, t2y, t2z)
	return geo.Mag3(cx, cy, cz)
}
