// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cplane

import (
	"math"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/mesh"
)

// Plane2D is the common plane of one candidate edge pair in two dimensions:
// a line through the midpoint of the edge centroids with the flipped
// averaged normal, carrying the overlap segment and the gap kinematics.
type Plane2D struct {

	// pair
	Fid1 int
	Fid2 int

	// frame
	Px, Py   float64 // reference point
	Nx, Ny   float64 // unit normal
	E1x, E1y float64 // unit tangent, right handed with the normal

	// overlap segment
	SegX, SegY [2]float64 // global endpoints
	SegT       [2]float64 // tangent coordinates of the endpoints
	Area       float64    // overlap length

	// kinematics
	Cx, Cy     float64
	CXf1, CYf1 float64
	CXf2, CYf2 float64
	Gap        float64
	GapTol     float64
	InContact  bool
}

// Local drops a global point onto the tangent coordinate
func (o *Plane2D) Local(x, y float64) float64 {
	return (x-o.Px)*o.E1x + (y-o.Py)*o.E1y
}

// Global lifts a tangent coordinate back to global coordinates
func (o *Plane2D) Global(t float64) (x, y float64) {
	return o.Px + t*o.E1x, o.Py + t*o.E1y
}

// CheckEdgePair performs the narrow phase for one 2D edge pair and fills
// cp. The semantics mirror CheckFacePair with the overlap polygon replaced
// by the overlap of the projected edge intervals.
func CheckEdgePair(m1 *mesh.Mesh, f1 int, m2 *mesh.Mesh, f2 int,
	params *com.Params, tied, fullOverlap bool, cp *Plane2D) (interact bool, ferr com.FaceGeomError) {

	cp.Fid1, cp.Fid2 = f1, f2
	cp.Area = 0
	cp.InContact = false

	n1x, n1y, _ := m1.FaceNormal(f1)
	n2x, n2y, _ := m2.FaceNormal(f2)
	if n1x*n2x+n1y*n2y >= 0 {
		return false, com.NoFaceGeomError
	}

	nx, ny := n2x-n1x, n2y-n1y
	mag := geo.Mag2(nx, ny)
	cp.Nx, cp.Ny = nx/mag, ny/mag
	cp.E1x, cp.E1y = cp.Ny, -cp.Nx
	c1x, c1y, _ := m1.FaceCentroid(f1)
	c2x, c2y, _ := m2.FaceCentroid(f2)
	cp.Px = 0.5 * (c1x + c2x)
	cp.Py = 0.5 * (c1y + c2y)

	// overlap of the projected edge intervals
	var xf, yf, zf [com.MaxNodesPerElem]float64
	m1.FaceCoords(f1, xf[:], yf[:], zf[:])
	lo1 := cp.Local(xf[0], yf[0])
	hi1 := cp.Local(xf[1], yf[1])
	if lo1 > hi1 {
		lo1, hi1 = hi1, lo1
	}
	m2.FaceCoords(f2, xf[:], yf[:], zf[:])
	lo2 := cp.Local(xf[0], yf[0])
	hi2 := cp.Local(xf[1], yf[1])
	if lo2 > hi2 {
		lo2, hi2 = hi2, lo2
	}
	lo, hi := math.Max(lo1, lo2), math.Min(hi1, hi2)

	r1, r2 := m1.FaceRadius(f1), m2.FaceRadius(f2)
	length := hi - lo
	if length <= params.LenCollapseRatio*math.Min(r1, r2) {
		return false, com.NoFaceGeomError
	}
	if length < params.OverlapAreaFrac*math.Min(m1.Area[f1], m2.Area[f2]) {
		return false, com.NoFaceGeomError
	}
	cp.SegT[0], cp.SegT[1] = lo, hi
	cp.SegX[0], cp.SegY[0] = cp.Global(lo)
	cp.SegX[1], cp.SegY[1] = cp.Global(hi)
	cp.Area = length

	// segment midpoint and its projections onto each edge
	cp.Cx, cp.Cy = cp.Global(0.5 * (lo + hi))
	cp.CXf1, cp.CYf1 = geo.ProjectPointToSegment(cp.Cx, cp.Cy, n1x, n1y, c1x, c1y)
	cp.CXf2, cp.CYf2 = geo.ProjectPointToSegment(cp.Cx, cp.Cy, n2x, n2y, c2x, c2y)

	cp.Gap = (cp.CXf1-cp.CXf2)*cp.Nx + (cp.CYf1-cp.CYf2)*cp.Ny
	cp.GapTol = -params.GapTolRatio * math.Max(r1, r2)
	if tied {
		cp.GapTol = params.GapTiedTol * math.Max(r1, r2)
	}
	if fullOverlap {
		cp.InContact = true
	} else {
		cp.InContact = cp.Gap < cp.GapTol
	}
	return true, com.NoFaceGeomError
}
