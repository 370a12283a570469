// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cplane implements the narrow phase of contact detection. For each
// candidate face pair it constructs the common plane: the averaged plane
// between the two faces, the polygon (or segment, in 2D) of overlap of the
// projected faces, the overlap centroid and its projections back onto each
// face, and the signed gap. Pairs whose overlap degenerates are reported as
// non candidates; bad face geometry is reported through the face geometry
// error codes without aborting the cycle.
package cplane

import (
	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/mesh"
	"github.com/Zhoneym/Tribol/shp"
)

// FaceFrame is a reusable workspace that evaluates the shape functions of a
// face at points on (or near) its plane, by inverse mapping in an in-plane
// orthonormal basis. One frame serves one face geometry type; goroutineId
// selects a private shape copy so frames can be used in parallel loops.
type FaceFrame struct {

	// results of the last Eval
	S []float64 // shape function values
	R []float64 // natural coordinates

	// internal
	shape *shp.Shape
	ndim  int // 2 for edges, 3 for faces
	npe   int

	// frame: origin, in-plane basis
	ox, oy, oz    float64
	e1x, e1y, e1z float64
	e2x, e2y, e2z float64

	// edge data (2D)
	tx, ty float64 // unit tangent
	length float64

	// scratch
	xl, yl [com.MaxNodesPerElem]float64
	xmat   [][]float64
	yvec   []float64
}

// NewFaceFrame returns a frame for the given face geometry type
func NewFaceFrame(geoType string, goroutineId int) (o *FaceFrame, err error) {
	o = new(FaceFrame)
	o.shape = shp.Get(geoType, goroutineId)
	if o.shape == nil {
		return nil, chk.Err("cannot find shape %q for face frame", geoType)
	}
	o.npe = o.shape.Nverts
	o.ndim = 3
	if o.shape.Gndim == 1 {
		o.ndim = 2
	}
	o.S = make([]float64, o.npe)
	o.R = make([]float64, 2)
	o.xmat = make([][]float64, 2)
	o.yvec = make([]float64, 2)
	return
}

// Set builds the frame of face f of m on the face's own average plane:
// origin at the face centroid, basis from the first edge by Gram-Schmidt
// against the face normal
func (o *FaceFrame) Set(m *mesh.Mesh, f int) (err error) {
	var xf, yf, zf [com.MaxNodesPerElem]float64
	m.FaceCoords(f, xf[:], yf[:], zf[:])
	if o.ndim == 2 {
		o.ox, o.oy = xf[0], yf[0]
		dx, dy := xf[1]-xf[0], yf[1]-yf[0]
		o.length = geo.Mag2(dx, dy)
		if o.length < mesh.ZERO_FACE_TOL {
			return chk.Err("face %d of mesh %d has zero length", f, m.Id)
		}
		o.tx, o.ty = dx/o.length, dy/o.length
		return
	}
	nx, ny, nz := m.FaceNormal(f)
	o.ox, o.oy, o.oz = m.FaceCentroid(f)
	err = o.setBasis(nx, ny, nz, xf[1]-xf[0], yf[1]-yf[0], zf[1]-zf[0])
	if err != nil {
		return
	}
	o.setLocalVerts(xf[:], yf[:], zf[:])
	return
}

// SetOnPlane builds the frame of face f of m on the common plane cp, with
// the face vertices projected along the plane normal. Mortar integration
// points live on the plane, so inverse mapping happens there.
func (o *FaceFrame) SetOnPlane(m *mesh.Mesh, f int, cp *Plane3D) (err error) {
	if o.ndim == 2 {
		return chk.Err("common plane frames are for 3D faces only")
	}
	var xf, yf, zf [com.MaxNodesPerElem]float64
	m.FaceCoords(f, xf[:], yf[:], zf[:])
	o.ox, o.oy, o.oz = cp.Px, cp.Py, cp.Pz
	o.e1x, o.e1y, o.e1z = cp.E1x, cp.E1y, cp.E1z
	o.e2x, o.e2y, o.e2z = cp.E2x, cp.E2y, cp.E2z
	o.setLocalVerts(xf[:], yf[:], zf[:])
	return
}

// Eval inverse maps the point (px,py,pz) and stores the natural coordinates
// in R and the shape function values in S. The point is first dropped into
// the frame, so points off the plane are evaluated at their projection.
func (o *FaceFrame) Eval(px, py, pz float64) (err error) {
	if o.ndim == 2 {
		t := ((px-o.ox)*o.tx + (py-o.oy)*o.ty) / o.length
		o.R[0] = 2.0*t - 1.0
		o.shape.Func(o.S, nil, o.R, false)
		return
	}
	o.yvec[0] = (px-o.ox)*o.e1x + (py-o.oy)*o.e1y + (pz-o.oz)*o.e1z
	o.yvec[1] = (px-o.ox)*o.e2x + (py-o.oy)*o.e2y + (pz-o.oz)*o.e2z
	if err = o.shape.InvMap(o.R, o.yvec, o.xmat); err != nil {
		return
	}
	o.shape.Func(o.S, nil, o.R, false)
	return
}

// Inside reports whether the last evaluated point lies in the reference
// domain, within tol
func (o *FaceFrame) Inside(tol float64) bool {
	return o.shape.InsideRef(o.R, tol)
}

// Interp returns the S-weighted combination of one nodal value per vertex
func (o *FaceFrame) Interp(vals []float64) (res float64) {
	for i := 0; i < o.npe; i++ {
		res += o.S[i] * vals[i]
	}
	return
}

// setBasis builds the in-plane basis from the unit normal and a seed vector
func (o *FaceFrame) setBasis(nx, ny, nz, sx, sy, sz float64) error {
	d := geo.Dot3(sx, sy, sz, nx, ny, nz)
	ex, ey, ez := sx-d*nx, sy-d*ny, sz-d*nz
	mag := geo.Mag3(ex, ey, ez)
	if mag < mesh.ZERO_FACE_TOL {
		return chk.Err("cannot build in-plane basis: seed parallel to normal")
	}
	o.e1x, o.e1y, o.e1z = ex/mag, ey/mag, ez/mag
	o.e2x, o.e2y, o.e2z = geo.Cross3(nx, ny, nz, o.e1x, o.e1y, o.e1z)
	return nil
}

// setLocalVerts drops the face vertices into the frame
func (o *FaceFrame) setLocalVerts(xf, yf, zf []float64) {
	geo.GlobalTo2DLocal(xf, yf, zf, o.npe,
		o.e1x, o.e1y, o.e1z, o.e2x, o.e2y, o.e2z, o.ox, o.oy, o.oz,
		o.xl[:], o.yl[:])
	o.xmat[0] = o.xl[:o.npe]
	o.xmat[1] = o.yl[:o.npe]
}
