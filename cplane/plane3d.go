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

// Plane3D is the common plane of one candidate face pair: the averaged
// plane between the faces, the polygon of overlap of the projected faces,
// and the gap kinematics. The unit normal is the normalized flipped average
// of the face normals and points in the direction of the second face's
// normal; {E1,E2,N} is right handed, so the overlap polygon is counter
// clockwise about the normal.
type Plane3D struct {

	// pair
	Fid1 int // face on the first mesh
	Fid2 int // face on the second mesh

	// frame
	Px, Py, Pz    float64 // reference point: midpoint of the face centroids
	Nx, Ny, Nz    float64 // unit normal
	E1x, E1y, E1z float64 // in-plane basis
	E2x, E2y, E2z float64

	// overlap polygon
	NumPolyVert int
	PolyLocX    [com.MaxNodesPerOverlap]float64 // plane-local coordinates
	PolyLocY    [com.MaxNodesPerOverlap]float64
	PolyX       [com.MaxNodesPerOverlap]float64 // global coordinates
	PolyY       [com.MaxNodesPerOverlap]float64
	PolyZ       [com.MaxNodesPerOverlap]float64
	Area        float64

	// kinematics
	Cx, Cy, Cz       float64 // overlap centroid on the plane
	CXf1, CYf1, CZf1 float64 // centroid projected onto each face
	CXf2, CYf2, CZf2 float64
	Gap              float64 // (cf1 - cf2) dot n
	GapTol           float64
	InContact        bool
}

// Local drops a global point into the plane frame
func (o *Plane3D) Local(x, y, z float64) (lx, ly float64) {
	return geo.GlobalTo2DLocalPoint(x, y, z,
		o.E1x, o.E1y, o.E1z, o.E2x, o.E2y, o.E2z, o.Px, o.Py, o.Pz)
}

// Global lifts a plane-local point back to global coordinates
func (o *Plane3D) Global(lx, ly float64) (x, y, z float64) {
	return geo.Local2DToGlobal(lx, ly,
		o.E1x, o.E1y, o.E1z, o.E2x, o.E2y, o.E2z, o.Px, o.Py, o.Pz)
}

// CheckFacePair performs the narrow phase for one 3D face pair and fills
// cp. interact reports whether the pair overlaps enough to stay in the
// active set; cp.InContact additionally applies the gap criterion. With
// fullOverlap (mortar methods) every interacting pair counts as in contact
// since activity is decided later by the pressure complementarity; without
// it (common plane), tied selects the positive tied gap tolerance. Face
// geometry problems are reported through ferr and drop the pair.
func CheckFacePair(m1 *mesh.Mesh, f1 int, m2 *mesh.Mesh, f2 int,
	params *com.Params, tied, fullOverlap bool, cp *Plane3D) (interact bool, ferr com.FaceGeomError) {

	cp.Fid1, cp.Fid2 = f1, f2
	cp.NumPolyVert = 0
	cp.Area = 0
	cp.InContact = false

	// only opposing faces can touch
	n1x, n1y, n1z := m1.FaceNormal(f1)
	n2x, n2y, n2z := m2.FaceNormal(f2)
	if geo.Dot3(n1x, n1y, n1z, n2x, n2y, n2z) >= 0 {
		return false, com.NoFaceGeomError
	}

	// averaged plane: flipped average of the normals through the midpoint of
	// the face centroids. Opposition bounds the magnitude away from zero.
	nx, ny, nz := n2x-n1x, n2y-n1y, n2z-n1z
	mag := geo.Mag3(nx, ny, nz)
	cp.Nx, cp.Ny, cp.Nz = nx/mag, ny/mag, nz/mag
	c1x, c1y, c1z := m1.FaceCentroid(f1)
	c2x, c2y, c2z := m2.FaceCentroid(f2)
	cp.Px = 0.5 * (c1x + c2x)
	cp.Py = 0.5 * (c1y + c2y)
	cp.Pz = 0.5 * (c1z + c2z)

	// in-plane basis: Gram-Schmidt of the first edge of face 1
	var x1f, y1f, z1f, x2f, y2f, z2f [com.MaxNodesPerElem]float64
	m1.FaceCoords(f1, x1f[:], y1f[:], z1f[:])
	m2.FaceCoords(f2, x2f[:], y2f[:], z2f[:])
	sx, sy, sz := x1f[1]-x1f[0], y1f[1]-y1f[0], z1f[1]-z1f[0]
	d := geo.Dot3(sx, sy, sz, cp.Nx, cp.Ny, cp.Nz)
	ex, ey, ez := sx-d*cp.Nx, sy-d*cp.Ny, sz-d*cp.Nz
	emag := geo.Mag3(ex, ey, ez)
	if emag < mesh.ZERO_FACE_TOL {
		return false, com.InvalidFaceInput
	}
	cp.E1x, cp.E1y, cp.E1z = ex/emag, ey/emag, ez/emag
	cp.E2x, cp.E2y, cp.E2z = geo.Cross3(cp.Nx, cp.Ny, cp.Nz, cp.E1x, cp.E1y, cp.E1z)

	// project both faces into the plane frame. Face 1 winds about its own
	// normal, which opposes the plane normal, so its projection is reversed
	// to restore counter clockwise order.
	npe1, npe2 := m1.Npe, m2.Npe
	var xl1, yl1, xl2, yl2 [com.MaxNodesPerElem]float64
	geo.GlobalTo2DLocal(x1f[:], y1f[:], z1f[:], npe1,
		cp.E1x, cp.E1y, cp.E1z, cp.E2x, cp.E2y, cp.E2z, cp.Px, cp.Py, cp.Pz, xl1[:], yl1[:])
	geo.GlobalTo2DLocal(x2f[:], y2f[:], z2f[:], npe2,
		cp.E1x, cp.E1y, cp.E1z, cp.E2x, cp.E2y, cp.E2z, cp.Px, cp.Py, cp.Pz, xl2[:], yl2[:])
	geo.ElemReverse(xl1[:], yl1[:], npe1)

	// polygon of overlap
	r1, r2 := m1.FaceRadius(f1), m2.FaceRadius(f2)
	lenTol := params.LenCollapseRatio * math.Min(r1, r2)
	var polyX, polyY [com.MaxNodesPerOverlap]float64
	nV, area, ferr := geo.PolyInter2D(xl1[:], yl1[:], npe1, xl2[:], yl2[:], npe2,
		params.PosTol, lenTol, true, polyX[:], polyY[:])
	if ferr != com.NoFaceGeomError {
		return false, ferr
	}
	if nV < 3 {
		return false, com.NoFaceGeomError
	}

	// lift to global, enforce counter clockwise about the plane normal, and
	// refresh the local polygon from the (possibly reordered) global one
	for i := 0; i < nV; i++ {
		cp.PolyX[i], cp.PolyY[i], cp.PolyZ[i] = cp.Global(polyX[i], polyY[i])
	}
	geo.PolyReorderWithNormal(cp.PolyX[:], cp.PolyY[:], cp.PolyZ[:], nV, cp.Nx, cp.Ny, cp.Nz)
	for i := 0; i < nV; i++ {
		cp.PolyLocX[i], cp.PolyLocY[i] = cp.Local(cp.PolyX[i], cp.PolyY[i], cp.PolyZ[i])
	}
	cp.NumPolyVert = nV
	cp.Area = area

	// restrict the overlap to the interpenetrating portions of both faces
	if params.AutoInterpenCheck && !fullOverlap {
		if ferr = cp.clipInterpen(x1f[:], y1f[:], z1f[:], npe1, x2f[:], y2f[:], z2f[:], npe2); ferr != com.NoFaceGeomError {
			return false, ferr
		}
		if cp.NumPolyVert < 3 {
			cp.NumPolyVert = 0
			cp.Area = 0
			return false, com.NoFaceGeomError
		}
	}

	// reject slivers relative to the smaller face
	if cp.Area < params.OverlapAreaFrac*math.Min(m1.Area[f1], m2.Area[f2]) {
		cp.NumPolyVert = 0
		cp.Area = 0
		return false, com.NoFaceGeomError
	}

	// overlap centroid on the plane and its projections onto each face
	lcx, lcy := geo.PolyCentroid(cp.PolyLocX[:], cp.PolyLocY[:], cp.NumPolyVert)
	cp.Cx, cp.Cy, cp.Cz = cp.Global(lcx, lcy)
	cp.CXf1, cp.CYf1, cp.CZf1 = geo.ProjectPointToPlane(cp.Cx, cp.Cy, cp.Cz, n1x, n1y, n1z, c1x, c1y, c1z)
	cp.CXf2, cp.CYf2, cp.CZf2 = geo.ProjectPointToPlane(cp.Cx, cp.Cy, cp.Cz, n2x, n2y, n2z, c2x, c2y, c2z)

	// signed gap and contact decision
	cp.Gap = geo.Dot3(cp.CXf1-cp.CXf2, cp.CYf1-cp.CYf2, cp.CZf1-cp.CZf2, cp.Nx, cp.Ny, cp.Nz)
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

// ProjectFaceLocal writes the plane-local coordinates of the vertices of
// face f of m, projected along the plane normal
func (o *Plane3D) ProjectFaceLocal(m *mesh.Mesh, f int, xl, yl []float64) {
	var xf, yf, zf [com.MaxNodesPerElem]float64
	m.FaceCoords(f, xf[:], yf[:], zf[:])
	geo.GlobalTo2DLocal(xf[:], yf[:], zf[:], m.Npe,
		o.E1x, o.E1y, o.E1z, o.E2x, o.E2y, o.E2z, o.Px, o.Py, o.Pz, xl, yl)
}

// clipInterpen intersects the overlap polygon with the half planes where
// face 1 lies beyond the common plane and face 2 lies short of it, which is
// where the two bodies actually interpenetrate. The test per face is the
// affine interpolation, over the plane, of the signed vertex heights.
func (o *Plane3D) clipInterpen(x1f, y1f, z1f []float64, npe1 int, x2f, y2f, z2f []float64, npe2 int) com.FaceGeomError {

	// affine height fields h(lx,ly) = a*lx + b*ly + c of each face
	a1, b1, c1, ok := o.heightField(x1f, y1f, z1f, npe1)
	if !ok {
		return com.InvalidFaceInput
	}
	a2, b2, c2, ok := o.heightField(x2f, y2f, z2f, npe2)
	if !ok {
		return com.InvalidFaceInput
	}

	// keep h1 <= 0 (face 1 beyond the plane against the normal), then
	// h2 >= 0 (face 2 short of the plane along the normal)
	var xa, ya, xb, yb [com.MaxNodesPerOverlap + 2]float64
	na := clipHalfplane(o.PolyLocX[:], o.PolyLocY[:], o.NumPolyVert, -a1, -b1, -c1, xa[:], ya[:])
	nb := clipHalfplane(xa[:], ya[:], na, a2, b2, c2, xb[:], yb[:])
	if nb > com.MaxNodesPerOverlap {
		return com.FaceVertexIndexExceedsOverlapVertices
	}
	o.NumPolyVert = nb
	if nb < 3 {
		o.Area = 0
		return com.NoFaceGeomError
	}
	copy(o.PolyLocX[:], xb[:nb])
	copy(o.PolyLocY[:], yb[:nb])
	for i := 0; i < nb; i++ {
		o.PolyX[i], o.PolyY[i], o.PolyZ[i] = o.Global(o.PolyLocX[i], o.PolyLocY[i])
	}
	o.Area = geo.PolyArea(o.PolyLocX[:], o.PolyLocY[:], nb)
	return com.NoFaceGeomError
}

// heightField fits h(lx,ly) = a*lx + b*ly + c through the signed heights of
// the first three face vertices above the plane. Faces are planar (or near
// planar for warped quads), so three vertices determine the field.
func (o *Plane3D) heightField(xf, yf, zf []float64, npe int) (a, b, c float64, ok bool) {
	var lx, ly, h [3]float64
	for i := 0; i < 3 && i < npe; i++ {
		lx[i], ly[i] = o.Local(xf[i], yf[i], zf[i])
		h[i] = geo.Dot3(xf[i]-o.Px, yf[i]-o.Py, zf[i]-o.Pz, o.Nx, o.Ny, o.Nz)
	}
	det := (lx[1]-lx[0])*(ly[2]-ly[0]) - (lx[2]-lx[0])*(ly[1]-ly[0])
	if math.Abs(det) < mesh.ZERO_FACE_TOL {
		return 0, 0, 0, false
	}
	a = ((h[1]-h[0])*(ly[2]-ly[0]) - (h[2]-h[0])*(ly[1]-ly[0])) / det
	b = ((lx[1]-lx[0])*(h[2]-h[0]) - (lx[2]-lx[0])*(h[1]-h[0])) / det
	c = h[0] - a*lx[0] - b*ly[0]
	return a, b, c, true
}

// clipHalfplane keeps the part of the ordered polygon where a*x+b*y+c >= 0,
// writing the result to xo, yo (sized one larger than the input)
func clipHalfplane(x, y []float64, n int, a, b, c float64, xo, yo []float64) (nout int) {
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		di := a*x[i] + b*y[i] + c
		dj := a*x[j] + b*y[j] + c
		if di >= 0 {
			xo[nout], yo[nout] = x[i], y[i]
			nout++
		}
		if (di > 0 && dj < 0) || (di < 0 && dj > 0) {
			t := di / (di - dj)
			xo[nout] = x[i] + t*(x[j]-x[i])
			yo[nout] = y[i] + t*(y[j]-y[i])
			nout++
		}
	}
	return
}
