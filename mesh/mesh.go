// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements read-only views over host-registered contact
// surfaces and the registry that owns them. A Mesh never copies the host
// arrays; it keeps slices into them plus derived per-face data (normals,
// centroids, radii, areas) that is recomputed at the start of every cycle.
package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/geo"
)

// Mesh is a view over one contact surface: a set of linear faces (2-node
// edges in 2D, 3-node triangles or 4-node quadrilaterals in 3D) whose
// connectivity indexes the nodal arrays registered by the host. Node ids are
// local to this mesh and run from 0 to Nnodes-1. A mesh with zero faces is
// legal and acts as a silent no-op in every coupling scheme that uses it.
type Mesh struct {

	// registered data
	Id     int       // identifier given at registration
	Type   string    // face geometry: "lin2", "tri3" or "qua4"
	Ndim   int       // spatial dimension: 2 for "lin2", 3 otherwise
	Nelems int       // number of faces
	Npe    int       // number of nodes per face
	Nnodes int       // length of the nodal arrays
	Conn   []int     // [Nelems*Npe] face connectivity
	X      []float64 // [Nnodes] nodal coordinates
	Y      []float64 // [Nnodes]
	Z      []float64 // [Nnodes]; nil in 2D

	// optional registered fields
	Ux, Uy, Uz []float64 // [Nnodes] nodal displacements
	Vx, Vy, Vz []float64 // [Nnodes] nodal velocities
	Fx, Fy, Fz []float64 // [Nnodes] nodal response; contact forces are accumulated here
	Gaps       []float64 // [Nnodes] nodal gaps written by mortar methods
	Press      []float64 // [Nnodes] nodal pressures for Lagrange multiplier enforcement
	Thickness  []float64 // [Nelems] element thickness along the face normal
	MatMod     []float64 // [Nelems] element material (Young's) modulus
	PenScale   []float64 // [Nelems] element penalty scale factors

	// memory space the host arrays live in
	MemSpace com.MemorySpace

	// derived face data; see ComputeFaceData
	Nx, Ny, Nz []float64 // [Nelems] outward unit normals
	Cx, Cy, Cz []float64 // [Nelems] vertex averaged centroids
	Radius     []float64 // [Nelems] max vertex distance from centroid
	Area       []float64 // [Nelems] face area; edge length in 2D

	surfNodes []int // cache: sorted unique node ids referenced by Conn
}

// ZERO_FACE_TOL is the normal magnitude (edge length in 2D) below which a
// face counts as degenerate
const ZERO_FACE_TOL = 1e-30

// geometry keys to number of nodes and spatial dimension
var meshGeomNpe = map[string]int{"lin2": 2, "tri3": 3, "qua4": 4}
var meshGeomDim = map[string]int{"lin2": 2, "tri3": 3, "qua4": 3}

// New creates a mesh view over host arrays. conn holds nelems*npe local node
// ids; x, y (and z in 3D) must have nnodes entries. A zero-face mesh may pass
// nil arrays. The face data arrays are allocated here but only filled by
// ComputeFaceData.
func New(id int, geoType string, nelems, nnodes int, conn []int, x, y, z []float64) (o *Mesh, err error) {
	npe, ok := meshGeomNpe[geoType]
	if !ok {
		err = chk.Err("mesh %d: unknown face geometry %q", id, geoType)
		return
	}
	ndim := meshGeomDim[geoType]
	if nelems < 0 || nnodes < 0 {
		err = chk.Err("mesh %d: negative counts: nelems=%d nnodes=%d", id, nelems, nnodes)
		return
	}
	if nelems > 0 {
		if len(conn) < nelems*npe {
			err = chk.Err("mesh %d: connectivity has %d entries; need %d", id, len(conn), nelems*npe)
			return
		}
		if len(x) < nnodes || len(y) < nnodes {
			err = chk.Err("mesh %d: nodal arrays shorter than nnodes=%d", id, nnodes)
			return
		}
		if ndim == 3 && len(z) < nnodes {
			err = chk.Err("mesh %d: 3D face geometry %q requires z coordinates", id, geoType)
			return
		}
		for i := 0; i < nelems*npe; i++ {
			if conn[i] < 0 || conn[i] >= nnodes {
				err = chk.Err("mesh %d: connectivity entry %d: node id %d out of range [0,%d)", id, i, conn[i], nnodes)
				return
			}
		}
	}
	o = &Mesh{
		Id:     id,
		Type:   geoType,
		Ndim:   ndim,
		Nelems: nelems,
		Npe:    npe,
		Nnodes: nnodes,
		Conn:   conn,
		X:      x,
		Y:      y,
		Z:      z,
		Nx:     make([]float64, nelems),
		Ny:     make([]float64, nelems),
		Nz:     make([]float64, nelems),
		Cx:     make([]float64, nelems),
		Cy:     make([]float64, nelems),
		Cz:     make([]float64, nelems),
		Radius: make([]float64, nelems),
		Area:   make([]float64, nelems),
	}
	return
}

// SetVelocities registers nodal velocity arrays. vz may be nil in 2D.
func (o *Mesh) SetVelocities(vx, vy, vz []float64) (err error) {
	if err = o.checkNodal("velocities", vx, vy, vz); err != nil {
		return
	}
	o.Vx, o.Vy, o.Vz = vx, vy, vz
	return
}

// SetResponse registers the nodal force arrays that contact kernels
// accumulate into. fz may be nil in 2D.
func (o *Mesh) SetResponse(fx, fy, fz []float64) (err error) {
	if err = o.checkNodal("response", fx, fy, fz); err != nil {
		return
	}
	o.Fx, o.Fy, o.Fz = fx, fy, fz
	return
}

// SetDisplacements registers nodal displacement arrays. uz may be nil in 2D.
func (o *Mesh) SetDisplacements(ux, uy, uz []float64) (err error) {
	if err = o.checkNodal("displacements", ux, uy, uz); err != nil {
		return
	}
	o.Ux, o.Uy, o.Uz = ux, uy, uz
	return
}

// SetGaps registers the nodal gap array written by mortar methods
func (o *Mesh) SetGaps(g []float64) (err error) {
	if len(g) < o.Nnodes {
		return chk.Err("mesh %d: gaps array has %d entries; need %d", o.Id, len(g), o.Nnodes)
	}
	o.Gaps = g
	return
}

// SetPressures registers the nodal pressure array read by mortar methods
// under Lagrange multiplier enforcement
func (o *Mesh) SetPressures(p []float64) (err error) {
	if len(p) < o.Nnodes {
		return chk.Err("mesh %d: pressures array has %d entries; need %d", o.Id, len(p), o.Nnodes)
	}
	o.Press = p
	return
}

// SetElemThickness registers per-face thickness along the outward normal
func (o *Mesh) SetElemThickness(t []float64) (err error) {
	if len(t) < o.Nelems {
		return chk.Err("mesh %d: thickness array has %d entries; need %d", o.Id, len(t), o.Nelems)
	}
	o.Thickness = t
	return
}

// SetMaterialModulus registers per-face material modulus used by the
// element-based penalty stiffness
func (o *Mesh) SetMaterialModulus(e []float64) (err error) {
	if len(e) < o.Nelems {
		return chk.Err("mesh %d: material modulus array has %d entries; need %d", o.Id, len(e), o.Nelems)
	}
	o.MatMod = e
	return
}

// SetPenaltyScale registers per-face penalty scale factors
func (o *Mesh) SetPenaltyScale(s []float64) (err error) {
	if len(s) < o.Nelems {
		return chk.Err("mesh %d: penalty scale array has %d entries; need %d", o.Id, len(s), o.Nelems)
	}
	o.PenScale = s
	return
}

func (o *Mesh) checkNodal(name string, ax, ay, az []float64) error {
	if len(ax) < o.Nnodes || len(ay) < o.Nnodes {
		return chk.Err("mesh %d: %s arrays shorter than nnodes=%d", o.Id, name, o.Nnodes)
	}
	if o.Ndim == 3 && len(az) < o.Nnodes {
		return chk.Err("mesh %d: %s z-array required in 3D", o.Id, name)
	}
	return nil
}

// registration flags
func (o *Mesh) HasVel() bool       { return o.Vx != nil }
func (o *Mesh) HasResponse() bool  { return o.Fx != nil }
func (o *Mesh) HasDisp() bool      { return o.Ux != nil }
func (o *Mesh) HasGaps() bool      { return o.Gaps != nil }
func (o *Mesh) HasPress() bool     { return o.Press != nil }
func (o *Mesh) HasThickness() bool { return o.Thickness != nil }
func (o *Mesh) HasMatMod() bool    { return o.MatMod != nil }
func (o *Mesh) HasPenScale() bool  { return o.PenScale != nil }

// NodeId returns the node id of local vertex i of face f
func (o *Mesh) NodeId(f, i int) int {
	return o.Conn[f*o.Npe+i]
}

// FaceCoords gathers the vertex coordinates of face f into x, y and z.
// z may be nil in 2D.
func (o *Mesh) FaceCoords(f int, x, y, z []float64) {
	for i := 0; i < o.Npe; i++ {
		n := o.Conn[f*o.Npe+i]
		x[i] = o.X[n]
		y[i] = o.Y[n]
		if z != nil {
			if o.Z != nil {
				z[i] = o.Z[n]
			} else {
				z[i] = 0
			}
		}
	}
}

// FaceVels gathers the vertex velocities of face f into vx, vy and vz.
// All outputs are zero when no velocities were registered. vz may be nil
// in 2D.
func (o *Mesh) FaceVels(f int, vx, vy, vz []float64) {
	for i := 0; i < o.Npe; i++ {
		n := o.Conn[f*o.Npe+i]
		if o.Vx == nil {
			vx[i], vy[i] = 0, 0
			if vz != nil {
				vz[i] = 0
			}
			continue
		}
		vx[i] = o.Vx[n]
		vy[i] = o.Vy[n]
		if vz != nil {
			if o.Vz != nil {
				vz[i] = o.Vz[n]
			} else {
				vz[i] = 0
			}
		}
	}
}

// FaceNormal returns the outward unit normal of face f
func (o *Mesh) FaceNormal(f int) (nx, ny, nz float64) {
	return o.Nx[f], o.Ny[f], o.Nz[f]
}

// FaceCentroid returns the vertex averaged centroid of face f
func (o *Mesh) FaceCentroid(f int) (cx, cy, cz float64) {
	return o.Cx[f], o.Cy[f], o.Cz[f]
}

// FaceRadius returns the bounding radius of face f
func (o *Mesh) FaceRadius(f int) float64 {
	return o.Radius[f]
}

// ElemThickness returns the registered thickness of face f
func (o *Mesh) ElemThickness(f int) float64 {
	return o.Thickness[f]
}

// ComputeFaceData computes, for every face, the vertex averaged centroid,
// the outward unit normal, the bounding radius and the area (edge length in
// 2D). Normals follow the registered vertex ordering: counter clockwise
// about the outward normal in 3D; in 2D the body must lie on the left of the
// edge direction. Faces that collapse to zero length or area are an error.
func (o *Mesh) ComputeFaceData() (err error) {
	var xf, yf, zf [com.MaxNodesPerElem]float64
	for f := 0; f < o.Nelems; f++ {
		o.FaceCoords(f, xf[:], yf[:], zf[:])
		cx, cy, cz := geo.VertexAvgCentroid(xf[:], yf[:], zf[:], o.Npe)
		o.Cx[f], o.Cy[f], o.Cz[f] = cx, cy, cz
		switch {
		case o.Ndim == 2:
			dx, dy := xf[1]-xf[0], yf[1]-yf[0]
			l := geo.Mag2(dx, dy)
			if l < ZERO_FACE_TOL {
				return chk.Err("mesh %d: face %d has zero length", o.Id, f)
			}
			o.Nx[f], o.Ny[f], o.Nz[f] = dy/l, -dx/l, 0
			o.Area[f] = l
		case o.Npe == 3:
			nx, ny, nz := geo.Cross3(xf[1]-xf[0], yf[1]-yf[0], zf[1]-zf[0],
				xf[2]-xf[0], yf[2]-yf[0], zf[2]-zf[0])
			mag := geo.Mag3(nx, ny, nz)
			if mag < ZERO_FACE_TOL {
				return chk.Err("mesh %d: face %d has zero area", o.Id, f)
			}
			o.Nx[f], o.Ny[f], o.Nz[f] = nx/mag, ny/mag, nz/mag
			o.Area[f] = 0.5 * mag
		default:
			// for planar quads the diagonal cross product equals the
			// summed edge cross products
			nx, ny, nz := geo.Cross3(xf[2]-xf[0], yf[2]-yf[0], zf[2]-zf[0],
				xf[3]-xf[1], yf[3]-yf[1], zf[3]-zf[1])
			mag := geo.Mag3(nx, ny, nz)
			if mag < ZERO_FACE_TOL {
				return chk.Err("mesh %d: face %d has zero area", o.Id, f)
			}
			o.Nx[f], o.Ny[f], o.Nz[f] = nx/mag, ny/mag, nz/mag
			area := 0.0
			var xt, yt, zt [3]float64
			for i := 0; i < o.Npe; i++ {
				j := (i + 1) % o.Npe
				xt[0], yt[0], zt[0] = xf[i], yf[i], zf[i]
				xt[1], yt[1], zt[1] = xf[j], yf[j], zf[j]
				xt[2], yt[2], zt[2] = cx, cy, cz
				area += geo.TriArea3D(xt[:], yt[:], zt[:])
			}
			o.Area[f] = area
		}
		r := 0.0
		for i := 0; i < o.Npe; i++ {
			d := geo.Mag3(xf[i]-cx, yf[i]-cy, zf[i]-cz)
			if d > r {
				r = d
			}
		}
		o.Radius[f] = r
	}
	return
}

// SurfaceNodeIds returns the sorted unique node ids referenced by the face
// connectivity. The slice is computed once and cached; callers must not
// modify it.
func (o *Mesh) SurfaceNodeIds() []int {
	if o.surfNodes != nil || o.Nelems == 0 {
		return o.surfNodes
	}
	mark := make([]bool, o.Nnodes)
	count := 0
	for _, n := range o.Conn[:o.Nelems*o.Npe] {
		if !mark[n] {
			mark[n] = true
			count++
		}
	}
	o.surfNodes = make([]int, 0, count)
	for n := 0; n < o.Nnodes; n++ {
		if mark[n] {
			o.surfNodes = append(o.surfNodes, n)
		}
	}
	return o.surfNodes
}

// BoundingBox returns the axis aligned box of all face vertices, expanded
// by the largest face radius scaled by s. The expansion keeps nearly
// touching faces of the opposing mesh inside the box during binning.
func (o *Mesh) BoundingBox(s float64) (box geo.BBox) {
	box = geo.NewBBox()
	rmax := 0.0
	for f := 0; f < o.Nelems; f++ {
		if o.Radius[f] > rmax {
			rmax = o.Radius[f]
		}
		for i := 0; i < o.Npe; i++ {
			n := o.Conn[f*o.Npe+i]
			if o.Ndim == 3 {
				box.AddPoint(o.X[n], o.Y[n], o.Z[n])
			} else {
				box.AddPoint(o.X[n], o.Y[n], 0)
			}
		}
	}
	box.Expand(s * rmax)
	return
}

// FaceBBox returns the axis aligned box of the vertices of face f, expanded
// by the face bounding radius scaled by s
func (o *Mesh) FaceBBox(f int, s float64) (box geo.BBox) {
	box = geo.NewBBox()
	for i := 0; i < o.Npe; i++ {
		n := o.Conn[f*o.Npe+i]
		if o.Ndim == 3 {
			box.AddPoint(o.X[n], o.Y[n], o.Z[n])
		} else {
			box.AddPoint(o.X[n], o.Y[n], 0)
		}
	}
	box.Expand(s * o.Radius[f])
	return
}

// MaxFaceRadius returns the largest face bounding radius, or zero for a
// mesh without faces
func (o *Mesh) MaxFaceRadius() (rmax float64) {
	for f := 0; f < o.Nelems; f++ {
		rmax = math.Max(rmax, o.Radius[f])
	}
	return
}
