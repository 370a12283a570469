// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"
)

// QuadGridMesh builds an nx by ny grid of "qua4" faces covering
// [x0,x0+lx] x [y0,y0+ly] at height z, with face data computed. With up,
// outward normals point along +z; otherwise along -z. Panics on bad input;
// meant for tests and examples.
func QuadGridMesh(id, nx, ny int, x0, y0, lx, ly, z float64, up bool) *Mesh {
	nnodes := (nx + 1) * (ny + 1)
	nelems := nx * ny
	x := make([]float64, nnodes)
	y := make([]float64, nnodes)
	zz := make([]float64, nnodes)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			n := j*(nx+1) + i
			x[n] = x0 + lx*float64(i)/float64(nx)
			y[n] = y0 + ly*float64(j)/float64(ny)
			zz[n] = z
		}
	}
	conn := make([]int, 4*nelems)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			e := j*nx + i
			n0 := j*(nx+1) + i
			if up {
				conn[4*e+0] = n0
				conn[4*e+1] = n0 + 1
				conn[4*e+2] = n0 + nx + 2
				conn[4*e+3] = n0 + nx + 1
			} else {
				conn[4*e+0] = n0
				conn[4*e+1] = n0 + nx + 1
				conn[4*e+2] = n0 + nx + 2
				conn[4*e+3] = n0 + 1
			}
		}
	}
	o, err := New(id, "qua4", nelems, nnodes, conn, x, y, zz)
	if err != nil {
		chk.Panic("QuadGridMesh: %v", err)
	}
	if err = o.ComputeFaceData(); err != nil {
		chk.Panic("QuadGridMesh: %v", err)
	}
	return o
}

// UnitQuadMesh builds a single unit "qua4" face over [0,1] x [0,1] at
// height z with face data computed
func UnitQuadMesh(id int, z float64, up bool) *Mesh {
	return QuadGridMesh(id, 1, 1, 0, 0, 1, 1, z, up)
}

// UnitTriMesh builds a single "tri3" face with vertices (0,0), (1,0) and
// (0,1) at height z, with face data computed
func UnitTriMesh(id int, z float64, up bool) *Mesh {
	x := []float64{0, 1, 0}
	y := []float64{0, 0, 1}
	zz := []float64{z, z, z}
	conn := []int{0, 1, 2}
	if !up {
		conn = []int{0, 2, 1}
	}
	o, err := New(id, "tri3", 1, 3, conn, x, y, zz)
	if err != nil {
		chk.Panic("UnitTriMesh: %v", err)
	}
	if err = o.ComputeFaceData(); err != nil {
		chk.Panic("UnitTriMesh: %v", err)
	}
	return o
}

// EdgeMesh builds a 2D mesh from a polyline given by points; each segment
// becomes one "lin2" face with the body on the left of the walk direction.
// Face data is computed.
func EdgeMesh(id int, points [][]float64) *Mesh {
	nnodes := len(points)
	nelems := nnodes - 1
	x := make([]float64, nnodes)
	y := make([]float64, nnodes)
	for i, p := range points {
		x[i], y[i] = p[0], p[1]
	}
	conn := make([]int, 2*nelems)
	for e := 0; e < nelems; e++ {
		conn[2*e] = e
		conn[2*e+1] = e + 1
	}
	o, err := New(id, "lin2", nelems, nnodes, conn, x, y, nil)
	if err != nil {
		chk.Panic("EdgeMesh: %v", err)
	}
	if err = o.ComputeFaceData(); err != nil {
		chk.Panic("EdgeMesh: %v", err)
	}
	return o
}

// TwoQuadBlocks builds the canonical two-block fixture: the top face of a
// lower block (normal +z, at z=0) and the bottom face of an upper block
// (normal -z, at z=gap). A negative gap means interpenetration.
func TwoQuadBlocks(id1, id2 int, gap float64) (m1, m2 *Mesh) {
	m1 = UnitQuadMesh(id1, 0, true)
	m2 = UnitQuadMesh(id2, gap, false)
	return
}

// SetConstVel allocates velocity arrays on m holding the same vector at
// every node
func SetConstVel(m *Mesh, vx, vy, vz float64) {
	ax := make([]float64, m.Nnodes)
	ay := make([]float64, m.Nnodes)
	az := make([]float64, m.Nnodes)
	for i := 0; i < m.Nnodes; i++ {
		ax[i], ay[i], az[i] = vx, vy, vz
	}
	if err := m.SetVelocities(ax, ay, az); err != nil {
		chk.Panic("SetConstVel: %v", err)
	}
}

// SetZeroResponse allocates zeroed nodal force arrays on m so that contact
// kernels have somewhere to accumulate
func SetZeroResponse(m *Mesh) {
	if err := m.SetResponse(make([]float64, m.Nnodes), make([]float64, m.Nnodes), make([]float64, m.Nnodes)); err != nil {
		chk.Panic("SetZeroResponse: %v", err)
	}
}

// SetConstThickness allocates a thickness array on m holding t for every
// face, plus a material modulus array holding e when e is positive
func SetConstThickness(m *Mesh, t, e float64) {
	th := make([]float64, m.Nelems)
	for i := range th {
		th[i] = t
	}
	if err := m.SetElemThickness(th); err != nil {
		chk.Panic("SetConstThickness: %v", err)
	}
	if e > 0 {
		em := make([]float64, m.Nelems)
		for i := range em {
			em[i] = e
		}
		if err := m.SetMaterialModulus(em); err != nil {
			chk.Panic("SetConstThickness: %v", err)
		}
	}
}
