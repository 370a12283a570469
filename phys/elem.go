// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys implements the per-pair contact physics: mortar weights,
// nodal gaps, residual forces and Jacobian contributions for the Lagrange
// multiplier path, the common-plane penalty force, and the critical
// timestep vote. Kernels read face data from the registered meshes and
// write forces, gaps and matrix entries through the structures in this
// package.
package phys

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/mesh"
)

// BlockSpace labels the row/column spaces of the blocked contact Jacobian
type BlockSpace int

const (
	BlockMaster BlockSpace = iota // displacement dofs of the first (mortar) mesh
	BlockSlave                    // displacement dofs of the second (nonmortar) mesh
	BlockLagrangeMultiplier       // pressure dofs on the nonmortar surface
	NumBlockSpaces
)

// maxWts is the capacity of the per-pair mortar weight buffer: the
// slave/slave block followed by the master/slave block
const maxWts = 2 * com.MaxNodesPerElem * com.MaxNodesPerElem

// SurfaceContactElem is the workspace of one face pair inside the method
// kernels: copies of the face vertex coordinates, the overlap polygon,
// the accumulated mortar weights and, under Jacobian evaluation, the
// local block matrices. Buffers are fixed size so kernels do not allocate.
type SurfaceContactElem struct {

	// pair
	Dim     int
	MeshId1 int
	MeshId2 int
	Fid1    int
	Fid2    int

	// face vertices (conn order)
	NumFaceVert   int
	Xf1, Yf1, Zf1 [com.MaxNodesPerElem]float64
	Xf2, Yf2, Zf2 [com.MaxNodesPerElem]float64

	// overlap polygon (global coordinates)
	NumPolyVert                  int
	OverlapX, OverlapY, OverlapZ [com.MaxNodesPerOverlap]float64
	OverlapArea                  float64

	// mortar weights: wts[n*a+b] is the slave/slave product of nodes
	// (a,b); wts[n*n+n*a+b] the master/slave product of master node a
	// with slave node b
	NumWts int
	Wts    [maxWts]float64

	// integration points whose inverse map landed outside the reference
	// domain beyond tolerance; accumulation proceeds regardless
	NumIpMiss int

	// local block Jacobian, allocated on demand: only the blocks coupling
	// displacements with the Lagrange multiplier are non-nil
	BlockJ [][]*mat.Dense
}

// SetFaces loads the pair identity and the face vertex coordinates
func (o *SurfaceContactElem) SetFaces(m1 *mesh.Mesh, f1 int, m2 *mesh.Mesh, f2 int) {
	o.Dim = m1.Ndim
	o.MeshId1, o.MeshId2 = m1.Id, m2.Id
	o.Fid1, o.Fid2 = f1, f2
	o.NumFaceVert = m1.Npe
	m1.FaceCoords(f1, o.Xf1[:], o.Yf1[:], o.Zf1[:])
	m2.FaceCoords(f2, o.Xf2[:], o.Yf2[:], o.Zf2[:])
	n := o.NumFaceVert
	o.NumWts = 2 * n * n
	for i := 0; i < o.NumWts; i++ {
		o.Wts[i] = 0
	}
	o.NumIpMiss = 0
}

// SetOverlap loads the overlap polygon of the common plane
func (o *SurfaceContactElem) SetOverlap(cp *cplane.Plane3D) {
	o.NumPolyVert = cp.NumPolyVert
	for i := 0; i < cp.NumPolyVert; i++ {
		o.OverlapX[i] = cp.PolyX[i]
		o.OverlapY[i] = cp.PolyY[i]
		o.OverlapZ[i] = cp.PolyZ[i]
	}
	o.OverlapArea = cp.Area
}

// SlaveSlaveWt returns the accumulated product of slave shape functions
// a and b
func (o *SurfaceContactElem) SlaveSlaveWt(a, b int) float64 {
	return o.Wts[o.NumFaceVert*a+b]
}

// MasterSlaveWt returns the accumulated product of master shape function
// a with slave shape function b
func (o *SurfaceContactElem) MasterSlaveWt(a, b int) float64 {
	n := o.NumFaceVert
	return o.Wts[n*n+n*a+b]
}

// SlaveMasterWt returns the accumulated product of slave shape function
// a with master shape function b; the weights are the same products as
// MasterSlaveWt read transposed
func (o *SurfaceContactElem) SlaveMasterWt(a, b int) float64 {
	n := o.NumFaceVert
	return o.Wts[n*n+n*b+a]
}

// InitBlockJ allocates (or zeroes) the four displacement/multiplier
// coupling blocks; the remaining blocks stay nil because the frictionless
// constraint has no displacement/displacement or multiplier/multiplier
// stiffness
func (o *SurfaceContactElem) InitBlockJ() {
	n := o.NumFaceVert
	nd := o.Dim * n
	if o.BlockJ == nil {
		o.BlockJ = make([][]*mat.Dense, NumBlockSpaces)
		for i := range o.BlockJ {
			o.BlockJ[i] = make([]*mat.Dense, NumBlockSpaces)
		}
		o.BlockJ[BlockMaster][BlockLagrangeMultiplier] = mat.NewDense(nd, n, nil)
		o.BlockJ[BlockSlave][BlockLagrangeMultiplier] = mat.NewDense(nd, n, nil)
		o.BlockJ[BlockLagrangeMultiplier][BlockMaster] = mat.NewDense(n, nd, nil)
		o.BlockJ[BlockLagrangeMultiplier][BlockSlave] = mat.NewDense(n, nd, nil)
		return
	}
	o.BlockJ[BlockMaster][BlockLagrangeMultiplier].Zero()
	o.BlockJ[BlockSlave][BlockLagrangeMultiplier].Zero()
	o.BlockJ[BlockLagrangeMultiplier][BlockMaster].Zero()
	o.BlockJ[BlockLagrangeMultiplier][BlockSlave].Zero()
}
