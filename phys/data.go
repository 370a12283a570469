// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/mesh"
)

// MortarData is the per-scheme assembly state of the mortar methods. The
// global degree-of-freedom space is blocked per mesh:
//
//	[ displacements mesh1 | displacements mesh2 | pressures mesh2 ]
//
// so node a of mesh1 owns rows dim*a+i, node b of mesh2 owns rows
// dim*N1+dim*b+i, and the pressure of slave node b sits at
// dim*(N1+N2)+b. The mortar-weights method stores plain node-space
// weights instead: rows and columns then index nodes, mesh1 first.
type MortarData struct {

	// input
	M1   *mesh.Mesh // mortar (master) side
	M2   *mesh.Mesh // nonmortar (slave) side
	Mode com.SparseMode

	// derived
	Dim            int
	N1, N2         int
	NumTotalNodes  int // N1 + N2
	PressureOffset int // first pressure dof
	NumDofs        int // dim*(N1+N2) + N2

	// assembly sinks
	Smat        *SparseMatrix         // linked-list mode
	Dense       map[[2]int]*mat.Dense // element-dense mode, keyed by (fid1, fid2)
	ActiveSlave []bool                // slave nodes touched by a positive-area pair
}

// NewMortarData sizes the assembly state for one scheme. nodeSpace says
// the matrix indexes nodes (mortar-weights method) instead of dofs.
func NewMortarData(m1, m2 *mesh.Mesh, mode com.SparseMode, nodeSpace bool) *MortarData {
	o := &MortarData{
		M1:   m1,
		M2:   m2,
		Mode: mode,
		Dim:  m1.Ndim,
		N1:   m1.Nnodes,
		N2:   m2.Nnodes,
	}
	o.NumTotalNodes = o.N1 + o.N2
	o.PressureOffset = o.Dim * o.NumTotalNodes
	o.NumDofs = o.PressureOffset + o.N2
	rows := o.NumDofs
	if nodeSpace {
		rows = o.NumTotalNodes
	}
	if mode == com.SparseElementDense {
		o.Dense = make(map[[2]int]*mat.Dense)
	} else {
		o.Smat = NewSparseMatrix(rows)
	}
	o.ActiveSlave = make([]bool, o.N2)
	return o
}

// DispDof1 returns the global dof of component i of node a on mesh1
func (o *MortarData) DispDof1(a, i int) int {
	return o.Dim*a + i
}

// DispDof2 returns the global dof of component i of node b on mesh2
func (o *MortarData) DispDof2(b, i int) int {
	return o.Dim*o.N1 + o.Dim*b + i
}

// PressDof returns the global dof of the pressure of slave node b
func (o *MortarData) PressDof(b int) int {
	return o.PressureOffset + b
}

// ResetCycle clears the assembled entries and the active set; the gap
// array on the slave mesh is zeroed too so per-ip accumulation restarts
func (o *MortarData) ResetCycle() {
	if o.Smat != nil {
		o.Smat.Reset()
	}
	for k := range o.Dense {
		delete(o.Dense, k)
	}
	for i := range o.ActiveSlave {
		o.ActiveSlave[i] = false
	}
	if o.M2.HasGaps() {
		for i := range o.M2.Gaps {
			o.M2.Gaps[i] = 0
		}
	}
}

// AssembleJacobian scatters the four coupling blocks of elem into the
// global sink: linked-list entries over the blocked dof space, or one
// dense local matrix per pair with rows and columns ordered
// [master disp | slave disp | slave pressure]
func (o *MortarData) AssembleJacobian(elem *SurfaceContactElem) {
	n := elem.NumFaceVert
	nd := o.Dim * n
	jml := elem.BlockJ[BlockMaster][BlockLagrangeMultiplier]
	jsl := elem.BlockJ[BlockSlave][BlockLagrangeMultiplier]
	jlm := elem.BlockJ[BlockLagrangeMultiplier][BlockMaster]
	jls := elem.BlockJ[BlockLagrangeMultiplier][BlockSlave]

	if o.Mode == com.SparseElementDense {
		key := [2]int{elem.Fid1, elem.Fid2}
		loc, ok := o.Dense[key]
		if !ok {
			loc = mat.NewDense(2*nd+n, 2*nd+n, nil)
			o.Dense[key] = loc
		}
		for r := 0; r < nd; r++ {
			for c := 0; c < n; c++ {
				loc.Set(r, 2*nd+c, loc.At(r, 2*nd+c)+jml.At(r, c))
				loc.Set(nd+r, 2*nd+c, loc.At(nd+r, 2*nd+c)+jsl.At(r, c))
				loc.Set(2*nd+c, r, loc.At(2*nd+c, r)+jlm.At(c, r))
				loc.Set(2*nd+c, nd+r, loc.At(2*nd+c, nd+r)+jls.At(c, r))
			}
		}
		return
	}

	for a := 0; a < n; a++ {
		na := o.M1.NodeId(elem.Fid1, a)
		for b := 0; b < n; b++ {
			nb := o.M2.NodeId(elem.Fid2, b)
			col := o.PressDof(nb)
			for i := 0; i < o.Dim; i++ {
				v := jml.At(o.Dim*a+i, b)
				if v != 0 {
					o.Smat.Add(o.DispDof1(na, i), col, v)
					o.Smat.Add(col, o.DispDof1(na, i), jlm.At(b, o.Dim*a+i))
				}
			}
		}
	}
	for a := 0; a < n; a++ {
		na := o.M2.NodeId(elem.Fid2, a)
		for b := 0; b < n; b++ {
			nb := o.M2.NodeId(elem.Fid2, b)
			col := o.PressDof(nb)
			for i := 0; i < o.Dim; i++ {
				v := jsl.At(o.Dim*a+i, b)
				if v != 0 {
					o.Smat.Add(o.DispDof2(na, i), col, v)
					o.Smat.Add(col, o.DispDof2(na, i), jls.At(b, o.Dim*a+i))
				}
			}
		}
	}
}

// AssembleWts scatters the mortar weights of elem into the node-space
// matrix: row = slave node, columns = master then slave nodes
func (o *MortarData) AssembleWts(elem *SurfaceContactElem) {
	n := elem.NumFaceVert
	for b := 0; b < n; b++ {
		row := o.N1 + o.M2.NodeId(elem.Fid2, b)
		for a := 0; a < n; a++ {
			if w := elem.MasterSlaveWt(a, b); w != 0 {
				o.Smat.Add(row, o.M1.NodeId(elem.Fid1, a), w)
			}
			if w := elem.SlaveSlaveWt(a, b); w != 0 {
				o.Smat.Add(row, o.N1+o.M2.NodeId(elem.Fid2, a), w)
			}
		}
	}
}

// Finalize merges the linked entries into CSR form; a no-op sink (element
// dense) finalizes trivially
func (o *MortarData) Finalize() {
	if o.Smat != nil {
		o.Smat.Finalize()
	}
}

// CSR returns the finalized CSR arrays of the linked-list sink
func (o *MortarData) CSR() (I, J []int, V []float64, err error) {
	if o.Smat == nil {
		return nil, nil, nil, chk.Err("element-dense mode stages per-pair blocks; no global CSR")
	}
	return o.Smat.CSR()
}

// Triplet converts the finalized CSR entries into a gosl sparse triplet
// over the blocked dof space
func (o *MortarData) Triplet() (*la.Triplet, error) {
	I, J, V, err := o.CSR()
	if err != nil {
		return nil, err
	}
	t := new(la.Triplet)
	nnz := len(J)
	if nnz == 0 {
		nnz = 1
	}
	t.Init(o.Smat.NumRows, o.Smat.NumRows, nnz)
	for i := 0; i < o.Smat.NumRows; i++ {
		for k := I[i]; k < I[i+1]; k++ {
			t.Put(i, J[k], V[k])
		}
	}
	return t, nil
}

// ElemJacobian returns the staged dense block of one pair under element
// dense mode, nil when the pair produced no entries
func (o *MortarData) ElemJacobian(f1, f2 int) *mat.Dense {
	if o.Dense == nil {
		return nil
	}
	return o.Dense[[2]int{f1, f2}]
}

// NumActiveSlave counts slave nodes touched by a positive-area pair
func (o *MortarData) NumActiveSlave() (n int) {
	for _, a := range o.ActiveSlave {
		if a {
			n++
		}
	}
	return
}
