// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/integ"
	"github.com/Zhoneym/Tribol/mesh"
	"github.com/Zhoneym/Tribol/shp"
)

// MEMBERSHIP_TOL bounds how far outside the reference domain an inverse
// mapped integration point may land before it is counted as a miss.
// Overlap points are interior by construction, so misses are roundoff
// level and accumulation proceeds regardless.
const MEMBERSHIP_TOL = 1e-6

// Mortar is the workspace of the mortar methods for one scheme: the two
// meshes, the assembly state, frames for inverse mapping on the common
// plane and the integration point buffer. The mortar kernels run
// sequentially, so one workspace per scheme suffices and nodal arrays are
// written with plain adds.
type Mortar struct {

	// input
	M1, M2   *mesh.Mesh
	Data     *MortarData
	EvalMode com.EvalMode

	// derived
	withGaps bool

	// scratch
	ff1, ff2 *cplane.FaceFrame
	ip       *integ.IntegPts
	elem     SurfaceContactElem
	sh1      *shp.Shape
	press    [com.MaxNodesPerElem]float64
}

// NewMortar builds the workspace. m1 is the mortar (master) side, m2 the
// nonmortar (slave) side carrying the pressure and gap fields.
func NewMortar(m1, m2 *mesh.Mesh, opts *com.LagrangeOptions, method com.ContactMethod) (o *Mortar, err error) {
	if m1.Ndim != 3 || m2.Ndim != 3 {
		return nil, chk.Err("mortar methods need 3D surface meshes")
	}
	if m1.Npe != m2.Npe {
		return nil, chk.Err("mortar methods need the same element type on both meshes")
	}
	o = new(Mortar)
	o.M1, o.M2 = m1, m2
	o.EvalMode = opts.EvalMode
	o.Data = NewMortarData(m1, m2, opts.SparseMode, method == com.MortarWeights)
	o.withGaps = method != com.MortarWeights && m2.HasGaps()
	if o.ff1, err = cplane.NewFaceFrame(m1.Type, 0); err != nil {
		return nil, err
	}
	if o.ff2, err = cplane.NewFaceFrame(m2.Type, 0); err != nil {
		return nil, err
	}
	if o.sh1 = shp.Get(m1.Type, 0); o.sh1 == nil {
		return nil, chk.Err("cannot find shape %q", m1.Type)
	}
	o.ip = integ.NewIntegPts()
	return
}

// Weights integrates the mortar weights of one pair on the common plane
// and accumulates the weighted nodal gaps on the slave mesh. Integration
// points that fail to inverse map are counted and skipped.
func (o *Mortar) Weights(cp *cplane.Plane3D) (err error) {
	elem := &o.elem
	elem.SetFaces(o.M1, cp.Fid1, o.M2, cp.Fid2)
	elem.SetOverlap(cp)
	if err = o.ff1.SetOnPlane(o.M1, cp.Fid1, cp); err != nil {
		return
	}
	if err = o.ff2.SetOnPlane(o.M2, cp.Fid2, cp); err != nil {
		return
	}
	if err = integ.TWBPolyInt(o.ip, cp.PolyLocX[:], cp.PolyLocY[:], cp.NumPolyVert); err != nil {
		return
	}
	n := elem.NumFaceVert
	for k := 0; k < o.ip.NumIPs; k++ {
		wt := o.ip.Wts[k]
		gx, gy, gz := cp.Global(o.ip.Xy[2*k], o.ip.Xy[2*k+1])
		if o.ff1.Eval(gx, gy, gz) != nil {
			elem.NumIpMiss++
			continue
		}
		if o.ff2.Eval(gx, gy, gz) != nil {
			elem.NumIpMiss++
			continue
		}
		if !o.ff1.Inside(MEMBERSHIP_TOL) {
			elem.NumIpMiss++
		}
		if !o.ff2.Inside(MEMBERSHIP_TOL) {
			elem.NumIpMiss++
		}
		S1, S2 := o.ff1.S, o.ff2.S
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				elem.Wts[n*a+b] += wt * S2[a] * S2[b]
				elem.Wts[n*n+n*a+b] += wt * S1[a] * S2[b]
			}
		}
		if o.withGaps {
			dx := o.ff1.Interp(elem.Xf1[:n]) - o.ff2.Interp(elem.Xf2[:n])
			dy := o.ff1.Interp(elem.Yf1[:n]) - o.ff2.Interp(elem.Yf2[:n])
			dz := o.ff1.Interp(elem.Zf1[:n]) - o.ff2.Interp(elem.Zf2[:n])
			g := geo.Dot3(dx, dy, dz, cp.Nx, cp.Ny, cp.Nz)
			for b := 0; b < n; b++ {
				o.M2.Gaps[o.M2.NodeId(cp.Fid2, b)] += wt * S2[b] * g
			}
		}
	}
	o.markActive(cp.Fid2)
	return
}

// AlignedWeights integrates the mortar weights of one conforming pair in
// the parent domain of the master face; slave shape functions still come
// from inverse mapping so reversed connectivities are handled.
func (o *Mortar) AlignedWeights(cp *cplane.Plane3D) (err error) {
	elem := &o.elem
	elem.SetFaces(o.M1, cp.Fid1, o.M2, cp.Fid2)
	elem.SetOverlap(cp)
	if elem.NumFaceVert == 3 {
		integ.GaussPolyIntTri(o.ip)
	} else {
		integ.GaussPolyIntQuad(o.ip)
	}
	if err = o.ff2.Set(o.M2, cp.Fid2); err != nil {
		return
	}
	n := elem.NumFaceVert
	var S1 [com.MaxNodesPerElem]float64
	for k := 0; k < o.ip.NumIPs; k++ {
		detJ := integ.DetJ(o.sh1, elem.Xf1[:], elem.Yf1[:], elem.Zf1[:], o.ip.Xy[2*k], o.ip.Xy[2*k+1])
		copy(S1[:], o.sh1.S) // ff2 may share the shape scratch
		var gx, gy, gz float64
		for a := 0; a < n; a++ {
			gx += S1[a] * elem.Xf1[a]
			gy += S1[a] * elem.Yf1[a]
			gz += S1[a] * elem.Zf1[a]
		}
		if o.ff2.Eval(gx, gy, gz) != nil {
			elem.NumIpMiss++
			continue
		}
		if !o.ff2.Inside(MEMBERSHIP_TOL) {
			elem.NumIpMiss++
		}
		S2 := o.ff2.S
		w := o.ip.Wts[k] * detJ
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				elem.Wts[n*a+b] += w * S2[a] * S2[b]
				elem.Wts[n*n+n*a+b] += w * S1[a] * S2[b]
			}
		}
	}
	o.markActive(cp.Fid2)
	return
}

// AlignedGaps computes plain nodal gaps for one conforming pair: each
// slave vertex is projected onto the master face and the distance is
// measured along the plane normal. Nodes shared by neighboring pairs get
// the same value, so assignment replaces accumulation here.
func (o *Mortar) AlignedGaps(cp *cplane.Plane3D) (err error) {
	if err = o.ff1.Set(o.M1, cp.Fid1); err != nil {
		return
	}
	elem := &o.elem
	n := elem.NumFaceVert
	for b := 0; b < n; b++ {
		if o.ff1.Eval(elem.Xf2[b], elem.Yf2[b], elem.Zf2[b]) != nil {
			elem.NumIpMiss++
			continue
		}
		dx := o.ff1.Interp(elem.Xf1[:n]) - elem.Xf2[b]
		dy := o.ff1.Interp(elem.Yf1[:n]) - elem.Yf2[b]
		dz := o.ff1.Interp(elem.Zf1[:n]) - elem.Zf2[b]
		o.M2.Gaps[o.M2.NodeId(cp.Fid2, b)] = geo.Dot3(dx, dy, dz, cp.Nx, cp.Ny, cp.Nz)
	}
	return
}

// Residual scatters the contact forces of the current pair: the pressure
// field on the slave side works against both faces through the mortar
// weights, with opposite signs, so the pair forces cancel exactly
func (o *Mortar) Residual(cp *cplane.Plane3D) (err error) {
	if !o.M2.HasPress() {
		return chk.Err("mortar residual needs registered pressures on mesh %d", o.M2.Id)
	}
	if !o.M1.HasResponse() || !o.M2.HasResponse() {
		return chk.Err("mortar residual needs registered nodal response on both meshes")
	}
	elem := &o.elem
	n := elem.NumFaceVert
	for b := 0; b < n; b++ {
		o.press[b] = o.M2.Press[o.M2.NodeId(cp.Fid2, b)]
	}
	for a := 0; a < n; a++ {
		var s float64
		for b := 0; b < n; b++ {
			s += elem.MasterSlaveWt(a, b) * o.press[b]
		}
		node := o.M1.NodeId(cp.Fid1, a)
		o.M1.Fx[node] += cp.Nx * s
		o.M1.Fy[node] += cp.Ny * s
		o.M1.Fz[node] += cp.Nz * s
	}
	for a := 0; a < n; a++ {
		var s float64
		for b := 0; b < n; b++ {
			s += elem.SlaveSlaveWt(a, b) * o.press[b]
		}
		node := o.M2.NodeId(cp.Fid2, a)
		o.M2.Fx[node] -= cp.Nx * s
		o.M2.Fy[node] -= cp.Ny * s
		o.M2.Fz[node] -= cp.Nz * s
	}
	return
}

// Jacobian fills the displacement/multiplier coupling blocks of the
// current pair and assembles them. The block matrix is symmetric: the
// multiplier rows are the gap derivatives and the displacement rows the
// force derivatives, and both reduce to the same weighted normals.
func (o *Mortar) Jacobian(cp *cplane.Plane3D) (err error) {
	elem := &o.elem
	elem.InitBlockJ()
	n, dim := elem.NumFaceVert, elem.Dim
	nrm := [3]float64{cp.Nx, cp.Ny, cp.Nz}
	jml := elem.BlockJ[BlockMaster][BlockLagrangeMultiplier]
	jsl := elem.BlockJ[BlockSlave][BlockLagrangeMultiplier]
	jlm := elem.BlockJ[BlockLagrangeMultiplier][BlockMaster]
	jls := elem.BlockJ[BlockLagrangeMultiplier][BlockSlave]
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			wms := elem.MasterSlaveWt(a, b)
			wss := elem.SlaveSlaveWt(a, b)
			for i := 0; i < dim; i++ {
				jml.Set(dim*a+i, b, nrm[i]*wms)
				jlm.Set(b, dim*a+i, nrm[i]*wms)
				jsl.Set(dim*a+i, b, -nrm[i]*wss)
				jls.Set(b, dim*a+i, -nrm[i]*wss)
			}
		}
	}
	o.Data.AssembleJacobian(elem)
	return
}

// markActive flags the slave nodes of face f2 as touched by an active pair
func (o *Mortar) markActive(f2 int) {
	for b := 0; b < o.elem.NumFaceVert; b++ {
		o.Data.ActiveSlave[o.M2.NodeId(f2, b)] = true
	}
}

// evalPair runs the configured evaluations on the current pair
func (o *Mortar) evalPair(cp *cplane.Plane3D) (err error) {
	switch o.EvalMode {
	case com.EvalResidual:
		err = o.Residual(cp)
	case com.EvalJacobian:
		err = o.Jacobian(cp)
	case com.EvalResidualJacobian:
		if err = o.Residual(cp); err != nil {
			return
		}
		err = o.Jacobian(cp)
	case com.EvalMortarWeights:
		o.Data.AssembleWts(&o.elem)
	}
	return
}

// ApplySingleMortar runs the single mortar pipeline over the interacting
// pairs of one cycle: weights and gaps accumulate for every pair with a
// positive overlap regardless of gap sign, so the multiplier solve sees
// the full constraint set
func ApplySingleMortar(o *Mortar, planes []cplane.Plane3D) (err error) {
	o.Data.ResetCycle()
	for i := range planes {
		cp := &planes[i]
		if cp.NumPolyVert < 3 || cp.Area <= 0 {
			continue
		}
		if err = o.Weights(cp); err != nil {
			return
		}
		if err = o.evalPair(cp); err != nil {
			return
		}
	}
	o.Data.Finalize()
	return
}

// ApplyAlignedMortar is the conforming-pair shortcut: weights from the
// parent-domain rule, gaps from nodal projection
func ApplyAlignedMortar(o *Mortar, planes []cplane.Plane3D) (err error) {
	o.Data.ResetCycle()
	for i := range planes {
		cp := &planes[i]
		if cp.NumPolyVert < 3 || cp.Area <= 0 {
			continue
		}
		if err = o.AlignedWeights(cp); err != nil {
			return
		}
		if o.withGaps {
			if err = o.AlignedGaps(cp); err != nil {
				return
			}
		}
		if err = o.evalPair(cp); err != nil {
			return
		}
	}
	o.Data.Finalize()
	return
}

// ApplyMortarWeights assembles the plain node-space mortar weights; the
// eval mode is forced to mortar_weights at validation so no forces or
// Jacobians are produced
func ApplyMortarWeights(o *Mortar, planes []cplane.Plane3D) (err error) {
	return ApplySingleMortar(o, planes)
}
