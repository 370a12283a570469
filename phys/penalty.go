// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/mesh"
)

// cpWorker is the per-goroutine scratch of the common-plane kernels:
// frames for shape function evaluation at the projected centroids and
// buffers for the face vertex velocities
type cpWorker struct {
	ff1, ff2      *cplane.FaceFrame
	vx1, vy1, vz1 [com.MaxNodesPerElem]float64
	vx2, vy2, vz2 [com.MaxNodesPerElem]float64
}

// newCPWorkers allocates one scratch per worker; workers above zero get
// private shape copies so the kernels can run in parallel
func newCPWorkers(m1, m2 *mesh.Mesh, nw int) (ws []*cpWorker, err error) {
	ws = make([]*cpWorker, nw)
	for w := 0; w < nw; w++ {
		ws[w] = new(cpWorker)
		if ws[w].ff1, err = cplane.NewFaceFrame(m1.Type, w); err != nil {
			return nil, err
		}
		if ws[w].ff2, err = cplane.NewFaceFrame(m2.Type, w); err != nil {
			return nil, err
		}
	}
	return
}

// pairStiffness combines the per-side stiffnesses of one pair. Constant
// mode uses the registered scheme constant directly; element mode forms
// each side's stiffness from material modulus over thickness, applies the
// optional penalty scale, and multiplies the series combination by the
// overlap area so the result converts a gap into a total normal force.
func pairStiffness(m1 *mesh.Mesh, f1 int, m2 *mesh.Mesh, f2 int, area float64, opts *com.PenaltyOptions) (k float64, err error) {
	if opts.Kinematic == com.KinematicConstant {
		return opts.K, nil
	}
	if !m1.HasThickness() || !m2.HasThickness() || !m1.HasMatMod() || !m2.HasMatMod() {
		return 0, chk.Err("element penalty needs material modulus and element thickness on both meshes")
	}
	t1, t2 := m1.ElemThickness(f1), m2.ElemThickness(f2)
	if t1 <= 0 || t2 <= 0 {
		return 0, chk.Err("element penalty needs positive element thickness; got %g and %g", t1, t2)
	}
	k1 := m1.MatMod[f1] / t1
	k2 := m2.MatMod[f2] / t2
	if m1.HasPenScale() {
		k1 *= m1.PenScale[f1]
	}
	if m2.HasPenScale() {
		k2 *= m2.PenScale[f2]
	}
	if k1+k2 <= 0 {
		return 0, chk.Err("element penalty needs positive stiffness; got %g and %g", k1, k2)
	}
	return area * k1 * k2 / (k1 + k2), nil
}

// ratePenalty returns the gap-rate pressure contribution: an extra
// repulsion proportional to the closing speed, active only while the
// pair is in contact (the callers gate on that)
func ratePenalty(gdot, kin float64, opts *com.PenaltyOptions) float64 {
	kr := opts.RateK
	if opts.Rate == com.RatePercent {
		kr = opts.RatePercent * kin
	}
	return kr * fun.Ramp(-gdot)
}

// ApplyCommonPlane3D scatters the penalty forces of the in-contact planes
// into the registered response arrays. Frictionless pairs push only under
// penetration (Macaulay bracket of the gap); tied pairs react to both gap
// signs so separating faces are pulled back.
func ApplyCommonPlane3D(m1, m2 *mesh.Mesh, planes []cplane.Plane3D, opts *com.PenaltyOptions, model com.ContactModel, exec com.ExecutionMode) (err error) {
	if !opts.Set {
		return chk.Err("penalty options were not set")
	}
	if !m1.HasResponse() || !m2.HasResponse() {
		return chk.Err("penalty enforcement needs registered nodal response on both meshes")
	}
	nw := com.NumWorkers(exec, len(planes))
	ws, err := newCPWorkers(m1, m2, nw)
	if err != nil {
		return
	}
	errs := make([]error, nw)
	com.ForAllW(exec, len(planes), func(w, i int) {
		cp := &planes[i]
		if !cp.InContact || errs[w] != nil {
			return
		}
		if e := penaltyPair3D(m1, m2, cp, opts, model, ws[w]); e != nil {
			errs[w] = e
		}
	})
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// penaltyPair3D handles one in-contact plane
func penaltyPair3D(m1, m2 *mesh.Mesh, cp *cplane.Plane3D, opts *com.PenaltyOptions, model com.ContactModel, w *cpWorker) (err error) {
	if err = w.ff1.Set(m1, cp.Fid1); err != nil {
		return
	}
	if err = w.ff1.Eval(cp.CXf1, cp.CYf1, cp.CZf1); err != nil {
		return
	}
	if err = w.ff2.Set(m2, cp.Fid2); err != nil {
		return
	}
	if err = w.ff2.Eval(cp.CXf2, cp.CYf2, cp.CZf2); err != nil {
		return
	}
	kin, err := pairStiffness(m1, cp.Fid1, m2, cp.Fid2, cp.Area, opts)
	if err != nil {
		return
	}
	p := kin * fun.Ramp(-cp.Gap)
	if model == com.Tied {
		p = -kin * cp.Gap
	}
	if opts.NeedsRate() {
		npe := m1.Npe
		m1.FaceVels(cp.Fid1, w.vx1[:], w.vy1[:], w.vz1[:])
		m2.FaceVels(cp.Fid2, w.vx2[:], w.vy2[:], w.vz2[:])
		gdot := (w.ff1.Interp(w.vx1[:npe])-w.ff2.Interp(w.vx2[:npe]))*cp.Nx +
			(w.ff1.Interp(w.vy1[:npe])-w.ff2.Interp(w.vy2[:npe]))*cp.Ny +
			(w.ff1.Interp(w.vz1[:npe])-w.ff2.Interp(w.vz2[:npe]))*cp.Nz
		p += ratePenalty(gdot, kin, opts)
	}
	if p == 0 {
		return nil
	}
	for a := 0; a < m1.Npe; a++ {
		node := m1.NodeId(cp.Fid1, a)
		s := w.ff1.S[a] * p
		com.AtomicAddFloat64(&m1.Fx[node], s*cp.Nx)
		com.AtomicAddFloat64(&m1.Fy[node], s*cp.Ny)
		com.AtomicAddFloat64(&m1.Fz[node], s*cp.Nz)
	}
	for a := 0; a < m2.Npe; a++ {
		node := m2.NodeId(cp.Fid2, a)
		s := w.ff2.S[a] * p
		com.AtomicAddFloat64(&m2.Fx[node], -s*cp.Nx)
		com.AtomicAddFloat64(&m2.Fy[node], -s*cp.Ny)
		com.AtomicAddFloat64(&m2.Fz[node], -s*cp.Nz)
	}
	return nil
}

// ApplyCommonPlane2D is the edge-pair analog: the overlap length plays
// the role of the area and forces live in the plane
func ApplyCommonPlane2D(m1, m2 *mesh.Mesh, planes []cplane.Plane2D, opts *com.PenaltyOptions, model com.ContactModel, exec com.ExecutionMode) (err error) {
	if !opts.Set {
		return chk.Err("penalty options were not set")
	}
	if !m1.HasResponse() || !m2.HasResponse() {
		return chk.Err("penalty enforcement needs registered nodal response on both meshes")
	}
	nw := com.NumWorkers(exec, len(planes))
	ws, err := newCPWorkers(m1, m2, nw)
	if err != nil {
		return
	}
	errs := make([]error, nw)
	com.ForAllW(exec, len(planes), func(w, i int) {
		cp := &planes[i]
		if !cp.InContact || errs[w] != nil {
			return
		}
		if e := penaltyPair2D(m1, m2, cp, opts, model, ws[w]); e != nil {
			errs[w] = e
		}
	})
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// penaltyPair2D handles one in-contact edge pair
func penaltyPair2D(m1, m2 *mesh.Mesh, cp *cplane.Plane2D, opts *com.PenaltyOptions, model com.ContactModel, w *cpWorker) (err error) {
	if err = w.ff1.Set(m1, cp.Fid1); err != nil {
		return
	}
	if err = w.ff1.Eval(cp.CXf1, cp.CYf1, 0); err != nil {
		return
	}
	if err = w.ff2.Set(m2, cp.Fid2); err != nil {
		return
	}
	if err = w.ff2.Eval(cp.CXf2, cp.CYf2, 0); err != nil {
		return
	}
	kin, err := pairStiffness(m1, cp.Fid1, m2, cp.Fid2, cp.Area, opts)
	if err != nil {
		return
	}
	p := kin * fun.Ramp(-cp.Gap)
	if model == com.Tied {
		p = -kin * cp.Gap
	}
	if opts.NeedsRate() {
		npe := m1.Npe
		m1.FaceVels(cp.Fid1, w.vx1[:], w.vy1[:], nil)
		m2.FaceVels(cp.Fid2, w.vx2[:], w.vy2[:], nil)
		gdot := (w.ff1.Interp(w.vx1[:npe])-w.ff2.Interp(w.vx2[:npe]))*cp.Nx +
			(w.ff1.Interp(w.vy1[:npe])-w.ff2.Interp(w.vy2[:npe]))*cp.Ny
		p += ratePenalty(gdot, kin, opts)
	}
	if p == 0 {
		return nil
	}
	for a := 0; a < m1.Npe; a++ {
		node := m1.NodeId(cp.Fid1, a)
		s := w.ff1.S[a] * p
		com.AtomicAddFloat64(&m1.Fx[node], s*cp.Nx)
		com.AtomicAddFloat64(&m1.Fy[node], s*cp.Ny)
	}
	for a := 0; a < m2.Npe; a++ {
		node := m2.NodeId(cp.Fid2, a)
		s := w.ff2.S[a] * p
		com.AtomicAddFloat64(&m2.Fx[node], -s*cp.Nx)
		com.AtomicAddFloat64(&m2.Fy[node], -s*cp.Ny)
	}
	return nil
}
