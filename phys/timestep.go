// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/mesh"
)

// dtMaxVote caps individual timestep votes
const dtMaxVote = 1e6

// TimestepDiag counts the vote anomalies of one cycle: pairs whose
// interpenetration already exceeds the allowable fraction of the element
// thickness, and candidate votes that came out negative (too late to fix
// by shrinking the step) and were dropped
type TimestepDiag struct {
	NumExceedMaxGap int
	NumNegGapVote   int
	NumNegVelVote   int
}

func (o *TimestepDiag) add(p TimestepDiag) {
	o.NumExceedMaxGap += p.NumExceedMaxGap
	o.NumNegGapVote += p.NumNegGapVote
	o.NumNegVelVote += p.NumNegVelVote
}

// biased pushes a velocity projection away from zero so divisions stay
// finite; the sign is preserved
func biased(v, tiny float64) float64 {
	if v < 0 {
		return v - tiny
	}
	return v + tiny
}

// TimestepVote3D reduces the incoming dt so that face interpenetration
// stays below the allowable fraction of each element thickness. Two vote
// families feed a min reduction: in-contact planes whose current
// interpenetration along the own face normal already leaves less than the
// allowable margin, and any candidate pair whose centroids, advanced by
// dt at the interpolated velocities, would overshoot the margin; the
// latter votes the time left until the projected interpenetration reaches
// it. Votes are suppressed when dt is already below DtSuppress (dt is
// returned unchanged); missing velocities or thickness return -1 so the
// caller can warn and keep its dt.
func TimestepVote3D(m1, m2 *mesh.Mesh, planes []cplane.Plane3D, params *com.Params, exec com.ExecutionMode, dt float64) (float64, TimestepDiag) {
	var diag TimestepDiag
	if dt < params.DtSuppress {
		return dt, diag
	}
	if !m1.HasVel() || !m2.HasVel() || !m1.HasThickness() || !m2.HasThickness() {
		return -1, diag
	}
	nw := com.NumWorkers(exec, len(planes))
	ws, err := newCPWorkers(m1, m2, nw)
	if err != nil {
		return -1, diag
	}
	diags := make([]TimestepDiag, nw)
	var slot0, slot1 com.AtomicFloat64
	slot0.Store(dt)
	slot1.Store(dt)
	tiny := params.TimestepTiny

	com.ForAllW(exec, len(planes), func(wk, i int) {
		cp := &planes[i]
		w := ws[wk]
		npe := m1.Npe
		if w.ff1.Set(m1, cp.Fid1) != nil || w.ff1.Eval(cp.CXf1, cp.CYf1, cp.CZf1) != nil {
			return
		}
		if w.ff2.Set(m2, cp.Fid2) != nil || w.ff2.Eval(cp.CXf2, cp.CYf2, cp.CZf2) != nil {
			return
		}
		m1.FaceVels(cp.Fid1, w.vx1[:], w.vy1[:], w.vz1[:])
		m2.FaceVels(cp.Fid2, w.vx2[:], w.vy2[:], w.vz2[:])
		v1x, v1y, v1z := w.ff1.Interp(w.vx1[:npe]), w.ff1.Interp(w.vy1[:npe]), w.ff1.Interp(w.vz1[:npe])
		v2x, v2y, v2z := w.ff2.Interp(w.vx2[:npe]), w.ff2.Interp(w.vy2[:npe]), w.ff2.Interp(w.vz2[:npe])
		fn1x, fn1y, fn1z := m1.FaceNormal(cp.Fid1)
		fn2x, fn2y, fn2z := m2.FaceNormal(cp.Fid2)

		v1n := biased(geo.Dot3(v1x, v1y, v1z, cp.Nx, cp.Ny, cp.Nz), tiny)
		v2n := biased(geo.Dot3(v2x, v2y, v2z, cp.Nx, cp.Ny, cp.Nz), tiny)
		v1n1 := biased(geo.Dot3(v1x, v1y, v1z, fn1x, fn1y, fn1z), tiny)
		v2n2 := biased(geo.Dot3(v2x, v2y, v2z, fn2x, fn2y, fn2z), tiny)

		maxd1 := params.TimestepPenFrac * m1.ElemThickness(cp.Fid1)
		maxd2 := params.TimestepPenFrac * m2.ElemThickness(cp.Fid2)

		// in-contact planes: current interpenetration margin
		if cp.InContact {
			gx, gy, gz := cp.CXf1-cp.CXf2, cp.CYf1-cp.CYf2, cp.CZf1-cp.CZf2
			d1 := maxd1 - geo.Dot3(gx, gy, gz, fn1x, fn1y, fn1z)
			d2 := maxd2 + geo.Dot3(gx, gy, gz, fn2x, fn2y, fn2z)
			if d1 < 0 || d2 < 0 {
				diags[wk].NumExceedMaxGap++
			}
			if d1 < 0 {
				if cand := -d1 / v1n1; cand > 0 {
					slot0.Min(math.Min(cand, dtMaxVote))
				} else {
					diags[wk].NumNegGapVote++
				}
			}
			if d2 < 0 {
				if cand := -d2 / v2n2; cand > 0 {
					slot0.Min(math.Min(cand, dtMaxVote))
				} else {
					diags[wk].NumNegGapVote++
				}
			}
		}

		// all candidates: interpenetration projected one step ahead,
		// measured along the other face's normal
		p1 := geo.Dot3(cp.CXf1+dt*v1x-cp.CXf2, cp.CYf1+dt*v1y-cp.CYf2, cp.CZf1+dt*v1z-cp.CZf2,
			fn2x, fn2y, fn2z)
		p2 := geo.Dot3(cp.CXf2+dt*v2x-cp.CXf1, cp.CYf2+dt*v2y-cp.CYf1, cp.CZf2+dt*v2z-cp.CZf1,
			fn1x, fn1y, fn1z)
		if v1n < 0 && p1 < 0 && math.Abs(p1) > maxd1 {
			if cand := dt + (p1+maxd1)/v1n1; cand > 0 {
				slot1.Min(math.Min(cand, dtMaxVote))
			} else {
				diags[wk].NumNegVelVote++
			}
		}
		if v2n > 0 && p2 < 0 && math.Abs(p2) > maxd2 {
			if cand := dt + (p2+maxd2)/v2n2; cand > 0 {
				slot1.Min(math.Min(cand, dtMaxVote))
			} else {
				diags[wk].NumNegVelVote++
			}
		}
	})

	for w := 0; w < nw; w++ {
		diag.add(diags[w])
	}
	return math.Min(slot0.Load(), slot1.Load()), diag
}

// TimestepVote2D is the edge-pair analog of TimestepVote3D
func TimestepVote2D(m1, m2 *mesh.Mesh, planes []cplane.Plane2D, params *com.Params, exec com.ExecutionMode, dt float64) (float64, TimestepDiag) {
	var diag TimestepDiag
	if dt < params.DtSuppress {
		return dt, diag
	}
	if !m1.HasVel() || !m2.HasVel() || !m1.HasThickness() || !m2.HasThickness() {
		return -1, diag
	}
	nw := com.NumWorkers(exec, len(planes))
	ws, err := newCPWorkers(m1, m2, nw)
	if err != nil {
		return -1, diag
	}
	diags := make([]TimestepDiag, nw)
	var slot0, slot1 com.AtomicFloat64
	slot0.Store(dt)
	slot1.Store(dt)
	tiny := params.TimestepTiny

	com.ForAllW(exec, len(planes), func(wk, i int) {
		cp := &planes[i]
		w := ws[wk]
		npe := m1.Npe
		if w.ff1.Set(m1, cp.Fid1) != nil || w.ff1.Eval(cp.CXf1, cp.CYf1, 0) != nil {
			return
		}
		if w.ff2.Set(m2, cp.Fid2) != nil || w.ff2.Eval(cp.CXf2, cp.CYf2, 0) != nil {
			return
		}
		m1.FaceVels(cp.Fid1, w.vx1[:], w.vy1[:], nil)
		m2.FaceVels(cp.Fid2, w.vx2[:], w.vy2[:], nil)
		v1x, v1y := w.ff1.Interp(w.vx1[:npe]), w.ff1.Interp(w.vy1[:npe])
		v2x, v2y := w.ff2.Interp(w.vx2[:npe]), w.ff2.Interp(w.vy2[:npe])
		fn1x, fn1y, _ := m1.FaceNormal(cp.Fid1)
		fn2x, fn2y, _ := m2.FaceNormal(cp.Fid2)

		v1n := biased(v1x*cp.Nx+v1y*cp.Ny, tiny)
		v2n := biased(v2x*cp.Nx+v2y*cp.Ny, tiny)
		v1n1 := biased(v1x*fn1x+v1y*fn1y, tiny)
		v2n2 := biased(v2x*fn2x+v2y*fn2y, tiny)

		maxd1 := params.TimestepPenFrac * m1.ElemThickness(cp.Fid1)
		maxd2 := params.TimestepPenFrac * m2.ElemThickness(cp.Fid2)

		if cp.InContact {
			gx, gy := cp.CXf1-cp.CXf2, cp.CYf1-cp.CYf2
			d1 := maxd1 - (gx*fn1x + gy*fn1y)
			d2 := maxd2 + (gx*fn2x + gy*fn2y)
			if d1 < 0 || d2 < 0 {
				diags[wk].NumExceedMaxGap++
			}
			if d1 < 0 {
				if cand := -d1 / v1n1; cand > 0 {
					slot0.Min(math.Min(cand, dtMaxVote))
				} else {
					diags[wk].NumNegGapVote++
				}
			}
			if d2 < 0 {
				if cand := -d2 / v2n2; cand > 0 {
					slot0.Min(math.Min(cand, dtMaxVote))
				} else {
					diags[wk].NumNegGapVote++
				}
			}
		}

		p1 := (cp.CXf1+dt*v1x-cp.CXf2)*fn2x + (cp.CYf1+dt*v1y-cp.CYf2)*fn2y
		p2 := (cp.CXf2+dt*v2x-cp.CXf1)*fn1x + (cp.CYf2+dt*v2y-cp.CYf1)*fn1y
		if v1n < 0 && p1 < 0 && math.Abs(p1) > maxd1 {
			if cand := dt + (p1+maxd1)/v1n1; cand > 0 {
				slot1.Min(math.Min(cand, dtMaxVote))
			} else {
				diags[wk].NumNegVelVote++
			}
		}
		if v2n > 0 && p2 < 0 && math.Abs(p2) > maxd2 {
			if cand := dt + (p2+maxd2)/v2n2; cand > 0 {
				slot1.Min(math.Min(cand, dtMaxVote))
			} else {
				diags[wk].NumNegVelVote++
			}
		}
	})

	for w := 0; w < nw; w++ {
		diag.add(diags[w])
	}
	return math.Min(slot0.Load(), slot1.Load()), diag
}
