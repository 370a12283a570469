// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cplane

import (
	"math"
	"testing"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/mesh"
	"github.com/cpmech/gosl/chk"
)

func Test_cplane01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane01. face frame evaluation")

	// qua4: unit face at z = 0.3
	m := mesh.UnitQuadMesh(0, 0.3, true)
	frame, err := NewFaceFrame("qua4", 0)
	if err != nil {
		tst.Errorf("NewFaceFrame failed: %v\n", err)
		return
	}
	if err = frame.Set(m, 0); err != nil {
		tst.Errorf("Set failed: %v\n", err)
		return
	}
	xs := make([]float64, 4)
	ys := make([]float64, 4)
	for i := 0; i < 4; i++ {
		xs[i], ys[i] = m.X[m.Conn[i]], m.Y[m.Conn[i]]
	}
	if err = frame.Eval(0.5, 0.5, 0.3); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "S centre", 1e-9, frame.S, []float64{0.25, 0.25, 0.25, 0.25})
	chk.Float64(tst, "interp x", 1e-9, frame.Interp(xs), 0.5)
	chk.Float64(tst, "interp y", 1e-9, frame.Interp(ys), 0.5)
	if !frame.Inside(1e-6) {
		tst.Errorf("centre must lie inside the face\n")
		return
	}

	// a vertex and a point beyond the face
	if err = frame.Eval(0, 0, 0.3); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "interp x at vertex", 1e-9, frame.Interp(xs), 0)
	chk.Float64(tst, "interp y at vertex", 1e-9, frame.Interp(ys), 0)
	if !frame.Inside(1e-6) {
		tst.Errorf("vertex must lie inside the face\n")
		return
	}
	if err = frame.Eval(1.6, 0.5, 0.3); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	if frame.Inside(1e-6) {
		tst.Errorf("point beyond the edge must lie outside\n")
		return
	}

	// tri3
	mt := mesh.UnitTriMesh(1, 0, true)
	ft, err := NewFaceFrame("tri3", 0)
	if err != nil {
		tst.Errorf("NewFaceFrame failed: %v\n", err)
		return
	}
	if err = ft.Set(mt, 0); err != nil {
		tst.Errorf("Set failed: %v\n", err)
		return
	}
	if err = ft.Eval(1.0/3.0, 1.0/3.0, 0); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "S tri centre", 1e-9, ft.S, []float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0})

	// lin2
	me := mesh.EdgeMesh(2, [][]float64{{0, 0}, {2, 0}})
	fe, err := NewFaceFrame("lin2", 0)
	if err != nil {
		tst.Errorf("NewFaceFrame failed: %v\n", err)
		return
	}
	if err = fe.Set(me, 0); err != nil {
		tst.Errorf("Set failed: %v\n", err)
		return
	}
	if err = fe.Eval(1.2, 0.77, 0); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "S edge", 1e-12, fe.S, []float64{0.4, 0.6})
	chk.Float64(tst, "interp x edge", 1e-12, fe.Interp([]float64{0, 2}), 1.2)
	if !fe.Inside(1e-6) {
		tst.Errorf("projected point must lie on the edge\n")
		return
	}
	if err = fe.Eval(2.5, 0, 0); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	if fe.Inside(1e-6) {
		tst.Errorf("point beyond the endpoint must lie outside\n")
		return
	}

	// unknown geometry
	if _, err = NewFaceFrame("qua8", 0); err == nil {
		tst.Errorf("unknown geometry must be rejected\n")
	}
}

func Test_cplane02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane02. two blocks: gap sign and contact state")

	params := com.NewParams()
	var cp Plane3D

	// separated by 0.001
	m1, m2 := mesh.TwoQuadBlocks(0, 1, 0.001)
	interact, ferr := CheckFacePair(m1, 0, m2, 0, params, false, false, &cp)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("unexpected face geometry error: %v\n", ferr)
		return
	}
	if !interact {
		tst.Errorf("coincident footprints must interact\n")
		return
	}
	chk.Int(tst, "nVert", cp.NumPolyVert, 4)
	chk.Float64(tst, "area", 1e-12, cp.Area, 1.0)
	chk.Array(tst, "normal", 1e-15, []float64{cp.Nx, cp.Ny, cp.Nz}, []float64{0, 0, -1})
	chk.Array(tst, "centroid", 1e-12, []float64{cp.Cx, cp.Cy, cp.Cz}, []float64{0.5, 0.5, 0.0005})
	chk.Array(tst, "cf1", 1e-12, []float64{cp.CXf1, cp.CYf1, cp.CZf1}, []float64{0.5, 0.5, 0})
	chk.Array(tst, "cf2", 1e-12, []float64{cp.CXf2, cp.CYf2, cp.CZf2}, []float64{0.5, 0.5, 0.001})
	chk.Float64(tst, "gap", 1e-12, cp.Gap, 0.001)
	if cp.InContact {
		tst.Errorf("separated faces must not be in contact\n")
		return
	}

	// tied picks the positive gap tolerance
	interact, _ = CheckFacePair(m1, 0, m2, 0, params, true, false, &cp)
	chk.Float64(tst, "tied gap tol", 1e-12, cp.GapTol, 0.1*math.Sqrt2/2)
	if !interact || !cp.InContact {
		tst.Errorf("tied faces within the tolerance must be in contact\n")
		return
	}

	// full overlap marks every interacting pair
	interact, _ = CheckFacePair(m1, 0, m2, 0, params, false, true, &cp)
	if !interact || !cp.InContact {
		tst.Errorf("full overlap must mark interacting pairs in contact\n")
		return
	}

	// interpenetrating by 0.05
	m3, m4 := mesh.TwoQuadBlocks(2, 3, -0.05)
	interact, ferr = CheckFacePair(m3, 0, m4, 0, params, false, false, &cp)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("penetrating faces must interact: %v\n", ferr)
		return
	}
	chk.Float64(tst, "gap pen", 1e-12, cp.Gap, -0.05)
	if !cp.InContact {
		tst.Errorf("penetrating faces must be in contact\n")
	}
}

func Test_cplane03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane03. partial overlap and rejection paths")

	params := com.NewParams()
	var cp Plane3D

	// half shifted: the overlap is [0.5,1] x [0,1]
	m1 := mesh.UnitQuadMesh(0, 0, true)
	m2 := mesh.QuadGridMesh(1, 1, 1, 0.5, 0, 1, 1, 0.001, false)
	interact, ferr := CheckFacePair(m1, 0, m2, 0, params, false, false, &cp)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("shifted faces must interact: %v\n", ferr)
		return
	}
	chk.Int(tst, "nVert", cp.NumPolyVert, 4)
	chk.Float64(tst, "area", 1e-12, cp.Area, 0.5)
	chk.Array(tst, "centroid", 1e-12, []float64{cp.Cx, cp.Cy, cp.Cz}, []float64{0.75, 0.5, 0.0005})
	chk.Float64(tst, "gap", 1e-12, cp.Gap, 0.001)

	// aligned normals never interact
	m3 := mesh.UnitQuadMesh(2, 0.001, true)
	interact, ferr = CheckFacePair(m1, 0, m3, 0, params, false, false, &cp)
	if interact || ferr != com.NoFaceGeomError {
		tst.Errorf("faces with aligned normals must not interact: %v\n", ferr)
		return
	}

	// sharing an edge: the overlap degenerates to a segment
	m4 := mesh.QuadGridMesh(3, 1, 1, 1, 0, 1, 1, 0.001, false)
	interact, ferr = CheckFacePair(m1, 0, m4, 0, params, false, false, &cp)
	if interact || ferr != com.NoFaceGeomError {
		tst.Errorf("edge sharing faces must not interact: %v\n", ferr)
		return
	}

	// sliver below the area fraction
	m5 := mesh.QuadGridMesh(4, 1, 1, 1-1e-9, 0, 1, 1, 0.001, false)
	interact, _ = CheckFacePair(m1, 0, m5, 0, params, false, false, &cp)
	if interact {
		tst.Errorf("sliver overlap must be dropped\n")
	}
}

func Test_cplane04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane04. face geometry errors")

	params := com.NewParams()
	var cp Plane3D

	// vertex order winding against the stored normal
	m1 := mesh.UnitQuadMesh(0, 0, true)
	m2 := mesh.UnitQuadMesh(1, 0.001, true)
	m2.Nz[0] = -1
	interact, ferr := CheckFacePair(m1, 0, m2, 0, params, false, false, &cp)
	if interact || ferr != com.FaceOrientation {
		tst.Errorf("inconsistent winding must give FaceOrientation: %v\n", ferr)
		return
	}

	// collapsed first edge
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	z := []float64{0, 0, 0, 0}
	m3, err := mesh.New(2, "qua4", 1, 4, []int{0, 0, 2, 3}, x, y, z)
	if err != nil {
		tst.Errorf("mesh.New failed: %v\n", err)
		return
	}
	if err = m3.ComputeFaceData(); err != nil {
		tst.Errorf("ComputeFaceData failed: %v\n", err)
		return
	}
	m4 := mesh.UnitQuadMesh(3, 0.001, false)
	interact, ferr = CheckFacePair(m3, 0, m4, 0, params, false, false, &cp)
	if interact || ferr != com.InvalidFaceInput {
		tst.Errorf("collapsed first edge must give InvalidFaceInput: %v\n", ferr)
	}
}

func Test_cplane05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane05. interpenetration restricted overlap")

	params := com.NewParams()
	var full, clip Plane3D

	// flat face against a face tilted about y, crossing below z = 0 for
	// small x. The interpenetrating portion ends near x = 0.6.
	m1 := mesh.UnitQuadMesh(0, 0, true)
	x := []float64{0, 0, 1, 1}
	y := []float64{0, 1, 1, 0}
	z := []float64{-0.12, -0.12, 0.08, 0.08}
	m2, err := mesh.New(1, "qua4", 1, 4, []int{0, 1, 2, 3}, x, y, z)
	if err != nil {
		tst.Errorf("mesh.New failed: %v\n", err)
		return
	}
	if err = m2.ComputeFaceData(); err != nil {
		tst.Errorf("ComputeFaceData failed: %v\n", err)
		return
	}

	interact, ferr := CheckFacePair(m1, 0, m2, 0, params, false, false, &full)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("crossing faces must interact: %v\n", ferr)
		return
	}
	chk.Int(tst, "nVert full", full.NumPolyVert, 4)
	chk.Float64(tst, "area full", 1e-6, full.Area, 0.99513333)

	params.AutoInterpenCheck = true
	interact, ferr = CheckFacePair(m1, 0, m2, 0, params, false, false, &clip)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("crossing faces must interact: %v\n", ferr)
		return
	}
	chk.Int(tst, "nVert clip", clip.NumPolyVert, 4)
	chk.Float64(tst, "area clip", 1e-5, clip.Area, 0.59609473)
	chk.Array(tst, "centroid clip", 1e-5,
		[]float64{clip.Cx, clip.Cy, clip.Cz}, []float64{0.30243227, 0.5, -0.02956287})
	if clip.Gap >= 0 || !clip.InContact {
		tst.Errorf("the clipped centroid must lie in the penetrated region\n")
		return
	}

	// full overlap skips the restriction
	interact, _ = CheckFacePair(m1, 0, m2, 0, params, false, true, &clip)
	if !interact {
		tst.Errorf("crossing faces must interact\n")
		return
	}
	chk.Float64(tst, "area full overlap", 1e-12, clip.Area, full.Area)

	// parallel penetration keeps the whole overlap
	m3, m4 := mesh.TwoQuadBlocks(2, 3, -0.02)
	interact, ferr = CheckFacePair(m3, 0, m4, 0, params, false, false, &clip)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("penetrating faces must interact: %v\n", ferr)
		return
	}
	chk.Int(tst, "nVert pen", clip.NumPolyVert, 4)
	chk.Float64(tst, "area pen", 1e-12, clip.Area, 1.0)
	chk.Float64(tst, "gap pen", 1e-12, clip.Gap, -0.02)

	// separated faces have no interpenetrating portion at all
	m5, m6 := mesh.TwoQuadBlocks(4, 5, 0.001)
	interact, ferr = CheckFacePair(m5, 0, m6, 0, params, false, false, &clip)
	if interact || ferr != com.NoFaceGeomError {
		tst.Errorf("separated faces must be dropped by the interpenetration check: %v\n", ferr)
	}
}

func Test_cplane06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane06. edge pairs in two dimensions")

	params := com.NewParams()
	var cp Plane2D

	// square body and a short downward facing edge above its top
	m1 := mesh.EdgeMesh(0, [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}})
	m2 := mesh.EdgeMesh(1, [][]float64{{0.2, 1.01}, {0.8, 1.01}})
	interact, ferr := CheckEdgePair(m1, 2, m2, 0, params, false, false, &cp)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("overlapping edges must interact: %v\n", ferr)
		return
	}
	chk.Float64(tst, "length", 1e-12, cp.Area, 0.6)
	chk.Array(tst, "normal", 1e-15, []float64{cp.Nx, cp.Ny}, []float64{0, -1})
	chk.Array(tst, "seg t", 1e-12, cp.SegT[:], []float64{-0.3, 0.3})
	chk.Array(tst, "centroid", 1e-12, []float64{cp.Cx, cp.Cy}, []float64{0.5, 1.005})
	chk.Array(tst, "cf1", 1e-12, []float64{cp.CXf1, cp.CYf1}, []float64{0.5, 1})
	chk.Array(tst, "cf2", 1e-12, []float64{cp.CXf2, cp.CYf2}, []float64{0.5, 1.01})
	chk.Float64(tst, "gap", 1e-12, cp.Gap, 0.01)
	if cp.InContact {
		tst.Errorf("separated edges must not be in contact\n")
		return
	}

	// tied picks the positive gap tolerance: the larger half length is 0.5
	interact, _ = CheckEdgePair(m1, 2, m2, 0, params, true, false, &cp)
	chk.Float64(tst, "tied gap tol", 1e-12, cp.GapTol, 0.05)
	if !interact || !cp.InContact {
		tst.Errorf("tied edges within the tolerance must be in contact\n")
		return
	}

	// penetration
	m3 := mesh.EdgeMesh(2, [][]float64{{0.2, 0.98}, {0.8, 0.98}})
	interact, _ = CheckEdgePair(m1, 2, m3, 0, params, false, false, &cp)
	if !interact || !cp.InContact {
		tst.Errorf("penetrating edges must be in contact\n")
		return
	}
	chk.Float64(tst, "gap pen", 1e-12, cp.Gap, -0.02)

	// aligned normals never interact: the bottom edge faces down too
	interact, _ = CheckEdgePair(m1, 0, m3, 0, params, false, false, &cp)
	if interact {
		tst.Errorf("edges with aligned normals must not interact\n")
		return
	}

	// disjoint tangent ranges
	m4 := mesh.EdgeMesh(3, [][]float64{{2, 1.01}, {3, 1.01}})
	interact, _ = CheckEdgePair(m1, 2, m4, 0, params, false, false, &cp)
	if interact {
		tst.Errorf("disjoint edges must not interact\n")
	}
}

func Test_cplane07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cplane07. face frame seated on the common plane")

	params := com.NewParams()
	var cp Plane3D

	m1, m2 := mesh.TwoQuadBlocks(0, 1, 0.001)
	interact, ferr := CheckFacePair(m1, 0, m2, 0, params, false, false, &cp)
	if ferr != com.NoFaceGeomError || !interact {
		tst.Errorf("pair must interact: %v\n", ferr)
		return
	}

	frame, err := NewFaceFrame("qua4", 0)
	if err != nil {
		tst.Errorf("NewFaceFrame failed: %v\n", err)
		return
	}
	if err = frame.SetOnPlane(m2, 0, &cp); err != nil {
		tst.Errorf("SetOnPlane failed: %v\n", err)
		return
	}
	xs := make([]float64, 4)
	ys := make([]float64, 4)
	for i := 0; i < 4; i++ {
		xs[i], ys[i] = m2.X[m2.Conn[i]], m2.Y[m2.Conn[i]]
	}

	// the overlap centroid maps to the centre of the face
	if err = frame.Eval(cp.Cx, cp.Cy, cp.Cz); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "interp x centre", 1e-9, frame.Interp(xs), 0.5)
	chk.Float64(tst, "interp y centre", 1e-9, frame.Interp(ys), 0.5)
	if !frame.Inside(1e-6) {
		tst.Errorf("centroid must lie inside the face\n")
		return
	}

	// a corner of the overlap maps to the corner of the face
	if err = frame.Eval(0, 0, 0.0005); err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "interp x corner", 1e-9, frame.Interp(xs), 0)
	chk.Float64(tst, "interp y corner", 1e-9, frame.Interp(ys), 0)
	if !frame.Inside(1e-6) {
		tst.Errorf("corner must lie inside the face\n")
		return
	}

	// the plane frame makes no sense for 2D meshes
	me := mesh.EdgeMesh(2, [][]float64{{0, 0}, {1, 0}})
	fe, err := NewFaceFrame("lin2", 0)
	if err != nil {
		tst.Errorf("NewFaceFrame failed: %v\n", err)
		return
	}
	if err = fe.SetOnPlane(me, 0, &cp); err == nil {
		tst.Errorf("SetOnPlane must reject 2D meshes\n")
	}
}
