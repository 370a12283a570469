// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/com"
)

// checkPolyVerts compares an ordered polygon against a reference, allowing a
// cyclic shift of the starting vertex
func checkPolyVerts(tst *testing.T, msg string, tol float64, x, y []float64, n int, xref, yref []float64) {
	if n != len(xref) {
		tst.Errorf("%s: wrong number of vertices: %d != %d\n", msg, n, len(xref))
		return
	}
	shift := -1
	for s := 0; s < n; s++ {
		if math.Abs(x[s]-xref[0]) < tol && math.Abs(y[s]-yref[0]) < tol {
			shift = s
			break
		}
	}
	if shift < 0 {
		tst.Errorf("%s: reference start vertex not found\n", msg)
		return
	}
	for i := 0; i < n; i++ {
		j := (shift + i) % n
		if math.Abs(x[j]-xref[i]) > tol || math.Abs(y[j]-yref[i]) > tol {
			tst.Errorf("%s: vertex %d: (%g,%g) != (%g,%g)\n", msg, i, x[j], y[j], xref[i], yref[i])
			return
		}
	}
}

const (
	posTolTest = 1e-12
	lenTolTest = 1e-8
)

func Test_polyinter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyinter01. coincident squares")

	xa := []float64{0, 1, 1, 0}
	ya := []float64{0, 0, 1, 1}
	polyX := make([]float64, com.MaxNodesPerOverlap)
	polyY := make([]float64, com.MaxNodesPerOverlap)

	n, area, ferr := PolyInter2D(xa, ya, 4, xa, ya, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts", n, 4)
	chk.Float64(tst, "area", 1e-14, area, 1.0)
	checkPolyVerts(tst, "overlap", 1e-14, polyX, polyY, n, xa, ya)

	cx, cy := PolyCentroid(polyX, polyY, n)
	chk.Array(tst, "centroid", 1e-14, []float64{cx, cy}, []float64{0.5, 0.5})
}

func Test_polyinter02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyinter02. squares shifted a quarter")

	xa := []float64{0, 1, 1, 0}
	ya := []float64{0, 0, 1, 1}
	xb := []float64{0.25, 1.25, 1.25, 0.25}
	yb := []float64{0, 0, 1, 1}
	polyX := make([]float64, com.MaxNodesPerOverlap)
	polyY := make([]float64, com.MaxNodesPerOverlap)

	n, area, ferr := PolyInter2D(xa, ya, 4, xb, yb, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts", n, 4)
	chk.Float64(tst, "area", 1e-14, area, 0.75)
	checkPolyVerts(tst, "overlap", 1e-14, polyX, polyY, n,
		[]float64{1, 1, 0.25, 0.25}, []float64{0, 1, 1, 0})

	// independent cross check by the x sweep
	areaSweep, ycent := PolyInterYCentroid(4, xa, ya, 4, xb, yb, false)
	chk.Float64(tst, "area sweep", 1e-14, areaSweep, area)
	chk.Float64(tst, "ycent sweep", 1e-14, ycent, 0.5)
}

func Test_polyinter03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyinter03. disjoint and touching squares")

	xa := []float64{0, 1, 1, 0}
	ya := []float64{0, 0, 1, 1}
	polyX := make([]float64, com.MaxNodesPerOverlap)
	polyY := make([]float64, com.MaxNodesPerOverlap)

	// far apart: bounding box rejection
	xb := []float64{5, 6, 6, 5}
	yb := []float64{5, 5, 6, 6}
	n, area, ferr := PolyInter2D(xa, ya, 4, xb, yb, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts disjoint", n, 0)
	chk.Float64(tst, "area disjoint", 1e-17, area, 0.0)

	// sharing an edge: the overlap degenerates to a segment with zero area
	xb = []float64{1, 2, 2, 1}
	yb = []float64{0, 0, 1, 1}
	n, area, ferr = PolyInter2D(xa, ya, 4, xb, yb, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts touching", n, 0)
	chk.Float64(tst, "area touching", 1e-17, area, 0.0)
}

func Test_polyinter04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyinter04. square and diamond give an octagon")

	xa := []float64{0, 1, 1, 0}
	ya := []float64{0, 0, 1, 1}
	xb := []float64{0.5, 1.2, 0.5, -0.2}
	yb := []float64{-0.2, 0.5, 1.2, 0.5}
	polyX := make([]float64, com.MaxNodesPerOverlap)
	polyY := make([]float64, com.MaxNodesPerOverlap)

	n, area, ferr := PolyInter2D(xa, ya, 4, xb, yb, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}

	// the diamond cuts a leg 0.3 triangle off each square corner
	chk.Int(tst, "nverts", n, 8)
	chk.Float64(tst, "area", 1e-14, area, 1.0-4.0*0.5*0.3*0.3)
	if !CheckPolyOrientation(polyX, polyY, n) {
		tst.Errorf("overlap polygon is not ordered counter clockwise\n")
		return
	}
	cx, cy := PolyCentroid(polyX, polyY, n)
	chk.Array(tst, "centroid", 1e-14, []float64{cx, cy}, []float64{0.5, 0.5})

	areaSweep, ycent := PolyInterYCentroid(4, xa, ya, 4, xb, yb, false)
	chk.Float64(tst, "area sweep", 1e-14, areaSweep, area)
	chk.Float64(tst, "ycent sweep", 1e-14, ycent, 0.5)
}

func Test_polyinter05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyinter05. triangles")

	// coincident triangles
	xa := []float64{0, 1, 0}
	ya := []float64{0, 0, 1}
	polyX := make([]float64, com.MaxNodesPerOverlap)
	polyY := make([]float64, com.MaxNodesPerOverlap)

	n, area, ferr := PolyInter2D(xa, ya, 3, xa, ya, 3, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts coincident", n, 3)
	chk.Float64(tst, "area coincident", 1e-14, area, 0.5)

	// shifted half along x: one hit and one interior vertex per side
	xb := []float64{0.5, 1.5, 0.5}
	yb := []float64{0, 0, 1}
	n, area, ferr = PolyInter2D(xa, ya, 3, xb, yb, 3, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts shifted", n, 3)
	chk.Float64(tst, "area shifted", 1e-14, area, 0.125)
	checkPolyVerts(tst, "overlap", 1e-14, polyX, polyY, n,
		[]float64{0.5, 0.5, 1}, []float64{0.5, 0, 0})
}

func Test_polyinter06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyinter06. input and orientation errors")

	xa := []float64{0, 1, 1, 0}
	ya := []float64{0, 0, 1, 1}
	polyX := make([]float64, com.MaxNodesPerOverlap)
	polyY := make([]float64, com.MaxNodesPerOverlap)

	// a two vertex "polygon" is invalid input
	_, _, ferr := PolyInter2D(xa, ya, 2, xa, ya, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.InvalidFaceInput {
		tst.Errorf("degenerate input must give InvalidFaceInput: %v\n", ferr)
		return
	}

	// clockwise vertices fail the orientation check...
	xcw := []float64{0, 0, 1, 1}
	ycw := []float64{0, 1, 1, 0}
	_, _, ferr = PolyInter2D(xcw, ycw, 4, xa, ya, 4, posTolTest, lenTolTest, true, polyX, polyY)
	if ferr != com.FaceOrientation {
		tst.Errorf("clockwise input must give FaceOrientation: %v\n", ferr)
		return
	}

	// ...but are clipped fine when the check is off, since the kernel only
	// needs each polygon to be consistently ordered
	xb := []float64{0.25, 0.25, 1.25, 1.25}
	yb := []float64{0, 1, 1, 0}
	n, area, ferr := PolyInter2D(xcw, ycw, 4, xb, yb, 4, posTolTest, lenTolTest, false, polyX, polyY)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("clipping failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts", n, 4)
	chk.Float64(tst, "area", 1e-14, area, 0.75)

	io.Pf("error taxonomy ok\n")
}

func Test_polyorder01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyorder01. vertex reordering")

	// shuffled square vertices
	x := []float64{0, 1, 0, 1}
	y := []float64{0, 1, 1, 0}
	if !PolyReorder(x, y, 4) {
		tst.Errorf("reorder failed\n")
		return
	}
	if !CheckPolyOrientation(x, y, 4) {
		tst.Errorf("reordered polygon is not counter clockwise\n")
		return
	}
	checkPolyVerts(tst, "square", 1e-15, x, y, 4,
		[]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1})

	// too few points
	if PolyReorder(x, y, 2) {
		tst.Errorf("reorder must reject fewer than 3 points\n")
		return
	}

	// reversing a clockwise face restores counter clockwise order, keeping
	// the first vertex in place
	xcw := []float64{0, 0, 1, 1}
	ycw := []float64{0, 1, 1, 0}
	ElemReverse(xcw, ycw, 4)
	chk.Array(tst, "reversed x", 1e-17, xcw, []float64{0, 1, 1, 0})
	chk.Array(tst, "reversed y", 1e-17, ycw, []float64{0, 0, 1, 1})

	// 3D reorder against a prescribed normal
	x3 := []float64{0, 0, 1, 1}
	y3 := []float64{0, 1, 1, 0}
	z3 := []float64{0, 0, 0, 0}
	PolyReorderWithNormal(x3, y3, z3, 4, 0, 0, 1)
	if !CheckPolyOrientation(x3, y3, 4) {
		tst.Errorf("3D reorder did not flip the clockwise polygon\n")
		return
	}

	// already counter clockwise: left untouched
	PolyReorderWithNormal(x3, y3, z3, 4, 0, 0, 1)
	if !CheckPolyOrientation(x3, y3, 4) {
		tst.Errorf("3D reorder must not flip a counter clockwise polygon\n")
		return
	}
}

func Test_polyseg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polyseg01. short edge collapse")

	// a square with one vertex duplicated within tolerance
	x := []float64{0, 1, 1 + 1e-12, 1, 0}
	y := []float64{0, 0, 0, 1, 1}
	xnew := make([]float64, com.MaxNodesPerOverlap)
	ynew := make([]float64, com.MaxNodesPerOverlap)

	n, ferr := CheckPolySegs(x, y, 5, 1e-8, xnew, ynew)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("collapse failed: %v\n", ferr)
		return
	}
	chk.Int(tst, "nverts", n, 4)
	checkPolyVerts(tst, "collapsed", 1e-15, xnew, ynew, 4,
		[]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1})

	// collapsing below 3 vertices leaves the polygon for the caller to drop
	xs := []float64{0, 1e-12, 1e-12, 0}
	ys := []float64{0, 0, 1e-12, 1e-12}
	n, ferr = CheckPolySegs(xs, ys, 4, 1e-8, xnew, ynew)
	if ferr != com.NoFaceGeomError {
		tst.Errorf("collapse failed: %v\n", ferr)
		return
	}
	if n >= 3 {
		tst.Errorf("tiny polygon must collapse below 3 vertices: n=%d\n", n)
		return
	}
}

func Test_segseg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("segseg01. segment-segment intersection")

	// crossing diagonals of the unit square
	x, y, hit, dup := SegSegIntersect2D(0, 0, 1, 1, 0, 1, 1, 0, nil, posTolTest)
	if !hit || dup {
		tst.Errorf("diagonals must intersect: hit=%v dup=%v\n", hit, dup)
		return
	}
	chk.Array(tst, "crossing", 1e-15, []float64{x, y}, []float64{0.5, 0.5})

	// parallel segments
	_, _, hit, _ = SegSegIntersect2D(0, 0, 1, 0, 0, 1, 1, 1, nil, posTolTest)
	if hit {
		tst.Errorf("parallel segments must not intersect\n")
		return
	}

	// intersection beyond the end of the second segment
	_, _, hit, _ = SegSegIntersect2D(0, 0, 1, 1, 2, 1, 3, 0, nil, posTolTest)
	if hit {
		tst.Errorf("out of range intersection must be rejected\n")
		return
	}

	// a hit exactly on a vertex snaps and reports a duplicate when no
	// interior flags are given
	x, y, hit, dup = SegSegIntersect2D(0, 0, 1, 0, 0.5, 0, 0.5, 1, nil, posTolTest)
	if hit || !dup {
		tst.Errorf("vertex hit must snap to a duplicate: hit=%v dup=%v\n", hit, dup)
		return
	}
	chk.Array(tst, "snapped", 1e-15, []float64{x, y}, []float64{0.5, 0})

	// the same hit is a true intersection when the vertex is not interior
	interior := []bool{false, false, false, false}
	x, y, hit, dup = SegSegIntersect2D(0, 0, 1, 0, 0.5, 0, 0.5, 1, interior, posTolTest)
	if !hit || dup {
		tst.Errorf("non-interior vertex hit must count: hit=%v dup=%v\n", hit, dup)
		return
	}
	chk.Array(tst, "kept", 1e-15, []float64{x, y}, []float64{0.5, 0})
}

func Test_pointintri01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pointintri01. barycentric point location")

	xt := []float64{0, 1, 0}
	yt := []float64{0, 0, 1}

	if !PointInTri2D(0.25, 0.25, xt, yt) {
		tst.Errorf("interior point not found\n")
		return
	}
	if PointInTri2D(1, 1, xt, yt) {
		tst.Errorf("exterior point accepted\n")
		return
	}
	if !PointInTri2D(0, 0, xt, yt) || !PointInTri2D(0.5, 0.5, xt, yt) {
		tst.Errorf("boundary points must count as inside\n")
		return
	}

	// numerically negative barycentric coordinates snap to zero
	if !PointInTri2D(-1e-13, 0.5, xt, yt) {
		tst.Errorf("snap of numerically zero coordinate failed\n")
		return
	}

	// fan decomposition for a quad
	xq := []float64{0, 1, 1, 0}
	yq := []float64{0, 0, 1, 1}
	if !PointInFace2D(0.5, 0.5, xq, yq, 0.5, 0.5, 4) {
		tst.Errorf("quad centroid not inside\n")
		return
	}
	if PointInFace2D(1.5, 0.5, xq, yq, 0.5, 0.5, 4) {
		tst.Errorf("point beside quad accepted\n")
		return
	}
}

func Test_lineplane01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lineplane01. segment-plane intersection")

	// vertical segment crossing z=0 halfway
	x, y, z, hit, inPlane := LinePlaneIntersect(0.5, 0.5, -1, 0.5, 0.5, 1, 0, 0, 0, 0, 0, 1)
	if !hit || inPlane {
		tst.Errorf("crossing segment must hit: hit=%v inPlane=%v\n", hit, inPlane)
		return
	}
	chk.Array(tst, "hit point", 1e-15, []float64{x, y, z}, []float64{0.5, 0.5, 0})

	// segment lying in the plane
	_, _, _, hit, inPlane = LinePlaneIntersect(0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 1)
	if hit || !inPlane {
		tst.Errorf("in-plane segment: hit=%v inPlane=%v\n", hit, inPlane)
		return
	}

	// parallel segment off the plane
	_, _, _, hit, inPlane = LinePlaneIntersect(0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1)
	if hit || !inPlane {
		tst.Errorf("parallel segment off plane: hit=%v inPlane=%v\n", hit, inPlane)
		return
	}

	// segment stopping short of the plane
	_, _, _, hit, inPlane = LinePlaneIntersect(0, 0, 1, 0, 0, 3, 0, 0, 0, 0, 0, 1)
	if hit || inPlane {
		tst.Errorf("segment short of plane: hit=%v inPlane=%v\n", hit, inPlane)
		return
	}
}
