// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_geom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom01. projections and local basis round trip")

	// project onto the z=0 plane
	px, py, pz := ProjectPointToPlane(1, 2, 5, 0, 0, 1, 0, 0, 0)
	chk.Array(tst, "project z=0", 1e-17, []float64{px, py, pz}, []float64{1, 2, 0})

	// project onto the tilted plane with normal (1,1,1)/sqrt(3) through the origin
	s := 1.0 / math.Sqrt(3.0)
	px, py, pz = ProjectPointToPlane(1, 1, 1, s, s, s, 0, 0, 0)
	chk.Array(tst, "project tilted", 1e-15, []float64{px, py, pz}, []float64{0, 0, 0})

	// project onto the x axis
	qx, qy := ProjectPointToSegment(3, 4, 0, 1, 0, 0)
	chk.Array(tst, "project segment", 1e-17, []float64{qx, qy}, []float64{3, 0})

	// round trip through a rotated in-plane basis
	r := 1.0 / math.Sqrt(2.0)
	e1x, e1y, e1z := r, r, 0.0
	e2x, e2y, e2z := 0.0, 0.0, 1.0
	cx, cy, cz := 1.0, 2.0, 3.0
	xloc, yloc := 0.7, -0.2
	gx, gy, gz := Local2DToGlobal(xloc, yloc, e1x, e1y, e1z, e2x, e2y, e2z, cx, cy, cz)
	lx, ly := GlobalTo2DLocalPoint(gx, gy, gz, e1x, e1y, e1z, e2x, e2y, e2z, cx, cy, cz)
	chk.Array(tst, "round trip", 1e-14, []float64{lx, ly}, []float64{xloc, yloc})

	// slice version over the vertices of a lifted square
	gxs := []float64{cx, cx + e1x, cx + e1x + e2x, cx + e2x}
	gys := []float64{cy, cy + e1y, cy + e1y + e2y, cy + e2y}
	gzs := []float64{cz, cz + e1z, cz + e1z + e2z, cz + e2z}
	lxs := make([]float64, 4)
	lys := make([]float64, 4)
	GlobalTo2DLocal(gxs, gys, gzs, 4, e1x, e1y, e1z, e2x, e2y, e2z, cx, cy, cz, lxs, lys)
	chk.Array(tst, "lxs", 1e-14, lxs, []float64{0, 1, 1, 0})
	chk.Array(tst, "lys", 1e-14, lys, []float64{0, 0, 1, 1})
}

func Test_geom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom02. centroids and areas")

	// unit square
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	z := []float64{0, 0, 0, 0}

	cx, cy, cz := VertexAvgCentroid(x, y, z, 4)
	chk.Array(tst, "vertex avg", 1e-17, []float64{cx, cy, cz}, []float64{0.5, 0.5, 0})

	cx, cy, cz = PolyAreaCentroid(x, y, z, 4)
	chk.Array(tst, "area centroid", 1e-15, []float64{cx, cy, cz}, []float64{0.5, 0.5, 0})

	sx, sy := PolyCentroid(x, y, 4)
	chk.Array(tst, "shoelace centroid", 1e-15, []float64{sx, sy}, []float64{0.5, 0.5})

	chk.Float64(tst, "area", 1e-15, PolyArea(x, y, 4), 1.0)

	// a vertex splitting the bottom edge skews the vertex average but must
	// not move the area weighted centroid
	x5 := []float64{0, 0.5, 1, 1, 0}
	y5 := []float64{0, 0, 0, 1, 1}
	z5 := []float64{0, 0, 0, 0, 0}
	cx, cy, _ = VertexAvgCentroid(x5, y5, z5, 5)
	chk.Array(tst, "skewed vertex avg", 1e-15, []float64{cx, cy}, []float64{0.5, 0.4})
	cx, cy, cz = PolyAreaCentroid(x5, y5, z5, 5)
	chk.Array(tst, "unskewed area centroid", 1e-14, []float64{cx, cy, cz}, []float64{0.5, 0.5, 0})
	chk.Float64(tst, "area 5-gon", 1e-14, PolyArea(x5, y5, 5), 1.0)

	// triangles in 3D
	chk.Float64(tst, "tri 3-4-5", 1e-15, TriArea3D([]float64{0, 3, 0}, []float64{0, 0, 4}, []float64{0, 0, 0}), 6.0)
	chk.Float64(tst, "tri tilted", 1e-15, TriArea3D([]float64{0, 1, 0}, []float64{0, 0, 1}, []float64{0, 1, 1}), math.Sqrt(3.0)/2.0)
}

func Test_geom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geom03. polygon overlap by x sweep")

	sq := func(x0, y0 float64) (x, y []float64) {
		x = []float64{x0, x0 + 1, x0 + 1, x0}
		y = []float64{y0, y0, y0 + 1, y0 + 1}
		return
	}

	// coincident unit squares
	xa, ya := sq(0, 0)
	area, ycent := PolyInterYCentroid(4, xa, ya, 4, xa, ya, false)
	chk.Float64(tst, "area coincident", 1e-14, area, 1.0)
	chk.Float64(tst, "ycent coincident", 1e-14, ycent, 0.5)

	// shifted a quarter along x
	xb, yb := sq(0.25, 0)
	area, ycent = PolyInterYCentroid(4, xa, ya, 4, xb, yb, false)
	chk.Float64(tst, "area shifted", 1e-14, area, 0.75)
	chk.Float64(tst, "ycent shifted", 1e-14, ycent, 0.5)

	// disjoint
	xb, yb = sq(3, 3)
	area, ycent = PolyInterYCentroid(4, xa, ya, 4, xb, yb, false)
	chk.Float64(tst, "area disjoint", 1e-17, area, 0.0)

	// axisymmetric clip drops the part below the axis
	xc := []float64{0, 1, 1, 0}
	yc := []float64{-0.5, -0.5, 0.5, 0.5}
	area, ycent = PolyInterYCentroid(4, xc, yc, 4, xc, yc, true)
	chk.Float64(tst, "area axisym", 1e-14, area, 0.5)
	chk.Float64(tst, "ycent axisym", 1e-14, ycent, 0.25)

	io.Pf("overlap sweep ok\n")
}

func Test_bbox01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bbox01. axis aligned boxes")

	a := NewBBox()
	a.AddPoint(0, 0, 0)
	a.AddPoint(1, 2, 3)
	chk.Array(tst, "min", 1e-17, a.Min[:], []float64{0, 0, 0})
	chk.Array(tst, "max", 1e-17, a.Max[:], []float64{1, 2, 3})

	cx, cy, cz := a.Center()
	chk.Array(tst, "center", 1e-17, []float64{cx, cy, cz}, []float64{0.5, 1, 1.5})
	chk.Int(tst, "long axis", a.LongAxis(), 2)

	b := NewBBox()
	b.AddPoint(2, 3, 4)
	b.AddPoint(3, 4, 5)
	if a.Overlaps(&b) {
		tst.Errorf("disjoint boxes must not overlap\n")
		return
	}
	b.Expand(1.0)
	if !a.Overlaps(&b) {
		tst.Errorf("expanded boxes must overlap\n")
		return
	}

	u := NewBBox()
	u.Union(&a)
	u.Union(&b)
	chk.Array(tst, "union min", 1e-17, u.Min[:], []float64{0, 0, 0})
	chk.Array(tst, "union max", 1e-17, u.Max[:], []float64{4, 5, 6})
}
