// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
)

// capacity of the scratch buffers inside the clipping kernel: segment-segment
// hits plus the vertices of both faces
const MAX_IDENTIFIED_POINTS = com.MaxNodesPerOverlap + 2*com.MaxNodesPerElem

// PolyInter2D computes the polygon of intersection between two ordered convex
// polygons given in a common 2D coordinate system. The overlap vertices are
// written to polyX and polyY in counter clockwise order and the overlap area
// is returned. posTol is the ratio of segment length below which a computed
// intersection snaps to a nearby vertex; lenTol is the length below which
// overlap edges collapse. A zero area with a nil error means the polygons do
// not overlap, or that the overlap degenerated to fewer than 3 vertices.
func PolyInter2D(xA, yA []float64, numVertexA int, xB, yB []float64, numVertexB int,
	posTol, lenTol float64, orientCheck bool, polyX, polyY []float64) (numPolyVert int, area float64, ferr com.FaceGeomError) {

	// degenerate faces and faces larger than the scratch buffers are input errors
	if numVertexA < 3 || numVertexB < 3 ||
		numVertexA > com.MaxNodesPerElem || numVertexB > com.MaxNodesPerElem {
		return 0, 0, com.InvalidFaceInput
	}

	// both faces must be consistently ordered (CW or CCW each)
	if orientCheck {
		if !CheckPolyOrientation(xA, yA, numVertexA) || !CheckPolyOrientation(xB, yB, numVertexB) {
			return 0, 0, com.FaceOrientation
		}
	}

	// bounding box rejection
	xAmin, xAmax := xA[0], xA[0]
	yAmin, yAmax := yA[0], yA[0]
	for i := 1; i < numVertexA; i++ {
		xAmin = math.Min(xAmin, xA[i])
		xAmax = math.Max(xAmax, xA[i])
		yAmin = math.Min(yAmin, yA[i])
		yAmax = math.Max(yAmax, yA[i])
	}
	xBmin, xBmax := xB[0], xB[0]
	yBmin, yBmax := yB[0], yB[0]
	for i := 1; i < numVertexB; i++ {
		xBmin = math.Min(xBmin, xB[i])
		xBmax = math.Max(xBmax, xB[i])
		yBmin = math.Min(yBmin, yB[i])
		yBmax = math.Max(yBmax, yB[i])
	}
	if xAmin > xBmax || xBmin > xAmax || yAmin > yBmax || yBmin > yAmax {
		return 0, 0, com.NoFaceGeomError
	}

	// mark the vertices of each polygon interior to the other polygon,
	// using precomputed vertex averaged centroids for the in-face tests
	var interiorVAId, interiorVBId [com.MaxNodesPerElem]int
	for i := 0; i < numVertexA; i++ {
		interiorVAId[i] = -1
	}
	for i := 0; i < numVertexB; i++ {
		interiorVBId[i] = -1
	}
	xCA, yCA, _ := VertexAvgCentroid(xA, yA, nil, numVertexA)
	xCB, yCB, _ := VertexAvgCentroid(xB, yB, nil, numVertexB)

	numVAI, numVBI := 0, 0
	for i := 0; i < numVertexA; i++ {
		if PointInFace2D(xA[i], yA[i], xB, yB, xCB, yCB, numVertexB) {
			interiorVAId[i] = i
			numVAI++
		}
	}

	// all of A inside B: A is the overlap
	if numVAI == numVertexA {
		numPolyVert = numVertexA
		copy(polyX, xA[:numVertexA])
		copy(polyY, yA[:numVertexA])
		area = PolyArea(polyX, polyY, numVertexA)
		return
	}

	for i := 0; i < numVertexB; i++ {
		if PointInFace2D(xB[i], yB[i], xA, yA, xCA, yCA, numVertexA) {
			interiorVBId[i] = i
			numVBI++
		}
	}

	// all of B inside A: B is the overlap
	if numVBI == numVertexB {
		numPolyVert = numVertexB
		copy(polyX, xB[:numVertexB])
		copy(polyY, yB[:numVertexB])
		area = PolyArea(polyX, polyY, numVertexB)
		return
	}

	// drop interior vertices of B coincident with interior vertices of A
	for i := 0; i < numVertexA; i++ {
		if interiorVAId[i] == -1 {
			continue
		}
		for j := 0; j < numVertexB; j++ {
			if interiorVBId[j] == -1 {
				continue
			}
			if Mag2(xA[i]-xB[j], yA[i]-yB[j]) < COINC_TOL {
				interiorVBId[j] = -1
				numVBI--
			}
		}
	}

	// collect segment-segment intersections over all edge pairs. Edge pairs
	// whose hit duplicates an interior vertex are reported as non-intersecting
	// by SegSegIntersect2D, since the vertex is already in the interior set.
	var interX, interY [com.MaxIntersections]float64
	var intersect [com.MaxIntersections]bool
	var interior [4]bool
	interId := 0
	for ia := 0; ia < numVertexA; ia++ {
		ia2 := (ia + 1) % numVertexA
		interior[0] = interiorVAId[ia] != -1
		interior[1] = interiorVAId[ia2] != -1
		for jb := 0; jb < numVertexB; jb++ {
			jb2 := (jb + 1) % numVertexB
			interior[2] = interiorVBId[jb] != -1
			interior[3] = interiorVBId[jb2] != -1
			if interId >= com.MaxIntersections {
				return 0, 0, com.DegenerateOverlap
			}
			interX[interId], interY[interId], intersect[interId], _ = SegSegIntersect2D(
				xA[ia], yA[ia], xA[ia2], yA[ia2],
				xB[jb], yB[jb], xB[jb2], yB[jb2],
				interior[:], posTol)
			interId++
		}
	}
	numSegInter := 0
	for i := 0; i < interId; i++ {
		if intersect[i] {
			numSegInter++
		}
	}

	// no intersections and no interior vertices: zero overlap, not an error
	if numSegInter == 0 && numVAI == 0 && numVBI == 0 {
		return 0, 0, com.NoFaceGeomError
	}

	// gather the identified points: hits first, then interior A, then interior B
	numPolyVert = numSegInter + numVAI + numVBI
	var polyXTemp, polyYTemp [MAX_IDENTIFIED_POINTS]float64
	k := 0
	for i := 0; i < interId; i++ {
		if intersect[i] {
			polyXTemp[k] = interX[i]
			polyYTemp[k] = interY[i]
			k++
		}
	}
	for i := 0; i < numVertexA; i++ {
		if interiorVAId[i] != -1 {
			if k >= MAX_IDENTIFIED_POINTS {
				return 0, 0, com.FaceVertexIndexExceedsOverlapVertices
			}
			polyXTemp[k] = xA[i]
			polyYTemp[k] = yA[i]
			k++
		}
	}
	for i := 0; i < numVertexB; i++ {
		if interiorVBId[i] != -1 {
			if k >= MAX_IDENTIFIED_POINTS {
				return 0, 0, com.FaceVertexIndexExceedsOverlapVertices
			}
			polyXTemp[k] = xB[i]
			polyYTemp[k] = yB[i]
			k++
		}
	}

	// fewer than 3 identified points: treat as a collapsed (zero area) overlap
	if numPolyVert < 3 {
		return 0, 0, com.NoFaceGeomError
	}

	// order counter clockwise, then collapse edges shorter than lenTol
	PolyReorder(polyXTemp[:], polyYTemp[:], numPolyVert)
	numFinalVert, segErr := CheckPolySegs(polyXTemp[:], polyYTemp[:], numPolyVert, lenTol, polyX, polyY)
	if segErr != com.NoFaceGeomError {
		return 0, 0, segErr
	}
	if numFinalVert < 3 {
		return 0, 0, com.NoFaceGeomError
	}
	numPolyVert = numFinalVert

	area = PolyArea(polyX, polyY, numPolyVert)
	return
}

// CheckPolyOrientation returns true if the ordered polygon vertices are
// consistently oriented: for every edge the inward normal must point toward
// the vertex averaged centroid
func CheckPolyOrientation(x, y []float64, n int) bool {
	xc, yc, _ := VertexAvgCentroid(x, y, nil, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n

		// inward edge normal
		nrmlx := -(y[j] - y[i])
		nrmly := x[j] - x[i]

		if (xc-x[i])*nrmlx+(yc-y[i])*nrmly < 0 {
			return false
		}
	}
	return true
}

// PointInFace2D checks whether point (xp,yp) lies inside the ordered polygon
// given by xPoly, yPoly with vertex averaged centroid (xc,yc). Triangles are
// tested directly; larger polygons are fanned into triangles about the
// centroid.
func PointInFace2D(xp, yp float64, xPoly, yPoly []float64, xc, yc float64, n int) bool {
	if n < 3 {
		chk.Panic("PointInFace2D: polygon must have at least 3 vertices")
	}
	if n == 3 {
		return PointInTri2D(xp, yp, xPoly, yPoly)
	}
	var xTri, yTri [3]float64
	xTri[2], yTri[2] = xc, yc
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xTri[0], yTri[0] = xPoly[i], yPoly[i]
		xTri[1], yTri[1] = xPoly[j], yPoly[j]
		if PointInTri2D(xp, yp, xTri[:], yTri[:]) {
			return true
		}
	}
	return false
}

// PointInTri2D checks whether point (xp,yp) lies inside the triangle given by
// the first three entries of xTri, yTri, using barycentric coordinates with a
// snap of numerically zero values
func PointInTri2D(xp, yp float64, xTri, yTri []float64) bool {

	// edge basis and point vector relative to the first vertex
	e1x, e1y := xTri[1]-xTri[0], yTri[1]-yTri[0]
	e2x, e2y := xTri[2]-xTri[0], yTri[2]-yTri[0]
	p1x, p1y := xp-xTri[0], yp-yTri[0]

	e11 := e1x*e1x + e1y*e1y
	e12 := e1x*e2x + e1y*e2y
	e22 := e2x*e2x + e2y*e2y
	p1e1 := p1x*e1x + p1y*e1y
	p1e2 := p1x*e2x + p1y*e2y

	invDet := 1.0 / (e11*e22 - e12*e12)
	u := invDet * (e22*p1e1 - e12*p1e2)
	v := invDet * (e11*p1e2 - e12*p1e1)

	// u or v may be negative but numerically zero
	if math.Abs(u) < BARY_TOL {
		u = 0
	}
	if math.Abs(v) < BARY_TOL {
		v = 0
	}
	return u >= 0 && v >= 0 && u+v <= 1
}

// SegSegIntersect2D computes the unique intersection point between segment
// (xA1,yA1)-(xB1,yB1) and segment (xA2,yA2)-(xB2,yB2). Parallel segments do
// not intersect here; overlapping collinear segments are assumed to have had
// their shared vertices registered as interior points beforehand. When the
// hit lies within tol (as a ratio of segment length) of a segment vertex that
// is flagged interior (or when interior is nil), the hit snaps to that vertex
// and is reported as a duplicate rather than an intersection. interior holds
// the flags of the four vertices in argument order.
func SegSegIntersect2D(xA1, yA1, xB1, yB1, xA2, yA2, xB2, yB2 float64,
	interior []bool, tol float64) (x, y float64, intersect, duplicate bool) {

	lambdaX1 := xB1 - xA1
	lambdaY1 := yB1 - yA1
	lambdaX2 := xB2 - xA2
	lambdaY2 := yB2 - yA2

	seg1Mag := Mag2(lambdaX1, lambdaY1)
	seg2Mag := Mag2(lambdaX2, lambdaY2)

	// determinant of [ -lx1 lx2 ; -ly1 ly2 ]
	det := -lambdaX1*lambdaY2 + lambdaX2*lambdaY1
	if det > -DET_TOL && det < DET_TOL {
		return 0, 0, false, false
	}

	invDet := 1.0 / det
	rX := xA1 - xA2
	rY := yA1 - yA2
	tA := invDet * (rX*lambdaY2 - rY*lambdaX2)
	tB := invDet * (rX*lambdaY1 - rY*lambdaX1)

	// both parameters must lie in [0,1]
	if tA < 0 || tA > 1 || tB < 0 || tB > 1 {
		return 0, 0, false, false
	}

	x = xA1 + lambdaX1*tA
	y = yA1 + lambdaY1*tA

	// distance from the hit to the closest of the four segment vertices
	xVert := [4]float64{xA1, xB1, xA2, xB2}
	yVert := [4]float64{yA1, yB1, yA2, yB2}
	distMin := math.Max(seg1Mag, seg2Mag)
	idMin := -1
	for i := 0; i < 4; i++ {
		d := Mag2(x-xVert[i], y-yVert[i])
		if d < distMin {
			distMin = d
			idMin = i
		}
	}

	// snap hits close to an interior vertex onto that vertex
	if idMin >= 0 {
		distRatio := distMin / seg2Mag
		if idMin < 2 {
			distRatio = distMin / seg1Mag
		}
		if distRatio < tol {
			if interior == nil || interior[idMin] {
				x = xVert[idMin]
				y = yVert[idMin]
				return x, y, false, true
			}
		}
	}

	return x, y, true, false
}

// CheckPolySegs collapses polygon edges shorter than tol by merging the
// second vertex of each short edge into the first, writing the surviving
// vertices to xnew, ynew. When fewer than 3 vertices survive, numNewPoints
// reports the count and the polygon is left for the caller to discard.
func CheckPolySegs(x, y []float64, numPoints int, tol float64, xnew, ynew []float64) (numNewPoints int, ferr com.FaceGeomError) {
	var newIDs [MAX_IDENTIFIED_POINTS]int
	for i := 0; i < numPoints; i++ {
		newIDs[i] = i
	}
	for i := 0; i < numPoints; i++ {
		j := (i + 1) % numPoints
		if Mag2(x[j]-x[i], y[j]-y[i]) < tol {
			newIDs[j] = i
		}
	}
	for i := 0; i < numPoints; i++ {
		if newIDs[i] == i {
			numNewPoints++
		}
	}
	if numNewPoints < 3 {
		return numNewPoints, com.NoFaceGeomError
	}
	k := 0
	for i := 0; i < numPoints; i++ {
		if newIDs[i] == i {
			if k >= len(xnew) {
				return 0, com.FaceVertexIndexExceedsOverlapVertices
			}
			xnew[k] = x[i]
			ynew[k] = y[i]
			k++
		}
	}
	return numNewPoints, com.NoFaceGeomError
}

// PolyReorder orders an unordered set of vertices of a convex polygon counter
// clockwise, in place. The first vertex stays first; the second is found by a
// convex hull edge test and the rest follow by greedily maximising the cosine
// of the angle with the current reference edge.
func PolyReorder(x, y []float64, numPoints int) bool {
	if numPoints < 3 {
		return false
	}

	var proj [MAX_IDENTIFIED_POINTS - 2]float64
	var newIDs [MAX_IDENTIFIED_POINTS]int
	for i := 0; i < numPoints; i++ {
		newIDs[i] = i
	}

	xC, yC, _ := VertexAvgCentroid(x, y, nil, numPoints)

	// find the vertex j such that segment 0-j is a hull edge oriented CCW:
	// all remaining vertices on one side and the inward normal toward the
	// centroid
	id0 := 0
	id1 := -1
	for j := 1; j < numPoints; j++ {
		lambdaX := x[j] - x[id0]
		lambdaY := y[j] - y[id0]
		nrmlx := -lambdaY
		nrmly := lambdaX

		pk := 0
		for k := 0; k < numPoints; k++ {
			if k != id0 && k != j {
				proj[pk] = (x[k]-x[id0])*nrmlx + (y[k]-y[id0])*nrmly
				pk++
			}
		}
		neg, pos := false, false
		for ip := 0; ip < pk; ip++ {
			if !neg {
				neg = proj[ip] < 0
			}
			if !pos {
				pos = proj[ip] > 0
			}
			if neg && pos {
				break
			}
		}
		if !neg || !pos {
			if nrmlx*(xC-x[id0])+nrmly*(yC-y[id0]) > 0 {
				id1 = j
				break
			}
		}
	}
	if id1 != -1 {
		newIDs[1] = id1
		newIDs[id1] = 1
	}

	// extend the ordering one vertex at a time: the next vertex forms the
	// smallest angle with the current reference edge
	for i := 0; i < numPoints-3; i++ {
		refx := x[newIDs[i+1]] - x[newIDs[i]]
		refy := y[newIDs[i+1]] - y[newIDs[i]]
		refMag := Mag2(refx, refy)

		next := 2 + i
		jID := next
		cosThetaMax := -1.0
		for j := next; j < numPoints; j++ {
			lx := x[newIDs[j]] - x[newIDs[i]]
			ly := y[newIDs[j]] - y[newIDs[i]]
			cosTheta := (lx*refx + ly*refy) / (refMag * Mag2(lx, ly))
			if cosTheta > cosThetaMax {
				cosThetaMax = cosTheta
				jID = j
			}
		}
		newIDs[next], newIDs[jID] = newIDs[jID], newIDs[next]
	}

	var xtemp, ytemp [MAX_IDENTIFIED_POINTS]float64
	for i := 0; i < numPoints; i++ {
		xtemp[i] = x[i]
		ytemp[i] = y[i]
	}
	for i := 0; i < numPoints; i++ {
		x[i] = xtemp[newIDs[i]]
		y[i] = ytemp[newIDs[i]]
	}
	return true
}

// ElemReverse reverses the vertex order of a face in place, keeping the first
// vertex first
func ElemReverse(x, y []float64, numPoints int) {
	var xtemp, ytemp [com.MaxNodesPerElem]float64
	for i := 0; i < numPoints; i++ {
		xtemp[i] = x[i]
		ytemp[i] = y[i]
	}
	k := 1
	for i := numPoints - 1; i > 0; i-- {
		x[k] = xtemp[i]
		y[k] = ytemp[i]
		k++
	}
}

// PolyReorderWithNormal reverses the ordered 3D polygon in place if the
// normal implied by its vertex ordering opposes the given normal
func PolyReorderWithNormal(x, y, z []float64, numPoints int, nX, nY, nZ float64) {
	pNrmlX, pNrmlY, pNrmlZ := Cross3(
		x[1]-x[0], y[1]-y[0], z[1]-z[0],
		x[2]-x[0], y[2]-y[0], z[2]-z[0])
	if Dot3(pNrmlX, pNrmlY, pNrmlZ, nX, nY, nZ) >= 0 {
		return
	}
	var xTemp, yTemp, zTemp [com.MaxNodesPerOverlap]float64
	xTemp[0], yTemp[0], zTemp[0] = x[0], y[0], z[0]
	for i := 1; i < numPoints; i++ {
		xTemp[i] = x[numPoints-i]
		yTemp[i] = y[numPoints-i]
		zTemp[i] = z[numPoints-i]
	}
	for i := 0; i < numPoints; i++ {
		x[i] = xTemp[i]
		y[i] = yTemp[i]
		z[i] = zTemp[i]
	}
}

// LinePlaneIntersect intersects the segment (xA,yA,zA)-(xB,yB,zB) with the
// plane through (xP,yP,zP) with normal (nX,nY,nZ). hit reports whether the
// intersection lies within the segment; inPlane reports a segment parallel
// to the plane (possibly lying in it), for which no unique intersection
// point exists.
func LinePlaneIntersect(xA, yA, zA, xB, yB, zB, xP, yP, zP, nX, nY, nZ float64) (x, y, z float64, hit, inPlane bool) {
	lambdaX := xB - xA
	lambdaY := yB - yA
	lambdaZ := zB - zA

	prod := lambdaX*nX + lambdaY*nY + lambdaZ*nZ
	if prod == 0 {
		return 0, 0, 0, false, true
	}

	prodV := (xP-xA)*nX + (yP-yA)*nY + (zP-zA)*nZ
	t := prodV / prod
	if t >= 0 && t <= 1 {
		x = xA + lambdaX*t
		y = yA + lambdaY*t
		z = zA + lambdaZ*t
		return x, y, z, true, false
	}
	return 0, 0, 0, false, false
}
