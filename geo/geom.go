// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements low level computational geometry for contact:
// point projections, polygon centroids and areas, local basis transforms
// and polygon-polygon clipping. All routines work on raw coordinate slices
// and do not allocate, so they are safe inside parallel loops over face pairs.
package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// tolerances
const (
	DET_TOL   = 1e-12 // segment-segment determinant cutoff
	BARY_TOL  = 1e-12 // barycentric coordinate snap to zero
	COINC_TOL = 1e-15 // distance below which two vertices are the same point
)

// Mag2 returns the Euclidean norm of a 2D vector
func Mag2(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

// Mag3 returns the Euclidean norm of a 3D vector
func Mag3(vx, vy, vz float64) float64 {
	return math.Sqrt(vx*vx + vy*vy + vz*vz)
}

// Dot3 returns the dot product of two 3D vectors
func Dot3(ax, ay, az, bx, by, bz float64) float64 {
	return ax*bx + ay*by + az*bz
}

// Cross3 returns the cross product a × b of two 3D vectors
func Cross3(ax, ay, az, bx, by, bz float64) (cx, cy, cz float64) {
	cx = ay*bz - az*by
	cy = az*bx - ax*bz
	cz = ax*by - ay*bx
	return
}

// ProjectPointToPlane projects point (x,y,z) onto the plane with unit normal
// (nx,ny,nz) passing through point (ox,oy,oz)
func ProjectPointToPlane(x, y, z, nx, ny, nz, ox, oy, oz float64) (px, py, pz float64) {
	dist := (x-ox)*nx + (y-oy)*ny + (z-oz)*nz
	px = x - dist*nx
	py = y - dist*ny
	pz = z - dist*nz
	return
}

// ProjectPointToSegment projects point (x,y) onto the line with unit normal
// (nx,ny) passing through point (ox,oy)
func ProjectPointToSegment(x, y, nx, ny, ox, oy float64) (px, py float64) {
	dist := (x-ox)*nx + (y-oy)*ny
	px = x - dist*nx
	py = y - dist*ny
	return
}

// Local2DToGlobal maps in-plane coordinates (xloc,yloc) to global coordinates,
// given the orthonormal plane basis {e1,e2} and the plane point c
func Local2DToGlobal(xloc, yloc, e1x, e1y, e1z, e2x, e2y, e2z, cx, cy, cz float64) (xg, yg, zg float64) {
	xg = xloc*e1x + yloc*e2x + cx
	yg = xloc*e1y + yloc*e2y + cy
	zg = xloc*e1z + yloc*e2z + cz
	return
}

// GlobalTo2DLocal projects n points lying on a plane onto the in-plane basis
// {e1,e2} with origin at the plane point c. plx and ply must hold n entries.
func GlobalTo2DLocal(px, py, pz []float64, n int, e1x, e1y, e1z, e2x, e2y, e2z, cx, cy, cz float64, plx, ply []float64) {
	for i := 0; i < n; i++ {
		vx := px[i] - cx
		vy := py[i] - cy
		vz := pz[i] - cz
		plx[i] = vx*e1x + vy*e1y + vz*e1z
		ply[i] = vx*e2x + vy*e2y + vz*e2z
	}
}

// GlobalTo2DLocalPoint is the single point version of GlobalTo2DLocal
func GlobalTo2DLocalPoint(px, py, pz, e1x, e1y, e1z, e2x, e2y, e2z, cx, cy, cz float64) (plx, ply float64) {
	vx := px - cx
	vy := py - cy
	vz := pz - cz
	plx = vx*e1x + vy*e1y + vz*e1z
	ply = vx*e2x + vy*e2y + vz*e2z
	return
}

// VertexAvgCentroid computes the vertex averaged centroid of the first n
// vertices in the parallel coordinate slices x, y, z. z may be nil for 2D
// polygons, in which case cz is zero.
func VertexAvgCentroid(x, y, z []float64, n int) (cx, cy, cz float64) {
	if n == 0 {
		chk.Panic("VertexAvgCentroid: number of vertices must be positive")
	}
	for i := 0; i < n; i++ {
		cx += x[i]
		cy += y[i]
		if z != nil {
			cz += z[i]
		}
	}
	fac := 1.0 / float64(n)
	cx *= fac
	cy *= fac
	cz *= fac
	return
}

// PolyAreaCentroid computes the area weighted centroid of a 3D polygon by
// triangulating it against its vertex averaged centroid and weighting each
// triangle centroid by the triangle area
func PolyAreaCentroid(x, y, z []float64, n int) (cx, cy, cz float64) {
	if n == 0 {
		chk.Panic("PolyAreaCentroid: number of vertices must be positive")
	}
	xc, yc, zc := VertexAvgCentroid(x, y, z, n)
	var xt, yt, zt [3]float64
	xt[2], yt[2], zt[2] = xc, yc, zc
	areaSum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xt[0], yt[0], zt[0] = x[i], y[i], z[i]
		xt[1], yt[1], zt[1] = x[j], y[j], z[j]
		a := TriArea3D(xt[:], yt[:], zt[:])
		areaSum += a
		tx, ty, tz := VertexAvgCentroid(xt[:], yt[:], zt[:], 3)
		cx += tx * a
		cy += ty * a
		cz += tz * a
	}
	cx /= areaSum
	cy /= areaSum
	cz /= areaSum
	return
}

// PolyCentroid computes the centroid of a 2D polygon with ordered vertices
// using the signed area (shoelace) formula
func PolyCentroid(x, y []float64, n int) (cx, cy float64) {
	if n == 0 {
		chk.Panic("PolyCentroid: number of vertices must be positive")
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := x[i]*y[j] - x[j]*y[i]
		cx += (x[i] + x[j]) * cross
		cy += (y[i] + y[j]) * cross
		area += cross
	}
	area /= 2.0
	fac := 1.0 / (6.0 * area)
	cx *= fac
	cy *= fac
	return
}

// PolyArea computes the area of an ordered 2D polygon by summing the areas of
// the triangles formed by each edge and the vertex averaged centroid
func PolyArea(x, y []float64, n int) (area float64) {
	xc, yc, _ := VertexAvgCentroid(x, y, nil, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += math.Abs(0.5 * (x[i]*(y[j]-yc) + x[j]*(yc-y[i]) + xc*(y[i]-y[j])))
	}
	return
}

// TriArea3D computes the area of a triangle in 3D from the cross product of
// two edge vectors. x, y and z hold the three vertex coordinates.
func TriArea3D(x, y, z []float64) float64 {
	ux, uy, uz := x[1]-x[0], y[1]-y[0], z[1]-z[0]
	vx, vy, vz := x[2]-x[0], y[2]-y[0], z[2]-z[0]
	cx, cy, cz := Cross3(ux, uy, uz, vx, vy, vz)
	return math.Abs(0.5 * Mag3(cx, cy, cz))
}

// PolyInterYCentroid computes the overlap area between two ordered 2D
// polygons and the y coordinate of the overlap centroid by sweeping the
// x projections of all edge pairs. With axisym set, portions below y=0 are
// clipped first. It is independent of PolyInter2D and serves as a
// cross check of the clipping kernel.
func PolyInterYCentroid(na int, xa, ya []float64, nb int, xb, yb []float64, axisym bool) (area, ycent float64) {
	if na < 1 || nb < 1 {
		return
	}

	// shift the origin to the smallest coordinates to avoid roundoff
	xorg, yorg := math.MaxFloat64, math.MaxFloat64
	xaMin, xaMax := math.MaxFloat64, -math.MaxFloat64
	yaMin, yaMax := math.MaxFloat64, -math.MaxFloat64
	xbMin, xbMax := math.MaxFloat64, -math.MaxFloat64
	ybMin, ybMax := math.MaxFloat64, -math.MaxFloat64
	for i := 0; i < na; i++ {
		xaMin = math.Min(xaMin, xa[i])
		xaMax = math.Max(xaMax, xa[i])
		yaMin = math.Min(yaMin, ya[i])
		yaMax = math.Max(yaMax, ya[i])
		xorg = math.Min(xorg, xa[i])
		yorg = math.Min(yorg, ya[i])
	}
	for i := 0; i < nb; i++ {
		xbMin = math.Min(xbMin, xb[i])
		xbMax = math.Max(xbMax, xb[i])
		ybMin = math.Min(ybMin, yb[i])
		ybMax = math.Max(ybMax, yb[i])
		xorg = math.Min(xorg, xb[i])
		yorg = math.Min(yorg, yb[i])
	}
	if axisym {
		yorg = math.Max(yorg, 0)
	}

	// bounding box rejection
	if xaMin > xbMax || xbMin > xaMax || yaMin > ybMax || ybMin > yaMax {
		return
	}

	qy := 0.0

	// loop over edges of polygon a
	for ia := 0; ia < na; ia++ {
		iap := (ia + 1) % na
		xa1, ya1 := xa[ia]-xorg, ya[ia]-yorg
		xa2, ya2 := xa[iap]-xorg, ya[iap]-yorg
		if axisym {
			if ya[ia] < 0 && ya[iap] < 0 {
				continue
			}
			if ya[ia] < 0 {
				if ya1 != ya2 {
					xa1 -= (ya1 + yorg) * (xa2 - xa1) / (ya2 - ya1)
				}
				ya1 = -yorg
			} else if ya[iap] < 0 {
				if ya1 != ya2 {
					xa2 -= (ya2 + yorg) * (xa1 - xa2) / (ya1 - ya2)
				}
				ya2 = -yorg
			}
		}
		dxa := xa2 - xa1
		if dxa == 0 {
			continue
		}
		slopea := (ya2 - ya1) / dxa

		// loop over edges of polygon b
		for ib := 0; ib < nb; ib++ {
			ibp := (ib + 1) % nb
			xb1, yb1 := xb[ib]-xorg, yb[ib]-yorg
			xb2, yb2 := xb[ibp]-xorg, yb[ibp]-yorg
			if axisym {
				if yb[ib] < 0 && yb[ibp] < 0 {
					continue
				}
				if yb[ib] < 0 {
					if yb1 != yb2 {
						xb1 -= (yb1 + yorg) * (xb2 - xb1) / (yb2 - yb1)
					}
					yb1 = -yorg
				} else if yb[ibp] < 0 {
					if yb1 != yb2 {
						xb2 -= (yb2 + yorg) * (xb1 - xb2) / (yb1 - yb2)
					}
					yb2 = -yorg
				}
			}
			dxb := xb2 - xb1
			if dxb == 0 {
				continue
			}
			slopeb := (yb2 - yb1) / dxb

			// sign of the contribution and x range of the pairwise overlap
			s := dxa * dxb
			xl := math.Max(math.Min(xa1, xa2), math.Min(xb1, xb2))
			xr := math.Min(math.Max(xa1, xa2), math.Max(xb1, xb2))
			if xl >= xr {
				continue
			}
			yla := ya1 + (xl-xa1)*slopea
			ylb := yb1 + (xl-xb1)*slopeb
			yra := ya1 + (xr-xa1)*slopea
			yrb := yb1 + (xr-xb1)*slopeb
			yl := math.Min(yla, ylb)
			yr := math.Min(yra, yrb)

			// edges crossing within (xl,xr) split the contribution in two
			dslope := slopea - slopeb
			if dslope != 0 {
				xm := (yb1 - ya1 + slopea*xa1 - slopeb*xb1) / dslope
				ym := ya1 + slopea*(xm-xa1)
				if xm > xl && xm < xr {
					area1 := 0.5 * math.Copysign((yl+ym)*(xm-xl), s)
					area2 := 0.5 * math.Copysign((ym+yr)*(xr-xm), s)
					area += area1 + area2
					if yl+ym > 0 {
						qy += 1.0 / 3.0 * (ym + yl*yl/(yl+ym)) * area1
					}
					if ym+yr > 0 {
						qy += 1.0 / 3.0 * (yr + ym*ym/(ym+yr)) * area2
					}
					continue
				}
			}

			// edges do not cross: single trapezoid
			area1 := 0.5 * math.Copysign((xr-xl)*(yr+yl), s)
			area += area1
			if yl+yr > 0 {
				qy += 1.0 / 3.0 * (yr + yl*yl/(yl+yr)) * area1
			}
		}
	}

	if area != 0 {
		ycent = qy/area + yorg
	}
	return
}
