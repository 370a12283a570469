// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/mesh"
)

// WriteVtk writes the surface faces and/or the contact planes of one cycle
// to a legacy VTK polydata file named <fnkey>_<cycle>.vtk under dirout
// ("/tmp/tribol" when empty). What is included follows vis. Face cells
// carry kind 0 (first mesh) or 1 (second mesh), overlap cells kind 2 along
// with their gap; the face data of the meshes must be up to date.
func WriteVtk(dirout, fnkey string, cycle int, vis com.VisType, m1, m2 *mesh.Mesh,
	planes3 []cplane.Plane3D, planes2 []cplane.Plane2D) (err error) {

	if vis == com.VisNone {
		return
	}
	if dirout == "" {
		dirout = "/tmp/tribol"
	}
	faces := vis == com.VisFaces || vis == com.VisFacesAndOverlaps
	overs := vis == com.VisOverlaps || vis == com.VisFacesAndOverlaps
	threeD := m1.Ndim == 3

	// geometry buffers and cell data
	pts := new(bytes.Buffer)
	cls := new(bytes.Buffer)
	var kind []int
	var gap, area []float64
	npts, ncells, csize := 0, 0, 0

	// cell references the nv points emitted last
	cell := func(nv int) {
		io.Ff(cls, "%d", nv)
		for i := npts - nv; i < npts; i++ {
			io.Ff(cls, " %d", i)
		}
		io.Ff(cls, "\n")
		ncells++
		csize += 1 + nv
	}

	if faces {
		var x, y, z [com.MaxNodesPerElem]float64
		for im, m := range []*mesh.Mesh{m1, m2} {
			for f := 0; f < m.Nelems; f++ {
				if threeD {
					m.FaceCoords(f, x[:], y[:], z[:])
				} else {
					m.FaceCoords(f, x[:], y[:], nil)
				}
				for i := 0; i < m.Npe; i++ {
					zi := 0.0
					if threeD {
						zi = z[i]
					}
					io.Ff(pts, "%23.15e %23.15e %23.15e\n", x[i], y[i], zi)
					npts++
				}
				cell(m.Npe)
				kind = append(kind, im)
				gap = append(gap, 0)
				area = append(area, m.Area[f])
			}
		}
	}

	if overs {
		for i := range planes3 {
			cp := &planes3[i]
			if cp.NumPolyVert < 3 {
				continue
			}
			for j := 0; j < cp.NumPolyVert; j++ {
				io.Ff(pts, "%23.15e %23.15e %23.15e\n", cp.PolyX[j], cp.PolyY[j], cp.PolyZ[j])
				npts++
			}
			cell(cp.NumPolyVert)
			kind = append(kind, 2)
			gap = append(gap, cp.Gap)
			area = append(area, cp.Area)
		}
		for i := range planes2 {
			cp := &planes2[i]
			if cp.Area <= 0 {
				continue
			}
			io.Ff(pts, "%23.15e %23.15e %23.15e\n", cp.SegX[0], cp.SegY[0], 0.0)
			io.Ff(pts, "%23.15e %23.15e %23.15e\n", cp.SegX[1], cp.SegY[1], 0.0)
			npts += 2
			cell(2)
			kind = append(kind, 2)
			gap = append(gap, cp.Gap)
			area = append(area, cp.Area)
		}
	}

	// assemble sections
	hdr := new(bytes.Buffer)
	io.Ff(hdr, "# vtk DataFile Version 3.0\n%s contact planes, cycle %d\nASCII\nDATASET POLYDATA\n", fnkey, cycle)
	io.Ff(hdr, "POINTS %d float\n", npts)
	sec := new(bytes.Buffer)
	if threeD {
		io.Ff(sec, "POLYGONS %d %d\n", ncells, csize)
	} else {
		io.Ff(sec, "LINES %d %d\n", ncells, csize)
	}
	dat := new(bytes.Buffer)
	io.Ff(dat, "CELL_DATA %d\n", ncells)
	io.Ff(dat, "SCALARS kind int 1\nLOOKUP_TABLE default\n")
	for _, k := range kind {
		io.Ff(dat, "%d\n", k)
	}
	io.Ff(dat, "SCALARS gap float 1\nLOOKUP_TABLE default\n")
	for _, g := range gap {
		io.Ff(dat, "%23.15e\n", g)
	}
	io.Ff(dat, "SCALARS area float 1\nLOOKUP_TABLE default\n")
	for _, a := range area {
		io.Ff(dat, "%23.15e\n", a)
	}

	// the io file helpers panic on failure
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write vtk file: %v", r)
		}
	}()
	io.WriteFileVD(dirout, io.Sf("%s_%06d.vtk", fnkey, cycle), hdr, pts, sec, cls, dat)
	return
}
