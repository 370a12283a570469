// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/inp"
	"github.com/Zhoneym/Tribol/mesh"
)

// global variables
var (
	msh    *inp.Msh   // mesh file data
	m      *mesh.Mesh // converted view
	dirout string     // directory for output
	fnkey  string     // filename key
)

// vtk cell codes per face geometry
var vtkCodes = map[string]int{"lin2": 3, "tri3": 5, "qua4": 9}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	var mshfn string
	mshfn, fnkey = io.ArgToFilename(0, "surface", ".msh", true)
	io.Pf("\n%s\n", io.ArgsTable(
		"mesh filename", "mshfn", mshfn,
	))

	// read mesh
	var err error
	msh, err = inp.ReadMsh("", mshfn)
	if err != nil {
		io.PfRed("cannot read mesh:\n%v\n", err)
		return
	}
	m, err = msh.ToMesh(0)
	if err != nil {
		io.PfRed("cannot convert mesh:\n%v\n", err)
		return
	}
	dirout = "/tmp/tribol"

	// buffers
	geo := new(bytes.Buffer)
	vtu := new(bytes.Buffer)

	// generate topology
	topology(geo)

	// points data
	pdata_write(vtu)

	// cells data
	cdata_write(vtu)

	// write vtu file
	vtu_write(geo, vtu)
}

// headers and footers ///////////////////////////////////////////////////////////////////////////////

func vtu_write(geo, dat *bytes.Buffer) {
	if geo == nil || dat == nil {
		return
	}
	nv := len(msh.Verts)
	nc := len(msh.Cells)
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileVD(dirout, fnkey+".vtu", &hdr, geo, dat, &foo)
}

// topology ////////////////////////////////////////////////////////////////////////////////////////

func topology(buf *bytes.Buffer) {
	if buf == nil {
		return
	}

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	var z float64
	for i := 0; i < m.Nnodes; i++ {
		if m.Ndim == 3 {
			z = m.Z[i]
		}
		io.Ff(buf, "%23.15e %23.15e %23.15e ", m.X[i], m.Y[i], z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for e := 0; e < m.Nelems; e++ {
		for j := 0; j < m.Npe; j++ {
			io.Ff(buf, "%d ", m.Conn[e*m.Npe+j])
		}
	}

	// offsets of faces
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for e := 0; e < m.Nelems; e++ {
		offset += m.Npe
		io.Ff(buf, "%d ", offset)
	}

	// types of faces
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	vtkcode, ok := vtkCodes[m.Type]
	if !ok {
		chk.Panic("cannot handle face geometry %q", m.Type)
	}
	for e := 0; e < m.Nelems; e++ {
		io.Ff(buf, "%d ", vtkcode)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// points data /////////////////////////////////////////////////////////////////////////////////////

func pdata_write(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<PointData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(buf, "%d ", v.Id)
	}

	// positive tags
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(buf, "%d ", iabs(v.Tag))
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}

func cdata_write(buf *bytes.Buffer) {

	// open
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")

	// ids
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", c.Id)
	}

	// faces positive tags
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"tag\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range msh.Cells {
		io.Ff(buf, "%d ", iabs(c.Tag))
	}

	// close
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}

func iabs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
