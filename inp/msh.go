// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/mesh"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2 or 3)
}

// Cell holds the data of one surface face (edge in 2D)
type Cell struct {
	Id    int    // id
	Tag   int    // tag
	Type  string // face geometry type. ex: lin2, tri3, qua4
	Verts []int  // vertices
}

// Msh holds a contact surface mesh read from a (.msh) JSON file. All
// cells must share one face geometry type, since a registered mesh view
// is homogeneous.
type Msh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath string // complete filename path
}

// ReadMsh reads a surface mesh from a JSON file
func ReadMsh(dir, fn string) (o *Msh, err error) {
	o = new(Msh)
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q", o.FnamePath)
	}
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q: %v", o.FnamePath, err)
	}
	if err = o.Check(); err != nil {
		return nil, chk.Err("mesh file %q: %v", o.FnamePath, err)
	}
	return
}

// Check verifies ids, coordinates and the single face geometry rule
func (o *Msh) Check() error {
	if len(o.Verts) < 2 {
		return chk.Err("at least two vertices are required (%d given)", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least one cell is required")
	}
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential: vertex %d has id %d", i, v.Id)
		}
		if len(v.C) < 2 || len(v.C) > 3 {
			return chk.Err("vertex %d needs 2 or 3 coordinates (%d given)", v.Id, len(v.C))
		}
	}
	ctype := o.Cells[0].Type
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must be sequential: cell %d has id %d", i, c.Id)
		}
		if c.Type != ctype {
			return chk.Err("all cells must share one face geometry: cell %d is %q, cell 0 is %q", c.Id, c.Type, ctype)
		}
		for _, n := range c.Verts {
			if n < 0 || n >= len(o.Verts) {
				return chk.Err("cell %d references vertex %d out of range [0,%d)", c.Id, n, len(o.Verts))
			}
		}
	}
	return nil
}

// ToMesh converts the file data into a registered mesh view with the
// given id. The z coordinates are carried only when every vertex has
// three; the view constructor decides whether the face geometry needs
// them.
func (o *Msh) ToMesh(id int) (*mesh.Mesh, error) {
	if err := o.Check(); err != nil {
		return nil, err
	}
	nnodes := len(o.Verts)
	x := make([]float64, nnodes)
	y := make([]float64, nnodes)
	var z []float64
	all3 := true
	for _, v := range o.Verts {
		if len(v.C) < 3 {
			all3 = false
			break
		}
	}
	if all3 {
		z = make([]float64, nnodes)
	}
	for i, v := range o.Verts {
		x[i] = v.C[0]
		y[i] = v.C[1]
		if all3 {
			z[i] = v.C[2]
		}
	}
	npe := len(o.Cells[0].Verts)
	conn := make([]int, 0, npe*len(o.Cells))
	for _, c := range o.Cells {
		if len(c.Verts) != npe {
			return nil, chk.Err("cell %d has %d vertices; cell 0 has %d", c.Id, len(c.Verts), npe)
		}
		conn = append(conn, c.Verts...)
	}
	return mesh.New(id, o.Cells[0].Type, len(o.Cells), nnodes, conn, x, y, z)
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%g", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Msh
func (o Msh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
