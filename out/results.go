// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out collects per-cycle contact results and writes them out:
// plain-text reports, x-y history plots and legacy VTK files with the
// contact planes and surface faces for visual inspection
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/mesh"
)

// Results summarizes one cycle of one coupling scheme
type Results struct {
	Cycle     int     // cycle number
	Time      float64 // simulation time
	Dt        float64 // timestep after the vote
	NumPairs  int     // candidate pairs proposed by binning
	NumPlanes int     // planes accepted by the narrow phase
	NumActive int     // planes in contact
	TotalArea float64 // total overlap area; length in 2D
	MaxPen    float64 // deepest penetration (largest negative gap magnitude)
	Fx        float64 // total contact force on the first mesh
	Fy        float64
	Fz        float64
}

// Collect summarizes the contact planes and the accumulated forces of one
// cycle. Either planes3 or planes2 is nil depending on the dimension; the
// force totals are zero when m1 has no registered response.
func Collect(cycle int, t, dt float64, m1 *mesh.Mesh, planes3 []cplane.Plane3D, planes2 []cplane.Plane2D, numPairs int) (r Results) {
	r.Cycle = cycle
	r.Time = t
	r.Dt = dt
	r.NumPairs = numPairs
	r.NumPlanes = len(planes3) + len(planes2)
	for i := range planes3 {
		cp := &planes3[i]
		r.TotalArea += cp.Area
		if cp.InContact {
			r.NumActive++
		}
		if -cp.Gap > r.MaxPen {
			r.MaxPen = -cp.Gap
		}
	}
	for i := range planes2 {
		cp := &planes2[i]
		r.TotalArea += cp.Area
		if cp.InContact {
			r.NumActive++
		}
		if -cp.Gap > r.MaxPen {
			r.MaxPen = -cp.Gap
		}
	}
	if m1 != nil && m1.HasResponse() {
		for _, v := range m1.Fx {
			r.Fx += v
		}
		for _, v := range m1.Fy {
			r.Fy += v
		}
		if m1.Fz != nil {
			for _, v := range m1.Fz {
				r.Fz += v
			}
		}
	}
	return
}

// History accumulates the per-cycle results of one coupling scheme
type History struct {
	Key string // name used in report and figure filenames
	R   []Results
}

// Append adds the results of one cycle
func (o *History) Append(r Results) {
	o.R = append(o.R, r)
}

// Times returns the simulation times of all recorded cycles
func (o *History) Times() (t []float64) {
	t = make([]float64, len(o.R))
	for i, r := range o.R {
		t[i] = r.Time
	}
	return
}

// Areas returns the total overlap areas of all recorded cycles
func (o *History) Areas() (a []float64) {
	a = make([]float64, len(o.R))
	for i, r := range o.R {
		a[i] = r.TotalArea
	}
	return
}

// Actives returns the number of active pairs of all recorded cycles
func (o *History) Actives() (n []float64) {
	n = make([]float64, len(o.R))
	for i, r := range o.R {
		n[i] = float64(r.NumActive)
	}
	return
}

// Pens returns the deepest penetrations of all recorded cycles
func (o *History) Pens() (p []float64) {
	p = make([]float64, len(o.R))
	for i, r := range o.R {
		p[i] = r.MaxPen
	}
	return
}

// Force returns the history of one total force component: "fx", "fy" or
// anything else for fz
func (o *History) Force(comp string) (f []float64) {
	f = make([]float64, len(o.R))
	for i, r := range o.R {
		switch comp {
		case "fx":
			f[i] = r.Fx
		case "fy":
			f[i] = r.Fy
		default:
			f[i] = r.Fz
		}
	}
	return
}

// Report formats the history as a text table
func (o *History) Report(buf *bytes.Buffer) {
	io.Ff(buf, "%8s%14s%14s%8s%8s%8s%14s%14s%14s%14s%14s\n",
		"cycle", "time", "dt", "pairs", "planes", "active", "area", "maxpen", "fx", "fy", "fz")
	for _, r := range o.R {
		io.Ff(buf, "%8d%14.6e%14.6e%8d%8d%8d%14.6e%14.6e%14.6e%14.6e%14.6e\n",
			r.Cycle, r.Time, r.Dt, r.NumPairs, r.NumPlanes, r.NumActive,
			r.TotalArea, r.MaxPen, r.Fx, r.Fy, r.Fz)
	}
}

// SaveReport writes the text table to <dirout>/<Key>.res
func (o *History) SaveReport(dirout string) {
	buf := new(bytes.Buffer)
	o.Report(buf)
	io.WriteFileSD(dirout, o.Key+".res", buf.String())
}
