// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/geo"
)

// grid is a uniform cell partition of the union box of both face box sets.
// Only occupied cells are stored: surface faces fill a thin sheet of the
// three dimensional domain, so most cells stay empty.
type grid struct {
	box   geo.BBox      // domain containing all inflated face boxes
	ndiv  [3]int        // number of divisions per axis
	csize [3]float64    // cell size per axis
	cells map[int][]int // flat cell index to face ids
}

// gridSearch buckets the first side faces in a uniform grid sized to the
// union box of both sides and queries the grid with each second side box.
// A per face stamp avoids testing a first side face twice when its box
// spans several of the query cells.
func (o *Finder) gridSearch() (err error) {
	h := 2.0 * math.Max(o.M1.MaxFaceRadius(), o.M2.MaxFaceRadius())
	if h <= 0 {
		return chk.Err("face data must be computed before binning")
	}
	g := newGrid(o.boxes1, o.boxes2, h)
	for f := range o.boxes1 {
		g.insert(f, &o.boxes1[f])
	}
	visited := make([]int, len(o.boxes1))
	var hits []int
	for f2 := range o.boxes2 {
		hits = hits[:0]
		stamp := f2 + 1
		lo, hi := g.cellRange(&o.boxes2[f2])
		for k := lo[2]; k <= hi[2]; k++ {
			for j := lo[1]; j <= hi[1]; j++ {
				for i := lo[0]; i <= hi[0]; i++ {
					for _, f1 := range g.cells[g.flat(i, j, k)] {
						if visited[f1] == stamp {
							continue
						}
						visited[f1] = stamp
						if o.boxes1[f1].Overlaps(&o.boxes2[f2]) {
							hits = append(hits, f1)
						}
					}
				}
			}
		}
		o.emitSorted(hits, f2)
	}
	return
}

// newGrid sizes the grid to the union of both box sets with cells of
// target edge length h
func newGrid(boxes1, boxes2 []geo.BBox, h float64) (g *grid) {
	g = &grid{cells: make(map[int][]int)}
	g.box = geo.NewBBox()
	for i := range boxes1 {
		g.box.Union(&boxes1[i])
	}
	for i := range boxes2 {
		g.box.Union(&boxes2[i])
	}
	for d := 0; d < 3; d++ {
		l := g.box.Max[d] - g.box.Min[d]
		n := int(l / h)
		if n < 1 {
			n = 1
		}
		if n > GRID_NDIV_MAX {
			n = GRID_NDIV_MAX
		}
		g.ndiv[d] = n
		g.csize[d] = l / float64(n)
	}
	return
}

// flat maps cell indices to the flat cell id
func (g *grid) flat(i, j, k int) int {
	return (k*g.ndiv[1]+j)*g.ndiv[0] + i
}

// cellRange returns the inclusive cell index range overlapped by box b,
// clamped to the grid. Degenerate axes collapse to the single cell 0.
func (g *grid) cellRange(b *geo.BBox) (lo, hi [3]int) {
	for d := 0; d < 3; d++ {
		if g.csize[d] <= 0 {
			continue
		}
		lo[d] = clampDiv(b.Min[d]-g.box.Min[d], g.csize[d], g.ndiv[d])
		hi[d] = clampDiv(b.Max[d]-g.box.Min[d], g.csize[d], g.ndiv[d])
	}
	return
}

// insert buckets face f with box b into every cell the box overlaps
func (g *grid) insert(f int, b *geo.BBox) {
	lo, hi := g.cellRange(b)
	for k := lo[2]; k <= hi[2]; k++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for i := lo[0]; i <= hi[0]; i++ {
				c := g.flat(i, j, k)
				g.cells[c] = append(g.cells[c], f)
			}
		}
	}
}

// clampDiv returns floor(v/h) clamped to [0, n-1]
func clampDiv(v, h float64, n int) int {
	i := int(v / h)
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
