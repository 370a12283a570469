// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package search implements the broad phase of contact detection: given the
// two surface meshes of a coupling scheme it proposes candidate face pairs
// whose inflated bounding boxes overlap. Three policies are available: a
// uniform Cartesian grid over the union box, a bounding volume hierarchy
// built on the first mesh and queried with the second, and the brute force
// Cartesian product. The narrow phase decides which candidates actually
// yield contact planes.
package search

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/geo"
	"github.com/Zhoneym/Tribol/mesh"
)

// constants
const (
	BOX_SCALE_DFLT = 0.15 // default face box expansion: fraction of the face bounding radius
	BVH_LEAF_MAX   = 8    // maximum number of faces per hierarchy leaf
	GRID_NDIV_MAX  = 128  // cap on the number of grid divisions per axis
)

// Pair couples one face from each side of a coupling scheme. Pairs are
// created here during binning with Candidate set; the narrow phase clears
// Candidate on pairs whose faces turn out not to overlap.
type Pair struct {
	MeshId1   int  // id of first mesh
	FaceId1   int  // face on first mesh
	MeshId2   int  // id of second mesh
	FaceId2   int  // face on second mesh
	Candidate bool // still a contact candidate
}

// Finder proposes candidate face pairs between two meshes. The face boxes
// are inflated by Scale times the face bounding radius so nearly touching
// and tied pairs survive the broad phase. With Fixed set, Generate returns
// the pairs of the previous build without rebinning; the coupling scheme
// sets Fixed after the first build for the grid policy and for schemes that
// cannot slide.
type Finder struct {

	// input
	Method com.BinningMethod // binning policy
	M1     *mesh.Mesh        // first side
	M2     *mesh.Mesh        // second side
	Scale  float64           // face box expansion fraction

	// control and results
	Fixed bool   // reuse the pairs from the previous build
	Pairs []Pair // candidate pairs from the last build

	// derived
	built  bool       // at least one build happened
	boxes1 []geo.BBox // inflated face boxes, first side
	boxes2 []geo.BBox // inflated face boxes, second side
}

// NewFinder returns a finder over meshes m1 and m2 using the given policy
func NewFinder(m1, m2 *mesh.Mesh, method com.BinningMethod) (o *Finder, err error) {
	switch method {
	case com.BinningGrid, com.BinningBVH, com.BinningCartesianProduct:
	default:
		return nil, chk.Err("unknown binning method %v", method)
	}
	if m1 == nil || m2 == nil {
		return nil, chk.Err("cannot bin nil meshes")
	}
	o = &Finder{Method: method, M1: m1, M2: m2, Scale: BOX_SCALE_DFLT}
	return
}

// Generate builds (or, with Fixed set, reuses) the candidate pair list.
// Meshes without faces produce an empty list. When both sides are the same
// mesh, each unordered face pair appears once and self pairs are skipped.
func (o *Finder) Generate() (pairs []Pair, err error) {
	if o.Fixed && o.built {
		for i := range o.Pairs {
			o.Pairs[i].Candidate = true // rearm pairs cleared by the last narrow phase
		}
		return o.Pairs, nil
	}
	o.Pairs = o.Pairs[:0]
	o.built = true
	if o.M1.Nelems < 1 || o.M2.Nelems < 1 {
		return o.Pairs, nil
	}
	switch o.Method {
	case com.BinningCartesianProduct:
		o.cartesian()
	case com.BinningGrid:
		o.computeBoxes()
		err = o.gridSearch()
	case com.BinningBVH:
		o.computeBoxes()
		err = o.bvhSearch()
	}
	if err != nil {
		return nil, err
	}
	return o.Pairs, nil
}

// NumPairs returns the number of pairs from the last build
func (o *Finder) NumPairs() int {
	return len(o.Pairs)
}

// addPair appends the candidate pair (f1,f2). Self and duplicate pairs of a
// single mesh binned against itself are skipped.
func (o *Finder) addPair(f1, f2 int) {
	if o.M1 == o.M2 && f1 >= f2 {
		return
	}
	o.Pairs = append(o.Pairs, Pair{
		MeshId1:   o.M1.Id,
		FaceId1:   f1,
		MeshId2:   o.M2.Id,
		FaceId2:   f2,
		Candidate: true,
	})
}

// cartesian emits the full face product without any box filtering
func (o *Finder) cartesian() {
	for f2 := 0; f2 < o.M2.Nelems; f2++ {
		for f1 := 0; f1 < o.M1.Nelems; f1++ {
			o.addPair(f1, f2)
		}
	}
}

// computeBoxes refreshes the inflated face boxes of both sides
func (o *Finder) computeBoxes() {
	if len(o.boxes1) != o.M1.Nelems {
		o.boxes1 = make([]geo.BBox, o.M1.Nelems)
	}
	for f := 0; f < o.M1.Nelems; f++ {
		o.boxes1[f] = o.M1.FaceBBox(f, o.Scale)
	}
	if o.M2 == o.M1 {
		o.boxes2 = o.boxes1
		return
	}
	if len(o.boxes2) != o.M2.Nelems {
		o.boxes2 = make([]geo.BBox, o.M2.Nelems)
	}
	for f := 0; f < o.M2.Nelems; f++ {
		o.boxes2[f] = o.M2.FaceBBox(f, o.Scale)
	}
}

// emitSorted appends pairs (i, f2) for every marked first-side face i, in
// increasing i, so the pair order is independent of bucket layout
func (o *Finder) emitSorted(hits []int, f2 int) {
	sort.Ints(hits)
	for _, f1 := range hits {
		o.addPair(f1, f2)
	}
}
