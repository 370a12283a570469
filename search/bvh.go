// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/geo"
)

// bvhNode is one node of the hierarchy. Leaves have left < 0 and reference
// the face range order[beg:end] of the owning tree.
type bvhNode struct {
	box   geo.BBox
	left  int
	right int
	beg   int
	end   int
}

// bvh is a binary bounding volume tree over the first side face boxes,
// split at the median along the longest box axis
type bvh struct {
	boxes []geo.BBox
	order []int
	nodes []bvhNode
}

// bvhSearch builds a tree on the first side boxes and queries it with each
// second side box
func (o *Finder) bvhSearch() (err error) {
	if o.M1.MaxFaceRadius() <= 0 || o.M2.MaxFaceRadius() <= 0 {
		return chk.Err("face data must be computed before binning")
	}
	t := newBVH(o.boxes1)
	var hits []int
	for f2 := range o.boxes2 {
		hits = t.query(0, &o.boxes2[f2], hits[:0])
		o.emitSorted(hits, f2)
	}
	return
}

// newBVH builds the tree for the given boxes
func newBVH(boxes []geo.BBox) (t *bvh) {
	t = &bvh{boxes: boxes, order: make([]int, len(boxes))}
	for i := range t.order {
		t.order[i] = i
	}
	t.build(0, len(t.order))
	return
}

// build creates the node covering order[beg:end] and returns its index
func (t *bvh) build(beg, end int) int {
	node := bvhNode{left: -1, right: -1, beg: beg, end: end}
	node.box = geo.NewBBox()
	for _, f := range t.order[beg:end] {
		node.box.Union(&t.boxes[f])
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node)
	if end-beg <= BVH_LEAF_MAX {
		return idx
	}
	axis := node.box.LongAxis()
	sub := t.order[beg:end]
	sort.Slice(sub, func(a, b int) bool {
		ca := t.boxes[sub[a]].Min[axis] + t.boxes[sub[a]].Max[axis]
		cb := t.boxes[sub[b]].Min[axis] + t.boxes[sub[b]].Max[axis]
		return ca < cb
	})
	mid := beg + (end-beg)/2
	left := t.build(beg, mid)
	right := t.build(mid, end)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// query appends to hits the faces under node n whose boxes overlap b
func (t *bvh) query(n int, b *geo.BBox, hits []int) []int {
	node := &t.nodes[n]
	if !node.box.Overlaps(b) {
		return hits
	}
	if node.left < 0 {
		for _, f := range t.order[node.beg:node.end] {
			if t.boxes[f].Overlaps(b) {
				hits = append(hits, f)
			}
		}
		return hits
	}
	hits = t.query(node.left, b, hits)
	return t.query(node.right, b, hits)
}
