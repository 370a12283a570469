// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "math"

// BBox is an axis aligned bounding box. For 2D geometry the z range stays
// degenerate at zero and overlap checks along z succeed trivially.
type BBox struct {
	Min [3]float64
	Max [3]float64
}

// NewBBox returns an empty (inverted) box ready to grow by AddPoint
func NewBBox() (o BBox) {
	for d := 0; d < 3; d++ {
		o.Min[d] = math.MaxFloat64
		o.Max[d] = -math.MaxFloat64
	}
	return
}

// AddPoint grows the box to contain point (x,y,z)
func (o *BBox) AddPoint(x, y, z float64) {
	o.Min[0] = math.Min(o.Min[0], x)
	o.Min[1] = math.Min(o.Min[1], y)
	o.Min[2] = math.Min(o.Min[2], z)
	o.Max[0] = math.Max(o.Max[0], x)
	o.Max[1] = math.Max(o.Max[1], y)
	o.Max[2] = math.Max(o.Max[2], z)
}

// Union grows the box to contain box b
func (o *BBox) Union(b *BBox) {
	for d := 0; d < 3; d++ {
		o.Min[d] = math.Min(o.Min[d], b.Min[d])
		o.Max[d] = math.Max(o.Max[d], b.Max[d])
	}
}

// Expand grows the box by d on all sides
func (o *BBox) Expand(d float64) {
	for i := 0; i < 3; i++ {
		o.Min[i] -= d
		o.Max[i] += d
	}
}

// Overlaps checks whether this box and b intersect, boundaries included
func (o *BBox) Overlaps(b *BBox) bool {
	for d := 0; d < 3; d++ {
		if o.Min[d] > b.Max[d] || b.Min[d] > o.Max[d] {
			return false
		}
	}
	return true
}

// Center returns the box center
func (o *BBox) Center() (x, y, z float64) {
	x = 0.5 * (o.Min[0] + o.Max[0])
	y = 0.5 * (o.Min[1] + o.Max[1])
	z = 0.5 * (o.Min[2] + o.Max[2])
	return
}

// LongAxis returns the index of the longest box axis
func (o *BBox) LongAxis() (axis int) {
	dmax := o.Max[0] - o.Min[0]
	for d := 1; d < 3; d++ {
		if o.Max[d]-o.Min[d] > dmax {
			dmax = o.Max[d] - o.Min[d]
			axis = d
		}
	}
	return
}
