// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// SparseMatrix accumulates scattered (row, col, value) contributions in
// per-row linked lists and finalizes them into CSR arrays: entries are
// prepended in O(1) during assembly; Finalize sorts each row by column,
// collapses duplicates by summation and emits the three CSR arrays.
type SparseMatrix struct {
	NumRows int

	// linked entries: head[i] is the index of the first entry of row i
	// in the backing slices, -1 when the row is empty
	head []int
	cols []int
	vals []float64
	next []int

	// CSR, valid after Finalize
	csrI []int
	csrJ []int
	csrV []float64
	done bool
}

// NewSparseMatrix returns an empty matrix with the given number of rows
func NewSparseMatrix(numRows int) *SparseMatrix {
	o := &SparseMatrix{NumRows: numRows}
	o.head = make([]int, numRows)
	for i := range o.head {
		o.head[i] = -1
	}
	return o
}

// Reset discards all entries, keeping the backing storage
func (o *SparseMatrix) Reset() {
	for i := range o.head {
		o.head[i] = -1
	}
	o.cols = o.cols[:0]
	o.vals = o.vals[:0]
	o.next = o.next[:0]
	o.csrI = nil
	o.csrJ = nil
	o.csrV = nil
	o.done = false
}

// Add accumulates v at (i, j)
func (o *SparseMatrix) Add(i, j int, v float64) {
	o.cols = append(o.cols, j)
	o.vals = append(o.vals, v)
	o.next = append(o.next, o.head[i])
	o.head[i] = len(o.cols) - 1
	o.done = false
}

// NumEntries returns the number of stored contributions, duplicates
// included
func (o *SparseMatrix) NumEntries() int {
	return len(o.cols)
}

// rowView sorts one row's (col, val) pairs by column
type rowView struct {
	cols []int
	vals []float64
}

func (o rowView) Len() int           { return len(o.cols) }
func (o rowView) Less(i, j int) bool { return o.cols[i] < o.cols[j] }
func (o rowView) Swap(i, j int) {
	o.cols[i], o.cols[j] = o.cols[j], o.cols[i]
	o.vals[i], o.vals[j] = o.vals[j], o.vals[i]
}

// Finalize merges the linked entries into CSR form
func (o *SparseMatrix) Finalize() {
	if o.done {
		return
	}
	o.csrI = make([]int, o.NumRows+1)
	o.csrJ = make([]int, 0, len(o.cols))
	o.csrV = make([]float64, 0, len(o.vals))
	var rcols []int
	var rvals []float64
	for i := 0; i < o.NumRows; i++ {
		rcols = rcols[:0]
		rvals = rvals[:0]
		for e := o.head[i]; e != -1; e = o.next[e] {
			rcols = append(rcols, o.cols[e])
			rvals = append(rvals, o.vals[e])
		}
		sort.Sort(rowView{rcols, rvals})
		for k := 0; k < len(rcols); k++ {
			if n := len(o.csrJ); n > o.csrI[i] && o.csrJ[n-1] == rcols[k] {
				o.csrV[n-1] += rvals[k]
				continue
			}
			o.csrJ = append(o.csrJ, rcols[k])
			o.csrV = append(o.csrV, rvals[k])
		}
		o.csrI[i+1] = len(o.csrJ)
	}
	o.done = true
}

// CSR returns the row pointer, column index and value arrays; Finalize
// must have been called
func (o *SparseMatrix) CSR() (I, J []int, V []float64, err error) {
	if !o.done {
		return nil, nil, nil, chk.Err("sparse matrix was not finalized")
	}
	return o.csrI, o.csrJ, o.csrV, nil
}

// At returns the finalized value at (i, j), zero when the entry is not
// stored. Rows are sorted so a binary search would do; rows are short and
// a linear scan keeps this simple.
func (o *SparseMatrix) At(i, j int) float64 {
	if !o.done {
		return 0
	}
	for k := o.csrI[i]; k < o.csrI[i+1]; k++ {
		if o.csrJ[k] == j {
			return o.csrV[k]
		}
	}
	return 0
}
