// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// ForAll runs body(i) for i in [0,n) on the given execution backend.
// Under ExecParallel the iterations are strided over NumCPU goroutines;
// body must only write through atomics or to slots it owns (e.g. slots
// reserved with an atomic counter). ExecDynamic resolves to parallel
// when more than one CPU is available.
func ForAll(mode ExecutionMode, n int, body func(i int)) {
	if n <= 0 {
		return
	}
	nw := 1
	switch mode {
	case ExecParallel:
		nw = runtime.NumCPU()
	case ExecDynamic:
		nw = runtime.NumCPU()
	}
	if nw < 2 || n < 2 {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}
	if nw > n {
		nw = n
	}
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += nw {
				body(i)
			}
		}(w)
	}
	wg.Wait()
}

// NumWorkers returns the number of goroutines ForAll and ForAllW spawn
// for the given backend and problem size; kernels use it to allocate
// per-worker scratch
func NumWorkers(mode ExecutionMode, n int) int {
	nw := 1
	switch mode {
	case ExecParallel, ExecDynamic:
		nw = runtime.NumCPU()
	}
	if nw < 2 || n < 2 {
		return 1
	}
	if nw > n {
		nw = n
	}
	return nw
}

// ForAllW is ForAll with the worker index passed to the body, so kernels
// that need non-reentrant scratch (shape function copies, frames) can
// key it by worker
func ForAllW(mode ExecutionMode, n int, body func(worker, i int)) {
	if n <= 0 {
		return
	}
	nw := NumWorkers(mode, n)
	if nw < 2 {
		for i := 0; i < n; i++ {
			body(0, i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += nw {
				body(w, i)
			}
		}(w)
	}
	wg.Wait()
}

// AtomicFloat64 is a float64 updated with compare-and-swap on its bits.
// Used for the timestep vote reduction.
type AtomicFloat64 struct {
	bits atomic.Uint64
}

// Store sets the value
func (o *AtomicFloat64) Store(v float64) {
	o.bits.Store(math.Float64bits(v))
}

// Load returns the value
func (o *AtomicFloat64) Load() float64 {
	return math.Float64frombits(o.bits.Load())
}

// Min lowers the value to v if v is smaller
func (o *AtomicFloat64) Min(v float64) {
	for {
		old := o.bits.Load()
		if math.Float64frombits(old) <= v {
			return
		}
		if o.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

// AtomicAddFloat64 adds v to *x with a compare-and-swap loop so that
// concurrent per-pair kernels can scatter nodal forces into shared
// response arrays
func AtomicAddFloat64(x *float64, v float64) {
	p := (*uint64)(unsafe.Pointer(x))
	for {
		old := atomic.LoadUint64(p)
		nue := math.Float64bits(math.Float64frombits(old) + v)
		if atomic.CompareAndSwapUint64(p, old, nue) {
			return
		}
	}
}
