// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func read_res(fn string) map[string][]float64 {
	if fn == "" {
		return nil
	}
	_, res, err := io.ReadTable(fn)
	if err != nil {
		io.PfRed("cannot read results table:\n%v\n", err)
		return nil
	}
	return res
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	resfnA, fnkA := io.ArgToFilename(0, "blocks-cs0", ".res", true)
	resfnB, fnkB := io.ArgToFilename(1, "", ".res", false)
	fcomp := io.ArgToString(2, "fz")

	// print input data
	io.Pf("\n%s\n", io.ArgsTable(
		"results table", "resfnA", resfnA,
		"table for comparison", "resfnB", resfnB,
		"force component", "fcomp", fcomp,
	))

	// read tables
	resA := read_res(resfnA)
	if resA == nil {
		return
	}
	resB := read_res(resfnB)

	// final values
	n := len(resA["time"])
	if n == 0 {
		io.PfRed("results table is empty\n")
		return
	}
	io.Pf("\nFinal cycle\n")
	io.Pf("===========\n")
	io.Pf("t      = %g\n", resA["time"][n-1])
	io.Pf("area   = %g\n", resA["area"][n-1])
	io.Pf("active = %g\n", resA["active"][n-1])
	io.Pf("%-6s = %g\n", fcomp, resA[fcomp][n-1])

	// plot force component and penetration histories
	plt.Reset()
	plt.SetForEps(0.75, 300)
	plt.Subplot(2, 1, 1)
	plt.Plot(resA["time"], resA[fcomp], io.Sf("'b.-', clip_on=0, label='%s'", fnkA))
	if resB != nil {
		plt.Plot(resB["time"], resB[fcomp], io.Sf("'r+--', clip_on=0, label='%s'", fnkB))
	}
	plt.Gll("$t$", fcomp, "")
	plt.Subplot(2, 1, 2)
	plt.Plot(resA["time"], resA["maxpen"], "'b.-', clip_on=0")
	if resB != nil {
		plt.Plot(resB["time"], resB["maxpen"], "'r+--', clip_on=0")
	}
	plt.Gll("$t$", "max penetration", "")
	plt.SaveD("/tmp/tribol", "resplot_"+fnkA+"_"+fnkB+".eps")
}
