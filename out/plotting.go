// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// PlotHistory draws the evolution of the contact state of one scheme in
// four subplots: active pairs, total overlap area, deepest penetration and
// one total force component, all against time. The figure is saved to
// <dirout>/<fname> unless fname is empty; show opens a window instead.
func PlotHistory(h *History, fcomp, dirout, fname string, show bool) {
	t := h.Times()
	fmA := plt.Fmt{C: "b", M: "."}
	fmB := plt.Fmt{C: "g", M: "."}
	fmC := plt.Fmt{C: "r", M: "."}
	fmD := plt.Fmt{C: "k", M: "."}
	plt.Subplot(2, 2, 1)
	plt.Plot(t, h.Actives(), fmA.GetArgs("clip_on=0"))
	plt.Gll("$t$", "active pairs", "")
	plt.Subplot(2, 2, 2)
	plt.Plot(t, h.Areas(), fmB.GetArgs("clip_on=0"))
	plt.Gll("$t$", "overlap area", "")
	plt.Subplot(2, 2, 3)
	plt.Plot(t, h.Pens(), fmC.GetArgs("clip_on=0"))
	plt.Gll("$t$", "max penetration", "")
	plt.Subplot(2, 2, 4)
	plt.Plot(t, h.Force(fcomp), fmD.GetArgs("clip_on=0"))
	plt.Gll("$t$", fcomp, "")
	if fname != "" {
		plt.SaveD(dirout, fname)
	}
	if show {
		plt.Show()
	}
}
