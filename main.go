// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/cpl"
	"github.com/Zhoneym/Tribol/inp"
	"github.com/Zhoneym/Tribol/mesh"
	"github.com/Zhoneym/Tribol/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveRes := io.ArgToBool(2, true)
	plotRes := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nTribol -- Contact Constraints Between Surface Meshes\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save results table", "saveRes", saveRes,
			"plot history", "plotRes", plotRes,
		))
	}

	// simulation data
	dir, fn := filepath.Split(fnamepath)
	sim, err := inp.ReadSim(dir, fn)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}

	// coupling schemes
	man := cpl.NewManager()
	schemes, err := sim.Register(man)
	if err != nil {
		chk.Panic("cannot register simulation:\n%v", err)
	}

	// histories
	hists := make([]*out.History, len(schemes))
	for i, cs := range schemes {
		hists[i] = &out.History{Key: io.Sf("%s-cs%d", sim.Key, cs.Id)}
	}

	// cycle loop
	t := sim.Control.T0
	dt := sim.Control.Dt
	for cyc := 0; cyc < sim.Control.NCycles; cyc++ {

		// the host owns the response arrays; clear the previous accumulation
		for _, mf := range sim.MeshFiles {
			m, err := man.Meshes.At(mf.Id)
			if err != nil {
				chk.Panic("%v", err)
			}
			mesh.SetZeroResponse(m)
		}

		// update all schemes
		if err = man.Update(cyc, t, &dt); err != nil {
			chk.Panic("cycle %d failed:\n%v", cyc, err)
		}

		// collect results
		for i, cs := range schemes {
			m1, err := man.Meshes.At(cs.MeshId1)
			if err != nil {
				chk.Panic("%v", err)
			}
			r := out.Collect(cyc, t, dt, m1, cs.Planes3D, cs.Planes2D, cs.Report.NumTotalPairs)
			hists[i].Append(r)
			if verbose {
				io.Pf("cycle %4d: cs %d: t=%10.6f dt=%10.6f pairs=%4d active=%4d area=%12.6f fz=%13.6e\n",
					cyc, cs.Id, t, dt, r.NumPairs, r.NumActive, r.TotalArea, r.Fz)
			}
		}
		t += dt
	}

	// final summary
	if verbose {
		io.Pf("\nfinal summary\n")
		io.Pf("=============\n")
		for _, cs := range schemes {
			io.Pf("cs %d: pairs=%d active=%d badorient=%d badoverlap=%d badfacegeom=%d\n",
				cs.Id, cs.Report.NumTotalPairs, cs.Report.NumActivePairs,
				cs.Report.NumBadOrientation, cs.Report.NumBadOverlaps, cs.Report.NumBadFaceGeometry)
		}
		io.Pf("final dt (after timestep votes) = %g\n", dt)
	}

	// save results
	if saveRes {
		for _, h := range hists {
			h.SaveReport(sim.DirOut)
			if verbose {
				io.Pf("file <%s/%s.res> written\n", sim.DirOut, h.Key)
			}
		}
	}

	// plot history
	if plotRes {
		for _, h := range hists {
			out.PlotHistory(h, "fz", sim.DirOut, h.Key+".png", false)
		}
	}
}
