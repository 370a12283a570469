// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.msh)
// JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Zhoneym/Tribol/com"
)

// Data holds global data for contact simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/tribol
	Vis    string `json:"vis"`    // visualization selection; e.g. "faces_and_overlaps"
	Log    string `json:"log"`    // logging level; e.g. "debug"
}

// MeshFile locates the surface mesh registered under one mesh id and
// carries the optional constant nodal data the enforcements need
type MeshFile struct {

	// input data
	Id      int       `json:"id"`      // mesh id referenced by the schemes
	File    string    `json:"file"`    // file path of the (.msh) file
	AbsPath bool      `json:"abspath"` // mesh filename is given in absolute path
	Thick   float64   `json:"thick"`   // constant element thickness; 0 => not registered
	Emod    float64   `json:"emod"`    // constant material modulus; 0 => not registered
	Vel     []float64 `json:"vel"`     // constant nodal velocity (size==ndim); nil => not registered

	// derived
	Msh *Msh // the mesh read from File
}

// PenaltyData holds penalty enforcement options
type PenaltyData struct {
	Kinematic   string  `json:"kinematic"`   // kinematic calculation; e.g. "constant" or "element"
	Rate        string  `json:"rate"`        // rate calculation; e.g. "none" or "rate_constant"
	Constraint  string  `json:"constraint"`  // "kinematic" or "kinematic_and_rate"
	K           float64 `json:"k"`           // constant kinematic stiffness
	RateK       float64 `json:"ratek"`       // constant rate stiffness
	RatePercent float64 `json:"ratepercent"` // rate stiffness as fraction of the kinematic one
}

// LagrangeData holds Lagrange multiplier options
type LagrangeData struct {
	Eval   string `json:"eval"`   // evaluation mode; e.g. "residual_jacobian"
	Sparse string `json:"sparse"` // sparse data mode; e.g. "linked_list"
}

// SchemeData holds the configuration of one coupling scheme
type SchemeData struct {
	Id          int           `json:"id"`          // coupling scheme id
	MeshIds     []int         `json:"meshids"`     // [2] ids of the two coupled meshes
	Mode        string        `json:"mode"`        // contact mode keyword
	Case        string        `json:"case"`        // contact case keyword
	Method      string        `json:"method"`      // contact method keyword
	Model       string        `json:"model"`       // contact model keyword
	Enforcement string        `json:"enforcement"` // enforcement keyword
	Binning     string        `json:"binning"`     // binning method keyword
	Exec        string        `json:"exec"`        // execution mode keyword
	Penalty     *PenaltyData  `json:"penalty"`     // penalty options; used by the common plane method
	Lagrange    *LagrangeData `json:"lagrange"`    // multiplier options; used by the mortar methods
	Extra       string        `json:"extra"`       // parameter overrides (in keycode format). ex: "!penfrac:0.25 !viscycle:10"
}

// Control holds the cycle stepping data
type Control struct {
	NCycles int     `json:"ncycles"` // number of coupling cycles to run
	Dt      float64 `json:"dt"`      // timestep size; 0 disables the timestep vote
	T0      float64 `json:"t0"`      // initial time
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data          `json:"data"`      // global data
	MeshFiles []*MeshFile   `json:"meshfiles"` // mesh files to register
	Schemes   []*SchemeData `json:"schemes"`   // coupling schemes to register
	Control   Control       `json:"control"`   // cycle stepping

	// derived
	DirOut string           // directory to save results
	Key    string           // simulation key; e.g. blocks.sim => blocks
	Vis    com.VisType      // parsed visualization selection
	Log    com.LoggingLevel // parsed logging level
}

// ReadSim reads all simulation data from a .sim JSON file. Relative
// mesh file paths resolve against dir.
func ReadSim(dir, fn string) (o *Simulation, err error) {

	// read and decode
	o = new(Simulation)
	simpath := filepath.Join(dir, fn)
	b, err := io.ReadFile(simpath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q", simpath)
	}
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", simpath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(fn)
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/tribol/" + o.Key
	}

	// visualization and logging keywords
	if o.Vis, err = com.ParseVis(o.Data.Vis); err != nil {
		return nil, err
	}
	if o.Log, err = com.ParseLogging(o.Data.Log); err != nil {
		return nil, err
	}

	// cycle control defaults
	if o.Control.NCycles < 1 {
		o.Control.NCycles = 1
	}

	// read mesh files
	for _, mf := range o.MeshFiles {
		ddir := dir
		if mf.AbsPath {
			ddir = ""
		}
		if mf.Msh, err = ReadMsh(ddir, mf.File); err != nil {
			return nil, err
		}
	}

	// schemes must reference registered mesh ids
	for _, sd := range o.Schemes {
		if len(sd.MeshIds) != 2 {
			return nil, chk.Err("scheme %d must couple exactly two mesh ids (%d given)", sd.Id, len(sd.MeshIds))
		}
		for _, id := range sd.MeshIds {
			if o.MeshFile(id) == nil {
				return nil, chk.Err("scheme %d references mesh id %d which has no mesh file", sd.Id, id)
			}
		}
	}
	return
}

// MeshFile returns the mesh file data registered under id, or nil
func (o *Simulation) MeshFile(id int) *MeshFile {
	for _, mf := range o.MeshFiles {
		if mf.Id == id {
			return mf
		}
	}
	return nil
}

// ParamOverrides applies the keycode overrides of one scheme onto prm.
// Keys that do not appear keep their defaults.
func ParamOverrides(extra string, prm *com.Params) {
	if val, found := io.Keycode(extra, "gapratio"); found {
		prm.GapTolRatio = io.Atof(val)
	}
	if val, found := io.Keycode(extra, "gaptied"); found {
		prm.GapTiedTol = io.Atof(val)
	}
	if val, found := io.Keycode(extra, "lenratio"); found {
		prm.LenCollapseRatio = io.Atof(val)
	}
	if val, found := io.Keycode(extra, "areafrac"); found {
		prm.OverlapAreaFrac = io.Atof(val)
	}
	if val, found := io.Keycode(extra, "penfrac"); found {
		prm.TimestepPenFrac = io.Atof(val)
	}
	if val, found := io.Keycode(extra, "novote"); found {
		prm.EnableTimestepVote = !io.Atob(val)
	}
	if val, found := io.Keycode(extra, "viscycle"); found {
		prm.VisCycleIncr = io.Atoi(val)
	}
}
