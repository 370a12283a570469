// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

// Params holds process-wide defaults copied into each coupling scheme at
// registration time; schemes may then override individual values
type Params struct {

	// geometry tolerances
	GapTolRatio      float64 // fraction of max face radius giving the (negative) gap tolerance
	GapTiedTol       float64 // fraction of max face radius giving the tied (positive) gap tolerance
	LenCollapseRatio float64 // fraction of min face radius below which overlap edges collapse
	OverlapAreaFrac  float64 // minimum overlap area as fraction of min face area
	PosTol           float64 // ratio of segment length below which intersections snap to a vertex

	// timestep vote
	TimestepPenFrac    float64 // fraction of element thickness allowed as interpenetration
	TimestepTiny       float64 // bias against zero velocity projections
	DtSuppress         float64 // votes are suppressed when the incoming dt is below this
	EnableTimestepVote bool    // master switch for the vote

	// auto contact
	AutoInterpenCheck bool // full-overlap interpenetration check for the auto case

	// output
	VisCycleIncr int // visualization cadence in cycles
}

// NewParams returns the process defaults
func NewParams() Params {
	return Params{
		GapTolRatio:        1e-12,
		GapTiedTol:         0.1,
		LenCollapseRatio:   1e-8,
		OverlapAreaFrac:    1e-8,
		PosTol:             1e-12,
		TimestepPenFrac:    3e-1,
		TimestepTiny:       1e-12,
		DtSuppress:         1e-8,
		EnableTimestepVote: true,
		AutoInterpenCheck:  false,
		VisCycleIncr:       100,
	}
}
