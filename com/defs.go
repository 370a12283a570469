// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package com implements definitions shared by all contact packages:
// configuration enums, process parameters, compile-time capacities and
// the loop executor used by the per-pair kernels
package com

import (
	"github.com/cpmech/gosl/chk"
)

// capacities of the fixed-size buffers used inside pair kernels
const (
	MaxNodesPerElem    = 4  // linear tris and quads (and 2D edges)
	MaxNodesPerOverlap = 8  // vertices of a clipped quad/quad overlap
	MaxIntersections   = 16 // segment-segment hits collected while clipping
)

// ContactMode distinguishes how the two registered surfaces interact
type ContactMode int

const (
	SurfaceToSurface ContactMode = iota
	SurfaceToSurfaceConforming
)

// ContactCase refines the mode; e.g. tied or auto-detected contact
type ContactCase int

const (
	NoCase ContactCase = iota
	NoSliding
	TiedNormal
	Auto
)

// ContactMethod selects the constraint formulation
type ContactMethod int

const (
	SingleMortar ContactMethod = iota
	AlignedMortar
	MortarWeights
	CommonPlane
)

// ContactModel selects the physical model at the interface
type ContactModel int

const (
	Frictionless ContactModel = iota
	Tied
	NullModel
	Coulomb
)

// Enforcement selects how constraints enter the host system
type Enforcement int

const (
	Penalty Enforcement = iota
	LagrangeMultiplier
	NullEnforcement
)

// BinningMethod selects the broad-phase policy
type BinningMethod int

const (
	BinningGrid BinningMethod = iota
	BinningBVH
	BinningCartesianProduct
)

// ExecutionMode says where the per-pair kernels run
type ExecutionMode int

const (
	ExecSequential ExecutionMode = iota
	ExecParallel
	ExecDynamic
)

// MemorySpace is the memory space the host registered its arrays in.
// Device and Unified are kept so that the execution-mode decision table
// stays complete; only Host (and Dynamic) data can exist in this port.
type MemorySpace int

const (
	MemHost MemorySpace = iota
	MemDynamic
	MemUnified
	MemDevice
)

// FaceGeomError reports non-fatal geometry failures found while
// clipping a face pair; the pair is dropped, the cycle continues
type FaceGeomError int

const (
	NoFaceGeomError FaceGeomError = iota
	InvalidFaceInput
	FaceOrientation
	DegenerateOverlap
	FaceVertexIndexExceedsOverlapVertices
)

// VisType selects what the visualization writer emits
type VisType int

const (
	VisNone VisType = iota
	VisOverlaps
	VisFaces
	VisFacesAndOverlaps
)

// LoggingLevel gates per-scheme diagnostics
type LoggingLevel int

const (
	LogUndefined LoggingLevel = iota
	LogDebug
	LogInfo
	LogWarning
	LogError
)

func (o ContactMode) String() string {
	switch o {
	case SurfaceToSurface:
		return "surface_to_surface"
	case SurfaceToSurfaceConforming:
		return "surface_to_surface_conforming"
	}
	return "invalid_mode"
}

func (o ContactCase) String() string {
	switch o {
	case NoCase:
		return "no_case"
	case NoSliding:
		return "no_sliding"
	case TiedNormal:
		return "tied_normal"
	case Auto:
		return "auto"
	}
	return "invalid_case"
}

func (o ContactMethod) String() string {
	switch o {
	case SingleMortar:
		return "single_mortar"
	case AlignedMortar:
		return "aligned_mortar"
	case MortarWeights:
		return "mortar_weights"
	case CommonPlane:
		return "common_plane"
	}
	return "invalid_method"
}

func (o ContactModel) String() string {
	switch o {
	case Frictionless:
		return "frictionless"
	case Tied:
		return "tied"
	case NullModel:
		return "null_model"
	case Coulomb:
		return "coulomb"
	}
	return "invalid_model"
}

func (o Enforcement) String() string {
	switch o {
	case Penalty:
		return "penalty"
	case LagrangeMultiplier:
		return "lagrange_multiplier"
	case NullEnforcement:
		return "null_enforcement"
	}
	return "invalid_enforcement"
}

func (o BinningMethod) String() string {
	switch o {
	case BinningGrid:
		return "binning_grid"
	case BinningBVH:
		return "binning_bvh"
	case BinningCartesianProduct:
		return "binning_cartesian_product"
	}
	return "invalid_binning"
}

func (o ExecutionMode) String() string {
	switch o {
	case ExecSequential:
		return "sequential"
	case ExecParallel:
		return "parallel"
	case ExecDynamic:
		return "dynamic"
	}
	return "invalid_exec"
}

func (o FaceGeomError) String() string {
	switch o {
	case NoFaceGeomError:
		return "no_face_geom_error"
	case InvalidFaceInput:
		return "invalid_face_input"
	case FaceOrientation:
		return "face_orientation"
	case DegenerateOverlap:
		return "degenerate_overlap"
	case FaceVertexIndexExceedsOverlapVertices:
		return "face_vertex_index_exceeds_overlap_vertices"
	}
	return "invalid_face_geom_error"
}

func (o VisType) String() string {
	switch o {
	case VisNone:
		return "none"
	case VisOverlaps:
		return "overlaps"
	case VisFaces:
		return "faces"
	case VisFacesAndOverlaps:
		return "faces_and_overlaps"
	}
	return "invalid_vis"
}

func (o LoggingLevel) String() string {
	switch o {
	case LogUndefined:
		return "undefined"
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	}
	return "invalid_logging_level"
}

// ParseMode converts a configuration keyword into a ContactMode
func ParseMode(s string) (ContactMode, error) {
	switch s {
	case "surface_to_surface":
		return SurfaceToSurface, nil
	case "surface_to_surface_conforming":
		return SurfaceToSurfaceConforming, nil
	}
	return 0, chk.Err("unknown contact mode %q", s)
}

// ParseCase converts a configuration keyword into a ContactCase
func ParseCase(s string) (ContactCase, error) {
	switch s {
	case "no_case", "":
		return NoCase, nil
	case "no_sliding":
		return NoSliding, nil
	case "tied_normal":
		return TiedNormal, nil
	case "auto":
		return Auto, nil
	}
	return 0, chk.Err("unknown contact case %q", s)
}

// ParseMethod converts a configuration keyword into a ContactMethod
func ParseMethod(s string) (ContactMethod, error) {
	switch s {
	case "single_mortar":
		return SingleMortar, nil
	case "aligned_mortar":
		return AlignedMortar, nil
	case "mortar_weights":
		return MortarWeights, nil
	case "common_plane":
		return CommonPlane, nil
	}
	return 0, chk.Err("unknown contact method %q", s)
}

// ParseModel converts a configuration keyword into a ContactModel
func ParseModel(s string) (ContactModel, error) {
	switch s {
	case "frictionless":
		return Frictionless, nil
	case "tied":
		return Tied, nil
	case "null_model":
		return NullModel, nil
	case "coulomb":
		return Coulomb, nil
	}
	return 0, chk.Err("unknown contact model %q", s)
}

// ParseEnforcement converts a configuration keyword into an Enforcement
func ParseEnforcement(s string) (Enforcement, error) {
	switch s {
	case "penalty":
		return Penalty, nil
	case "lagrange_multiplier":
		return LagrangeMultiplier, nil
	case "null_enforcement":
		return NullEnforcement, nil
	}
	return 0, chk.Err("unknown enforcement %q", s)
}

// ParseBinning converts a configuration keyword into a BinningMethod
func ParseBinning(s string) (BinningMethod, error) {
	switch s {
	case "binning_grid", "grid", "":
		return BinningGrid, nil
	case "binning_bvh", "bvh":
		return BinningBVH, nil
	case "binning_cartesian_product", "cartesian_product":
		return BinningCartesianProduct, nil
	}
	return 0, chk.Err("unknown binning method %q", s)
}

// ParseExec converts a configuration keyword into an ExecutionMode
func ParseExec(s string) (ExecutionMode, error) {
	switch s {
	case "sequential", "":
		return ExecSequential, nil
	case "parallel":
		return ExecParallel, nil
	case "dynamic":
		return ExecDynamic, nil
	}
	return 0, chk.Err("unknown execution mode %q", s)
}

// ParseVis converts a configuration keyword into a VisType
func ParseVis(s string) (VisType, error) {
	switch s {
	case "none", "":
		return VisNone, nil
	case "overlaps":
		return VisOverlaps, nil
	case "faces":
		return VisFaces, nil
	case "faces_and_overlaps":
		return VisFacesAndOverlaps, nil
	}
	return 0, chk.Err("unknown visualization type %q", s)
}

// ParseLogging converts a configuration keyword into a LoggingLevel
func ParseLogging(s string) (LoggingLevel, error) {
	switch s {
	case "undefined", "":
		return LogUndefined, nil
	case "debug":
		return LogDebug, nil
	case "info":
		return LogInfo, nil
	case "warning":
		return LogWarning, nil
	case "error":
		return LogError, nil
	}
	return 0, chk.Err("unknown logging level %q", s)
}
