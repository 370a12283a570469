// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cpl implements coupling schemes: the objects tying two contact
// surfaces to a contact method, model and enforcement option set. A scheme
// validates its configuration against the capabilities of the physics
// kernels, then drives the per-cycle pipeline of binning, narrow phase,
// physics and timestep vote. A manager runs many schemes per cycle.
package cpl

import (
	"math"
	"runtime"
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cplane"
	"github.com/Zhoneym/Tribol/mesh"
	"github.com/Zhoneym/Tribol/out"
	"github.com/Zhoneym/Tribol/phys"
	"github.com/Zhoneym/Tribol/search"
)

// PairReportingData counts, for one cycle, the candidate pairs that were
// dropped by the narrow phase for geometric reasons and the pairs that
// produced contact planes
type PairReportingData struct {
	NumBadOrientation  int // faces whose vertex ordering disagrees with the outward normal
	NumBadOverlaps     int // overlap polygons that degenerated during clipping
	NumBadFaceGeometry int // invalid face input or overflowed overlap storage
	NumActivePairs     int // planes whose gap passed the contact tolerance
	NumTotalPairs      int // candidate pairs proposed by binning
}

// CouplingScheme couples mesh MeshId1 (mortar side) to MeshId2 (nonmortar
// side). The configuration enums are validated by Init, which may also
// mutate them: some combinations force a different case, enforcement or
// evaluation mode, and the mutation is reported through the info enums
// rather than an error. After a successful Init the scheme is cycled with
// PerformBinning and Apply, normally through Manager.Update.
type CouplingScheme struct {

	// identity and configuration
	Id          int
	MeshId1     int
	MeshId2     int
	Mode        com.ContactMode
	Case        com.ContactCase
	Method      com.ContactMethod
	Model       com.ContactModel
	Enforcement com.Enforcement
	Binning     com.BinningMethod
	ExecRequest com.ExecutionMode // mode requested at registration
	Exec        com.ExecutionMode // mode decided by Init

	// parameters and options
	Params   com.Params
	Penalty  com.PenaltyOptions
	Lagrange com.LagrangeOptions
	LogLevel com.LoggingLevel
	Vis      com.VisType
	DirOut   string // output directory for visualization files

	// validation results
	ModeErr        com.ModeError
	CaseErr        com.CaseError
	MethodErr      com.MethodError
	ModelErr       com.ModelError
	EnforcementErr com.EnforcementError
	DataErr        com.EnforcementDataError
	CaseNote       com.CaseInfo
	EnfNote        com.EnforcementInfo

	// cycle results
	Planes3D []cplane.Plane3D // contact planes of the last cycle (3D schemes)
	Planes2D []cplane.Plane2D // contact planes of the last cycle (2D schemes)
	Mortar   *phys.Mortar     // mortar workspace; nil for the common plane method
	Report   PairReportingData
	TsDiag   phys.TimestepDiag

	// derived
	meshes     *mesh.Manager
	m1, m2     *mesh.Mesh
	finder     *search.Finder
	mortarOpts com.LagrangeOptions // options the mortar workspace was built with
	valid      bool
}

// NewScheme creates an unvalidated coupling scheme with default parameters.
// meshes is the registry the mesh ids will be resolved against during Init.
func NewScheme(id, meshId1, meshId2 int, mode com.ContactMode, ccase com.ContactCase,
	method com.ContactMethod, model com.ContactModel, enforcement com.Enforcement,
	binning com.BinningMethod, exec com.ExecutionMode, meshes *mesh.Manager) (o *CouplingScheme) {
	return &CouplingScheme{
		Id:          id,
		MeshId1:     meshId1,
		MeshId2:     meshId2,
		Mode:        mode,
		Case:        ccase,
		Method:      method,
		Model:       model,
		Enforcement: enforcement,
		Binning:     binning,
		ExecRequest: exec,
		Params:      com.NewParams(),
		meshes:      meshes,
	}
}

// Valid reports whether the last Init accepted the configuration
func (o *CouplingScheme) Valid() bool { return o.valid }

// nullMeshes tells whether either side has no faces; such schemes are
// legal and cycle as silent no-ops, so data requirements are not enforced
func (o *CouplingScheme) nullMeshes() bool {
	return o.m1.Nelems < 1 || o.m2.Nelems < 1
}

// DecideExec selects the execution mode of the cycle kernels from the
// memory space the mesh data lives in and the mode requested at
// registration. Methods other than the common plane assemble into shared
// mortar state and always run sequentially. There is no device backend, so
// device memory is rejected; for unified or dynamic memory a dynamic
// request picks threaded execution when more than one cpu is available.
func DecideExec(mspace com.MemorySpace, request com.ExecutionMode, method com.ContactMethod, ncpu int) (com.ExecutionMode, error) {
	if method != com.CommonPlane {
		return com.ExecSequential, nil
	}
	switch mspace {
	case com.MemDevice:
		return com.ExecSequential, chk.Err("mesh data lives in device memory but no device backend is available")
	case com.MemUnified, com.MemDynamic:
		if request == com.ExecDynamic {
			if ncpu > 1 {
				return com.ExecParallel, nil
			}
			return com.ExecSequential, nil
		}
	}
	if request == com.ExecParallel {
		return com.ExecParallel, nil
	}
	return com.ExecSequential, nil
}

// Init resolves the mesh ids, validates the configuration and allocates
// the cycle machinery (pair finder, mortar workspace). All validation
// categories are checked and recorded so hosts see every problem at once;
// the returned error summarizes the failing ones. Init runs at the start
// of every cycle and is cheap when nothing changed.
func (o *CouplingScheme) Init() (err error) {

	// resolve meshes
	if o.m1, err = o.meshes.At(o.MeshId1); err != nil {
		return chk.Err("coupling scheme %d: %v", o.Id, err)
	}
	if o.m2, err = o.meshes.At(o.MeshId2); err != nil {
		return chk.Err("coupling scheme %d: %v", o.Id, err)
	}

	// validate
	o.ModeErr = o.checkMode()
	var cnote com.CaseInfo
	o.CaseErr, cnote = o.checkCase()
	if cnote != com.NoCaseInfo {
		o.CaseNote = cnote
	}
	o.MethodErr = o.checkMethod()
	o.ModelErr = o.checkModel()
	var enote com.EnforcementInfo
	o.EnforcementErr, enote = o.checkEnforcement()
	if enote != com.NoEnforcementInfo {
		o.EnfNote = enote
	}
	o.DataErr = o.checkEnforcementData()
	o.valid = o.ModeErr == com.NoModeError && o.CaseErr == com.NoCaseError &&
		o.MethodErr == com.NoMethodError && o.ModelErr == com.NoModelError &&
		o.EnforcementErr == com.NoEnforcementError && o.DataErr == com.NoEnforcementDataError
	if !o.valid {
		return chk.Err("coupling scheme %d is invalid:%s", o.Id, o.problems())
	}

	// execution mode; the more device-like memory space wins
	mspace := o.m1.MemSpace
	if o.m2.MemSpace > mspace {
		mspace = o.m2.MemSpace
	}
	if o.Exec, err = DecideExec(mspace, o.ExecRequest, o.Method, runtime.NumCPU()); err != nil {
		o.valid = false
		return chk.Err("coupling scheme %d: %v", o.Id, err)
	}

	// pair finder
	if o.finder == nil {
		if o.finder, err = search.NewFinder(o.m1, o.m2, o.Binning); err != nil {
			o.valid = false
			return chk.Err("coupling scheme %d: %v", o.Id, err)
		}
	}

	// mortar workspace; rebuilt when the options changed since it captures
	// the evaluation and sparse modes at construction
	if o.Method != com.CommonPlane {
		if o.Mortar == nil || o.mortarOpts != o.Lagrange {
			if o.Mortar, err = phys.NewMortar(o.m1, o.m2, &o.Lagrange, o.Method); err != nil {
				o.valid = false
				return chk.Err("coupling scheme %d: %v", o.Id, err)
			}
			o.mortarOpts = o.Lagrange
		}
	}
	return
}

// problems lists the failing validation categories
func (o *CouplingScheme) problems() (l string) {
	if o.ModeErr != com.NoModeError {
		l += " " + o.ModeErr.String() + ";"
	}
	if o.CaseErr != com.NoCaseError {
		l += " " + o.CaseErr.String() + ";"
	}
	if o.MethodErr != com.NoMethodError {
		l += " " + o.MethodErr.String() + ";"
	}
	if o.ModelErr != com.NoModelError {
		l += " " + o.ModelErr.String() + ";"
	}
	if o.EnforcementErr != com.NoEnforcementError {
		l += " " + o.EnforcementErr.String() + ";"
	}
	if o.DataErr != com.NoEnforcementDataError {
		l += " " + o.DataErr.String() + ";"
	}
	return
}

// checkMode accepts the two surface-to-surface modes. The conforming mode
// implies that pairs cannot slide, so the case is forced accordingly.
func (o *CouplingScheme) checkMode() com.ModeError {
	switch o.Mode {
	case com.SurfaceToSurface:
	case com.SurfaceToSurfaceConforming:
		o.Case = com.NoSliding
	default:
		return com.InvalidMode
	}
	return com.NoModeError
}

// checkCase validates the contact case against the method and may mutate
// it: the aligned mortar method only makes sense for pairs that cannot
// slide, the other mortar methods rebuild their pairing every cycle, and
// the auto case degenerates to no case when the meshes are distinct (there
// is nothing to separate from itself)
func (o *CouplingScheme) checkCase() (com.CaseError, com.CaseInfo) {
	switch o.Case {
	case com.NoCase, com.NoSliding, com.TiedNormal, com.Auto:
	default:
		return com.InvalidCase, com.NoCaseInfo
	}
	switch o.Method {
	case com.AlignedMortar:
		if o.Case != com.NoSliding {
			o.Case = com.NoSliding
			return com.NoCaseError, com.CaseForcedNoSliding
		}
	case com.SingleMortar, com.MortarWeights:
		if o.Case != com.NoCase {
			o.Case = com.NoCase
			return com.NoCaseError, com.CaseForcedNoCase
		}
	default:
		if o.Case == com.NoSliding {
			return com.NoCaseImplementation, com.NoCaseInfo
		}
		if o.Case == com.Auto {
			if !o.nullMeshes() && (!o.m1.HasThickness() || !o.m2.HasThickness()) {
				return com.InvalidCaseData, com.NoCaseInfo
			}
			if o.MeshId1 != o.MeshId2 {
				o.Case = com.NoCase
				return com.NoCaseError, com.CaseForcedNoCase
			}
		}
	}
	return com.NoCaseError, com.NoCaseInfo
}

// checkMethod validates mesh compatibility with the method. The mortar
// family runs on 3D surfaces of equal element type from two distinct
// meshes; methods that write forces need the nodal response registered.
func (o *CouplingScheme) checkMethod() com.MethodError {
	switch o.Method {
	case com.CommonPlane:
		if !o.nullMeshes() && (!o.m1.HasResponse() || !o.m2.HasResponse()) {
			return com.NullNodalResponse
		}
	case com.SingleMortar, com.AlignedMortar, com.MortarWeights:
		if o.m1.Ndim != 3 || o.m2.Ndim != 3 {
			return com.InvalidDim
		}
		if o.MeshId1 == o.MeshId2 {
			return com.SameMeshIds
		}
		if o.m1.Npe != o.m2.Npe {
			return com.DifferentFaceTypes
		}
		writes := o.Lagrange.EvalMode == com.EvalResidual || o.Lagrange.EvalMode == com.EvalResidualJacobian
		if o.Method != com.MortarWeights && writes && !o.nullMeshes() &&
			(!o.m1.HasResponse() || !o.m2.HasResponse()) {
			return com.NullNodalResponse
		}
	default:
		return com.InvalidMethod
	}
	return com.NoMethodError
}

// checkModel validates the model against the method: the common plane
// kernels implement frictionless and tied contact, the mortar kernels only
// frictionless, and the weights evaluation accepts the null model too.
// Coulomb friction has no kernel yet.
func (o *CouplingScheme) checkModel() com.ModelError {
	switch o.Model {
	case com.Frictionless, com.Tied, com.NullModel, com.Coulomb:
	default:
		return com.InvalidModel
	}
	if o.Model == com.Coulomb {
		return com.NoModelImplementation
	}
	switch o.Method {
	case com.CommonPlane:
		if o.Model == com.NullModel {
			return com.NoModelImplementation
		}
	case com.SingleMortar, com.AlignedMortar:
		if o.Model != com.Frictionless {
			return com.NoModelImplementation
		}
	case com.MortarWeights:
		if o.Model != com.Frictionless && o.Model != com.NullModel {
			return com.NoModelImplementation
		}
	}
	return com.NoModelError
}

// checkEnforcement validates the enforcement against method and model and
// raises the option flags the kernels depend on. The weights-only method
// needs no enforcement at all, so whatever was requested is forced to null
// and the evaluation mode to mortar weights.
func (o *CouplingScheme) checkEnforcement() (com.EnforcementError, com.EnforcementInfo) {
	switch o.Enforcement {
	case com.Penalty, com.LagrangeMultiplier, com.NullEnforcement:
	default:
		return com.InvalidEnforcement, com.NoEnforcementInfo
	}
	switch o.Method {
	case com.CommonPlane:
		if o.Enforcement != com.Penalty {
			return com.InvalidEnforcementForMethod, com.NoEnforcementInfo
		}
		if !o.Penalty.Set {
			return com.OptionsNotSet, com.NoEnforcementInfo
		}
	case com.SingleMortar, com.AlignedMortar:
		if o.Enforcement != com.LagrangeMultiplier {
			return com.InvalidEnforcementForMethod, com.NoEnforcementInfo
		}
		if o.Model != com.Frictionless {
			return com.InvalidEnforcementForModel, com.NoEnforcementInfo
		}
		if !o.Lagrange.Set {
			return com.OptionsNotSet, com.NoEnforcementInfo
		}
	case com.MortarWeights:
		var note com.EnforcementInfo
		if o.Enforcement != com.NullEnforcement {
			o.Enforcement = com.NullEnforcement
			note = com.EnforcementForcedNull
		}
		if o.Lagrange.EvalMode != com.EvalMortarWeights {
			o.Lagrange.EvalMode = com.EvalMortarWeights
			if note == com.NoEnforcementInfo {
				note = com.EvalModeForcedWeightsEval
			}
		}
		o.Lagrange.SparseMode = com.SparseLinkedList
		o.Lagrange.Set = true
		return com.NoEnforcementError, note
	}
	return com.NoEnforcementError, com.NoEnforcementInfo
}

// checkEnforcementData verifies that the mesh data the enforcement needs
// was registered: thickness and material modulus for the element penalty,
// velocities for the rate penalty, gap and pressure fields on the
// nonmortar mesh for the Lagrange multiplier methods. Constant stiffnesses
// must be positive and the rate fraction must lie in (0,1).
func (o *CouplingScheme) checkEnforcementData() com.EnforcementDataError {
	if o.nullMeshes() {
		return com.NoEnforcementDataError
	}
	switch o.Method {
	case com.CommonPlane:
		if !o.Penalty.Set {
			return com.NoEnforcementDataError // options problem reported already
		}
		switch o.Penalty.Kinematic {
		case com.KinematicConstant:
			if o.Penalty.K <= 0 {
				return com.ErrorInRegisteredEnforcementData
			}
		case com.KinematicElement:
			if !o.m1.HasThickness() || !o.m1.HasMatMod() || !o.m2.HasThickness() || !o.m2.HasMatMod() {
				return com.ErrorInRegisteredEnforcementData
			}
		}
		if o.Penalty.NeedsRate() {
			if !o.m1.HasVel() || !o.m2.HasVel() {
				return com.ErrorInRegisteredEnforcementData
			}
			if o.Penalty.Rate == com.RateConstant && o.Penalty.RateK <= 0 {
				return com.ErrorInRegisteredEnforcementData
			}
			if o.Penalty.Rate == com.RatePercent && (o.Penalty.RatePercent <= 0 || o.Penalty.RatePercent >= 1) {
				return com.ErrorInRegisteredEnforcementData
			}
		}
	case com.SingleMortar, com.AlignedMortar:
		if !o.m2.HasGaps() || !o.m2.HasPress() {
			return com.ErrorInRegisteredEnforcementData
		}
	}
	return com.NoEnforcementDataError
}

// GapTol returns the gap tolerance below which a pair of faces counts as
// being in contact: a small negative fraction of the larger face bounding
// radius, or a positive fraction for tied cases so initially separated
// surfaces are still captured
func (o *CouplingScheme) GapTol(f1, f2 int) float64 {
	r := math.Max(o.m1.Radius[f1], o.m2.Radius[f2])
	if o.Case == com.TiedNormal || o.Case == com.NoSliding {
		return o.Params.GapTiedTol * r
	}
	return -o.Params.GapTolRatio * r
}

// PerformBinning recomputes the face data of both meshes and builds the
// candidate pair list. The grid policy and schemes whose pairs cannot
// change (tied or non-sliding cases) keep the pairs of the first build.
func (o *CouplingScheme) PerformBinning() (err error) {
	if o.m1 == nil || o.m2 == nil {
		return chk.Err("coupling scheme %d: Init must run before binning", o.Id)
	}
	if err = o.m1.ComputeFaceData(); err != nil {
		return
	}
	if o.m2 != o.m1 {
		if err = o.m2.ComputeFaceData(); err != nil {
			return
		}
	}
	if _, err = o.finder.Generate(); err != nil {
		return
	}
	if o.Binning == com.BinningGrid || o.Case == com.NoSliding || o.Case == com.TiedNormal {
		o.finder.Fixed = true
	}
	return
}

// Apply runs the narrow phase over the candidate pairs, dispatches the
// method kernel over the resulting contact planes, votes on the timestep
// and optionally writes visualization output. dt may be nil when the host
// does not track a timestep; a vote only ever shrinks *dt.
func (o *CouplingScheme) Apply(cycle int, t float64, dt *float64) (err error) {
	o.Report = PairReportingData{}
	o.TsDiag = phys.TimestepDiag{}
	pairs := o.finder.Pairs
	n := len(pairs)
	o.Report.NumTotalPairs = n
	if n == 0 {
		if o.LogLevel == com.LogDebug {
			io.Pf("cs%d cycle %d (t=%g): no candidate pairs\n", o.Id, cycle, t)
		}
		return
	}

	// narrow phase: pairs are independent, so the kernel maps over them
	// with an atomic slot counter compacting the accepted planes
	tied := o.Case == com.TiedNormal || o.Case == com.NoSliding
	full := o.Method != com.CommonPlane
	prms := o.Params
	if o.Case == com.Auto {
		prms.AutoInterpenCheck = true
	}
	var slot int64
	var badOrient, badOverlap, badGeom int32
	if o.m1.Ndim == 3 {
		if cap(o.Planes3D) < n {
			o.Planes3D = make([]cplane.Plane3D, n)
		}
		o.Planes3D = o.Planes3D[:n]
		com.ForAll(o.Exec, n, func(i int) {
			p := &pairs[i]
			var cp cplane.Plane3D
			interact, ferr := cplane.CheckFacePair(o.m1, p.FaceId1, o.m2, p.FaceId2, &prms, tied, full, &cp)
			if ferr != com.NoFaceGeomError {
				switch ferr {
				case com.FaceOrientation:
					atomic.AddInt32(&badOrient, 1)
				case com.DegenerateOverlap:
					atomic.AddInt32(&badOverlap, 1)
				default:
					atomic.AddInt32(&badGeom, 1)
				}
			}
			if !interact {
				p.Candidate = false
				return
			}
			o.Planes3D[atomic.AddInt64(&slot, 1)-1] = cp
		})
		o.Planes3D = o.Planes3D[:slot]
		for i := range o.Planes3D {
			if o.Planes3D[i].InContact {
				o.Report.NumActivePairs++
			}
		}
	} else {
		if cap(o.Planes2D) < n {
			o.Planes2D = make([]cplane.Plane2D, n)
		}
		o.Planes2D = o.Planes2D[:n]
		com.ForAll(o.Exec, n, func(i int) {
			p := &pairs[i]
			var cp cplane.Plane2D
			interact, ferr := cplane.CheckEdgePair(o.m1, p.FaceId1, o.m2, p.FaceId2, &prms, tied, full, &cp)
			if ferr != com.NoFaceGeomError {
				switch ferr {
				case com.FaceOrientation:
					atomic.AddInt32(&badOrient, 1)
				case com.DegenerateOverlap:
					atomic.AddInt32(&badOverlap, 1)
				default:
					atomic.AddInt32(&badGeom, 1)
				}
			}
			if !interact {
				p.Candidate = false
				return
			}
			o.Planes2D[atomic.AddInt64(&slot, 1)-1] = cp
		})
		o.Planes2D = o.Planes2D[:slot]
		for i := range o.Planes2D {
			if o.Planes2D[i].InContact {
				o.Report.NumActivePairs++
			}
		}
	}
	o.Report.NumBadOrientation = int(badOrient)
	o.Report.NumBadOverlaps = int(badOverlap)
	o.Report.NumBadFaceGeometry = int(badGeom)

	// physics
	switch o.Method {
	case com.CommonPlane:
		if o.m1.Ndim == 3 {
			err = phys.ApplyCommonPlane3D(o.m1, o.m2, o.Planes3D, &o.Penalty, o.Model, o.Exec)
		} else {
			err = phys.ApplyCommonPlane2D(o.m1, o.m2, o.Planes2D, &o.Penalty, o.Model, o.Exec)
		}
	case com.SingleMortar:
		err = phys.ApplySingleMortar(o.Mortar, o.Planes3D)
	case com.AlignedMortar:
		err = phys.ApplyAlignedMortar(o.Mortar, o.Planes3D)
	case com.MortarWeights:
		err = phys.ApplyMortarWeights(o.Mortar, o.Planes3D)
	}
	if err != nil {
		return chk.Err("coupling scheme %d: %v", o.Id, err)
	}

	// timestep vote
	if o.Report.NumActivePairs > 0 && o.Params.EnableTimestepVote &&
		o.Enforcement == com.Penalty && o.Penalty.Kinematic == com.KinematicElement &&
		dt != nil && *dt > 0 {
		var vote float64
		if o.m1.Ndim == 3 {
			vote, o.TsDiag = phys.TimestepVote3D(o.m1, o.m2, o.Planes3D, &o.Params, o.Exec, *dt)
		} else {
			vote, o.TsDiag = phys.TimestepVote2D(o.m1, o.m2, o.Planes2D, &o.Params, o.Exec, *dt)
		}
		if vote > 0 {
			*dt = vote
		}
	}

	// visualization
	if o.Vis != com.VisNone && cycle%o.Params.VisCycleIncr == 0 {
		if err = out.WriteVtk(o.DirOut, io.Sf("cs%d", o.Id), cycle, o.Vis, o.m1, o.m2, o.Planes3D, o.Planes2D); err != nil {
			return chk.Err("coupling scheme %d: %v", o.Id, err)
		}
	}

	if o.LogLevel == com.LogDebug {
		io.Pf("cs%d cycle %d (t=%g): %d pairs, %d planes, %d in contact\n",
			o.Id, cycle, t, n, int(slot), o.Report.NumActivePairs)
	}
	return
}

// Run executes one full cycle of this scheme: validation, binning, narrow
// phase and physics
func (o *CouplingScheme) Run(cycle int, t float64, dt *float64) (err error) {
	if err = o.Init(); err != nil {
		return
	}
	if err = o.PerformBinning(); err != nil {
		return
	}
	return o.Apply(cycle, t, dt)
}

// TotalOverlapArea sums the overlap areas (lengths in 2D) of the contact
// planes of the last cycle
func (o *CouplingScheme) TotalOverlapArea() (a float64) {
	for i := range o.Planes3D {
		a += o.Planes3D[i].Area
	}
	for i := range o.Planes2D {
		a += o.Planes2D[i].Area
	}
	return
}

// CSRArrays returns the mortar Jacobian (or the node-space weights under
// the weights evaluation mode) in compressed sparse row form. Rows follow
// the blocked order [disp mesh1 | disp mesh2 | pressure mesh2].
func (o *CouplingScheme) CSRArrays() (I, J []int, V []float64, nrows, nnz int, err error) {
	if o.Mortar == nil {
		err = chk.Err("coupling scheme %d has no mortar data to extract", o.Id)
		return
	}
	if I, J, V, err = o.Mortar.Data.CSR(); err != nil {
		return
	}
	nrows = len(I) - 1
	nnz = len(J)
	return
}

// Gaps returns the nodal gap field written on the nonmortar mesh
func (o *CouplingScheme) Gaps() ([]float64, error) {
	if o.m2 == nil || !o.m2.HasGaps() {
		return nil, chk.Err("coupling scheme %d has no registered gap field", o.Id)
	}
	return o.m2.Gaps, nil
}

// Pressures returns the nodal pressure field of the nonmortar mesh
func (o *CouplingScheme) Pressures() ([]float64, error) {
	if o.m2 == nil || !o.m2.HasPress() {
		return nil, chk.Err("coupling scheme %d has no registered pressure field", o.Id)
	}
	return o.m2.Press, nil
}

// BlockJacobian returns the assembled mortar Jacobian as a sparse triplet
// ready for conversion to a solver matrix
func (o *CouplingScheme) BlockJacobian() (*la.Triplet, error) {
	if o.Mortar == nil {
		return nil, chk.Err("coupling scheme %d has no mortar data to extract", o.Id)
	}
	return o.Mortar.Data.Triplet()
}
