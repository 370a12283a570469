// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpl

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/mesh"
)

// Manager owns the mesh registry and the coupling schemes and is the
// host-facing entry point: hosts register meshes, nodal and element data
// and schemes, then call Update once per cycle
type Manager struct {
	Meshes  *mesh.Manager
	schemes map[int]*CouplingScheme
}

// NewManager returns an empty manager
func NewManager() *Manager {
	return &Manager{Meshes: mesh.NewManager(), schemes: make(map[int]*CouplingScheme)}
}

// Register stores cs under cs.Id, replacing any previous scheme
func (o *Manager) Register(cs *CouplingScheme) {
	o.schemes[cs.Id] = cs
}

// Find returns the scheme with the given id, or nil when absent
func (o *Manager) Find(id int) *CouplingScheme {
	return o.schemes[id]
}

// Scheme returns the scheme with the given id, erroring when absent
func (o *Manager) Scheme(id int) (cs *CouplingScheme, err error) {
	cs = o.schemes[id]
	if cs == nil {
		err = chk.Err("coupling scheme %d is not registered", id)
	}
	return
}

// Size returns the number of registered schemes
func (o *Manager) Size() int {
	return len(o.schemes)
}

// Update runs one contact cycle over all schemes in ascending id order.
// A failing scheme does not stop the others; the errors are joined and
// returned after every scheme had its turn. dt may be nil; otherwise the
// timestep votes of all penalty schemes accumulate through it.
func (o *Manager) Update(cycle int, t float64, dt *float64) (err error) {
	ids := make([]int, 0, len(o.schemes))
	for id := range o.schemes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if e := o.schemes[id].Run(cycle, t, dt); e != nil {
			if err == nil {
				err = e
			} else {
				err = chk.Err("%v; %v", err, e)
			}
		}
	}
	return
}

// RegisterMesh wraps host arrays into a mesh view and stores it in the
// registry; see mesh.New for the constraints on the arrays. Registering an
// id again replaces the previous view, which is how hosts communicate
// reallocated arrays.
func (o *Manager) RegisterMesh(id int, geoType string, nelems, nnodes int, conn []int,
	x, y, z []float64, mspace com.MemorySpace) (err error) {
	m, err := mesh.New(id, geoType, nelems, nnodes, conn, x, y, z)
	if err != nil {
		return
	}
	m.MemSpace = mspace
	o.Meshes.Register(m)
	return
}

// RegisterNodalResponse registers the force arrays contact kernels
// accumulate into. Required by any method that writes forces.
func (o *Manager) RegisterNodalResponse(meshId int, fx, fy, fz []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetResponse(fx, fy, fz)
}

// RegisterNodalDisplacements registers nodal displacement arrays
func (o *Manager) RegisterNodalDisplacements(meshId int, ux, uy, uz []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetDisplacements(ux, uy, uz)
}

// RegisterNodalVelocities registers nodal velocity arrays, needed by the
// rate penalty and the timestep vote
func (o *Manager) RegisterNodalVelocities(meshId int, vx, vy, vz []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetVelocities(vx, vy, vz)
}

// RegisterElementThickness registers per-face thickness along the outward
// normal, needed by the element penalty, the auto case and the timestep
// vote
func (o *Manager) RegisterElementThickness(meshId int, t []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetElemThickness(t)
}

// RegisterMaterialModulus registers the per-face material modulus used by
// the element penalty stiffness
func (o *Manager) RegisterMaterialModulus(meshId int, e []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetMaterialModulus(e)
}

// RegisterPenaltyScale registers per-face penalty scale factors
func (o *Manager) RegisterPenaltyScale(meshId int, s []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetPenaltyScale(s)
}

// RegisterMortarGaps registers the nodal gap array the mortar methods
// write on the nonmortar mesh
func (o *Manager) RegisterMortarGaps(meshId int, g []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetGaps(g)
}

// RegisterMortarPressures registers the nodal pressure array the mortar
// residual reads on the nonmortar mesh
func (o *Manager) RegisterMortarPressures(meshId int, p []float64) (err error) {
	m, err := o.Meshes.At(meshId)
	if err != nil {
		return
	}
	return m.SetPressures(p)
}

// RegisterCouplingScheme creates and registers a scheme coupling meshId1
// to meshId2. The configuration is validated later, at the first Update,
// so hosts may register data and options in any order.
func (o *Manager) RegisterCouplingScheme(id, meshId1, meshId2 int, mode com.ContactMode,
	ccase com.ContactCase, method com.ContactMethod, model com.ContactModel,
	enforcement com.Enforcement, binning com.BinningMethod, exec com.ExecutionMode) (cs *CouplingScheme) {
	cs = NewScheme(id, meshId1, meshId2, mode, ccase, method, model, enforcement, binning, exec, o.Meshes)
	o.Register(cs)
	return
}

// SetPenaltyOptions selects the penalty terms of a scheme and marks the
// options as set; the stiffness values come from the value setters below
func (o *Manager) SetPenaltyOptions(csId int, kin com.KinematicCalc, rate com.RateCalc, constraint com.PenaltyConstraint) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	cs.Penalty.Kinematic = kin
	cs.Penalty.Rate = rate
	cs.Penalty.Constraint = constraint
	cs.Penalty.Set = true
	return
}

// SetKinematicConstantPenalty registers the constant kinematic stiffness
func (o *Manager) SetKinematicConstantPenalty(csId int, k float64) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	if k <= 0 {
		return chk.Err("kinematic penalty stiffness must be positive; got %g", k)
	}
	cs.Penalty.Kinematic = com.KinematicConstant
	cs.Penalty.K = k
	return
}

// SetRateConstantPenalty registers the constant gap-rate stiffness
func (o *Manager) SetRateConstantPenalty(csId int, rk float64) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	if rk <= 0 {
		return chk.Err("rate penalty stiffness must be positive; got %g", rk)
	}
	cs.Penalty.Rate = com.RateConstant
	cs.Penalty.RateK = rk
	return
}

// SetRatePercentPenalty registers the gap-rate stiffness as a fraction of
// the kinematic one; the fraction must lie in (0,1)
func (o *Manager) SetRatePercentPenalty(csId int, frac float64) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	if frac <= 0 || frac >= 1 {
		return chk.Err("rate penalty fraction must lie in (0,1); got %g", frac)
	}
	cs.Penalty.Rate = com.RatePercent
	cs.Penalty.RatePercent = frac
	return
}

// SetLagrangeMultiplierOptions selects the evaluation and sparse modes of
// a mortar scheme and marks the options as set
func (o *Manager) SetLagrangeMultiplierOptions(csId int, eval com.EvalMode, sparse com.SparseMode) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	cs.Lagrange.EvalMode = eval
	cs.Lagrange.SparseMode = sparse
	cs.Lagrange.Set = true
	return
}

// SetVisOptions selects what a scheme writes for visualization and where
func (o *Manager) SetVisOptions(csId int, vis com.VisType, dirout string) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	cs.Vis = vis
	cs.DirOut = dirout
	return
}

// SetLoggingLevel sets the verbosity of a scheme
func (o *Manager) SetLoggingLevel(csId int, lvl com.LoggingLevel) (err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	cs.LogLevel = lvl
	return
}

// CSRArrays extracts the mortar Jacobian of a scheme in compressed sparse
// row form
func (o *Manager) CSRArrays(csId int) (I, J []int, V []float64, nrows, nnz int, err error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return
	}
	return cs.CSRArrays()
}

// Gaps extracts the nodal gap field of a mortar scheme
func (o *Manager) Gaps(csId int) ([]float64, error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return nil, err
	}
	return cs.Gaps()
}

// Pressures extracts the nodal pressure field of a mortar scheme
func (o *Manager) Pressures(csId int) ([]float64, error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return nil, err
	}
	return cs.Pressures()
}

// BlockJacobian extracts the mortar Jacobian of a scheme as a sparse
// triplet
func (o *Manager) BlockJacobian(csId int) (*la.Triplet, error) {
	cs, err := o.Scheme(csId)
	if err != nil {
		return nil, err
	}
	return cs.BlockJacobian()
}
