// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/Zhoneym/Tribol/com"
	"github.com/Zhoneym/Tribol/cpl"
)

// Register loads the simulation into a coupling scheme manager: every
// mesh file becomes a registered view with zeroed response arrays and
// the optional constant fields, and every scheme gets its options,
// parameter overrides, visualization and logging settings. The returned
// schemes follow the order of the input data.
func (o *Simulation) Register(man *cpl.Manager) (schemes []*cpl.CouplingScheme, err error) {

	// meshes
	for _, mf := range o.MeshFiles {
		m, err := mf.Msh.ToMesh(mf.Id)
		if err != nil {
			return nil, err
		}
		man.Meshes.Register(m)
		n := m.Nnodes
		if err = m.SetResponse(make([]float64, n), make([]float64, n), make([]float64, n)); err != nil {
			return nil, err
		}
		if mf.Vel != nil {
			if len(mf.Vel) < m.Ndim {
				return nil, chk.Err("mesh %d: velocity needs %d components (%d given)", mf.Id, m.Ndim, len(mf.Vel))
			}
			vx, vy, vz := make([]float64, n), make([]float64, n), make([]float64, n)
			for i := 0; i < n; i++ {
				vx[i], vy[i] = mf.Vel[0], mf.Vel[1]
				if m.Ndim == 3 {
					vz[i] = mf.Vel[2]
				}
			}
			if err = m.SetVelocities(vx, vy, vz); err != nil {
				return nil, err
			}
		}
		if mf.Thick > 0 {
			t := make([]float64, m.Nelems)
			for i := range t {
				t[i] = mf.Thick
			}
			if err = m.SetElemThickness(t); err != nil {
				return nil, err
			}
		}
		if mf.Emod > 0 {
			e := make([]float64, m.Nelems)
			for i := range e {
				e[i] = mf.Emod
			}
			if err = m.SetMaterialModulus(e); err != nil {
				return nil, err
			}
		}
	}

	// schemes
	for _, sd := range o.Schemes {
		mode, err := com.ParseMode(sd.Mode)
		if err != nil {
			return nil, err
		}
		ccase, err := com.ParseCase(sd.Case)
		if err != nil {
			return nil, err
		}
		method, err := com.ParseMethod(sd.Method)
		if err != nil {
			return nil, err
		}
		model, err := com.ParseModel(sd.Model)
		if err != nil {
			return nil, err
		}
		enf, err := com.ParseEnforcement(sd.Enforcement)
		if err != nil {
			return nil, err
		}
		binning, err := com.ParseBinning(sd.Binning)
		if err != nil {
			return nil, err
		}
		exec, err := com.ParseExec(sd.Exec)
		if err != nil {
			return nil, err
		}
		cs := man.RegisterCouplingScheme(sd.Id, sd.MeshIds[0], sd.MeshIds[1],
			mode, ccase, method, model, enf, binning, exec)

		// the mortar methods write gap and pressure fields on the
		// nonmortar mesh
		if method == com.SingleMortar || method == com.AlignedMortar {
			m2, err := man.Meshes.At(sd.MeshIds[1])
			if err != nil {
				return nil, err
			}
			if !m2.HasGaps() {
				if err = m2.SetGaps(make([]float64, m2.Nnodes)); err != nil {
					return nil, err
				}
			}
			if !m2.HasPress() {
				if err = m2.SetPressures(make([]float64, m2.Nnodes)); err != nil {
					return nil, err
				}
			}
		}

		// enforcement options
		if sd.Penalty != nil {
			kin, err := com.ParseKinematic(sd.Penalty.Kinematic)
			if err != nil {
				return nil, err
			}
			rate, err := com.ParseRate(sd.Penalty.Rate)
			if err != nil {
				return nil, err
			}
			con, err := com.ParseConstraint(sd.Penalty.Constraint)
			if err != nil {
				return nil, err
			}
			if err = man.SetPenaltyOptions(sd.Id, kin, rate, con); err != nil {
				return nil, err
			}
			if kin == com.KinematicConstant {
				if err = man.SetKinematicConstantPenalty(sd.Id, sd.Penalty.K); err != nil {
					return nil, err
				}
			}
			if rate == com.RateConstant {
				if err = man.SetRateConstantPenalty(sd.Id, sd.Penalty.RateK); err != nil {
					return nil, err
				}
			}
			if rate == com.RatePercent {
				if err = man.SetRatePercentPenalty(sd.Id, sd.Penalty.RatePercent); err != nil {
					return nil, err
				}
			}
		}
		if sd.Lagrange != nil {
			eval, err := com.ParseEvalMode(sd.Lagrange.Eval)
			if err != nil {
				return nil, err
			}
			sparse, err := com.ParseSparseMode(sd.Lagrange.Sparse)
			if err != nil {
				return nil, err
			}
			if err = man.SetLagrangeMultiplierOptions(sd.Id, eval, sparse); err != nil {
				return nil, err
			}
		}

		// output and overrides
		if err = man.SetVisOptions(sd.Id, o.Vis, o.DirOut); err != nil {
			return nil, err
		}
		if err = man.SetLoggingLevel(sd.Id, o.Log); err != nil {
			return nil, err
		}
		ParamOverrides(sd.Extra, &cs.Params)
		schemes = append(schemes, cs)
	}
	return
}
