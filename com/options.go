// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

import (
	"github.com/cpmech/gosl/chk"
)

// KinematicCalc says how the kinematic penalty stiffness is obtained
type KinematicCalc int

const (
	KinematicConstant KinematicCalc = iota
	KinematicElement
)

// RateCalc says how the gap-rate penalty stiffness is obtained
type RateCalc int

const (
	NoRatePenalty RateCalc = iota
	RateConstant
	RatePercent
)

// PenaltyConstraint selects which penalty terms act on a pair
type PenaltyConstraint int

const (
	ConstraintKinematic PenaltyConstraint = iota
	ConstraintKinematicAndRate
)

// EvalMode says what the Lagrange multiplier method computes per cycle
type EvalMode int

const (
	EvalResidual EvalMode = iota
	EvalJacobian
	EvalResidualJacobian
	EvalMortarWeights
)

// SparseMode selects the storage the mortar Jacobian is assembled into
type SparseMode int

const (
	SparseLinkedList SparseMode = iota
	SparseElementDense
)

// PenaltyOptions holds the user choices for penalty enforcement. The
// zero value selects a constant kinematic stiffness with no rate term;
// Set must be raised through the registration layer before a scheme
// using penalty enforcement passes validation.
type PenaltyOptions struct {
	Kinematic   KinematicCalc
	Rate        RateCalc
	Constraint  PenaltyConstraint
	K           float64 // constant kinematic stiffness
	RateK       float64 // constant gap-rate stiffness
	RatePercent float64 // gap-rate stiffness as a fraction of the kinematic one
	Set         bool
}

// NeedsRate tells whether a gap-rate term participates
func (o *PenaltyOptions) NeedsRate() bool {
	return o.Constraint == ConstraintKinematicAndRate && o.Rate != NoRatePenalty
}

// LagrangeOptions holds the user choices for Lagrange multiplier
// enforcement; Set must be raised before validation.
type LagrangeOptions struct {
	EvalMode   EvalMode
	SparseMode SparseMode
	Set        bool
}

func (o KinematicCalc) String() string {
	switch o {
	case KinematicConstant:
		return "kinematic_constant"
	case KinematicElement:
		return "kinematic_element"
	}
	return "invalid_kinematic_calc"
}

func (o RateCalc) String() string {
	switch o {
	case NoRatePenalty:
		return "no_rate_penalty"
	case RateConstant:
		return "rate_constant"
	case RatePercent:
		return "rate_percent"
	}
	return "invalid_rate_calc"
}

func (o PenaltyConstraint) String() string {
	switch o {
	case ConstraintKinematic:
		return "kinematic"
	case ConstraintKinematicAndRate:
		return "kinematic_and_rate"
	}
	return "invalid_penalty_constraint"
}

func (o EvalMode) String() string {
	switch o {
	case EvalResidual:
		return "residual"
	case EvalJacobian:
		return "jacobian"
	case EvalResidualJacobian:
		return "residual_jacobian"
	case EvalMortarWeights:
		return "mortar_weights"
	}
	return "invalid_eval_mode"
}

func (o SparseMode) String() string {
	switch o {
	case SparseLinkedList:
		return "linked_list"
	case SparseElementDense:
		return "element_dense"
	}
	return "invalid_sparse_mode"
}

// ParseKinematic converts a configuration keyword into a KinematicCalc
func ParseKinematic(s string) (KinematicCalc, error) {
	switch s {
	case "kinematic_constant", "constant", "":
		return KinematicConstant, nil
	case "kinematic_element", "element":
		return KinematicElement, nil
	}
	return 0, chk.Err("unknown kinematic penalty calculation %q", s)
}

// ParseRate converts a configuration keyword into a RateCalc
func ParseRate(s string) (RateCalc, error) {
	switch s {
	case "no_rate_penalty", "none", "":
		return NoRatePenalty, nil
	case "rate_constant":
		return RateConstant, nil
	case "rate_percent":
		return RatePercent, nil
	}
	return 0, chk.Err("unknown rate penalty calculation %q", s)
}

// ParseConstraint converts a configuration keyword into a PenaltyConstraint
func ParseConstraint(s string) (PenaltyConstraint, error) {
	switch s {
	case "kinematic", "":
		return ConstraintKinematic, nil
	case "kinematic_and_rate":
		return ConstraintKinematicAndRate, nil
	}
	return 0, chk.Err("unknown penalty constraint %q", s)
}

// ParseEvalMode converts a configuration keyword into an EvalMode
func ParseEvalMode(s string) (EvalMode, error) {
	switch s {
	case "residual":
		return EvalResidual, nil
	case "jacobian":
		return EvalJacobian, nil
	case "residual_jacobian", "":
		return EvalResidualJacobian, nil
	case "mortar_weights":
		return EvalMortarWeights, nil
	}
	return 0, chk.Err("unknown eval mode %q", s)
}

// ParseSparseMode converts a configuration keyword into a SparseMode
func ParseSparseMode(s string) (SparseMode, error) {
	switch s {
	case "linked_list", "":
		return SparseLinkedList, nil
	case "element_dense":
		return SparseElementDense, nil
	}
	return 0, chk.Err("unknown sparse mode %q", s)
}
