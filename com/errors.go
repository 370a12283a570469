// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package com

// Validation errors are recorded per category on the coupling scheme so
// hosts can inspect the cause without matching error strings. The zero
// value of each enum means "no error in this category".

// ModeError flags an invalid or unimplemented contact mode
type ModeError int

const (
	NoModeError ModeError = iota
	InvalidMode
)

// CaseError flags an invalid contact case or missing case data
type CaseError int

const (
	NoCaseError CaseError = iota
	InvalidCase
	NoCaseImplementation
	InvalidCaseData
)

// MethodError flags method misconfiguration
type MethodError int

const (
	NoMethodError MethodError = iota
	InvalidMethod
	NoMethodImplementation
	DifferentFaceTypes
	SameMeshIds
	InvalidDim
	NullNodalResponse
)

// ModelError flags an invalid or unimplemented contact model
type ModelError int

const (
	NoModelError ModelError = iota
	InvalidModel
	NoModelImplementation
)

// EnforcementError flags enforcement misconfiguration
type EnforcementError int

const (
	NoEnforcementError EnforcementError = iota
	InvalidEnforcement
	InvalidEnforcementForMethod
	InvalidEnforcementForModel
	OptionsNotSet
)

// EnforcementDataError flags bad or missing registered enforcement data
type EnforcementDataError int

const (
	NoEnforcementDataError EnforcementDataError = iota
	ErrorInRegisteredEnforcementData
)

// CaseInfo records validation-time case mutations worth reporting
type CaseInfo int

const (
	NoCaseInfo CaseInfo = iota
	CaseForcedNoSliding
	CaseForcedNoCase
)

// EnforcementInfo records validation-time enforcement mutations
type EnforcementInfo int

const (
	NoEnforcementInfo EnforcementInfo = iota
	EnforcementForcedNull
	EvalModeForcedWeightsEval
)

func (o ModeError) String() string {
	switch o {
	case NoModeError:
		return "no_mode_error"
	case InvalidMode:
		return "invalid contact mode"
	}
	return "unknown mode error"
}

func (o CaseError) String() string {
	switch o {
	case NoCaseError:
		return "no_case_error"
	case InvalidCase:
		return "invalid contact case"
	case NoCaseImplementation:
		return "contact case not implemented for this method"
	case InvalidCaseData:
		return "case requires data that was not registered (element thickness)"
	}
	return "unknown case error"
}

func (o MethodError) String() string {
	switch o {
	case NoMethodError:
		return "no_method_error"
	case InvalidMethod:
		return "invalid contact method"
	case NoMethodImplementation:
		return "contact method not implemented"
	case DifferentFaceTypes:
		return "meshes have different element types"
	case SameMeshIds:
		return "method requires two distinct mesh ids"
	case InvalidDim:
		return "method not implemented for this spatial dimension"
	case NullNodalResponse:
		return "method writes forces but nodal response was not registered"
	}
	return "unknown method error"
}

func (o ModelError) String() string {
	switch o {
	case NoModelError:
		return "no_model_error"
	case InvalidModel:
		return "invalid contact model for this method"
	case NoModelImplementation:
		return "contact model not implemented"
	}
	return "unknown model error"
}

func (o EnforcementError) String() string {
	switch o {
	case NoEnforcementError:
		return "no_enforcement_error"
	case InvalidEnforcement:
		return "invalid enforcement method"
	case InvalidEnforcementForMethod:
		return "enforcement incompatible with contact method"
	case InvalidEnforcementForModel:
		return "enforcement incompatible with contact model"
	case OptionsNotSet:
		return "enforcement options were not set"
	}
	return "unknown enforcement error"
}

func (o EnforcementDataError) String() string {
	switch o {
	case NoEnforcementDataError:
		return "no_enforcement_data_error"
	case ErrorInRegisteredEnforcementData:
		return "registered enforcement data is missing or inconsistent"
	}
	return "unknown enforcement data error"
}
