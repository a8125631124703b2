// Copyright 2021-2024, Strata Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model defines the semantic values exchanged between the compiler
// passes: types, export metadata, and the collaborator interfaces the
// declaration binder resolves imports and providers against.
package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Type is the minimal type surface visible to the declaration binder. The
// full type system lives with the type checker; this pass only distinguishes
// namespace types from error placeholders.
type Type interface {
	fmt.Stringer

	isType()
}

// ErrorType is the placeholder type bound when resolution fails. It carries
// the diagnostics explaining the failure, which may be empty when there was
// nothing to resolve in the first place.
type ErrorType struct {
	diagnostics hcl.Diagnostics
}

// NewErrorType returns an error type carrying the given diagnostics.
func NewErrorType(diagnostics ...*hcl.Diagnostic) *ErrorType {
	return &ErrorType{diagnostics: hcl.Diagnostics(diagnostics)}
}

// Diagnostics returns the diagnostics explaining the failed resolution.
func (t *ErrorType) Diagnostics() hcl.Diagnostics {
	return t.diagnostics
}

func (t *ErrorType) String() string { return "error" }
func (t *ErrorType) isType()        {}

// NamespaceType is the resolved resource-type surface of a provider.
type NamespaceType struct {
	// Name is the provider's namespace name.
	Name string
	// Version is the resolved provider version.
	Version string
	// Description is an optional human-readable description.
	Description string
}

func (t *NamespaceType) String() string { return t.Name }
func (t *NamespaceType) isType()        {}
