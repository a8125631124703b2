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

package model

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/strata-dev/strata/pkg/features"
	"github.com/strata-dev/strata/pkg/syntax"
)

// DeploymentScope is the scope a template deploys into.
type DeploymentScope int

const (
	ResourceGroupScope DeploymentScope = iota
	SubscriptionScope
	ManagementGroupScope
	TenantScope
)

func (s DeploymentScope) String() string {
	switch s {
	case ResourceGroupScope:
		return "resourceGroup"
	case SubscriptionScope:
		return "subscription"
	case ManagementGroupScope:
		return "managementGroup"
	case TenantScope:
		return "tenant"
	default:
		return "unknown"
	}
}

// ProviderDescriptor describes a requested provider. Descriptors are built
// transiently to query a NamespaceProvider and are not retained.
type ProviderDescriptor struct {
	// Name is the provider's namespace name.
	Name string
	// Version is the requested provider version.
	Version string
	// ImplicitImport marks providers injected by configuration rather than
	// declared in source.
	ImplicitImport bool
	// Alias is the local name the declaration binds, when aliased.
	Alias string
	// Registry is the registry address for registry-qualified providers.
	Registry string
	// TypesBaseURI is the resolved location of an explicit types file.
	TypesBaseURI string
}

// NamespaceProvider resolves provider descriptors to namespace types.
type NamespaceProvider interface {
	// ResolveNamespace produces the namespace type for the described provider
	// in the given deployment scope, feature set, and source file kind. On
	// failure it returns a nil type and the diagnostic explaining why.
	ResolveNamespace(descriptor ProviderDescriptor, scope DeploymentScope, flags features.Features,
		kind syntax.FileKind) (Type, *hcl.Diagnostic)
}

// ExportKind classifies an exported declaration of a referenced model.
type ExportKind int

const (
	TypeExport ExportKind = iota
	VariableExport
	FunctionExport
	// ErrorExport marks an export the referenced model itself failed to
	// compile; importing it surfaces the model's own message.
	ErrorExport
)

func (k ExportKind) String() string {
	switch k {
	case TypeExport:
		return "type"
	case VariableExport:
		return "variable"
	case FunctionExport:
		return "function"
	case ErrorExport:
		return "error"
	default:
		return "unknown"
	}
}

// Export is the metadata for a single exported declaration.
type Export struct {
	Kind        ExportKind
	Description string
	// Error is the exporting model's message for error-kind exports.
	Error string
}

// SemanticModel is the compiled model of a referenced file, exposing just
// what the binder needs to resolve imports against it.
type SemanticModel interface {
	// Exports maps exported names to their metadata.
	Exports() map[string]Export
	// HasErrors reports whether the referenced model has its own errors.
	HasErrors() bool
	// TemplateDerived reports whether the model was derived from a compiled
	// template rather than Strata source.
	TemplateDerived() bool
}

// ModelLookup resolves import declarations to the semantic models of the
// files they reference. Referenced files must already have been compiled;
// acyclic ordering is the dependency resolver's responsibility.
type ModelLookup interface {
	// ResolveModel returns the model for the given import declaration, or a
	// diagnostic when the referenced artifact cannot be loaded.
	ResolveModel(decl *syntax.ImportDecl) (SemanticModel, *hcl.Diagnostic)
}

// ArtifactLookup resolves explicit provider types-file paths to URIs.
type ArtifactLookup interface {
	// ResolveTypesFileURI returns the URI of the types file named by the given
	// provider declaration, or a diagnostic when it cannot be resolved.
	ResolveTypesFileURI(decl *syntax.ProviderDecl) (string, *hcl.Diagnostic)
}
