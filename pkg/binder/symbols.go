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

package binder

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/strata-dev/strata/pkg/model"
	"github.com/strata-dev/strata/pkg/syntax"
)

// SymbolKind classifies a declared symbol.
type SymbolKind int

const (
	KindMetadata SymbolKind = iota
	KindParameter
	KindTypeAlias
	KindVariable
	KindFunction
	KindResource
	KindModule
	KindTest
	KindOutput
	KindAssert
	KindProviderNamespace
	KindParameterAssignment
	KindLocalVariable
	KindImportedType
	KindImportedVariable
	KindImportedFunction
	KindWildcardImport
	KindErroredImport
)

func (k SymbolKind) String() string {
	switch k {
	case KindMetadata:
		return "metadata"
	case KindParameter:
		return "parameter"
	case KindTypeAlias:
		return "type"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindResource:
		return "resource"
	case KindModule:
		return "module"
	case KindTest:
		return "test"
	case KindOutput:
		return "output"
	case KindAssert:
		return "assert"
	case KindProviderNamespace:
		return "provider"
	case KindParameterAssignment:
		return "parameter-assignment"
	case KindLocalVariable:
		return "local"
	case KindImportedType:
		return "imported-type"
	case KindImportedVariable:
		return "imported-variable"
	case KindImportedFunction:
		return "imported-function"
	case KindWildcardImport:
		return "wildcard-import"
	case KindErroredImport:
		return "errored-import"
	default:
		return "unknown"
	}
}

// DeclaredSymbol is a name bound by the declaration pass. Symbols are
// immutable once constructed and belong to exactly one scope.
type DeclaredSymbol interface {
	// Name returns the name the symbol binds.
	Name() string
	// Kind returns the symbol's kind.
	Kind() SymbolKind
	// DeclaringNode returns the syntax node that declared the symbol.
	DeclaringNode() syntax.Node

	declaredSymbol()
}

// MetadataSymbol is a metadata declaration.
type MetadataSymbol struct {
	Syntax *syntax.MetadataDecl
}

func (s *MetadataSymbol) Name() string               { return s.Syntax.Name }
func (s *MetadataSymbol) Kind() SymbolKind           { return KindMetadata }
func (s *MetadataSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *MetadataSymbol) declaredSymbol()            {}

// ParameterSymbol is a template parameter.
type ParameterSymbol struct {
	Syntax *syntax.ParameterDecl
}

func (s *ParameterSymbol) Name() string               { return s.Syntax.Name }
func (s *ParameterSymbol) Kind() SymbolKind           { return KindParameter }
func (s *ParameterSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ParameterSymbol) declaredSymbol()            {}

// TypeAliasSymbol is a type alias declaration.
type TypeAliasSymbol struct {
	Syntax *syntax.TypeAliasDecl
}

func (s *TypeAliasSymbol) Name() string               { return s.Syntax.Name }
func (s *TypeAliasSymbol) Kind() SymbolKind           { return KindTypeAlias }
func (s *TypeAliasSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *TypeAliasSymbol) declaredSymbol()            {}

// VariableSymbol is a variable declaration.
type VariableSymbol struct {
	Syntax *syntax.VariableDecl
}

func (s *VariableSymbol) Name() string               { return s.Syntax.Name }
func (s *VariableSymbol) Kind() SymbolKind           { return KindVariable }
func (s *VariableSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *VariableSymbol) declaredSymbol()            {}

// FunctionSymbol is a user-defined function declaration.
type FunctionSymbol struct {
	Syntax *syntax.FunctionDecl
}

func (s *FunctionSymbol) Name() string               { return s.Syntax.Name }
func (s *FunctionSymbol) Kind() SymbolKind           { return KindFunction }
func (s *FunctionSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *FunctionSymbol) declaredSymbol()            {}

// ResourceSymbol is a resource declaration. The symbol lives in the scope
// enclosing the declaration, not in the resource's own body scope.
type ResourceSymbol struct {
	Syntax *syntax.ResourceDecl
}

func (s *ResourceSymbol) Name() string               { return s.Syntax.Name }
func (s *ResourceSymbol) Kind() SymbolKind           { return KindResource }
func (s *ResourceSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ResourceSymbol) declaredSymbol()            {}

// ModuleSymbol is a module declaration. Like resources, the symbol lives in
// the enclosing scope.
type ModuleSymbol struct {
	Syntax *syntax.ModuleDecl
}

func (s *ModuleSymbol) Name() string               { return s.Syntax.Name }
func (s *ModuleSymbol) Kind() SymbolKind           { return KindModule }
func (s *ModuleSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ModuleSymbol) declaredSymbol()            {}

// TestSymbol is a test declaration.
type TestSymbol struct {
	Syntax *syntax.TestDecl
}

func (s *TestSymbol) Name() string               { return s.Syntax.Name }
func (s *TestSymbol) Kind() SymbolKind           { return KindTest }
func (s *TestSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *TestSymbol) declaredSymbol()            {}

// OutputSymbol is an output declaration.
type OutputSymbol struct {
	Syntax *syntax.OutputDecl
}

func (s *OutputSymbol) Name() string               { return s.Syntax.Name }
func (s *OutputSymbol) Kind() SymbolKind           { return KindOutput }
func (s *OutputSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *OutputSymbol) declaredSymbol()            {}

// AssertSymbol is an assert declaration.
type AssertSymbol struct {
	Syntax *syntax.AssertDecl
}

func (s *AssertSymbol) Name() string               { return s.Syntax.Name }
func (s *AssertSymbol) Kind() SymbolKind           { return KindAssert }
func (s *AssertSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *AssertSymbol) declaredSymbol()            {}

// ProviderNamespaceSymbol is a provider declaration. Type is the resolved
// namespace type, or an error type when resolution failed; the name stays
// bound either way.
type ProviderNamespaceSymbol struct {
	LocalName string
	Syntax    *syntax.ProviderDecl
	Type      model.Type
}

func (s *ProviderNamespaceSymbol) Name() string               { return s.LocalName }
func (s *ProviderNamespaceSymbol) Kind() SymbolKind           { return KindProviderNamespace }
func (s *ProviderNamespaceSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ProviderNamespaceSymbol) declaredSymbol()            {}

// ParameterAssignmentSymbol is a parameter assignment in a parameters file.
type ParameterAssignmentSymbol struct {
	Syntax *syntax.ParameterAssignment
}

func (s *ParameterAssignmentSymbol) Name() string               { return s.Syntax.Name }
func (s *ParameterAssignmentSymbol) Kind() SymbolKind           { return KindParameterAssignment }
func (s *ParameterAssignmentSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ParameterAssignmentSymbol) declaredSymbol()            {}

// LocalKind distinguishes the constructs that introduce local variables.
type LocalKind int

const (
	LoopItemLocal LocalKind = iota
	LoopIndexLocal
	LambdaItemLocal
)

func (k LocalKind) String() string {
	switch k {
	case LoopItemLocal:
		return "loop-item"
	case LoopIndexLocal:
		return "loop-index"
	case LambdaItemLocal:
		return "lambda-item"
	default:
		return "unknown"
	}
}

// LocalVariableSymbol is a loop or lambda local. It is declared into the
// scope the construct introduces, never into an enclosing scope, so the name
// cannot leak into sibling scopes.
type LocalVariableSymbol struct {
	LocalName string
	LocalKind LocalKind
	Syntax    syntax.Node
}

func (s *LocalVariableSymbol) Name() string               { return s.LocalName }
func (s *LocalVariableSymbol) Kind() SymbolKind           { return KindLocalVariable }
func (s *LocalVariableSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *LocalVariableSymbol) declaredSymbol()            {}

// ImportedTypeSymbol is an imported type export.
type ImportedTypeSymbol struct {
	LocalName string
	Syntax    *syntax.ImportItem
	Export    model.Export
}

func (s *ImportedTypeSymbol) Name() string               { return s.LocalName }
func (s *ImportedTypeSymbol) Kind() SymbolKind           { return KindImportedType }
func (s *ImportedTypeSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ImportedTypeSymbol) declaredSymbol()            {}

// ImportedVariableSymbol is an imported variable export.
type ImportedVariableSymbol struct {
	LocalName string
	Syntax    *syntax.ImportItem
	Export    model.Export
}

func (s *ImportedVariableSymbol) Name() string               { return s.LocalName }
func (s *ImportedVariableSymbol) Kind() SymbolKind           { return KindImportedVariable }
func (s *ImportedVariableSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ImportedVariableSymbol) declaredSymbol()            {}

// ImportedFunctionSymbol is an imported function export.
type ImportedFunctionSymbol struct {
	LocalName string
	Syntax    *syntax.ImportItem
	Export    model.Export
}

func (s *ImportedFunctionSymbol) Name() string               { return s.LocalName }
func (s *ImportedFunctionSymbol) Kind() SymbolKind           { return KindImportedFunction }
func (s *ImportedFunctionSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ImportedFunctionSymbol) declaredSymbol()            {}

// WildcardImportSymbol binds all of a referenced model's exports behind a
// single name.
type WildcardImportSymbol struct {
	Syntax *syntax.ImportDecl
	Model  model.SemanticModel
}

func (s *WildcardImportSymbol) Name() string               { return s.Syntax.Wildcard.Alias }
func (s *WildcardImportSymbol) Kind() SymbolKind           { return KindWildcardImport }
func (s *WildcardImportSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *WildcardImportSymbol) declaredSymbol()            {}

// ErroredImportSymbol is the placeholder bound to an import name that failed
// to resolve. Diagnostics may be empty: when one failure affects a whole
// import statement only the first symbol carries it.
type ErroredImportSymbol struct {
	LocalName   string
	Syntax      syntax.Node
	Diagnostics hcl.Diagnostics
}

func (s *ErroredImportSymbol) Name() string               { return s.LocalName }
func (s *ErroredImportSymbol) Kind() SymbolKind           { return KindErroredImport }
func (s *ErroredImportSymbol) DeclaringNode() syntax.Node { return s.Syntax }
func (s *ErroredImportSymbol) declaredSymbol()            {}
