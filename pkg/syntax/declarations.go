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

package syntax

import (
	"github.com/hashicorp/hcl/v2"
)

// MetadataDecl is a `metadata <name> = <value>` declaration.
type MetadataDecl struct {
	Name      string
	NameRange hcl.Range
	Value     Expr
	DeclRange hcl.Range
}

func (d *MetadataDecl) Range() hcl.Range { return d.DeclRange }
func (d *MetadataDecl) declNode()        {}

// ParameterDecl is a `param <name> <type> [= <default>]` declaration.
type ParameterDecl struct {
	Name      string
	NameRange hcl.Range
	Type      Expr
	Default   Expr
	DeclRange hcl.Range
}

func (d *ParameterDecl) Range() hcl.Range { return d.DeclRange }
func (d *ParameterDecl) declNode()        {}

// TypeAliasDecl is a `type <name> = <type expression>` declaration.
type TypeAliasDecl struct {
	Name      string
	NameRange hcl.Range
	Value     Expr
	DeclRange hcl.Range
}

func (d *TypeAliasDecl) Range() hcl.Range { return d.DeclRange }
func (d *TypeAliasDecl) declNode()        {}

// VariableDecl is a `var <name> = <value>` declaration.
type VariableDecl struct {
	Name      string
	NameRange hcl.Range
	Value     Expr
	DeclRange hcl.Range
}

func (d *VariableDecl) Range() hcl.Range { return d.DeclRange }
func (d *VariableDecl) declNode()        {}

// FunctionDecl is a `func <name> = <lambda>` declaration. The body is
// ordinarily a typed lambda expression.
type FunctionDecl struct {
	Name      string
	NameRange hcl.Range
	Body      Expr
	DeclRange hcl.Range
}

func (d *FunctionDecl) Range() hcl.Range { return d.DeclRange }
func (d *FunctionDecl) declNode()        {}

// ResourceDecl is a `resource <name> '<token>' = <value>` declaration. The
// value may be an object, a conditional, or a loop over either.
type ResourceDecl struct {
	Name       string
	NameRange  hcl.Range
	Token      string
	TokenRange hcl.Range
	// Existing marks a reference to an already-deployed resource.
	Existing  bool
	Value     Expr
	DeclRange hcl.Range
}

func (d *ResourceDecl) Range() hcl.Range { return d.DeclRange }
func (d *ResourceDecl) declNode()        {}

// ModuleDecl is a `module <name> '<source>' = <value>` declaration.
type ModuleDecl struct {
	Name        string
	NameRange   hcl.Range
	Source      string
	SourceRange hcl.Range
	Value       Expr
	DeclRange   hcl.Range
}

func (d *ModuleDecl) Range() hcl.Range { return d.DeclRange }
func (d *ModuleDecl) declNode()        {}

// TestDecl is a `test <name> '<source>' = <value>` declaration.
type TestDecl struct {
	Name        string
	NameRange   hcl.Range
	Source      string
	SourceRange hcl.Range
	Value       Expr
	DeclRange   hcl.Range
}

func (d *TestDecl) Range() hcl.Range { return d.DeclRange }
func (d *TestDecl) declNode()        {}

// OutputDecl is an `output <name> <type> = <value>` declaration.
type OutputDecl struct {
	Name      string
	NameRange hcl.Range
	Type      Expr
	Value     Expr
	DeclRange hcl.Range
}

func (d *OutputDecl) Range() hcl.Range { return d.DeclRange }
func (d *OutputDecl) declNode()        {}

// AssertDecl is an `assert <name> = <condition>` declaration.
type AssertDecl struct {
	Name      string
	NameRange hcl.Range
	Condition Expr
	DeclRange hcl.Range
}

func (d *AssertDecl) Range() hcl.Range { return d.DeclRange }
func (d *AssertDecl) declNode()        {}

// ParameterAssignment is a `param <name> = <value>` statement in a
// parameters file.
type ParameterAssignment struct {
	Name      string
	NameRange hcl.Range
	Value     Expr
	DeclRange hcl.Range
}

func (d *ParameterAssignment) Range() hcl.Range { return d.DeclRange }
func (d *ParameterAssignment) declNode()        {}

// ProviderDecl is a `provider '<name>@<version>' [with <path>] [as <alias>]`
// declaration.
type ProviderDecl struct {
	// Spec is the provider specification string. A nil Spec means the parser
	// found no specification at all.
	Spec Expr
	// Alias is the local name introduced by an `as` clause, if present.
	Alias      string
	AliasRange hcl.Range
	// TypesPath is an explicit types-file path, if present.
	TypesPath Expr
	DeclRange hcl.Range
}

func (d *ProviderDecl) Range() hcl.Range { return d.DeclRange }
func (d *ProviderDecl) declNode()        {}

// ImportDecl is a compile-time import: either
// `import * as <alias> from '<source>'` or
// `import {a, b as c} from '<source>'`.
type ImportDecl struct {
	Source    Expr
	Wildcard  *ImportWildcard
	Items     []*ImportItem
	DeclRange hcl.Range
}

func (d *ImportDecl) Range() hcl.Range { return d.DeclRange }
func (d *ImportDecl) declNode()        {}

// ImportWildcard is the `* as <alias>` form of an import declaration.
type ImportWildcard struct {
	Alias      string
	AliasRange hcl.Range
}

func (w *ImportWildcard) Range() hcl.Range { return w.AliasRange }

// ImportItem is a single name in an explicit import list.
type ImportItem struct {
	// OriginalName is the exported name being imported. It is empty when the
	// parser could not statically extract the name; the parser reports its own
	// diagnostic for that case.
	OriginalName string
	NameRange    hcl.Range
	// Alias is the local name introduced by an `as` clause; when empty the
	// original name is bound directly.
	Alias      string
	AliasRange hcl.Range
	ItemRange  hcl.Range
}

func (i *ImportItem) Range() hcl.Range { return i.ItemRange }

// LocalName returns the name an import item binds in the importing file.
func (i *ImportItem) LocalName() string {
	if i.Alias != "" {
		return i.Alias
	}
	return i.OriginalName
}
