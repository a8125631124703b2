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

// Package syntax defines the Strata syntax tree consumed by the semantic
// passes. Trees are produced by the parser (which lives elsewhere in the
// toolchain) and are immutable for the duration of a pass.
package syntax

import (
	"github.com/hashicorp/hcl/v2"
)

// Node is implemented by every node in a Strata syntax tree.
type Node interface {
	// Range returns the source range of the node.
	Range() hcl.Range
}

// Decl is implemented by every declaration node.
type Decl interface {
	Node

	declNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node

	exprNode()
}

// FileKind describes the kind of a Strata source file.
type FileKind int

const (
	// TemplateFile is an ordinary template source file.
	TemplateFile FileKind = iota
	// ParametersFile is a parameters source file that assigns values to a template's parameters.
	ParametersFile
)

func (k FileKind) String() string {
	switch k {
	case TemplateFile:
		return "template"
	case ParametersFile:
		return "parameters"
	default:
		return "unknown"
	}
}

// File is the root node of a parsed source file.
type File struct {
	// Name is the source file's name, as recorded in diagnostic ranges.
	Name string
	// Kind is the kind of the source file.
	Kind FileKind
	// Decls are the file's top-level declarations, in source order.
	Decls []Decl
	// SrcRange is the extent of the file.
	SrcRange hcl.Range
}

// Range returns the extent of the file.
func (f *File) Range() hcl.Range {
	return f.SrcRange
}
