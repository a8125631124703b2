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
	"github.com/zclconf/go-cty/cty"
)

// LiteralValueExpr is a literal value: a string, number, boolean, or null.
type LiteralValueExpr struct {
	Value    cty.Value
	SrcRange hcl.Range
}

func (e *LiteralValueExpr) Range() hcl.Range { return e.SrcRange }
func (e *LiteralValueExpr) exprNode()        {}

// TemplateExpr is a string with interpolated parts. A template whose single
// part is a string literal is equivalent to that literal.
type TemplateExpr struct {
	Parts    []Expr
	SrcRange hcl.Range
}

func (e *TemplateExpr) Range() hcl.Range { return e.SrcRange }
func (e *TemplateExpr) exprNode()        {}

// ObjectConsItem is a single key/value pair in an object constructor.
type ObjectConsItem struct {
	Key   Expr
	Value Expr
}

// ObjectConsExpr is an object constructor. Resource and module bodies are
// object constructors whose Decls may contain nested resource declarations.
type ObjectConsExpr struct {
	Items    []ObjectConsItem
	Decls    []Decl
	SrcRange hcl.Range
}

func (e *ObjectConsExpr) Range() hcl.Range { return e.SrcRange }
func (e *ObjectConsExpr) exprNode()        {}

// TupleConsExpr is an array constructor.
type TupleConsExpr struct {
	Exprs    []Expr
	SrcRange hcl.Range
}

func (e *TupleConsExpr) Range() hcl.Range { return e.SrcRange }
func (e *TupleConsExpr) exprNode()        {}

// ForExpr is a loop expression: `[for <item>[, <index>] in <collection>: <body>]`.
// The body governs the loop's local names.
type ForExpr struct {
	// ValueVar is the name of the loop item variable.
	ValueVar string
	// KeyVar is the name of the loop index variable; empty when the loop does
	// not declare one.
	KeyVar     string
	VarsRange  hcl.Range
	Collection Expr
	Body       Expr
	SrcRange   hcl.Range
}

func (e *ForExpr) Range() hcl.Range { return e.SrcRange }
func (e *ForExpr) exprNode()        {}

// IfExpr is a conditional body: `if (<condition>) <body>`. It appears as the
// value of conditionally deployed resources and modules.
type IfExpr struct {
	Condition Expr
	Body      Expr
	SrcRange  hcl.Range
}

func (e *IfExpr) Range() hcl.Range { return e.SrcRange }
func (e *IfExpr) exprNode()        {}

// LambdaParam is a single parameter of a lambda expression. Type is nil for
// parameters of untyped lambdas.
type LambdaParam struct {
	Name      string
	NameRange hcl.Range
	Type      Expr
}

func (p *LambdaParam) Range() hcl.Range { return p.NameRange }

// LambdaExpr is an untyped lambda: `(<params>) => <body>`.
type LambdaExpr struct {
	Params   []*LambdaParam
	Body     Expr
	SrcRange hcl.Range
}

func (e *LambdaExpr) Range() hcl.Range { return e.SrcRange }
func (e *LambdaExpr) exprNode()        {}

// TypedLambdaExpr is a fully typed lambda: `(<params with types>) <return type> => <body>`.
// Typed lambdas appear as the bodies of function declarations.
type TypedLambdaExpr struct {
	Params     []*LambdaParam
	ReturnType Expr
	Body       Expr
	SrcRange   hcl.Range
}

func (e *TypedLambdaExpr) Range() hcl.Range { return e.SrcRange }
func (e *TypedLambdaExpr) exprNode()        {}

// FunctionCallExpr is a call to a named function.
type FunctionCallExpr struct {
	Name      string
	NameRange hcl.Range
	Args      []Expr
	SrcRange  hcl.Range
}

func (e *FunctionCallExpr) Range() hcl.Range { return e.SrcRange }
func (e *FunctionCallExpr) exprNode()        {}

// ScopeTraversalExpr is a reference to a name in scope.
type ScopeTraversalExpr struct {
	RootName string
	SrcRange hcl.Range
}

func (e *ScopeTraversalExpr) Range() hcl.Range { return e.SrcRange }
func (e *ScopeTraversalExpr) exprNode()        {}

// PropertyAccessExpr is a dotted property access.
type PropertyAccessExpr struct {
	Object   Expr
	Name     string
	SrcRange hcl.Range
}

func (e *PropertyAccessExpr) Range() hcl.Range { return e.SrcRange }
func (e *PropertyAccessExpr) exprNode()        {}

// IndexExpr is a bracketed index access.
type IndexExpr struct {
	Collection Expr
	Key        Expr
	SrcRange   hcl.Range
}

func (e *IndexExpr) Range() hcl.Range { return e.SrcRange }
func (e *IndexExpr) exprNode()        {}

// StaticString returns the static text of an expression if it is a string
// literal or a template with no interpolated parts.
func StaticString(e Expr) (string, bool) {
	switch e := e.(type) {
	case *LiteralValueExpr:
		if e.Value.Type() == cty.String && !e.Value.IsNull() {
			return e.Value.AsString(), true
		}
	case *TemplateExpr:
		text := ""
		for _, part := range e.Parts {
			lit, ok := part.(*LiteralValueExpr)
			if !ok || lit.Value.Type() != cty.String || lit.Value.IsNull() {
				return "", false
			}
			text += lit.Value.AsString()
		}
		return text, true
	}
	return "", false
}
