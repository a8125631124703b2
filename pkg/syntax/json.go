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
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// DecodeFile decodes the JSON form of a syntax tree as emitted by the Strata
// parser's `--emit-ast` mode.
func DecodeFile(r io.Reader) (*File, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading syntax tree")
	}

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding syntax tree")
	}

	file := &File{
		Name:     raw.Name,
		SrcRange: raw.Range,
	}
	switch raw.Kind {
	case "", "template":
		file.Kind = TemplateFile
	case "parameters":
		file.Kind = ParametersFile
	default:
		return nil, errors.Errorf("unknown file kind %q", raw.Kind)
	}

	for i, d := range raw.Decls {
		decl, err := decodeDecl(d)
		if err != nil {
			return nil, errors.Wrapf(err, "declaration %d", i)
		}
		file.Decls = append(file.Decls, decl)
	}
	return file, nil
}

type rawFile struct {
	Name  string     `json:"name"`
	Kind  string     `json:"kind"`
	Range hcl.Range  `json:"range"`
	Decls []*rawNode `json:"decls"`
}

// rawNode is the superset of the per-kind JSON shapes. Which fields are
// meaningful depends on the node's kind.
type rawNode struct {
	Kind string    `json:"kind"`
	Rng  hcl.Range `json:"range"`

	Name      string    `json:"name"`
	NameRange hcl.Range `json:"nameRange"`

	Token       string    `json:"token"`
	TokenRange  hcl.Range `json:"tokenRange"`
	Existing    bool      `json:"existing"`
	Source      string    `json:"source"`
	SourceRange hcl.Range `json:"sourceRange"`

	Value      *rawNode `json:"value"`
	Type       *rawNode `json:"type"`
	Default    *rawNode `json:"default"`
	Body       *rawNode `json:"body"`
	Condition  *rawNode `json:"condition"`
	Collection *rawNode `json:"collection"`
	ReturnType *rawNode `json:"returnType"`
	Object     *rawNode `json:"object"`
	Key        *rawNode `json:"key"`

	ValueVar  string    `json:"valueVar"`
	KeyVar    string    `json:"keyVar"`
	VarsRange hcl.Range `json:"varsRange"`

	Literal json.RawMessage  `json:"literal"`
	Parts   []*rawNode       `json:"parts"`
	Entries []rawObjectEntry `json:"entries"`
	Decls   []*rawNode       `json:"decls"`
	Exprs   []*rawNode       `json:"exprs"`
	Args    []*rawNode       `json:"args"`
	Params  []rawLambdaParam `json:"params"`
	Root    string           `json:"root"`

	Spec       *rawNode           `json:"spec"`
	With       *rawNode           `json:"with"`
	Alias      string             `json:"alias"`
	AliasRange hcl.Range          `json:"aliasRange"`
	From       *rawNode           `json:"from"`
	Wildcard   *rawImportWildcard `json:"wildcard"`
	Symbols    []rawImportItem    `json:"symbols"`
}

type rawObjectEntry struct {
	Key   *rawNode `json:"key"`
	Value *rawNode `json:"value"`
}

type rawLambdaParam struct {
	Name      string    `json:"name"`
	NameRange hcl.Range `json:"nameRange"`
	Type      *rawNode  `json:"type"`
}

type rawImportWildcard struct {
	Alias      string    `json:"alias"`
	AliasRange hcl.Range `json:"aliasRange"`
}

type rawImportItem struct {
	Name       string    `json:"name"`
	NameRange  hcl.Range `json:"nameRange"`
	Alias      string    `json:"alias"`
	AliasRange hcl.Range `json:"aliasRange"`
	Range      hcl.Range `json:"range"`
}

func decodeDecl(raw *rawNode) (Decl, error) {
	switch raw.Kind {
	case "metadata":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &MetadataDecl{Name: raw.Name, NameRange: raw.NameRange, Value: value, DeclRange: raw.Rng}, nil
	case "param":
		typ, err := decodeOptionalExpr(raw.Type)
		if err != nil {
			return nil, err
		}
		def, err := decodeOptionalExpr(raw.Default)
		if err != nil {
			return nil, err
		}
		return &ParameterDecl{Name: raw.Name, NameRange: raw.NameRange, Type: typ, Default: def, DeclRange: raw.Rng}, nil
	case "type":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &TypeAliasDecl{Name: raw.Name, NameRange: raw.NameRange, Value: value, DeclRange: raw.Rng}, nil
	case "var":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &VariableDecl{Name: raw.Name, NameRange: raw.NameRange, Value: value, DeclRange: raw.Rng}, nil
	case "func":
		body, err := decodeOptionalExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		return &FunctionDecl{Name: raw.Name, NameRange: raw.NameRange, Body: body, DeclRange: raw.Rng}, nil
	case "resource":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &ResourceDecl{
			Name: raw.Name, NameRange: raw.NameRange,
			Token: raw.Token, TokenRange: raw.TokenRange,
			Existing: raw.Existing, Value: value, DeclRange: raw.Rng,
		}, nil
	case "module":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &ModuleDecl{
			Name: raw.Name, NameRange: raw.NameRange,
			Source: raw.Source, SourceRange: raw.SourceRange,
			Value: value, DeclRange: raw.Rng,
		}, nil
	case "test":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &TestDecl{
			Name: raw.Name, NameRange: raw.NameRange,
			Source: raw.Source, SourceRange: raw.SourceRange,
			Value: value, DeclRange: raw.Rng,
		}, nil
	case "output":
		typ, err := decodeOptionalExpr(raw.Type)
		if err != nil {
			return nil, err
		}
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &OutputDecl{Name: raw.Name, NameRange: raw.NameRange, Type: typ, Value: value, DeclRange: raw.Rng}, nil
	case "assert":
		cond, err := decodeOptionalExpr(raw.Condition)
		if err != nil {
			return nil, err
		}
		return &AssertDecl{Name: raw.Name, NameRange: raw.NameRange, Condition: cond, DeclRange: raw.Rng}, nil
	case "paramAssignment":
		value, err := decodeOptionalExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &ParameterAssignment{Name: raw.Name, NameRange: raw.NameRange, Value: value, DeclRange: raw.Rng}, nil
	case "provider":
		spec, err := decodeOptionalExpr(raw.Spec)
		if err != nil {
			return nil, err
		}
		with, err := decodeOptionalExpr(raw.With)
		if err != nil {
			return nil, err
		}
		return &ProviderDecl{
			Spec: spec, Alias: raw.Alias, AliasRange: raw.AliasRange,
			TypesPath: with, DeclRange: raw.Rng,
		}, nil
	case "import":
		source, err := decodeOptionalExpr(raw.From)
		if err != nil {
			return nil, err
		}
		decl := &ImportDecl{Source: source, DeclRange: raw.Rng}
		if raw.Wildcard != nil {
			decl.Wildcard = &ImportWildcard{Alias: raw.Wildcard.Alias, AliasRange: raw.Wildcard.AliasRange}
		}
		for _, s := range raw.Symbols {
			decl.Items = append(decl.Items, &ImportItem{
				OriginalName: s.Name, NameRange: s.NameRange,
				Alias: s.Alias, AliasRange: s.AliasRange,
				ItemRange: s.Range,
			})
		}
		return decl, nil
	default:
		return nil, errors.Errorf("unknown declaration kind %q", raw.Kind)
	}
}

func decodeOptionalExpr(raw *rawNode) (Expr, error) {
	if raw == nil {
		return nil, nil
	}
	return decodeExpr(raw)
}

func decodeExpr(raw *rawNode) (Expr, error) {
	switch raw.Kind {
	case "literal":
		typ, err := ctyjson.ImpliedType([]byte(raw.Literal))
		if err != nil {
			return nil, errors.Wrap(err, "literal value")
		}
		value, err := ctyjson.Unmarshal([]byte(raw.Literal), typ)
		if err != nil {
			return nil, errors.Wrap(err, "literal value")
		}
		return &LiteralValueExpr{Value: value, SrcRange: raw.Rng}, nil
	case "template":
		expr := &TemplateExpr{SrcRange: raw.Rng}
		for _, p := range raw.Parts {
			part, err := decodeExpr(p)
			if err != nil {
				return nil, err
			}
			expr.Parts = append(expr.Parts, part)
		}
		return expr, nil
	case "object":
		expr := &ObjectConsExpr{SrcRange: raw.Rng}
		for _, e := range raw.Entries {
			key, err := decodeOptionalExpr(e.Key)
			if err != nil {
				return nil, err
			}
			value, err := decodeOptionalExpr(e.Value)
			if err != nil {
				return nil, err
			}
			expr.Items = append(expr.Items, ObjectConsItem{Key: key, Value: value})
		}
		for _, d := range raw.Decls {
			decl, err := decodeDecl(d)
			if err != nil {
				return nil, err
			}
			expr.Decls = append(expr.Decls, decl)
		}
		return expr, nil
	case "tuple":
		expr := &TupleConsExpr{SrcRange: raw.Rng}
		for _, e := range raw.Exprs {
			item, err := decodeExpr(e)
			if err != nil {
				return nil, err
			}
			expr.Exprs = append(expr.Exprs, item)
		}
		return expr, nil
	case "for":
		collection, err := decodeOptionalExpr(raw.Collection)
		if err != nil {
			return nil, err
		}
		body, err := decodeOptionalExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		return &ForExpr{
			ValueVar: raw.ValueVar, KeyVar: raw.KeyVar, VarsRange: raw.VarsRange,
			Collection: collection, Body: body, SrcRange: raw.Rng,
		}, nil
	case "if":
		cond, err := decodeOptionalExpr(raw.Condition)
		if err != nil {
			return nil, err
		}
		body, err := decodeOptionalExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		return &IfExpr{Condition: cond, Body: body, SrcRange: raw.Rng}, nil
	case "lambda", "typedLambda":
		var params []*LambdaParam
		for _, p := range raw.Params {
			typ, err := decodeOptionalExpr(p.Type)
			if err != nil {
				return nil, err
			}
			params = append(params, &LambdaParam{Name: p.Name, NameRange: p.NameRange, Type: typ})
		}
		body, err := decodeOptionalExpr(raw.Body)
		if err != nil {
			return nil, err
		}
		if raw.Kind == "lambda" {
			return &LambdaExpr{Params: params, Body: body, SrcRange: raw.Rng}, nil
		}
		returnType, err := decodeOptionalExpr(raw.ReturnType)
		if err != nil {
			return nil, err
		}
		return &TypedLambdaExpr{Params: params, ReturnType: returnType, Body: body, SrcRange: raw.Rng}, nil
	case "call":
		expr := &FunctionCallExpr{Name: raw.Name, NameRange: raw.NameRange, SrcRange: raw.Rng}
		for _, a := range raw.Args {
			arg, err := decodeExpr(a)
			if err != nil {
				return nil, err
			}
			expr.Args = append(expr.Args, arg)
		}
		return expr, nil
	case "ref":
		return &ScopeTraversalExpr{RootName: raw.Root, SrcRange: raw.Rng}, nil
	case "propertyAccess":
		object, err := decodeOptionalExpr(raw.Object)
		if err != nil {
			return nil, err
		}
		return &PropertyAccessExpr{Object: object, Name: raw.Name, SrcRange: raw.Rng}, nil
	case "index":
		collection, err := decodeOptionalExpr(raw.Collection)
		if err != nil {
			return nil, err
		}
		key, err := decodeOptionalExpr(raw.Key)
		if err != nil {
			return nil, err
		}
		return &IndexExpr{Collection: collection, Key: key, SrcRange: raw.Rng}, nil
	default:
		return nil, errors.Errorf("unknown expression kind %q", raw.Kind)
	}
}
