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
	"github.com/strata-dev/strata/pkg/util/contract"
)

// Children returns the immediate children of the given node in source order.
// Nil child slots are omitted.
func Children(n Node) []Node {
	var children []Node
	add := func(nodes ...Node) {
		for _, node := range nodes {
			if node != nil {
				children = append(children, node)
			}
		}
	}

	switch n := n.(type) {
	case *File:
		for _, d := range n.Decls {
			add(d)
		}
	case *MetadataDecl:
		add(n.Value)
	case *ParameterDecl:
		add(n.Type, n.Default)
	case *TypeAliasDecl:
		add(n.Value)
	case *VariableDecl:
		add(n.Value)
	case *FunctionDecl:
		add(n.Body)
	case *ResourceDecl:
		add(n.Value)
	case *ModuleDecl:
		add(n.Value)
	case *TestDecl:
		add(n.Value)
	case *OutputDecl:
		add(n.Type, n.Value)
	case *AssertDecl:
		add(n.Condition)
	case *ParameterAssignment:
		add(n.Value)
	case *ProviderDecl:
		add(n.Spec, n.TypesPath)
	case *ImportDecl:
		add(n.Source)
		if n.Wildcard != nil {
			add(n.Wildcard)
		}
		for _, item := range n.Items {
			add(item)
		}
	case *ImportWildcard, *ImportItem, *LambdaParam:
		// leaves
	case *LiteralValueExpr, *ScopeTraversalExpr:
		// leaves
	case *TemplateExpr:
		for _, part := range n.Parts {
			add(part)
		}
	case *ObjectConsExpr:
		for _, item := range n.Items {
			add(item.Key, item.Value)
		}
		for _, d := range n.Decls {
			add(d)
		}
	case *TupleConsExpr:
		for _, e := range n.Exprs {
			add(e)
		}
	case *ForExpr:
		add(n.Collection, n.Body)
	case *IfExpr:
		add(n.Condition, n.Body)
	case *LambdaExpr:
		for _, p := range n.Params {
			add(p, p.Type)
		}
		add(n.Body)
	case *TypedLambdaExpr:
		for _, p := range n.Params {
			add(p, p.Type)
		}
		add(n.ReturnType, n.Body)
	case *FunctionCallExpr:
		for _, a := range n.Args {
			add(a)
		}
	case *PropertyAccessExpr:
		add(n.Object)
	case *IndexExpr:
		add(n.Collection, n.Key)
	default:
		contract.Failf("unexpected syntax node of type %T (%v)", n, n.Range())
	}
	return children
}
