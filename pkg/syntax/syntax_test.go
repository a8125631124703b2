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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func stringLit(s string) *LiteralValueExpr {
	return &LiteralValueExpr{Value: cty.StringVal(s)}
}

func TestStaticString(t *testing.T) {
	text, ok := StaticString(stringLit("kubernetes@1.2.3"))
	assert.True(t, ok)
	assert.Equal(t, "kubernetes@1.2.3", text)

	// Templates without interpolation are equivalent to their joined parts.
	text, ok = StaticString(&TemplateExpr{Parts: []Expr{stringLit("kubernetes@"), stringLit("1.2.3")}})
	assert.True(t, ok)
	assert.Equal(t, "kubernetes@1.2.3", text)

	_, ok = StaticString(&TemplateExpr{Parts: []Expr{stringLit("kubernetes@"), &ScopeTraversalExpr{RootName: "version"}}})
	assert.False(t, ok)

	_, ok = StaticString(&LiteralValueExpr{Value: cty.NumberIntVal(3)})
	assert.False(t, ok)

	_, ok = StaticString(&ScopeTraversalExpr{RootName: "spec"})
	assert.False(t, ok)

	_, ok = StaticString(nil)
	assert.False(t, ok)
}

func TestChildrenCoversNestedDeclarations(t *testing.T) {
	inner := &ResourceDecl{Name: "inner", Value: &ObjectConsExpr{}}
	body := &ObjectConsExpr{
		Items: []ObjectConsItem{{Key: stringLit("name"), Value: stringLit("store")}},
		Decls: []Decl{inner},
	}

	children := Children(body)
	require.Len(t, children, 3)
	assert.Same(t, inner, children[2].(*ResourceDecl))
}

func TestChildrenOmitsNilSlots(t *testing.T) {
	decl := &ParameterDecl{Name: "env", Type: &ScopeTraversalExpr{RootName: "string"}}
	children := Children(decl)
	require.Len(t, children, 1)

	provider := &ProviderDecl{}
	assert.Empty(t, Children(provider))
}

func TestImportItemLocalName(t *testing.T) {
	assert.Equal(t, "storage", (&ImportItem{OriginalName: "storage"}).LocalName())
	assert.Equal(t, "st", (&ImportItem{OriginalName: "storage", Alias: "st"}).LocalName())
}
