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
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-dev/strata/pkg/features"
	"github.com/strata-dev/strata/pkg/model"
	"github.com/strata-dev/strata/pkg/syntax"
)

type fakeModel struct {
	exports         map[string]model.Export
	hasErrors       bool
	templateDerived bool
}

func (m *fakeModel) Exports() map[string]model.Export { return m.exports }
func (m *fakeModel) HasErrors() bool                  { return m.hasErrors }
func (m *fakeModel) TemplateDerived() bool            { return m.templateDerived }

type fakeModelLookup struct {
	model model.SemanticModel
	diag  *hcl.Diagnostic
}

func (l *fakeModelLookup) ResolveModel(decl *syntax.ImportDecl) (model.SemanticModel, *hcl.Diagnostic) {
	return l.model, l.diag
}

func importItem(name, alias string) *syntax.ImportItem {
	return &syntax.ImportItem{
		OriginalName: name,
		NameRange:    rangeAt(1),
		Alias:        alias,
		AliasRange:   rangeAt(1),
		ItemRange:    rangeAt(1),
	}
}

func importOf(items ...*syntax.ImportItem) *syntax.ImportDecl {
	return &syntax.ImportDecl{Source: strLit("./exports.strata"), Items: items, DeclRange: rangeAt(1)}
}

func wildcardImport(alias string) *syntax.ImportDecl {
	return &syntax.ImportDecl{
		Source:    strLit("./exports.strata"),
		Wildcard:  &syntax.ImportWildcard{Alias: alias, AliasRange: rangeAt(1)},
		DeclRange: rangeAt(1),
	}
}

func bindImportFile(t *testing.T, decl *syntax.ImportDecl, opts Options) []DeclaredSymbol {
	t.Helper()
	scope := BindFile(newFile(decl), opts)
	require.NotNil(t, scope)
	return scope.Locals()
}

func TestImportsDisabled(t *testing.T) {
	decl := importOf(importItem("storage", ""), importItem("network", ""))

	locals := bindImportFile(t, decl, Options{})

	require.Len(t, locals, 2)
	first := locals[0].(*ErroredImportSymbol)
	second := locals[1].(*ErroredImportSymbol)

	assert.Equal(t, "storage", first.Name())
	require.Len(t, first.Diagnostics, 1)
	assert.Equal(t, "compile-time imports are disabled", first.Diagnostics[0].Summary)

	// Only the first placeholder carries the statement-level failure.
	assert.Equal(t, "network", second.Name())
	assert.Empty(t, second.Diagnostics)
}

func TestImportLookupFailure(t *testing.T) {
	failure := &hcl.Diagnostic{Severity: hcl.DiagError, Summary: "artifact not found"}
	decl := wildcardImport("exports")
	decl.Items = []*syntax.ImportItem{importItem("storage", "")}

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{diag: failure},
	})

	require.Len(t, locals, 2)
	wildcard := locals[0].(*ErroredImportSymbol)
	item := locals[1].(*ErroredImportSymbol)

	assert.Equal(t, "exports", wildcard.Name())
	require.Len(t, wildcard.Diagnostics, 1)
	assert.Same(t, failure, wildcard.Diagnostics[0])
	assert.Empty(t, item.Diagnostics)
}

func TestImportReferencedFileHasErrors(t *testing.T) {
	cases := []struct {
		name            string
		templateDerived bool
		summary         string
	}{
		{"template", true, "the referenced template has errors"},
		{"module", false, "the referenced module has errors"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			referenced := &fakeModel{hasErrors: true, templateDerived: c.templateDerived}
			decl := importOf(importItem("storage", ""))

			locals := bindImportFile(t, decl, Options{
				Features: features.All,
				Models:   &fakeModelLookup{model: referenced},
			})

			require.Len(t, locals, 1)
			errored := locals[0].(*ErroredImportSymbol)
			require.Len(t, errored.Diagnostics, 1)
			assert.Equal(t, c.summary, errored.Diagnostics[0].Summary)
		})
	}
}

func TestImportBindsExportKinds(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"tagType": {Kind: model.TypeExport},
		"region":  {Kind: model.VariableExport},
		"double":  {Kind: model.FunctionExport},
	}}
	decl := importOf(
		importItem("tagType", ""),
		importItem("region", "location"),
		importItem("double", ""),
	)

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 3)
	assert.Equal(t, KindImportedType, locals[0].Kind())
	assert.Equal(t, "tagType", locals[0].Name())
	assert.Equal(t, KindImportedVariable, locals[1].Kind())
	assert.Equal(t, "location", locals[1].Name())
	assert.Equal(t, KindImportedFunction, locals[2].Kind())
}

func TestImportedFunctionsRequireFeature(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"double": {Kind: model.FunctionExport},
	}}
	flags := &features.Static{CompileTimeImportsEnabled: true}
	decl := importOf(importItem("double", ""))

	locals := bindImportFile(t, decl, Options{
		Features: flags,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 1)
	errored := locals[0].(*ErroredImportSymbol)
	require.Len(t, errored.Diagnostics, 1)
	assert.Equal(t, `cannot import "double" because user-defined functions are disabled`,
		errored.Diagnostics[0].Summary)
}

func TestImportUnknownNameSuggestsNearest(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"storage": {Kind: model.VariableExport},
		"network": {Kind: model.VariableExport},
	}}
	decl := importOf(importItem("stroage", ""))

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 1)
	errored := locals[0].(*ErroredImportSymbol)
	require.Len(t, errored.Diagnostics, 1)
	assert.Equal(t, `"stroage" is not exported by the referenced file`, errored.Diagnostics[0].Summary)
	assert.Equal(t, `Did you mean "storage"?`, errored.Diagnostics[0].Detail)
}

func TestImportUnknownNameNoCloseMatch(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"network": {Kind: model.VariableExport},
	}}
	decl := importOf(importItem("zzz", ""))

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 1)
	errored := locals[0].(*ErroredImportSymbol)
	require.Len(t, errored.Diagnostics, 1)
	assert.Empty(t, errored.Diagnostics[0].Detail)
}

func TestImportErroredExport(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"broken": {Kind: model.ErrorExport, Error: "recursive type definition"},
	}}
	decl := importOf(importItem("broken", ""))

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 1)
	errored := locals[0].(*ErroredImportSymbol)
	require.Len(t, errored.Diagnostics, 1)
	assert.Equal(t, `the export "broken" has errors`, errored.Diagnostics[0].Summary)
	assert.Equal(t, "recursive type definition", errored.Diagnostics[0].Detail)
}

func TestImportWildcard(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"storage": {Kind: model.VariableExport},
	}}
	decl := wildcardImport("exports")

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 1)
	wildcard := locals[0].(*WildcardImportSymbol)
	assert.Equal(t, "exports", wildcard.Name())
	assert.Same(t, referenced, wildcard.Model.(*fakeModel))
}

func TestImportSkipsUnextractableItems(t *testing.T) {
	referenced := &fakeModel{exports: map[string]model.Export{
		"storage": {Kind: model.VariableExport},
	}}
	unextractable := &syntax.ImportItem{OriginalName: "", ItemRange: rangeAt(1)}
	decl := importOf(unextractable, importItem("storage", ""))

	locals := bindImportFile(t, decl, Options{
		Features: features.All,
		Models:   &fakeModelLookup{model: referenced},
	})

	require.Len(t, locals, 1)
	assert.Equal(t, "storage", locals[0].Name())

	// The same skip applies when the whole statement fails.
	locals = bindImportFile(t, importOf(unextractable, importItem("storage", "")), Options{})
	require.Len(t, locals, 1)
	errored := locals[0].(*ErroredImportSymbol)
	assert.Equal(t, "storage", errored.Name())
	require.Len(t, errored.Diagnostics, 1)
}
