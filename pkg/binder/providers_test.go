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

type fakeNamespaceProvider struct {
	typ  model.Type
	diag *hcl.Diagnostic

	descriptor model.ProviderDescriptor
	scope      model.DeploymentScope
	kind       syntax.FileKind
	called     bool
}

func (p *fakeNamespaceProvider) ResolveNamespace(descriptor model.ProviderDescriptor,
	scope model.DeploymentScope, flags features.Features, kind syntax.FileKind) (model.Type, *hcl.Diagnostic) {
	p.descriptor, p.scope, p.kind, p.called = descriptor, scope, kind, true
	return p.typ, p.diag
}

type fakeArtifactLookup struct {
	uri  string
	diag *hcl.Diagnostic
}

func (l *fakeArtifactLookup) ResolveTypesFileURI(decl *syntax.ProviderDecl) (string, *hcl.Diagnostic) {
	return l.uri, l.diag
}

func providerOf(spec syntax.Expr, alias string) *syntax.ProviderDecl {
	return &syntax.ProviderDecl{Spec: spec, Alias: alias, DeclRange: rangeAt(1)}
}

func bindProviderFile(t *testing.T, decl *syntax.ProviderDecl, opts Options) *ProviderNamespaceSymbol {
	t.Helper()
	scope := BindFile(newFile(decl), opts)
	require.Len(t, scope.Locals(), 1)
	return scope.Locals()[0].(*ProviderNamespaceSymbol)
}

func errorDiagnostics(t *testing.T, typ model.Type) hcl.Diagnostics {
	t.Helper()
	errType, ok := typ.(*model.ErrorType)
	require.True(t, ok, "expected an error type, got %T", typ)
	return errType.Diagnostics()
}

func TestProvidersDisabled(t *testing.T) {
	sym := bindProviderFile(t, providerOf(strLit("kubernetes@1.2.3"), "k8s"), Options{})

	assert.Equal(t, "k8s", sym.Name())
	diags := errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Equal(t, "providers are disabled", diags[0].Summary)
}

func TestProviderMissingSpecIsInert(t *testing.T) {
	sym := bindProviderFile(t, providerOf(nil, "k8s"), Options{Features: features.All})

	assert.Equal(t, "k8s", sym.Name())
	assert.Empty(t, errorDiagnostics(t, sym.Type))
}

func TestProviderSpecMustBeLiteral(t *testing.T) {
	interpolated := &syntax.TemplateExpr{
		Parts:    []syntax.Expr{strLit("kubernetes@"), ref("version")},
		SrcRange: rangeAt(1),
	}
	sym := bindProviderFile(t, providerOf(interpolated, ""), Options{Features: features.All})

	diags := errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Equal(t, "provider specification must be a compile-time string literal", diags[0].Summary)
}

func TestProviderSpecParsing(t *testing.T) {
	cases := []struct {
		text string
		ok   bool
		spec providerSpec
	}{
		{"kubernetes@1.2.3", true, providerSpec{name: "kubernetes", version: "1.2.3"}},
		{"az@1.0", true, providerSpec{name: "az", version: "1.0.0"}},
		{"example.com/org/kubernetes@1.2.3", true,
			providerSpec{name: "kubernetes", version: "1.2.3", registry: "example.com/org"}},
		{"kubernetes", false, providerSpec{}},
		{"@1.2.3", false, providerSpec{}},
		{"1kubernetes@1.2.3", false, providerSpec{}},
		{"kubernetes@", false, providerSpec{}},
		{"kubernetes@not-a-version", false, providerSpec{}},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			spec, ok := parseProviderSpec(c.text)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.spec, spec)
		})
	}
}

func TestProviderInvalidSpec(t *testing.T) {
	sym := bindProviderFile(t, providerOf(strLit("not a spec"), ""), Options{Features: features.All})

	diags := errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Equal(t, "invalid provider specification", diags[0].Summary)
}

func TestBuiltinProviderGates(t *testing.T) {
	flags := &features.Static{ExtensibilityEnabled: true}

	sym := bindProviderFile(t, providerOf(strLit("az@1.0"), ""), Options{Features: flags})
	assert.Equal(t, "az", sym.Name())
	diags := errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Equal(t, `unrecognized provider "az"`, diags[0].Summary)

	sym = bindProviderFile(t, providerOf(strLit("graph@2.0.0"), ""), Options{Features: flags})
	diags = errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Equal(t, `unrecognized provider "graph"`, diags[0].Summary)
}

func TestBuiltinGatesSkippedForRegistryQualifiedSpecs(t *testing.T) {
	flags := &features.Static{ExtensibilityEnabled: true}
	namespaces := &fakeNamespaceProvider{typ: &model.NamespaceType{Name: "az", Version: "1.0.0"}}

	sym := bindProviderFile(t, providerOf(strLit("example.com/az@1.0"), ""), Options{
		Features:   flags,
		Namespaces: namespaces,
	})

	assert.True(t, namespaces.called)
	assert.Equal(t, "example.com", namespaces.descriptor.Registry)
	assert.IsType(t, &model.NamespaceType{}, sym.Type)
}

func TestProviderTypesFileFailure(t *testing.T) {
	failure := &hcl.Diagnostic{Severity: hcl.DiagError, Summary: "types file not found"}
	decl := providerOf(strLit("kubernetes@1.2.3"), "")
	decl.TypesPath = strLit("./k8s-types.json")

	sym := bindProviderFile(t, decl, Options{
		Features:  features.All,
		Artifacts: &fakeArtifactLookup{diag: failure},
	})

	assert.Equal(t, "kubernetes", sym.Name())
	diags := errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Same(t, failure, diags[0])
}

func TestProviderResolution(t *testing.T) {
	namespaces := &fakeNamespaceProvider{typ: &model.NamespaceType{Name: "kubernetes", Version: "1.2.3"}}
	decl := providerOf(strLit("kubernetes@1.2.3"), "k8s")
	decl.TypesPath = strLit("./k8s-types.json")

	sym := bindProviderFile(t, decl, Options{
		Features:        features.All,
		Namespaces:      namespaces,
		Artifacts:       &fakeArtifactLookup{uri: "file:///cache/k8s-types.json"},
		DeploymentScope: model.SubscriptionScope,
	})

	assert.Equal(t, "k8s", sym.Name())
	assert.IsType(t, &model.NamespaceType{}, sym.Type)

	require.True(t, namespaces.called)
	assert.Equal(t, model.ProviderDescriptor{
		Name:         "kubernetes",
		Version:      "1.2.3",
		Alias:        "k8s",
		TypesBaseURI: "file:///cache/k8s-types.json",
	}, namespaces.descriptor)
	assert.Equal(t, model.SubscriptionScope, namespaces.scope)
	assert.Equal(t, syntax.TemplateFile, namespaces.kind)
}

func TestProviderResolutionFailureStaysBound(t *testing.T) {
	failure := &hcl.Diagnostic{Severity: hcl.DiagError, Summary: "provider not found in registry"}
	namespaces := &fakeNamespaceProvider{diag: failure}

	sym := bindProviderFile(t, providerOf(strLit("kubernetes@1.2.3"), ""), Options{
		Features:   features.All,
		Namespaces: namespaces,
	})

	assert.Equal(t, "kubernetes", sym.Name())
	diags := errorDiagnostics(t, sym.Type)
	require.Len(t, diags, 1)
	assert.Same(t, failure, diags[0])

	scope := BindFile(newFile(providerOf(strLit("kubernetes@1.2.3"), "")), Options{
		Features:   features.All,
		Namespaces: namespaces,
	})
	resolved, ok := scope.Lookup("kubernetes")
	require.True(t, ok)
	assert.Equal(t, KindProviderNamespace, resolved.Kind())
}
