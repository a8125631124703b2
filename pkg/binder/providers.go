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
	"regexp"

	"github.com/blang/semver"

	"github.com/strata-dev/strata/pkg/model"
	"github.com/strata-dev/strata/pkg/syntax"
	"github.com/strata-dev/strata/pkg/util/contract"
)

// Built-in provider names with their own feature gates.
const (
	azProviderName    = "az"
	graphProviderName = "graph"
)

// providerSpecPattern matches `[registry/]name@version`. The registry part is
// everything up to the last slash.
var providerSpecPattern = regexp.MustCompile(`^(?:(.+)/)?([a-zA-Z][a-zA-Z0-9]*)@(\S+)$`)

type providerSpec struct {
	name     string
	version  string
	registry string
}

func parseProviderSpec(text string) (providerSpec, bool) {
	match := providerSpecPattern.FindStringSubmatch(text)
	if match == nil {
		return providerSpec{}, false
	}
	version, err := semver.ParseTolerant(match[3])
	if err != nil {
		return providerSpec{}, false
	}
	return providerSpec{name: match[2], version: version.String(), registry: match[1]}, true
}

// bindProvider resolves a provider declaration to a namespace type and binds
// the provider-namespace symbol. The symbol is created on every failure
// branch too, wrapping an error type, so the name stays bound and later
// passes see a consistent if erroneous namespace.
func (b *Binder) bindProvider(decl *syntax.ProviderDecl) {
	typ, name := b.resolveProvider(decl)
	b.scopes.declare(&ProviderNamespaceSymbol{LocalName: name, Syntax: decl, Type: typ})
}

// resolveProvider runs the ordered resolution checks; the first failing check
// wins. It returns the namespace type (or error placeholder) along with the
// name the symbol should bind.
func (b *Binder) resolveProvider(decl *syntax.ProviderDecl) (model.Type, string) {
	if !b.features.Extensibility() {
		return model.NewErrorType(providersDisabled(decl.DeclRange)), decl.Alias
	}

	if decl.Spec == nil {
		// Nothing to resolve: the parser reports the malformed declaration,
		// so the placeholder carries no diagnostic of its own.
		return model.NewErrorType(), decl.Alias
	}

	text, static := syntax.StaticString(decl.Spec)
	if !static {
		return model.NewErrorType(providerSpecInterpolated(decl.Spec.Range())), decl.Alias
	}

	spec, ok := parseProviderSpec(text)
	if !ok {
		return model.NewErrorType(invalidProviderSpec(decl.Spec.Range())), decl.Alias
	}

	name := decl.Alias
	if name == "" {
		name = spec.name
	}

	if spec.registry == "" {
		if spec.name == graphProviderName && !b.features.GraphPreview() {
			return model.NewErrorType(unrecognizedProvider(spec.name, decl.Spec.Range())), name
		}
		if spec.name == azProviderName && !b.features.DynamicTypeLoading() {
			return model.NewErrorType(unrecognizedProvider(spec.name, decl.Spec.Range())), name
		}
	}

	typesBaseURI := ""
	if decl.TypesPath != nil {
		contract.Assertf(b.artifacts != nil, "provider types paths require an artifact lookup")
		uri, diag := b.artifacts.ResolveTypesFileURI(decl)
		if diag != nil {
			return model.NewErrorType(diag), name
		}
		typesBaseURI = uri
	}

	contract.Assertf(b.namespaces != nil, "provider resolution requires a namespace provider")
	descriptor := model.ProviderDescriptor{
		Name:           spec.name,
		Version:        spec.version,
		ImplicitImport: false,
		Alias:          decl.Alias,
		Registry:       spec.registry,
		TypesBaseURI:   typesBaseURI,
	}
	typ, diag := b.namespaces.ResolveNamespace(descriptor, b.deploymentScope, b.features, b.fileKind)
	if diag != nil {
		return model.NewErrorType(diag), name
	}
	contract.Assertf(typ != nil, "namespace provider returned neither a type nor a diagnostic")
	return typ, name
}
