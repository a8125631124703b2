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
	"sort"

	"github.com/hashicorp/hcl/v2"

	"github.com/strata-dev/strata/pkg/model"
	"github.com/strata-dev/strata/pkg/syntax"
	"github.com/strata-dev/strata/pkg/util/contract"
)

// bindImport resolves a compile-time import declaration and declares one
// symbol per imported name. Resolution failures bind errored-import
// placeholders instead of reporting errors.
func (b *Binder) bindImport(decl *syntax.ImportDecl) {
	referenced, failure := b.resolveImportModel(decl)
	if failure != nil {
		b.declareErroredImports(decl, failure)
		return
	}

	if decl.Wildcard != nil {
		b.scopes.declare(&WildcardImportSymbol{Syntax: decl, Model: referenced})
	}

	exports := referenced.Exports()
	for _, item := range decl.Items {
		if item.OriginalName == "" {
			// The parser already reported the malformed item.
			continue
		}
		b.scopes.declare(b.importedSymbol(item, exports))
	}
}

// resolveImportModel loads the semantic model the import refers to, or
// returns the diagnostic explaining why it cannot be used.
func (b *Binder) resolveImportModel(decl *syntax.ImportDecl) (model.SemanticModel, *hcl.Diagnostic) {
	if !b.features.CompileTimeImports() {
		return nil, importsDisabled(decl.DeclRange)
	}
	contract.Assertf(b.models != nil, "compile-time imports require a model lookup")

	referenced, diag := b.models.ResolveModel(decl)
	if diag != nil {
		return nil, diag
	}
	contract.Assertf(referenced != nil, "model lookup returned neither a model nor a diagnostic")

	if referenced.HasErrors() {
		subject := decl.DeclRange
		if decl.Source != nil {
			subject = decl.Source.Range()
		}
		if referenced.TemplateDerived() {
			return nil, referencedTemplateHasErrors(subject)
		}
		return nil, referencedModuleHasErrors(subject)
	}
	return referenced, nil
}

// declareErroredImports binds every name in a failed import statement to an
// errored-import symbol. Only the first symbol carries the failure, so the
// same root cause is not repeated once per imported name.
func (b *Binder) declareErroredImports(decl *syntax.ImportDecl, failure *hcl.Diagnostic) {
	diagnostics := hcl.Diagnostics{failure}
	if decl.Wildcard != nil {
		b.scopes.declare(&ErroredImportSymbol{
			LocalName:   decl.Wildcard.Alias,
			Syntax:      decl,
			Diagnostics: diagnostics,
		})
		diagnostics = nil
	}
	for _, item := range decl.Items {
		if item.OriginalName == "" {
			continue
		}
		b.scopes.declare(&ErroredImportSymbol{
			LocalName:   item.LocalName(),
			Syntax:      item,
			Diagnostics: diagnostics,
		})
		diagnostics = nil
	}
}

// importedSymbol selects the symbol kind for a single import item from the
// referenced model's export metadata.
func (b *Binder) importedSymbol(item *syntax.ImportItem, exports map[string]model.Export) DeclaredSymbol {
	export, ok := exports[item.OriginalName]
	if !ok {
		suggestion := nearestName(item.OriginalName, sortedExportNames(exports))
		return &ErroredImportSymbol{
			LocalName:   item.LocalName(),
			Syntax:      item,
			Diagnostics: hcl.Diagnostics{importedSymbolNotFound(item.OriginalName, suggestion, item.NameRange)},
		}
	}

	switch export.Kind {
	case model.TypeExport:
		return &ImportedTypeSymbol{LocalName: item.LocalName(), Syntax: item, Export: export}
	case model.VariableExport:
		return &ImportedVariableSymbol{LocalName: item.LocalName(), Syntax: item, Export: export}
	case model.FunctionExport:
		if !b.features.UserDefinedFunctions() {
			return &ErroredImportSymbol{
				LocalName:   item.LocalName(),
				Syntax:      item,
				Diagnostics: hcl.Diagnostics{importedFunctionsDisabled(item.OriginalName, item.NameRange)},
			}
		}
		return &ImportedFunctionSymbol{LocalName: item.LocalName(), Syntax: item, Export: export}
	default:
		// Error-kind and unrecognized exports carry the exporting model's own
		// description of the problem.
		return &ErroredImportSymbol{
			LocalName:   item.LocalName(),
			Syntax:      item,
			Diagnostics: hcl.Diagnostics{erroredExport(item.OriginalName, export.Error, item.NameRange)},
		}
	}
}

func sortedExportNames(exports map[string]model.Export) []string {
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
