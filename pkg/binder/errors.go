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
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

func errorf(subject hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf(f, args...),
		Subject:  &subject,
	}
}

func importsDisabled(subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "compile-time imports are disabled")
}

func referencedTemplateHasErrors(subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "the referenced template has errors")
}

func referencedModuleHasErrors(subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "the referenced module has errors")
}

func importedSymbolNotFound(name, suggestion string, subject hcl.Range) *hcl.Diagnostic {
	diag := errorf(subject, "%q is not exported by the referenced file", name)
	if suggestion != "" {
		diag.Detail = fmt.Sprintf("Did you mean %q?", suggestion)
	}
	return diag
}

func importedFunctionsDisabled(name string, subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "cannot import %q because user-defined functions are disabled", name)
}

func erroredExport(name, message string, subject hcl.Range) *hcl.Diagnostic {
	diag := errorf(subject, "the export %q has errors", name)
	diag.Detail = message
	return diag
}

func providersDisabled(subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "providers are disabled")
}

func providerSpecInterpolated(subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "provider specification must be a compile-time string literal")
}

func invalidProviderSpec(subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "invalid provider specification")
}

func unrecognizedProvider(name string, subject hcl.Range) *hcl.Diagnostic {
	return errorf(subject, "unrecognized provider %q", name)
}

// nearestName returns the candidate closest to name, if any candidate is
// within an edit distance of two. Candidates must be sorted so repeated runs
// suggest the same name.
func nearestName(name string, candidates []string) string {
	best, bestDistance := "", 3
	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings([]rune(name), []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}
