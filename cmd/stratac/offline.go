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

package main

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/strata-dev/strata/pkg/features"
	"github.com/strata-dev/strata/pkg/model"
	"github.com/strata-dev/strata/pkg/syntax"
)

// stratac scopes runs without a module registry or provider registry. These
// collaborators keep the pass total: every resolution yields a diagnostic
// that ends up on the placeholder symbol.

type offlineModels struct{}

func (offlineModels) ResolveModel(decl *syntax.ImportDecl) (model.SemanticModel, *hcl.Diagnostic) {
	subject := decl.DeclRange
	return nil, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "no module registry is available to stratac scopes",
		Subject:  &subject,
	}
}

type offlineNamespaces struct{}

func (offlineNamespaces) ResolveNamespace(descriptor model.ProviderDescriptor, scope model.DeploymentScope,
	flags features.Features, kind syntax.FileKind) (model.Type, *hcl.Diagnostic) {

	return nil, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "no provider registry is available to stratac scopes",
	}
}

type offlineArtifacts struct{}

func (offlineArtifacts) ResolveTypesFileURI(decl *syntax.ProviderDecl) (string, *hcl.Diagnostic) {
	subject := decl.DeclRange
	return "", &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "provider types files cannot be resolved by stratac scopes",
		Subject:  &subject,
	}
}
