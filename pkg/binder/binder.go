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

// Package binder implements the declaration pass of the Strata compiler: a
// single depth-first traversal of a parsed file that builds the lexical
// scope tree and binds every name-introducing construct to a symbol.
//
// The pass is total over domain problems: unresolved imports and providers
// become diagnostic-carrying placeholder symbols rather than errors, so
// every referenceable name ends up bound somewhere in the resulting tree.
package binder

import (
	"github.com/strata-dev/strata/pkg/features"
	"github.com/strata-dev/strata/pkg/model"
	"github.com/strata-dev/strata/pkg/syntax"
	"github.com/strata-dev/strata/pkg/util/contract"
)

// Options carries the collaborators a Binder resolves against. Collaborators
// must be immutable or internally synchronized; a nil Features defaults to
// every flag off.
type Options struct {
	// Features supplies the feature flags the compilation runs under.
	Features features.Features
	// Models resolves import declarations to referenced semantic models.
	// Required when compile-time imports are enabled.
	Models model.ModelLookup
	// Namespaces resolves provider descriptors to namespace types. Required
	// when extensibility is enabled.
	Namespaces model.NamespaceProvider
	// Artifacts resolves explicit provider types-file paths. Required when
	// extensibility is enabled.
	Artifacts model.ArtifactLookup
	// DeploymentScope is the scope the file deploys into.
	DeploymentScope model.DeploymentScope
}

// Binder binds the declarations of a single file. Each Binder owns its scope
// stack exclusively; independent files may be bound concurrently with
// independent Binders.
type Binder struct {
	features        features.Features
	models          model.ModelLookup
	namespaces      model.NamespaceProvider
	artifacts       model.ArtifactLookup
	deploymentScope model.DeploymentScope
	fileKind        syntax.FileKind

	scopes *scopeStack
}

// BindFile runs the declaration pass over a parsed file and returns the
// frozen scope tree. Domain problems surface as diagnostic-carrying symbols
// in the tree; BindFile itself only fails fast on contract violations.
func BindFile(file *syntax.File, opts Options) *Scope {
	contract.Require(file != nil, "file")

	flags := opts.Features
	if flags == nil {
		flags = features.None
	}

	b := &Binder{
		features:        flags,
		models:          opts.Models,
		namespaces:      opts.Namespaces,
		artifacts:       opts.Artifacts,
		deploymentScope: opts.DeploymentScope,
		fileKind:        file.Kind,
		scopes:          newScopeStack(),
	}

	b.scopes.push(file, GlobalsOnly)
	for _, decl := range file.Decls {
		b.bind(decl)
	}
	b.scopes.pop()

	return b.scopes.freeze()
}

// bind dispatches on the node's kind. Scope-introducing nodes push before
// recursing and pop after; declarations recurse into their children first and
// then declare into the scope that is current afterwards, which is how
// resource and module symbols land in their enclosing scope rather than in
// their own body scope.
func (b *Binder) bind(node syntax.Node) {
	switch node := node.(type) {
	case *syntax.MetadataDecl:
		b.bindChildren(node)
		b.scopes.declare(&MetadataSymbol{Syntax: node})
	case *syntax.ParameterDecl:
		b.bindChildren(node)
		b.scopes.declare(&ParameterSymbol{Syntax: node})
	case *syntax.TypeAliasDecl:
		b.bindChildren(node)
		b.scopes.declare(&TypeAliasSymbol{Syntax: node})
	case *syntax.VariableDecl:
		b.bindChildren(node)
		b.scopes.declare(&VariableSymbol{Syntax: node})
	case *syntax.FunctionDecl:
		b.bindChildren(node)
		b.scopes.declare(&FunctionSymbol{Syntax: node})
	case *syntax.ResourceDecl:
		b.bindBody(node, node.Value)
		b.scopes.declare(&ResourceSymbol{Syntax: node})
	case *syntax.ModuleDecl:
		b.bindBody(node, node.Value)
		b.scopes.declare(&ModuleSymbol{Syntax: node})
	case *syntax.TestDecl:
		b.bindChildren(node)
		b.scopes.declare(&TestSymbol{Syntax: node})
	case *syntax.OutputDecl:
		b.bindChildren(node)
		b.scopes.declare(&OutputSymbol{Syntax: node})
	case *syntax.AssertDecl:
		b.bindChildren(node)
		b.scopes.declare(&AssertSymbol{Syntax: node})
	case *syntax.ParameterAssignment:
		b.bindChildren(node)
		b.scopes.declare(&ParameterAssignmentSymbol{Syntax: node})
	case *syntax.ImportDecl:
		b.bindImport(node)
	case *syntax.ProviderDecl:
		b.bindProvider(node)
	case *syntax.ForExpr:
		b.bindFor(node)
	case *syntax.LambdaExpr:
		b.bindLambda(node)
	case *syntax.TypedLambdaExpr:
		b.bindTypedLambda(node)
	default:
		b.bindChildren(node)
	}
}

func (b *Binder) bindChildren(node syntax.Node) {
	for _, child := range syntax.Children(node) {
		b.bind(child)
	}
}

// bindBody pushes the body scope of a resource or module declaration. When
// the value is conditional the scope binds to the conditional's body, so that
// nested resources are scoped to the deployed branch rather than to the
// condition expression.
func (b *Binder) bindBody(decl syntax.Decl, value syntax.Expr) {
	binding := syntax.Node(value)
	if cond, ok := value.(*syntax.IfExpr); ok {
		binding = cond.Body
	}
	contract.Assertf(binding != nil, "declaration at %v has no binding target", decl.Range())

	b.scopes.push(binding, InheritAll)
	b.bindChildren(decl)
	b.scopes.pop()
}

// bindFor scopes the loop's item and index variables to the loop body.
func (b *Binder) bindFor(node *syntax.ForExpr) {
	contract.Assertf(node.Body != nil, "loop at %v has no binding target", node.Range())

	b.scopes.push(node.Body, InheritAll)
	b.scopes.declare(&LocalVariableSymbol{LocalName: node.ValueVar, LocalKind: LoopItemLocal, Syntax: node})
	if node.KeyVar != "" {
		b.scopes.declare(&LocalVariableSymbol{LocalName: node.KeyVar, LocalKind: LoopIndexLocal, Syntax: node})
	}
	b.bindChildren(node)
	b.scopes.pop()
}

func (b *Binder) bindLambda(node *syntax.LambdaExpr) {
	contract.Assertf(node.Body != nil, "lambda at %v has no binding target", node.Range())

	b.scopes.push(node.Body, InheritAll)
	for _, param := range node.Params {
		b.scopes.declare(&LocalVariableSymbol{LocalName: param.Name, LocalKind: LambdaItemLocal, Syntax: param})
	}
	b.bindChildren(node)
	b.scopes.pop()
}

// bindTypedLambda is bindLambda with the stricter resolution mode: typed
// lambda bodies may reference enclosing functions but not enclosing variables
// or parameters.
func (b *Binder) bindTypedLambda(node *syntax.TypedLambdaExpr) {
	contract.Assertf(node.Body != nil, "lambda at %v has no binding target", node.Range())

	b.scopes.push(node.Body, InheritFunctionsOnly)
	for _, param := range node.Params {
		b.scopes.declare(&LocalVariableSymbol{LocalName: param.Name, LocalKind: LambdaItemLocal, Syntax: param})
	}
	b.bindChildren(node)
	b.scopes.pop()
}
