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
	"github.com/strata-dev/strata/pkg/syntax"
)

// ResolutionMode governs what an inner scope may see from enclosing scopes
// during name lookup.
type ResolutionMode int

const (
	// GlobalsOnly scopes admit only the file's global names. The root scope
	// of every file uses this mode.
	GlobalsOnly ResolutionMode = iota
	// InheritAll scopes see every name visible in the enclosing scope.
	InheritAll
	// InheritFunctionsOnly scopes see enclosing functions but not enclosing
	// variables or parameters. Typed lambda bodies use this mode.
	InheritFunctionsOnly
)

func (m ResolutionMode) String() string {
	switch m {
	case GlobalsOnly:
		return "globals-only"
	case InheritAll:
		return "inherit-all"
	case InheritFunctionsOnly:
		return "inherit-functions-only"
	default:
		return "unknown"
	}
}

// Scope is one lexical binding region in a frozen scope tree. Scopes are
// immutable; downstream passes share them freely.
type Scope struct {
	binding  syntax.Node
	mode     ResolutionMode
	locals   []DeclaredSymbol
	children []*Scope
	parent   *Scope
}

// Binding returns the syntax node whose names the scope governs. This is the
// scope's identity: no two scopes in a tree share a binding node.
func (s *Scope) Binding() syntax.Node {
	return s.binding
}

// Mode returns the scope's resolution mode.
func (s *Scope) Mode() ResolutionMode {
	return s.mode
}

// Locals returns the symbols declared directly in the scope, in declaration
// order. The returned slice must not be modified.
func (s *Scope) Locals() []DeclaredSymbol {
	return s.locals
}

// Children returns the scope's child scopes in traversal order. The returned
// slice must not be modified.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Parent returns the enclosing scope, or nil for the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}
