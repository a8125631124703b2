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
	"github.com/golang/glog"

	"github.com/strata-dev/strata/pkg/syntax"
	"github.com/strata-dev/strata/pkg/util/contract"
)

// scopeBuilder is the mutable form of a scope, owned exclusively by one
// traversal and never exposed outside it.
type scopeBuilder struct {
	binding  syntax.Node
	mode     ResolutionMode
	locals   []DeclaredSymbol
	children []*scopeBuilder
}

// scopeStack tracks the in-progress scopes of a traversal. Registering two
// scopes against the same binding node indicates a traversal bug and fails
// fast rather than producing a diagnostic.
type scopeStack struct {
	root    *scopeBuilder
	stack   []*scopeBuilder
	claimed map[syntax.Node]struct{}
}

func newScopeStack() *scopeStack {
	return &scopeStack{claimed: map[syntax.Node]struct{}{}}
}

// push begins a new scope bound to the given node, linking it as a child of
// the current scope or as the tree's root when the stack is empty.
func (s *scopeStack) push(binding syntax.Node, mode ResolutionMode) {
	contract.Assertf(binding != nil, "scope pushed without a binding node")
	if _, dup := s.claimed[binding]; dup {
		contract.Failf("syntax node at %v already binds a scope", binding.Range())
	}
	s.claimed[binding] = struct{}{}

	child := &scopeBuilder{binding: binding, mode: mode}
	if len(s.stack) == 0 {
		contract.Assertf(s.root == nil, "a traversal produces exactly one root scope")
		s.root = child
	} else {
		top := s.stack[len(s.stack)-1]
		top.children = append(top.children, child)
	}
	s.stack = append(s.stack, child)

	glog.V(9).Infof("pushed %v scope bound to %T at %v", mode, binding, binding.Range())
}

// pop ends the current scope.
func (s *scopeStack) pop() {
	contract.Assertf(len(s.stack) > 0, "scope stack underflow")
	s.stack = s.stack[:len(s.stack)-1]
}

// declare appends a symbol to the current scope. With no active scope the
// symbol is dropped; real traversals always run inside the root scope, so
// this only matters for malformed call sequences.
func (s *scopeStack) declare(sym DeclaredSymbol) {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	top.locals = append(top.locals, sym)

	glog.V(9).Infof("declared %v %q at %v", sym.Kind(), sym.Name(), sym.DeclaringNode().Range())
}

// freeze converts the finished traversal into the immutable scope tree,
// preserving child and local order.
func (s *scopeStack) freeze() *Scope {
	contract.Assertf(len(s.stack) == 0, "freeze called mid-traversal")
	contract.Assertf(s.root != nil, "freeze called before any scope was pushed")
	return s.root.freeze(nil)
}

func (b *scopeBuilder) freeze(parent *Scope) *Scope {
	scope := &Scope{
		binding: b.binding,
		mode:    b.mode,
		locals:  b.locals,
		parent:  parent,
	}
	for _, child := range b.children {
		scope.children = append(scope.children, child.freeze(scope))
	}
	return scope
}
