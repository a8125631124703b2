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

// Lookup resolves a name from the perspective of this scope, walking the
// ancestor chain as each scope's resolution mode permits: InheritAll scopes
// expose everything above them, InheritFunctionsOnly scopes expose only
// enclosing functions, and GlobalsOnly scopes expose nothing beyond the
// file's globals.
func (s *Scope) Lookup(name string) (DeclaredSymbol, bool) {
	functionsOnly := false
	for scope := s; scope != nil; {
		for _, sym := range scope.locals {
			if sym.Name() != name {
				continue
			}
			if functionsOnly && !isFunctionKind(sym) {
				continue
			}
			return sym, true
		}

		switch scope.mode {
		case GlobalsOnly:
			if scope.parent == nil {
				return nil, false
			}
			scope = scope.root()
		case InheritFunctionsOnly:
			functionsOnly = true
			scope = scope.parent
		default:
			scope = scope.parent
		}
	}
	return nil, false
}

// LookupFunction resolves a name to a function symbol, ignoring non-function
// symbols along the way. Functions are visible from every scope mode.
func (s *Scope) LookupFunction(name string) (DeclaredSymbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		for _, sym := range scope.locals {
			if sym.Name() == name && isFunctionKind(sym) {
				return sym, true
			}
		}
	}
	return nil, false
}

// root returns the tree's root scope.
func (s *Scope) root() *Scope {
	scope := s
	for scope.parent != nil {
		scope = scope.parent
	}
	return scope
}

func isFunctionKind(sym DeclaredSymbol) bool {
	switch sym.Kind() {
	case KindFunction, KindImportedFunction:
		return true
	default:
		return false
	}
}
