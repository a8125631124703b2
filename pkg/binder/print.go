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
	"io"
	"strings"
)

// WriteScopeTree renders the scope tree in a stable, human-readable form.
// Identical trees render identically, so the output doubles as a cheap
// equality check in tests and tooling.
func WriteScopeTree(w io.Writer, scope *Scope) {
	writeScope(w, scope, 0)
}

// ScopeTreeString renders the scope tree to a string.
func ScopeTreeString(scope *Scope) string {
	var sb strings.Builder
	WriteScopeTree(&sb, scope)
	return sb.String()
}

func writeScope(w io.Writer, scope *Scope, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%vscope %v bound to %v\n", indent, scope.Mode(), nodeLabel(scope.Binding()))
	for _, sym := range scope.Locals() {
		fmt.Fprintf(w, "%v  %v %q\n", indent, sym.Kind(), sym.Name())
	}
	for _, child := range scope.Children() {
		writeScope(w, child, depth+1)
	}
}

func nodeLabel(node interface{}) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*syntax.")
}
