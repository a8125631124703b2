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
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/strata-dev/strata/pkg/syntax"
)

// BindFiles binds independent files concurrently, one Binder per file, and
// returns the scope trees in input order. The collaborators in opts are
// shared across files and must be immutable or internally synchronized.
func BindFiles(files []*syntax.File, opts Options) ([]*Scope, error) {
	var preflight *multierror.Error
	seen := map[string]struct{}{}
	for i, file := range files {
		if file == nil {
			preflight = multierror.Append(preflight, errors.Errorf("file %v is nil", i))
			continue
		}
		if _, dup := seen[file.Name]; dup {
			preflight = multierror.Append(preflight, errors.Errorf("duplicate file %q", file.Name))
		}
		seen[file.Name] = struct{}{}
	}
	if err := preflight.ErrorOrNil(); err != nil {
		return nil, err
	}

	scopes := make([]*Scope, len(files))
	var group errgroup.Group
	for i := range files {
		i := i
		group.Go(func() error {
			scopes[i] = BindFile(files[i], opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return scopes, nil
}
