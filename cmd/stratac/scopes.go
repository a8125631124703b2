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
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/strata-dev/strata/pkg/binder"
	"github.com/strata-dev/strata/pkg/features"
	"github.com/strata-dev/strata/pkg/syntax"
)

func newScopesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "scopes [ast files]",
		Short: "Print the scope tree of parsed Strata files",
		Long: "Print the scope tree of parsed Strata files.\n" +
			"\n" +
			"The inputs are JSON syntax trees as produced by the parser's --emit-ast mode.\n" +
			"Import and provider resolution run without a registry, so unresolved names\n" +
			"appear as placeholder symbols.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := features.Features(features.None)
			if configPath != "" {
				loaded, err := features.Load(configPath)
				if err != nil {
					return err
				}
				flags = loaded
			}

			files, err := decodeFiles(args)
			if err != nil {
				return err
			}

			scopes, err := binder.BindFiles(files, binder.Options{
				Features:   flags,
				Models:     offlineModels{},
				Namespaces: offlineNamespaces{},
				Artifacts:  offlineArtifacts{},
			})
			if err != nil {
				return err
			}

			for i, scope := range scopes {
				fmt.Printf("# %v\n", files[i].Name)
				binder.WriteScopeTree(os.Stdout, scope)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to a strata-config.yaml supplying feature flags")
	return cmd
}

// decodeFiles reads the given syntax tree files concurrently, collecting
// every failure rather than stopping at the first.
func decodeFiles(paths []string) ([]*syntax.File, error) {
	files := make([]*syntax.File, len(paths))
	failures := make([]error, len(paths))

	var group errgroup.Group
	for i := range paths {
		i := i
		group.Go(func() error {
			f, err := os.Open(paths[i])
			if err != nil {
				failures[i] = err
				return nil
			}
			defer f.Close()

			file, err := syntax.DecodeFile(f)
			if err != nil {
				failures[i] = errors.Wrap(err, paths[i])
				return nil
			}
			files[i] = file
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var result *multierror.Error
	for _, failure := range failures {
		if failure != nil {
			result = multierror.Append(result, failure)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return files, nil
}
