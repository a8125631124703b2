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

// Package features exposes the feature flags consulted by the compiler
// passes. Flags are read-only for the duration of a compilation.
package features

// Features is the read-only set of flags a compilation runs under.
type Features interface {
	// Extensibility reports whether provider declarations are enabled.
	Extensibility() bool
	// CompileTimeImports reports whether compile-time import declarations are enabled.
	CompileTimeImports() bool
	// UserDefinedFunctions reports whether function declarations may be imported.
	UserDefinedFunctions() bool
	// GraphPreview reports whether the built-in graph provider is enabled.
	GraphPreview() bool
	// DynamicTypeLoading reports whether providers with dynamically loaded
	// types, including the built-in az provider, are enabled.
	DynamicTypeLoading() bool
}

// Static is a fixed set of feature flags.
type Static struct {
	ExtensibilityEnabled        bool `yaml:"extensibility"`
	CompileTimeImportsEnabled   bool `yaml:"compile-time-imports"`
	UserDefinedFunctionsEnabled bool `yaml:"user-defined-functions"`
	GraphPreviewEnabled         bool `yaml:"graph-preview"`
	DynamicTypeLoadingEnabled   bool `yaml:"dynamic-type-loading"`
}

func (s *Static) Extensibility() bool        { return s.ExtensibilityEnabled }
func (s *Static) CompileTimeImports() bool   { return s.CompileTimeImportsEnabled }
func (s *Static) UserDefinedFunctions() bool { return s.UserDefinedFunctionsEnabled }
func (s *Static) GraphPreview() bool         { return s.GraphPreviewEnabled }
func (s *Static) DynamicTypeLoading() bool   { return s.DynamicTypeLoadingEnabled }

// None has every flag disabled.
var None Features = &Static{}

// All has every flag enabled. It is primarily useful in tests.
var All Features = &Static{
	ExtensibilityEnabled:        true,
	CompileTimeImportsEnabled:   true,
	UserDefinedFunctionsEnabled: true,
	GraphPreviewEnabled:         true,
	DynamicTypeLoadingEnabled:   true,
}
