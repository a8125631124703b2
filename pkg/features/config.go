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

package features

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// ConfigFile is the conventional name of the per-project configuration file.
const ConfigFile = "strata-config.yaml"

// Load reads feature flags from the `experimental` section of a Strata
// configuration file. Missing flags default to off.
func Load(path string) (*Static, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	return Parse(data)
}

// Parse reads feature flags from configuration file contents.
func Parse(data []byte) (*Static, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}

	experimental, err := cast.ToStringMapE(doc["experimental"])
	if doc["experimental"] != nil && err != nil {
		return nil, errors.Wrap(err, "parsing experimental section")
	}

	return &Static{
		ExtensibilityEnabled:        cast.ToBool(experimental["extensibility"]),
		CompileTimeImportsEnabled:   cast.ToBool(experimental["compile-time-imports"]),
		UserDefinedFunctionsEnabled: cast.ToBool(experimental["user-defined-functions"]),
		GraphPreviewEnabled:         cast.ToBool(experimental["graph-preview"]),
		DynamicTypeLoadingEnabled:   cast.ToBool(experimental["dynamic-type-loading"]),
	}, nil
}
