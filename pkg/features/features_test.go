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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	flags, err := Parse([]byte(`
experimental:
  extensibility: true
  compile-time-imports: true
  graph-preview: false
`))
	require.NoError(t, err)

	assert.True(t, flags.Extensibility())
	assert.True(t, flags.CompileTimeImports())
	assert.False(t, flags.GraphPreview())
	assert.False(t, flags.UserDefinedFunctions())
	assert.False(t, flags.DynamicTypeLoading())
}

func TestParseEmptyDocument(t *testing.T) {
	flags, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.False(t, flags.Extensibility())
	assert.False(t, flags.CompileTimeImports())
}

func TestParseNoExperimentalSection(t *testing.T) {
	flags, err := Parse([]byte("other: value\n"))
	require.NoError(t, err)
	assert.False(t, flags.Extensibility())
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("experimental: [\n"))
	require.Error(t, err)
}

func TestParseMalformedExperimentalSection(t *testing.T) {
	_, err := Parse([]byte("experimental: 42\n"))
	require.Error(t, err)
}

func TestNoneAndAll(t *testing.T) {
	assert.False(t, None.Extensibility())
	assert.False(t, None.UserDefinedFunctions())

	assert.True(t, All.Extensibility())
	assert.True(t, All.CompileTimeImports())
	assert.True(t, All.UserDefinedFunctions())
	assert.True(t, All.GraphPreview())
	assert.True(t, All.DynamicTypeLoading())
}
