// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ImportForms(t *testing.T) {
	result := mustAnalyze(t, `import os
import os.path
import sys as system
from collections import OrderedDict
from collections import defaultdict as dd
from . import util
from .helpers import fmt
from a.b import c, d
from typing import *
`)

	assert.Equal(t, []string{
		"os",
		"os.path",
		"sys",
		"collections.OrderedDict",
		"collections.defaultdict",
		".util",
		"helpers.fmt",
		"a.b.c",
		"a.b.d",
		"typing.*",
	}, result.Imports)
}

func TestExtract_DuplicateImportsPreserved(t *testing.T) {
	result := mustAnalyze(t, "import os\nimport os\n")
	assert.Equal(t, []string{"os", "os"}, result.Imports)
}

func TestExtract_ParameterNames(t *testing.T) {
	result := mustAnalyze(t, `def f(a, b: int, c=1, d: int = 2, *args, **kwargs):
    return a
`)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, result.Functions[0].Args,
		"splat parameters are not positional identifiers")
}

func TestExtract_ReturnAnnotation(t *testing.T) {
	result := mustAnalyze(t, `def typed() -> dict[str, int]:
    return {}

def untyped():
    return {}
`)

	require.Len(t, result.Functions, 2)
	assert.True(t, result.Functions[0].HasReturns)
	assert.Equal(t, "dict[str, int]", result.Functions[0].Returns)
	assert.False(t, result.Functions[1].HasReturns)
	assert.Empty(t, result.Functions[1].Returns)
}

func TestExtract_Docstrings(t *testing.T) {
	result := mustAnalyze(t, `def single():
    """One line."""
    return 1

def multi():
    """First line.

    Indented detail.
    """
    return 2

def none():
    x = "not a docstring"
    return x
`)

	require.Len(t, result.Functions, 3)

	assert.True(t, result.Functions[0].HasDocstring)
	assert.Equal(t, "One line.", result.Functions[0].Docstring)

	assert.True(t, result.Functions[1].HasDocstring)
	assert.Equal(t, "First line.\n\nIndented detail.", result.Functions[1].Docstring)

	assert.False(t, result.Functions[2].HasDocstring)
	assert.Empty(t, result.Functions[2].Docstring)
}

func TestExtract_FunctionLinesOfCode(t *testing.T) {
	result := mustAnalyze(t, `def f():
    a = 1
    b = 2
    return a + b
`)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, 1, result.Functions[0].Line)
	assert.Equal(t, 4, result.Functions[0].LinesOfCode)
}

func TestExtract_ClassBasesAndDocstring(t *testing.T) {
	result := mustAnalyze(t, `class Handler(Base, mixin.Extra, metaclass=Meta):
    """Handles things."""

    def handle(self):
        pass
`)

	require.Len(t, result.Classes, 1)
	c := result.Classes[0]
	assert.Equal(t, "Handler", c.Name)
	assert.Equal(t, []string{"Base"}, c.Bases,
		"only plain-identifier bases are recorded")
	assert.True(t, c.HasDocstring)
	assert.Equal(t, "Handles things.", c.Docstring)
	require.Len(t, c.Methods, 1)
	assert.Equal(t, "handle", c.Methods[0].Name)
}

func TestExtract_DecoratedMethodIsStillAMethod(t *testing.T) {
	result := mustAnalyze(t, `class Service:
    @staticmethod
    def build():
        return Service()
`)

	require.Len(t, result.Classes, 1)
	require.Len(t, result.Classes[0].Methods, 1)
	assert.Equal(t, "build", result.Classes[0].Methods[0].Name)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, "build", result.Functions[0].Name)
}

func TestExtract_NestedClassKeepsOwnMethods(t *testing.T) {
	result := mustAnalyze(t, `class Outer:
    def outer_method(self):
        pass

    class Inner:
        def inner_method(self):
            pass
`)

	require.Len(t, result.Classes, 2)
	byName := map[string][]string{}
	for _, c := range result.Classes {
		var names []string
		for _, m := range c.Methods {
			names = append(names, m.Name)
		}
		byName[c.Name] = names
	}
	assert.Equal(t, []string{"outer_method"}, byName["Outer"])
	assert.Equal(t, []string{"inner_method"}, byName["Inner"])
}

func TestCleanDocstring(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"triple double", `"""Plain."""`, "Plain."},
		{"triple single", "'''Plain.'''", "Plain."},
		{"single quote", `'Plain.'`, "Plain."},
		{"raw prefix", `r"""Raw\path."""`, `Raw\path.`},
		{"surrounding blank lines", "\"\"\"\n    Body.\n    \"\"\"", "Body."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanDocstring(tt.raw))
		})
	}
}
