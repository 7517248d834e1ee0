// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

func TestRenderDocstringPrompt(t *testing.T) {
	prompt, err := RenderDocstringPrompt(PromptData{
		FilePath:  "app/config.py",
		Signature: "def load_config(path, strict) -> dict:",
		Calls:     []string{"open", "parse"},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "app/config.py")
	assert.Contains(t, prompt, "def load_config(path, strict) -> dict:")
	assert.Contains(t, prompt, "open, parse")
}

func TestRenderDocstringPrompt_NoCalls(t *testing.T) {
	prompt, err := RenderDocstringPrompt(PromptData{
		FilePath:  "a.py",
		Signature: "def f():",
	})
	require.NoError(t, err)
	assert.NotContains(t, prompt, "It calls:")
}

func TestFormatSignature(t *testing.T) {
	tests := []struct {
		name string
		fn   types.FunctionInfo
		want string
	}{
		{
			"no annotation",
			types.FunctionInfo{Name: "f", Args: []string{"a", "b"}},
			"def f(a, b):",
		},
		{
			"with annotation",
			types.FunctionInfo{Name: "g", Args: []string{"x"}, Returns: "int", HasReturns: true},
			"def g(x) -> int:",
		},
		{
			"no args",
			types.FunctionInfo{Name: "h"},
			"def h():",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSignature(tt.fn))
		})
	}
}
