// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-doc-suggestions R2 (prompt construction).
package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PromptData holds the values injected into the docstring prompt template.
type PromptData struct {
	FilePath  string
	Signature string
	Calls     []string
}

// RenderDocstringPrompt renders the docstring prompt template.
func RenderDocstringPrompt(data PromptData) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/docstring.tmpl")
	if err != nil {
		return "", fmt.Errorf("parsing docstring template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing docstring template: %w", err)
	}

	return buf.String(), nil
}

// FormatSignature rebuilds a Python-style signature line from an
// extracted function record.
func FormatSignature(fn types.FunctionInfo) string {
	sig := fmt.Sprintf("def %s(%s)", fn.Name, strings.Join(fn.Args, ", "))
	if fn.HasReturns {
		sig += " -> " + fn.Returns
	}
	return sig + ":"
}
