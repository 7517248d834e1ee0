// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer parses Python source with tree-sitter and extracts
// structural information: functions, classes, imports, complexity, and
// line statistics.
// Implements: prd002-analyzer R1, R2, R3, R4;
//
//	docs/ARCHITECTURE § Structural Analyzer.
package analyzer

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// SyntaxError reports that source text does not parse in the target
// grammar. Line and Column locate the first offending node (1-based).
type SyntaxError struct {
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

// Grammar bundles a tree-sitter language with the lexical facts the
// analyzer needs outside the tree. Substituting a different Grammar is
// the extension point for additional source languages.
type Grammar struct {
	Language      *sitter.Language
	CommentPrefix string
}

// PythonGrammar returns the grammar for Python source files.
func PythonGrammar() Grammar {
	return Grammar{
		Language:      python.GetLanguage(),
		CommentPrefix: "#",
	}
}

// Parser produces syntax trees for one grammar. It holds no per-parse
// state and is safe for concurrent use.
//
// Implements: prd002-analyzer R1.1-R1.3.
type Parser struct {
	grammar Grammar
}

// NewParser creates a parser for the given grammar.
func NewParser(g Grammar) *Parser {
	return &Parser{grammar: g}
}

// Parse parses source text and returns the tree root. Tree-sitter is
// error-tolerant, so a tree containing ERROR or MISSING nodes is the
// grammar's signal of invalid syntax; in that case Parse returns a
// *SyntaxError locating the first such node.
func (p *Parser) Parse(ctx context.Context, src []byte) (*sitter.Node, error) {
	root, err := sitter.ParseCtx(ctx, src, p.grammar.Language)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	if root.HasError() {
		line, col := firstErrorLocation(root)
		return nil, &SyntaxError{Line: line, Column: col}
	}
	return root, nil
}

// firstErrorLocation finds the first ERROR or MISSING node in a
// depth-first walk and returns its 1-based position.
func firstErrorLocation(node *sitter.Node) (line, col int) {
	if node.Type() == "ERROR" || node.IsMissing() {
		return int(node.StartPoint().Row) + 1, int(node.StartPoint().Column) + 1
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !child.HasError() {
			continue
		}
		if l, c := firstErrorLocation(child); l > 0 {
			return l, c
		}
	}
	if node.HasError() {
		return int(node.StartPoint().Row) + 1, int(node.StartPoint().Column) + 1
	}
	return 0, 0
}
