// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-analyzer R1 (aggregation), R5 (summary);
//
//	docs/ARCHITECTURE § Structural Analyzer.
package analyzer

import (
	"context"
	"log/slog"
	"os"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

// Analyzer runs one parse and one traversal per source unit and emits an
// immutable AnalysisResult. All accumulation state is local to a call,
// so a single Analyzer may be used from multiple goroutines.
//
// Implements: prd002-analyzer R1.1-R1.6.
type Analyzer struct {
	parser  *Parser
	grammar Grammar
	logger  *slog.Logger
}

// New creates an analyzer for Python source. A nil logger falls back to
// the process default.
func New(logger *slog.Logger) *Analyzer {
	return NewForGrammar(PythonGrammar(), logger)
}

// NewForGrammar creates an analyzer with a substituted grammar front end.
func NewForGrammar(g Grammar, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		parser:  NewParser(g),
		grammar: g,
		logger:  logger,
	}
}

// Analyze parses source text and extracts its structural analysis.
// Invalid syntax propagates as a *SyntaxError; it is never swallowed on
// this entry point.
func (a *Analyzer) Analyze(ctx context.Context, src []byte) (*types.AnalysisResult, error) {
	root, err := a.parser.Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	acc := newAccumulator(src)
	acc.walk(root)

	stats := countLines(src, a.grammar.CommentPrefix)

	return &types.AnalysisResult{
		Functions:       acc.functions,
		Classes:         acc.classes,
		Imports:         acc.imports,
		TotalLines:      stats.Total,
		CodeLines:       stats.Code,
		CommentLines:    stats.Comment,
		BlankLines:      stats.Blank,
		ComplexityScore: acc.total,
	}, nil
}

// AnalyzeFile reads and analyzes a file. Failures (unreadable file,
// invalid syntax) are logged and surfaced as a nil result so callers
// iterating many files can skip one bad file without aborting.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) *types.AnalysisResult {
	src, err := os.ReadFile(path)
	if err != nil {
		a.logger.Error("reading source file failed", "path", path, "error", err)
		return nil
	}

	result, err := a.Analyze(ctx, src)
	if err != nil {
		a.logger.Error("analyzing source file failed", "path", path, "error", err)
		return nil
	}
	return result
}
