// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R6 (orchestration);
//
//	docs/ARCHITECTURE § Review Pipeline, Lifecycle.
package review

import (
	"context"
	"fmt"
	"log/slog"

	gitpkg "github.com/petar-djukic/go-reviewer/internal/git"
	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const defaultMaxSuggestions = 5

// Suggester abstracts LLM docstring generation so the runner is testable
// and the component is inert when unconfigured.
type Suggester interface {
	SuggestDocstring(ctx context.Context, fn types.FunctionInfo, filePath string) (string, error)
}

// Deps holds injected dependencies for the runner.
type Deps struct {
	WorkDir        string
	Scan           ScanConfig
	Thresholds     Thresholds
	TopHotspots    int
	Suggester      Suggester // nil disables docstring suggestions
	MaxSuggestions int
	Logger         *slog.Logger
}

// Runner orchestrates one review: scan, derive issues, score, rank
// hotspots, record provenance, and optionally suggest docstrings.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.MaxSuggestions == 0 {
		deps.MaxSuggestions = defaultMaxSuggestions
	}
	return &Runner{deps: deps}
}

// Run executes the review lifecycle and returns the project report.
//
// Implements: prd003-review-pipeline R6.1-R6.5.
func (r *Runner) Run(ctx context.Context) (*types.ProjectReport, error) {
	files, stats, err := Scan(ctx, r.deps.WorkDir, r.deps.Scan, r.deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", r.deps.WorkDir, err)
	}

	report := &types.ProjectReport{
		Root:         r.deps.WorkDir,
		Files:        files,
		FilesSkipped: stats.FilesSkipped,
	}

	for _, fr := range files {
		report.Issues = append(report.Issues, DeriveIssues(fr, r.deps.Thresholds)...)
		report.TotalLines += fr.Result.TotalLines
		report.ComplexityScore += fr.Result.ComplexityScore
	}

	report.QualityScore = QualityScore(report.Issues)
	report.DocCoverage = DocCoverage(files)
	report.AvgComplexity = AvgComplexity(files)
	report.Hotspots = Hotspots(files, r.deps.TopHotspots)

	// Provenance is best-effort; a non-repository work dir is fine.
	if prov, err := gitpkg.Describe(r.deps.WorkDir); err == nil {
		report.Provenance = prov
	}

	if r.deps.Suggester != nil {
		report.Suggestions = r.suggestDocstrings(ctx, files)
	}

	return report, nil
}

// suggestDocstrings asks the LLM for docstrings for the first few
// undocumented functions. Individual failures are logged and skipped so
// one bad call never fails the review.
func (r *Runner) suggestDocstrings(ctx context.Context, files []types.FileReport) []types.DocSuggestion {
	var suggestions []types.DocSuggestion

	for _, fr := range files {
		for _, fn := range fr.Result.Functions {
			if fn.HasDocstring {
				continue
			}
			if len(suggestions) >= r.deps.MaxSuggestions {
				return suggestions
			}

			doc, err := r.deps.Suggester.SuggestDocstring(ctx, fn, fr.Path)
			if err != nil {
				r.deps.Logger.Warn("docstring suggestion failed",
					"function", fn.Name, "path", fr.Path, "error", err)
				continue
			}
			suggestions = append(suggestions, types.DocSuggestion{
				FunctionName: fn.Name,
				FilePath:     fr.Path,
				Line:         fn.Line,
				Docstring:    doc,
			})
		}
	}

	return suggestions
}
