// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R5 (report rendering);
//
//	docs/ARCHITECTURE § Review Pipeline.
package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const maxIssuesShown = 20

// RenderText produces the human-readable report for one review run.
func RenderText(r *types.ProjectReport) string {
	var buf strings.Builder

	buf.WriteString(RenderSummary(r))
	buf.WriteString("\n")

	if len(r.Issues) > 0 {
		buf.WriteString("Issues:\n")
		shown := r.Issues
		if len(shown) > maxIssuesShown {
			shown = shown[:maxIssuesShown]
		}
		for _, issue := range shown {
			fmt.Fprintf(&buf, "  [%s] %s:%d %s (%s)\n",
				issue.Severity, issue.FilePath, issue.Line, issue.Title, issue.Category)
		}
		if len(r.Issues) > maxIssuesShown {
			fmt.Fprintf(&buf, "  ... and %d more\n", len(r.Issues)-maxIssuesShown)
		}
		buf.WriteString("\n")
	}

	if len(r.Hotspots) > 0 {
		buf.WriteString("Hotspots (most depended-on functions):\n")
		for _, h := range r.Hotspots {
			fmt.Fprintf(&buf, "  %-24s %s:%d fan-in=%d score=%.4f\n",
				h.Name, h.FilePath, h.Line, h.FanIn, h.Score)
		}
		buf.WriteString("\n")
	}

	if len(r.Suggestions) > 0 {
		buf.WriteString("Suggested docstrings:\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&buf, "  %s (%s:%d):\n    %s\n",
				s.FunctionName, s.FilePath, s.Line, strings.ReplaceAll(s.Docstring, "\n", "\n    "))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("Files:\n")
	for _, fr := range r.Files {
		s := fr.Result.Summary()
		fmt.Fprintf(&buf, "  %-40s funcs=%d classes=%d imports=%d cx=%d lines=%d\n",
			fr.Path, s.TotalFunctions, s.TotalClasses, s.TotalImports,
			fr.Result.ComplexityScore, fr.Result.TotalLines)
	}

	return buf.String()
}

// RenderSummary produces the compact per-run summary block. The baseline
// comparison diffs two of these, so the layout is stable: one fact per
// line, files sorted by path.
func RenderSummary(r *types.ProjectReport) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Review of %s\n", r.Root)
	if r.Provenance.Commit != "" {
		dirty := ""
		if r.Provenance.Dirty {
			dirty = " (dirty)"
		}
		fmt.Fprintf(&buf, "commit: %s on %s%s\n", r.Provenance.Commit, r.Provenance.Branch, dirty)
	}
	fmt.Fprintf(&buf, "files analyzed: %d (skipped %d)\n", len(r.Files), r.FilesSkipped)
	fmt.Fprintf(&buf, "quality score: %.1f/100\n", r.QualityScore)
	fmt.Fprintf(&buf, "doc coverage: %.1f%%\n", r.DocCoverage)
	fmt.Fprintf(&buf, "avg complexity: %.2f\n", r.AvgComplexity)
	fmt.Fprintf(&buf, "total complexity: %d\n", r.ComplexityScore)
	fmt.Fprintf(&buf, "total lines: %d\n", r.TotalLines)
	fmt.Fprintf(&buf, "issues: %s\n", issueCounts(r.Issues))

	paths := make([]string, 0, len(r.Files))
	cxByPath := make(map[string]int, len(r.Files))
	for _, fr := range r.Files {
		paths = append(paths, fr.Path)
		cxByPath[fr.Path] = fr.Result.ComplexityScore
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(&buf, "file %s cx=%d\n", p, cxByPath[p])
	}

	return buf.String()
}

// issueCounts renders "critical=0 high=1 medium=2 low=5".
func issueCounts(issues []types.Issue) string {
	counts := make(map[types.Severity]int)
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return fmt.Sprintf("critical=%d high=%d medium=%d low=%d",
		counts[types.SeverityCritical], counts[types.SeverityHigh],
		counts[types.SeverityMedium], counts[types.SeverityLow])
}
