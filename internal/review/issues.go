// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R2 (issue derivation).
package review

import (
	"fmt"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const (
	defaultMaxComplexity   = 10
	defaultLongFunction    = 50
	severeComplexityFactor = 2
)

// Thresholds configure issue derivation.
type Thresholds struct {
	MaxComplexity     int // Complexity above this raises an issue (default 10)
	LongFunctionLines int // Function length above this raises an issue (default 50)
}

func (t *Thresholds) applyDefaults() {
	if t.MaxComplexity == 0 {
		t.MaxComplexity = defaultMaxComplexity
	}
	if t.LongFunctionLines == 0 {
		t.LongFunctionLines = defaultLongFunction
	}
}

// DeriveIssues inspects one file's analysis result and returns the
// findings it warrants. The flat function sequence covers methods, so
// per-function checks run once per function; class documentation is
// checked separately.
//
// Implements: prd003-review-pipeline R2.1-R2.5.
func DeriveIssues(file types.FileReport, th Thresholds) []types.Issue {
	th.applyDefaults()

	var issues []types.Issue

	for _, f := range file.Result.Functions {
		if f.Complexity > th.MaxComplexity {
			severity := types.SeverityMedium
			if f.Complexity > severeComplexityFactor*th.MaxComplexity {
				severity = types.SeverityHigh
			}
			issues = append(issues, types.Issue{
				Severity: severity,
				Category: types.CategoryComplexity,
				FilePath: file.Path,
				Line:     f.Line,
				Title:    fmt.Sprintf("high complexity in %s", f.Name),
				Description: fmt.Sprintf("cyclomatic complexity %d exceeds the threshold of %d",
					f.Complexity, th.MaxComplexity),
				Recommendation: "split the function into smaller units with fewer decision points",
			})
		}

		if !f.HasDocstring {
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       types.CategoryDocumentation,
				FilePath:       file.Path,
				Line:           f.Line,
				Title:          fmt.Sprintf("missing docstring on %s", f.Name),
				Description:    "the function has no documentation string",
				Recommendation: "add a docstring describing parameters and return value",
			})
		}

		if f.LinesOfCode > th.LongFunctionLines {
			issues = append(issues, types.Issue{
				Severity: types.SeverityMedium,
				Category: types.CategoryCodeSmell,
				FilePath: file.Path,
				Line:     f.Line,
				Title:    fmt.Sprintf("long function %s", f.Name),
				Description: fmt.Sprintf("%d lines exceeds the %d line guideline",
					f.LinesOfCode, th.LongFunctionLines),
				Recommendation: "extract helpers until the function fits on one screen",
			})
		}
	}

	for _, c := range file.Result.Classes {
		if !c.HasDocstring {
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       types.CategoryDocumentation,
				FilePath:       file.Path,
				Line:           c.Line,
				Title:          fmt.Sprintf("missing docstring on class %s", c.Name),
				Description:    "the class has no documentation string",
				Recommendation: "add a docstring describing the class responsibility",
			})
		}
	}

	return issues
}
