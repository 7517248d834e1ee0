// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R3 (scoring).
package review

import "github.com/petar-djukic/go-reviewer/pkg/types"

const maxScore = 100.0

// severityWeights are the quality-score penalties per issue.
var severityWeights = map[types.Severity]float64{
	types.SeverityCritical: 10,
	types.SeverityHigh:     5,
	types.SeverityMedium:   2,
	types.SeverityLow:      0.5,
	types.SeverityInfo:     0,
}

// QualityScore converts derived issues into a 0-100 score: a clean
// project scores 100, and each issue subtracts its severity weight.
func QualityScore(issues []types.Issue) float64 {
	score := maxScore
	for _, issue := range issues {
		score -= severityWeights[issue.Severity]
	}
	if score < 0 {
		return 0
	}
	return score
}

// DocCoverage returns the percentage of functions carrying a docstring
// across all files, 0 when there are no functions.
func DocCoverage(files []types.FileReport) float64 {
	total, documented := 0, 0
	for _, fr := range files {
		for _, f := range fr.Result.Functions {
			total++
			if f.HasDocstring {
				documented++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(documented) / float64(total) * 100
}

// AvgComplexity returns the mean function complexity across all files,
// 0 when there are no functions.
func AvgComplexity(files []types.FileReport) float64 {
	total, sum := 0, 0
	for _, fr := range files {
		total += len(fr.Result.Functions)
		sum += fr.Result.ComplexityScore
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}
