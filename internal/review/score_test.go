// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

func TestQualityScore_CleanProject(t *testing.T) {
	assert.Equal(t, 100.0, QualityScore(nil))
}

func TestQualityScore_SubtractsSeverityWeights(t *testing.T) {
	issues := []types.Issue{
		{Severity: types.SeverityCritical}, // -10
		{Severity: types.SeverityHigh},     // -5
		{Severity: types.SeverityMedium},   // -2
		{Severity: types.SeverityLow},      // -0.5
	}
	assert.InDelta(t, 82.5, QualityScore(issues), 1e-9)
}

func TestQualityScore_ClampsAtZero(t *testing.T) {
	issues := make([]types.Issue, 20)
	for i := range issues {
		issues[i] = types.Issue{Severity: types.SeverityCritical}
	}
	assert.Equal(t, 0.0, QualityScore(issues))
}

func TestDocCoverage(t *testing.T) {
	files := []types.FileReport{
		{Path: "a.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "a", HasDocstring: true},
			{Name: "b"},
		}}},
		{Path: "b.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "c", HasDocstring: true},
			{Name: "d", HasDocstring: true},
		}}},
	}
	assert.InDelta(t, 75.0, DocCoverage(files), 1e-9)
}

func TestDocCoverage_NoFunctions(t *testing.T) {
	files := []types.FileReport{
		{Path: "a.py", Result: &types.AnalysisResult{}},
	}
	assert.Equal(t, 0.0, DocCoverage(files))
}

func TestAvgComplexity(t *testing.T) {
	files := []types.FileReport{
		{Path: "a.py", Result: &types.AnalysisResult{
			Functions:       []types.FunctionInfo{{Complexity: 1}, {Complexity: 5}},
			ComplexityScore: 6,
		}},
		{Path: "b.py", Result: &types.AnalysisResult{
			Functions:       []types.FunctionInfo{{Complexity: 3}},
			ComplexityScore: 3,
		}},
	}
	assert.InDelta(t, 3.0, AvgComplexity(files), 1e-9)
}

func TestAvgComplexity_NoFunctions(t *testing.T) {
	assert.Equal(t, 0.0, AvgComplexity(nil))
}
