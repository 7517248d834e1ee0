// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

func TestHotspots_RanksMostCalledFunction(t *testing.T) {
	files := []types.FileReport{
		{Path: "util.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "validate", Line: 1},
		}}},
		{Path: "a.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "handler_a", Line: 1, Calls: []string{"validate"}},
		}}},
		{Path: "b.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "handler_b", Line: 1, Calls: []string{"validate", "handler_a"}},
		}}},
	}

	hotspots := Hotspots(files, 0)

	require.NotEmpty(t, hotspots)
	assert.Equal(t, "validate", hotspots[0].Name)
	assert.Equal(t, "util.py", hotspots[0].FilePath)
	assert.Equal(t, 2, hotspots[0].FanIn)
	assert.Greater(t, hotspots[0].Score, 0.0)
}

func TestHotspots_UncalledFunctionsExcluded(t *testing.T) {
	files := []types.FileReport{
		{Path: "a.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "lonely", Line: 1},
			{Name: "popular", Line: 5},
			{Name: "caller", Line: 9, Calls: []string{"popular"}},
		}}},
	}

	hotspots := Hotspots(files, 0)

	require.Len(t, hotspots, 1)
	assert.Equal(t, "popular", hotspots[0].Name)
}

func TestHotspots_RecursionIsNotFanIn(t *testing.T) {
	files := []types.FileReport{
		{Path: "a.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "fib", Line: 1, Calls: []string{"fib"}},
		}}},
	}

	assert.Empty(t, Hotspots(files, 0))
}

func TestHotspots_EmptyProject(t *testing.T) {
	assert.Nil(t, Hotspots(nil, 0))
}

func TestHotspots_TopNLimit(t *testing.T) {
	files := []types.FileReport{
		{Path: "a.py", Result: &types.AnalysisResult{Functions: []types.FunctionInfo{
			{Name: "f1", Line: 1},
			{Name: "f2", Line: 2},
			{Name: "f3", Line: 3},
			{Name: "main", Line: 10, Calls: []string{"f1", "f2", "f3"}},
		}}},
	}

	assert.Len(t, Hotspots(files, 2), 2)
}
