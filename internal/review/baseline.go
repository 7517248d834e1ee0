// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-baseline R1, R2;
//
//	docs/ARCHITECTURE § Baseline Comparison.
package review

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

// FileDelta records a per-file complexity change against the baseline.
type FileDelta struct {
	Path  string
	Old   int
	New   int
	Delta int
}

// BaselineDiff is the outcome of comparing a run against a saved baseline.
type BaselineDiff struct {
	Regressions  []FileDelta // Complexity increased
	Improvements []FileDelta // Complexity decreased
	ScoreDelta   float64     // New quality score minus baseline score
	SummaryDiff  string      // Human-readable diff of the two summaries
}

// SaveBaseline writes a report to path as indented JSON.
func SaveBaseline(path string, r *types.ProjectReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding baseline: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}
	return nil
}

// LoadBaseline reads a previously saved report.
func LoadBaseline(path string) (*types.ProjectReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading baseline: %w", err)
	}
	var r types.ProjectReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding baseline: %w", err)
	}
	return &r, nil
}

// CompareBaseline diffs a fresh report against a baseline. Per-file
// complexity deltas are computed structurally; the rendered summaries
// are diffed textually so the change is easy to eyeball.
//
// Implements: prd004-baseline R2.1-R2.4.
func CompareBaseline(baseline, current *types.ProjectReport) *BaselineDiff {
	diff := &BaselineDiff{
		ScoreDelta: current.QualityScore - baseline.QualityScore,
	}

	oldCx := make(map[string]int, len(baseline.Files))
	for _, fr := range baseline.Files {
		oldCx[fr.Path] = fr.Result.ComplexityScore
	}

	for _, fr := range current.Files {
		old, existed := oldCx[fr.Path]
		if !existed {
			old = 0 // New file: its whole complexity is a delta.
		}
		d := FileDelta{Path: fr.Path, Old: old, New: fr.Result.ComplexityScore}
		d.Delta = d.New - d.Old
		switch {
		case d.Delta > 0:
			diff.Regressions = append(diff.Regressions, d)
		case d.Delta < 0:
			diff.Improvements = append(diff.Improvements, d)
		}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(RenderSummary(baseline), RenderSummary(current), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diff.SummaryDiff = dmp.DiffPrettyText(diffs)

	return diff
}

// RenderBaselineDiff formats a comparison for terminal output.
func RenderBaselineDiff(d *BaselineDiff) string {
	out := fmt.Sprintf("quality score delta: %+.1f\n", d.ScoreDelta)
	for _, r := range d.Regressions {
		out += fmt.Sprintf("regression: %s complexity %d -> %d (%+d)\n", r.Path, r.Old, r.New, r.Delta)
	}
	for _, i := range d.Improvements {
		out += fmt.Sprintf("improvement: %s complexity %d -> %d (%+d)\n", i.Path, i.Old, i.New, i.Delta)
	}
	return out + "\n" + d.SummaryDiff
}
