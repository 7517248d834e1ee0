// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R4, R5;
//
//	docs/ARCHITECTURE § Review Pipeline.
package types

// FileReport pairs one analyzed file with its analysis result.
type FileReport struct {
	Path   string // Relative to the reviewed root
	Result *AnalysisResult
}

// Hotspot is a function ranked by how much the rest of the project
// depends on it.
type Hotspot struct {
	Name     string
	FilePath string
	Line     int
	Score    float64
	FanIn    int // Number of distinct calling functions
}

// DocSuggestion is an LLM-generated docstring for an undocumented function.
type DocSuggestion struct {
	FunctionName string
	FilePath     string
	Line         int
	Docstring    string
}

// Provenance records the git state the review ran against. All fields are
// empty when the reviewed directory is not a git repository.
type Provenance struct {
	Commit string // Short HEAD hash
	Branch string
	Dirty  bool
}

// ProjectReport is the aggregate outcome of reviewing a directory tree.
type ProjectReport struct {
	Root            string
	Files           []FileReport
	Issues          []Issue
	Hotspots        []Hotspot
	Suggestions     []DocSuggestion
	Provenance      Provenance
	QualityScore    float64 // 0-100
	DocCoverage     float64 // Percent of functions with docstrings
	AvgComplexity   float64
	TotalLines      int
	ComplexityScore int
	FilesSkipped    int
}
