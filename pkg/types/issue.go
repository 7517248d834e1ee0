// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R2 (issue model).
package types

// Severity classifies how urgent an issue is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "info"
	}
}

// Category identifies what kind of problem an issue describes.
type Category int

const (
	CategoryComplexity Category = iota
	CategoryDocumentation
	CategoryCodeSmell
)

// String returns the snake_case name of the category.
func (c Category) String() string {
	switch c {
	case CategoryComplexity:
		return "complexity"
	case CategoryDocumentation:
		return "documentation"
	default:
		return "code_smell"
	}
}

// Issue is one finding derived from an AnalysisResult.
type Issue struct {
	Severity       Severity
	Category       Category
	FilePath       string // Relative to the reviewed root
	Line           int
	Title          string
	Description    string
	Recommendation string
}
