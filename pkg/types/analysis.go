// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across go-reviewer packages.
// Implements: prd001-reviewer-interface R5 (shared types).
package types

// FunctionInfo describes one function or method definition extracted from
// a source file. A method appears both in its owning ClassInfo and in the
// flat AnalysisResult.Functions sequence.
//
// Implements: prd002-analyzer R2.1-R2.4.
type FunctionInfo struct {
	Name         string   // Function name
	Line         int      // Definition line (1-based)
	Args         []string // Positional parameter names, in declaration order
	Returns      string   // Rendered return annotation; empty when absent
	HasReturns   bool     // Distinguishes "no annotation" from an empty rendering
	Complexity   int      // Cyclomatic complexity, always >= 1
	LinesOfCode  int      // End line - start line + 1
	HasDocstring bool     // True when the body leads with a string expression
	Docstring    string   // Normalized docstring text; empty when absent
	Calls        []string // Distinct call-target names, sorted
}

// ClassInfo describes one class definition and its methods.
//
// Implements: prd002-analyzer R3.1-R3.3.
type ClassInfo struct {
	Name         string
	Line         int
	Methods      []FunctionInfo // Direct body methods, in source order
	Bases        []string       // Plain-identifier base names, unresolved
	HasDocstring bool
	Docstring    string
}

// AnalysisResult is the complete structural analysis of one source unit.
// It is immutable once returned by the analyzer.
//
// Implements: prd002-analyzer R1.4, R5.
type AnalysisResult struct {
	Functions       []FunctionInfo // All functions incl. methods, traversal order
	Classes         []ClassInfo
	Imports         []string // Source order, duplicates preserved
	TotalLines      int
	CodeLines       int
	CommentLines    int
	BlankLines      int
	ComplexityScore int // Sum of Functions[i].Complexity
}

// Summary holds derived cross-entity statistics for one AnalysisResult.
// It is computed on demand and never cached.
type Summary struct {
	TotalFunctions       int
	TotalClasses         int
	TotalImports         int
	AverageComplexity    float64 // 0 when there are no functions
	MaxComplexity        int     // 0 when there are no functions
	FunctionsWithoutDocs int
	ClassesWithoutDocs   int
}

// Summary derives the summary statistics from the result.
//
// Implements: prd002-analyzer R5.1-R5.4.
func (r *AnalysisResult) Summary() Summary {
	s := Summary{
		TotalFunctions: len(r.Functions),
		TotalClasses:   len(r.Classes),
		TotalImports:   len(r.Imports),
	}

	for _, f := range r.Functions {
		if f.Complexity > s.MaxComplexity {
			s.MaxComplexity = f.Complexity
		}
		if !f.HasDocstring {
			s.FunctionsWithoutDocs++
		}
	}
	if len(r.Functions) > 0 {
		s.AverageComplexity = float64(r.ComplexityScore) / float64(len(r.Functions))
	}

	for _, c := range r.Classes {
		if !c.HasDocstring {
			s.ClassesWithoutDocs++
		}
	}

	return s
}
