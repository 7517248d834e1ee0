// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-analyzer R1.5 (line statistics).
package analyzer

import "strings"

// LineStats partitions a source unit's physical lines. The counts always
// satisfy Total = Code + Comment + Blank.
type LineStats struct {
	Total   int
	Code    int
	Comment int
	Blank   int
}

// countLines classifies each physical line as blank, comment, or code.
// Blank is tested first (trimmed to empty), so a whitespace-only line
// before a comment marker is never double-counted and a line holding
// only a comment is always a comment line.
func countLines(src []byte, commentPrefix string) LineStats {
	lines := strings.Split(string(src), "\n")

	stats := LineStats{Total: len(lines)}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			stats.Blank++
		case strings.HasPrefix(trimmed, commentPrefix):
			stats.Comment++
		}
	}
	stats.Code = stats.Total - stats.Blank - stats.Comment

	return stats
}
