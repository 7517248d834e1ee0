// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reviewer defines the public interface for go-reviewer, a
// structural Python code-review library.
// Implements: prd001-reviewer-interface R1, R2, R3, R6;
//
//	docs/ARCHITECTURE § Reviewer Interface.
package reviewer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

// Error types for the Reviewer API.
//
// Implements: prd001-reviewer-interface R6.1-R6.2.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLLMFailure    = errors.New("LLM client initialization failed")
)

// Config configures a Reviewer instance.
//
// Implements: prd001-reviewer-interface R1.1-R1.9.
type Config struct {
	WorkDir           string // Directory tree to review (required)
	MaxComplexity     int    // Complexity threshold for issues (default 10)
	LongFunctionLines int    // Line-count threshold for long functions (default 50)
	MaxFileSize       int64  // Files larger than this are skipped (default 10 MiB)
	Workers           int    // Parallel analysis workers (default 4)
	TopHotspots       int    // Hotspots to report (default 10)
	Model             string // Bedrock model ID (empty = no docstring suggestions)
	Region            string // AWS region (required when Model is set)
	MaxSuggestions    int    // Docstring suggestions per review (default 5)
	Logger            *slog.Logger
}

// Reviewer reviews a Python source tree.
//
// Implements: prd001-reviewer-interface R2.1-R2.3.
type Reviewer interface {
	// Review executes the full review lifecycle: scan the tree, analyze
	// every Python file, derive issues, score the project, rank hotspots,
	// record git provenance, and optionally suggest docstrings.
	Review(ctx context.Context) (*types.ProjectReport, error)
}
