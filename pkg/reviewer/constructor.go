// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-reviewer-interface R4;
//
//	docs/ARCHITECTURE § Reviewer Interface.
package reviewer

import (
	"context"
	"fmt"
	"os"

	"github.com/petar-djukic/go-reviewer/internal/llm"
	"github.com/petar-djukic/go-reviewer/internal/review"
	"github.com/petar-djukic/go-reviewer/pkg/types"
)

// New validates the config, initializes the optional LLM client, and
// returns a ready-to-use Reviewer. It does not touch the work directory;
// that happens in Review.
//
// Implements: prd001-reviewer-interface R4.1-R4.3.
func New(cfg Config) (Reviewer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var suggester review.Suggester
	if cfg.Model != "" {
		client, err := llm.NewClient(context.Background(), llm.ClientConfig{
			ModelID: cfg.Model,
			Region:  cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLLMFailure, err)
		}
		suggester = client
	}

	runner := review.NewRunner(review.Deps{
		WorkDir: cfg.WorkDir,
		Scan: review.ScanConfig{
			MaxFileSize: cfg.MaxFileSize,
			Workers:     cfg.Workers,
		},
		Thresholds: review.Thresholds{
			MaxComplexity:     cfg.MaxComplexity,
			LongFunctionLines: cfg.LongFunctionLines,
		},
		TopHotspots:    cfg.TopHotspots,
		Suggester:      suggester,
		MaxSuggestions: cfg.MaxSuggestions,
		Logger:         cfg.Logger,
	})

	return &reviewerAdapter{runner: runner}, nil
}

// reviewerAdapter adapts internal/review.Runner to the public Reviewer
// interface.
type reviewerAdapter struct {
	runner *review.Runner
}

func (a *reviewerAdapter) Review(ctx context.Context) (*types.ProjectReport, error) {
	return a.runner.Run(ctx)
}

// validateConfig checks that required fields are present.
//
// Implements: prd001-reviewer-interface R1.8-R1.9.
func validateConfig(cfg Config) error {
	if cfg.WorkDir == "" {
		return fmt.Errorf("WorkDir is required")
	}
	if info, err := os.Stat(cfg.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("WorkDir %q does not exist or is not a directory", cfg.WorkDir)
	}
	if cfg.Model != "" && cfg.Region == "" {
		return fmt.Errorf("Region is required when Model is set")
	}
	return nil
}
