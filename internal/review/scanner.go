// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package review runs the structural analyzer across a directory tree
// and derives issues, scores, hotspots, and reports from the results.
// Implements: prd003-review-pipeline R1, R2, R3, R4;
//
//	docs/ARCHITECTURE § Review Pipeline.
package review

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-reviewer/internal/analyzer"
	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const (
	defaultMaxFileSize = 10 << 20 // 10 MiB
	defaultWorkers     = 4
	sourceExt          = ".py"
)

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
}

// ScanConfig bounds the scanner's work.
type ScanConfig struct {
	MaxFileSize int64 // Files larger than this are skipped (default 10 MiB)
	Workers     int   // Parallel analyses (default 4)
}

// ScanStats tracks scanning statistics.
type ScanStats struct {
	FilesProcessed int
	FilesSkipped   int
}

// Scan walks root, analyzes every Python file, and returns the per-file
// reports in walk order. Unreadable, unparseable, and oversized files
// are skipped and counted, never fatal; analyses run in parallel at file
// granularity, each over its own accumulation state.
//
// Implements: prd003-review-pipeline R1.1-R1.6.
func Scan(ctx context.Context, root string, cfg ScanConfig, logger *slog.Logger) ([]types.FileReport, ScanStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	maxSize := cfg.MaxFileSize
	if maxSize == 0 {
		maxSize = defaultMaxFileSize
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = defaultWorkers
	}

	var stats ScanStats

	// Collect candidate paths first so results keep walk order.
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files we cannot stat.
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if info.IsDir() {
			if skipDirs[filepath.Base(path)] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != sourceExt {
			return nil
		}
		if info.Size() > maxSize {
			logger.Warn("skipping oversized file", "path", path, "size", info.Size())
			stats.FilesSkipped++
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	a := analyzer.New(logger)
	results := make([]*types.AnalysisResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = a.AnalyzeFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	var reports []types.FileReport
	for i, path := range paths {
		if results[i] == nil {
			stats.FilesSkipped++
			continue
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		reports = append(reports, types.FileReport{Path: rel, Result: results[i]})
		stats.FilesProcessed++
	}

	return reports, stats, nil
}
