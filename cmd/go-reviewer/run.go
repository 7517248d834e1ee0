// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd009-technology-stack R4.3-R4.9.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-reviewer/internal/analyzer"
	"github.com/petar-djukic/go-reviewer/internal/review"
	"github.com/petar-djukic/go-reviewer/pkg/reviewer"
)

// newReviewCmd creates the "review" command.
func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a Python source tree",
		Long:  "Review scans the work directory, analyzes every Python file, and prints issues, scores, and hotspots.",
		RunE:  runReview,
	}

	cmd.Flags().String("format", "text", "Output format: text or json")
	cmd.Flags().String("save-baseline", "", "Write the report to this path for later comparison")

	return cmd
}

// runReview executes a full review.
func runReview(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	r, err := reviewer.New(configFromViper())
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	report, err := r.Review(ctx)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if path, _ := cmd.Flags().GetString("save-baseline"); path != "" {
		if err := review.SaveBaseline(path, report); err != nil {
			return fmt.Errorf("saving baseline: %w", err)
		}
	}

	if format == "json" {
		return printJSON(report)
	}
	fmt.Print(review.RenderText(report))
	return nil
}

// newAnalyzeCmd creates the "analyze" command.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file.py>",
		Short: "Analyze a single Python file",
		Long:  "Analyze parses one file and prints its structural analysis as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			result, err := analyzer.New(nil).Analyze(ctx, src)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", args[0], err)
			}

			return printJSON(struct {
				File    string      `json:"file"`
				Result  interface{} `json:"result"`
				Summary interface{} `json:"summary"`
			}{args[0], result, result.Summary()})
		},
	}
}

// newDiffCmd creates the "diff" command.
func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the current tree against a saved baseline",
		Long:  "Diff re-reviews the work directory and reports per-file complexity regressions and improvements against a baseline saved with 'review --save-baseline'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("baseline")

			baseline, err := review.LoadBaseline(path)
			if err != nil {
				return fmt.Errorf("loading baseline: %w", err)
			}

			r, err := reviewer.New(configFromViper())
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			current, err := r.Review(ctx)
			if err != nil {
				return fmt.Errorf("review failed: %w", err)
			}

			fmt.Print(review.RenderBaselineDiff(review.CompareBaseline(baseline, current)))
			return nil
		},
	}

	cmd.Flags().String("baseline", "", "Path to a saved baseline report (required)")
	cmd.MarkFlagRequired("baseline")

	return cmd
}

// configFromViper builds the reviewer config from bound flags, env vars,
// and the optional config file.
func configFromViper() reviewer.Config {
	return reviewer.Config{
		WorkDir:           viper.GetString("workdir"),
		MaxComplexity:     viper.GetInt("max-complexity"),
		LongFunctionLines: viper.GetInt("long-func-lines"),
		MaxFileSize:       viper.GetInt64("max-file-size"),
		Workers:           viper.GetInt("workers"),
		TopHotspots:       viper.GetInt("top-hotspots"),
		Model:             viper.GetString("model"),
		Region:            viper.GetString("region"),
		MaxSuggestions:    viper.GetInt("max-suggestions"),
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
