// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command go-reviewer is the CLI for the go-reviewer library.
// Implements: prd009-technology-stack R4.1-R4.12;
//
//	docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "go-reviewer",
		Short: "Structural Python code review",
		Long:  "go-reviewer parses a Python source tree, scores its structure, flags complexity and documentation issues, and ranks the functions the project leans on most.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Directory tree to review")
	rootCmd.PersistentFlags().Int("max-complexity", 10, "Cyclomatic complexity threshold")
	rootCmd.PersistentFlags().Int("long-func-lines", 50, "Line-count threshold for long functions")
	rootCmd.PersistentFlags().Int64("max-file-size", 10*1024*1024, "Skip files larger than this many bytes")
	rootCmd.PersistentFlags().Int("workers", 4, "Parallel analysis workers")
	rootCmd.PersistentFlags().Int("top-hotspots", 10, "Number of hotspots to report")
	rootCmd.PersistentFlags().String("model", "", "Bedrock model ID for docstring suggestions")
	rootCmd.PersistentFlags().String("region", "", "AWS region for Bedrock")
	rootCmd.PersistentFlags().Int("max-suggestions", 5, "Docstring suggestions per review")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("max-complexity", rootCmd.PersistentFlags().Lookup("max-complexity"))
	viper.BindPFlag("long-func-lines", rootCmd.PersistentFlags().Lookup("long-func-lines"))
	viper.BindPFlag("max-file-size", rootCmd.PersistentFlags().Lookup("max-file-size"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("top-hotspots", rootCmd.PersistentFlags().Lookup("top-hotspots"))
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("max-suggestions", rootCmd.PersistentFlags().Lookup("max-suggestions"))

	// Env vars: GO_REVIEWER_MODEL, GO_REVIEWER_REGION, etc.
	viper.SetEnvPrefix("GO_REVIEWER")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".go-reviewer")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print go-reviewer version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("go-reviewer %s\n", version)
		},
	}
}
