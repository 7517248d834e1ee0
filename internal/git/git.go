// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git records the repository state a review ran against.
// Implements: prd005-provenance R1;
//
//	docs/ARCHITECTURE § Git Provenance.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const shortHashLen = 8

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// Describe reports HEAD commit, branch, and dirty state for the
// repository at workDir. Not being a repository is an expected state;
// callers treat ErrNoGit as empty provenance.
//
// Implements: prd005-provenance R1.1-R1.4.
func Describe(workDir string) (types.Provenance, error) {
	repo, err := gogit.PlainOpen(workDir)
	if err != nil {
		return types.Provenance{}, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	head, err := repo.Head()
	if err != nil {
		// Repository without commits.
		return types.Provenance{}, fmt.Errorf("getting HEAD: %w", err)
	}

	prov := types.Provenance{
		Commit: head.Hash().String()[:shortHashLen],
		Branch: head.Name().Short(),
	}

	wt, err := repo.Worktree()
	if err != nil {
		return prov, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return prov, fmt.Errorf("getting status: %w", err)
	}
	prov.Dirty = !status.IsClean()

	return prov, nil
}
