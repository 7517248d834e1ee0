// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-review-pipeline R4 (hotspot ranking);
//
//	docs/ARCHITECTURE § Review Pipeline.
package review

import (
	"math"
	"sort"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const (
	defaultDamping   = 0.85
	defaultMaxIter   = 100
	defaultTolerance = 1e-6
	defaultTopN      = 10
)

// callEdge is a directed "calls" edge between two functions.
type callEdge struct {
	from, to int
	weight   float64
}

// callGraph is a directed graph whose nodes are the project's functions
// and whose edges follow call-fan-out names resolved against every
// function of the same name anywhere in the project. Resolution by bare
// name is deliberately rough; the signal ranks dependency weight, it
// does not claim precise call targets.
type callGraph struct {
	nodes []types.Hotspot
	edges []callEdge
}

// buildCallGraph constructs the call graph from per-file analysis
// results. Node order follows the flat function sequences in file order.
func buildCallGraph(files []types.FileReport) *callGraph {
	g := &callGraph{}

	// Nodes and name index.
	byName := make(map[string][]int)
	callsOf := make([][]string, 0)
	for _, fr := range files {
		for _, f := range fr.Result.Functions {
			idx := len(g.nodes)
			g.nodes = append(g.nodes, types.Hotspot{
				Name:     f.Name,
				FilePath: fr.Path,
				Line:     f.Line,
			})
			byName[f.Name] = append(byName[f.Name], idx)
			callsOf = append(callsOf, f.Calls)
		}
	}

	// Edges: one per (caller, callee) pair, deduplicated per caller.
	for from, calls := range callsOf {
		for _, name := range calls {
			for _, to := range byName[name] {
				if to == from {
					continue // Recursion is not fan-in.
				}
				g.edges = append(g.edges, callEdge{from: from, to: to, weight: 1})
			}
		}
	}

	return g
}

// Hotspots ranks the project's functions by weighted PageRank over the
// call graph, highest first, and returns the top n (default 10) that
// have at least one caller.
//
// Implements: prd003-review-pipeline R4.1-R4.4.
func Hotspots(files []types.FileReport, n int) []types.Hotspot {
	if n == 0 {
		n = defaultTopN
	}

	g := buildCallGraph(files)
	count := len(g.nodes)
	if count == 0 {
		return nil
	}

	// Fan-in counts distinct callers.
	callers := make([]map[int]bool, count)
	outEdges := make([][]callEdge, count)
	outWeight := make([]float64, count)
	for _, e := range g.edges {
		if callers[e.to] == nil {
			callers[e.to] = make(map[int]bool)
		}
		callers[e.to][e.from] = true
		outEdges[e.from] = append(outEdges[e.from], e)
		outWeight[e.from] += e.weight
	}

	// Uniform initialization.
	rank := make([]float64, count)
	for i := range rank {
		rank[i] = 1.0 / float64(count)
	}

	newRank := make([]float64, count)
	uniform := 1.0 / float64(count)
	for iter := 0; iter < defaultMaxIter; iter++ {
		for i := range newRank {
			newRank[i] = (1.0 - defaultDamping) * uniform
		}

		for i := 0; i < count; i++ {
			if outWeight[i] == 0 {
				// Dangling node: spread its rank uniformly.
				for j := range newRank {
					newRank[j] += defaultDamping * rank[i] * uniform
				}
				continue
			}
			for _, e := range outEdges[i] {
				newRank[e.to] += defaultDamping * rank[i] * (e.weight / outWeight[i])
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(newRank[i] - rank[i])
		}
		copy(rank, newRank)
		if diff < defaultTolerance {
			break
		}
	}

	var ranked []types.Hotspot
	for i, node := range g.nodes {
		if len(callers[i]) == 0 {
			continue
		}
		node.Score = rank[i]
		node.FanIn = len(callers[i])
		ranked = append(ranked, node)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].FilePath != ranked[j].FilePath {
			return ranked[i].FilePath < ranked[j].FilePath
		}
		return ranked[i].Line < ranked[j].Line
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
