// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-analyzer R4 (complexity metric);
//
//	docs/ARCHITECTURE § Structural Analyzer.
package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// branchKinds are the node types that add one decision point each.
// elif clauses count separately because each opens a fresh branch, and
// boolean_operator counts once per node: a chain of n short-circuit
// operands parses as n-1 nested operator nodes, so the per-node count
// equals the operand fan-out rule.
var branchKinds = map[string]bool{
	"if_statement":     true,
	"elif_clause":      true,
	"while_statement":  true,
	"for_statement":    true,
	"except_clause":    true,
	"break_statement":  true,
	"continue_statement": true,
	"boolean_operator": true,
}

// complexity returns the structural cyclomatic complexity of a function
// subtree: 1 for the baseline path plus one per decision point. The walk
// covers the full subtree; nested function and class definitions are
// included, matching the metric this tool uses as a regression baseline.
//
// Implements: prd002-analyzer R4.1-R4.4.
func complexity(fn *sitter.Node) int {
	count := 1
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if branchKinds[n.Type()] {
			count++
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}
	visit(fn)
	return count
}
