// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-analyzer R2.8 (call-reference finder).
package analyzer

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// findCalls returns the distinct names used as call targets within a
// function subtree, sorted for determinism. A direct name call
// contributes the identifier; a method call contributes only the
// trailing attribute name, discarding the receiver. The result is a
// rough call-fan-out signal, not a resolved call graph.
func findCalls(fn *sitter.Node, src []byte) []string {
	seen := make(map[string]bool)

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if n.Type() == "call" {
			if callee := n.ChildByFieldName("function"); callee != nil {
				switch callee.Type() {
				case "identifier":
					seen[callee.Content(src)] = true
				case "attribute":
					if attr := callee.ChildByFieldName("attribute"); attr != nil {
						seen[attr.Content(src)] = true
					}
				}
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			visit(n.NamedChild(i))
		}
	}
	visit(fn)

	if len(seen) == 0 {
		return nil
	}
	calls := make([]string, 0, len(seen))
	for name := range seen {
		calls = append(calls, name)
	}
	sort.Strings(calls)
	return calls
}
