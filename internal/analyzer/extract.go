// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-analyzer R2 (entity extraction);
//
//	docs/ARCHITECTURE § Structural Analyzer.
package analyzer

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

// accumulator carries the running collections for one analysis. A fresh
// accumulator is built per Analyze call so concurrent analyses never
// share state.
type accumulator struct {
	src       []byte
	functions []types.FunctionInfo
	classes   []types.ClassInfo
	imports   []string
	total     int // Running sum of flat-sequence complexities

	// Method records built during class extraction, keyed by node span,
	// so the general walk appends the same record to the flat sequence
	// instead of recomputing it.
	methods map[string]types.FunctionInfo
}

func newAccumulator(src []byte) *accumulator {
	return &accumulator{src: src, methods: make(map[string]types.FunctionInfo)}
}

// walk performs the single pre-order depth-first traversal, dispatching
// recognized definition and import nodes as they are first visited.
//
// Implements: prd002-analyzer R2.1-R2.3.
func (a *accumulator) walk(node *sitter.Node) {
	switch node.Type() {
	case "function_definition":
		fi, ok := a.methods[nodeKey(node)]
		if !ok {
			fi = a.extractFunction(node)
		}
		a.functions = append(a.functions, fi)
		a.total += fi.Complexity
	case "class_definition":
		a.classes = append(a.classes, a.extractClass(node))
	case "import_statement":
		a.extractImport(node)
	case "import_from_statement":
		a.extractImportFrom(node)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		a.walk(node.NamedChild(i))
	}
}

// nodeKey identifies a node by its byte span. Two distinct nodes of the
// same type cannot share an identical span.
func nodeKey(node *sitter.Node) string {
	return fmt.Sprintf("%d:%d", node.StartByte(), node.EndByte())
}

// extractFunction builds the record for one function_definition node.
//
// Implements: prd002-analyzer R2.4-R2.7.
func (a *accumulator) extractFunction(node *sitter.Node) types.FunctionInfo {
	fi := types.FunctionInfo{
		Name:        content(node.ChildByFieldName("name"), a.src),
		Line:        int(node.StartPoint().Row) + 1,
		Args:        a.extractParams(node.ChildByFieldName("parameters")),
		Complexity:  complexity(node),
		LinesOfCode: int(node.EndPoint().Row) - int(node.StartPoint().Row) + 1,
		Calls:       findCalls(node, a.src),
	}

	if ret := node.ChildByFieldName("return_type"); ret != nil {
		fi.Returns = content(ret, a.src)
		fi.HasReturns = true
	}

	if doc, ok := a.docstring(node); ok {
		fi.HasDocstring = true
		fi.Docstring = doc
	}

	return fi
}

// extractParams collects positional parameter names in declaration order.
// Splat parameters and positional/keyword separator tokens are skipped.
func (a *accumulator) extractParams(params *sitter.Node) []string {
	if params == nil {
		return nil
	}

	var names []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		switch p.Type() {
		case "identifier":
			names = append(names, content(p, a.src))
		case "typed_parameter":
			if inner := p.NamedChild(0); inner != nil && inner.Type() == "identifier" {
				names = append(names, content(inner, a.src))
			}
		case "default_parameter", "typed_default_parameter":
			if name := p.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
				names = append(names, content(name, a.src))
			}
		}
	}
	return names
}

// extractClass builds the record for one class_definition node. Methods
// are the function definitions in the direct class body; each is
// memoized so the general walk reuses it for the flat sequence.
//
// Implements: prd002-analyzer R3.1-R3.3.
func (a *accumulator) extractClass(node *sitter.Node) types.ClassInfo {
	ci := types.ClassInfo{
		Name: content(node.ChildByFieldName("name"), a.src),
		Line: int(node.StartPoint().Row) + 1,
	}

	// Plain-identifier bases only; attribute and keyword (metaclass=)
	// arguments are not base-name references.
	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			if b := supers.NamedChild(i); b.Type() == "identifier" {
				ci.Bases = append(ci.Bases, content(b, a.src))
			}
		}
	}

	if doc, ok := a.docstring(node); ok {
		ci.HasDocstring = true
		ci.Docstring = doc
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			item := body.NamedChild(i)
			if item.Type() == "decorated_definition" {
				if def := item.ChildByFieldName("definition"); def != nil {
					item = def
				}
			}
			if item.Type() != "function_definition" {
				continue
			}
			fi := a.extractFunction(item)
			a.methods[nodeKey(item)] = fi
			ci.Methods = append(ci.Methods, fi)
		}
	}

	return ci
}

// extractImport handles "import a.b, c as d" forms. Each imported module
// contributes its dotted name; aliases are ignored.
func (a *accumulator) extractImport(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			a.imports = append(a.imports, content(child, a.src))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				a.imports = append(a.imports, content(name, a.src))
			}
		}
	}
}

// extractImportFrom handles "from m import x" forms, rendering each name
// as the dotted concatenation "m.x". A purely relative module renders as
// the leading-dot form ".x".
func (a *accumulator) extractImportFrom(node *sitter.Node) {
	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode == nil {
		return
	}

	module := ""
	switch moduleNode.Type() {
	case "relative_import":
		// Relative dots are not part of the rendered module name.
		if dotted := firstNamedOfType(moduleNode, "dotted_name"); dotted != nil {
			module = content(dotted, a.src)
		}
	default:
		module = content(moduleNode, a.src)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.StartByte() == moduleNode.StartByte() && child.EndByte() == moduleNode.EndByte() {
			continue
		}
		switch child.Type() {
		case "dotted_name":
			a.imports = append(a.imports, module+"."+content(child, a.src))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				a.imports = append(a.imports, module+"."+content(name, a.src))
			}
		case "wildcard_import":
			a.imports = append(a.imports, module+".*")
		}
	}
}

// docstring returns the normalized leading string expression of a
// definition's body, if any.
func (a *accumulator) docstring(node *sitter.Node) (string, bool) {
	body := node.ChildByFieldName("body")
	if body == nil {
		return "", false
	}

	// The docstring is the first statement; comments are not statements.
	var first *sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		if c := body.NamedChild(i); c.Type() != "comment" {
			first = c
			break
		}
	}
	if first == nil || first.Type() != "expression_statement" {
		return "", false
	}

	expr := first.NamedChild(0)
	if expr == nil {
		return "", false
	}
	if expr.Type() != "string" && expr.Type() != "concatenated_string" {
		return "", false
	}

	return cleanDocstring(content(expr, a.src)), true
}

// firstNamedOfType returns the first named child with the given type.
func firstNamedOfType(node *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if c := node.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

// content returns a node's source text, or "" for a nil node.
func content(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return node.Content(src)
}

// cleanDocstring strips quote delimiters and normalizes indentation the
// way Python's docstring accessor does: the first line loses its leading
// whitespace, subsequent lines lose their common margin, and surrounding
// blank lines are dropped.
func cleanDocstring(raw string) string {
	s := stripQuotes(raw)

	lines := strings.Split(s, "\n")
	lines[0] = strings.TrimLeft(lines[0], " \t")

	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin > 0 {
		for i, line := range lines[1:] {
			if len(line) >= margin {
				lines[1+i] = line[margin:]
			} else {
				lines[1+i] = strings.TrimLeft(line, " \t")
			}
		}
	}

	return strings.Trim(strings.Join(lines, "\n"), "\n ")
}

// stripQuotes removes a string literal's prefix letters and quote
// delimiters, leaving the raw contents.
func stripQuotes(s string) string {
	s = strings.TrimLeft(s, "rRbBuUfF")
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}
