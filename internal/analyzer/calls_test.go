// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCalls_DirectAndMethodCalls(t *testing.T) {
	result := mustAnalyze(t, `def f(items, log):
    total = sum(items)
    log.info("done")
    parse(str(total))
    return total
`)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, []string{"info", "parse", "str", "sum"}, result.Functions[0].Calls,
		"method calls contribute the trailing attribute name only")
}

func TestFindCalls_ChainedReceiverKeepsTrailingName(t *testing.T) {
	result := mustAnalyze(t, `def f(db):
    return db.session.query().filter()
`)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, []string{"filter", "query"}, result.Functions[0].Calls)
}

func TestFindCalls_Deduplicated(t *testing.T) {
	result := mustAnalyze(t, `def f(a, b):
    print(a)
    print(b)
    print(a + b)
`)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, []string{"print"}, result.Functions[0].Calls)
}

func TestFindCalls_NoCalls(t *testing.T) {
	result := mustAnalyze(t, `def f(a, b):
    return a + b
`)

	require.Len(t, result.Functions, 1)
	assert.Empty(t, result.Functions[0].Calls)
}
