// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package review

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestTree writes the given files under a temp dir and returns it.
func setupTestTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func TestScan_AnalyzesPythonFiles(t *testing.T) {
	dir := setupTestTree(t, map[string]string{
		"app.py":        "def main():\n    pass\n",
		"pkg/util.py":   "def helper(x):\n    return x\n",
		"README.md":     "# readme\n",
		"pkg/data.json": "{}",
	})

	files, stats, err := Scan(context.Background(), dir, ScanConfig{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 0, stats.FilesSkipped)
	require.Len(t, files, 2)

	paths := []string{files[0].Path, files[1].Path}
	assert.Contains(t, paths, "app.py")
	assert.Contains(t, paths, filepath.Join("pkg", "util.py"))
}

func TestScan_SkipsExcludedDirectories(t *testing.T) {
	dir := setupTestTree(t, map[string]string{
		"app.py":                  "x = 1\n",
		".venv/lib/site.py":       "x = 1\n",
		"__pycache__/app.py":      "x = 1\n",
		"node_modules/pkg/gen.py": "x = 1\n",
	})

	files, stats, err := Scan(context.Background(), dir, ScanConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesProcessed)
	require.Len(t, files, 1)
	assert.Equal(t, "app.py", files[0].Path)
}

func TestScan_SkipsBrokenFilesWithoutAborting(t *testing.T) {
	dir := setupTestTree(t, map[string]string{
		"good.py":   "def f():\n    return 1\n",
		"broken.py": "def f(:\n",
	})

	files, stats, err := Scan(context.Background(), dir, ScanConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesSkipped)
	require.Len(t, files, 1)
	assert.Equal(t, "good.py", files[0].Path)
}

func TestScan_SkipsOversizedFiles(t *testing.T) {
	dir := setupTestTree(t, map[string]string{
		"small.py": "x = 1\n",
		"big.py":   "x = 1  # padding padding padding\n",
	})

	files, stats, err := Scan(context.Background(), dir, ScanConfig{MaxFileSize: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesSkipped)
	require.Len(t, files, 1)
	assert.Equal(t, "small.py", files[0].Path)
}

func TestScan_ParallelWorkersProduceCompleteResults(t *testing.T) {
	tree := make(map[string]string)
	for i := 0; i < 30; i++ {
		tree[filepath.Join("pkg", string(rune('a'+i%26))+"_mod"+string(rune('0'+i/26))+".py")] =
			"def f(x):\n    if x:\n        return 1\n    return 0\n"
	}
	dir := setupTestTree(t, tree)

	files, stats, err := Scan(context.Background(), dir, ScanConfig{Workers: 8}, nil)
	require.NoError(t, err)
	assert.Equal(t, len(tree), stats.FilesProcessed)
	require.Len(t, files, len(tree))
	for _, fr := range files {
		assert.Len(t, fr.Result.Functions, 1, "file %s", fr.Path)
		assert.Equal(t, 2, fr.Result.ComplexityScore, "file %s", fr.Path)
	}
}
