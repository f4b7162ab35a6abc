package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Runs before TestBatchCommand so the --max-concurrent flag is still unset;
// the worker bound must come from the defaults merge, not the flag.
func TestBatchCommandDefaultConcurrency(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	storageDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(storageDir, "uploads"), 0o755))
	writeStorageFile(t, filepath.Join(storageDir, "uploads"), "solo.txt", "cv text")

	outPath := filepath.Join(t.TempDir(), "batch.json")
	rootCmd.SetArgs([]string{
		"batch",
		"--dir", "uploads",
		"--storage-dir", storageDir,
		"--out", outPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results map[string]*types.CVAnalysisResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)
	assert.Contains(t, results, "solo.txt")
}

func TestBatchCommand(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	storageDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(storageDir, "uploads"), 0o755))
	writeStorageFile(t, filepath.Join(storageDir, "uploads"), "one.txt", "cv one")
	writeStorageFile(t, filepath.Join(storageDir, "uploads"), "two.txt", "cv two")

	outPath := filepath.Join(t.TempDir(), "batch.json")
	rootCmd.SetArgs([]string{
		"batch",
		"--dir", "uploads",
		"--storage-dir", storageDir,
		"--max-concurrent", "2",
		"--out", outPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results map[string]*types.CVAnalysisResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 2)
	assert.Contains(t, results, "one.txt")
	assert.Contains(t, results, "two.txt")
	for name, result := range results {
		require.NotNil(t, result, name)
		assert.NotNil(t, result.WorkExperience, name)
	}
}

func TestBatchCommandEmptyDir(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	storageDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(storageDir, "empty"), 0o755))

	rootCmd.SetArgs([]string{
		"batch",
		"--dir", "empty",
		"--storage-dir", storageDir,
		"--out", "",
	})
	assert.Error(t, rootCmd.Execute())
}
