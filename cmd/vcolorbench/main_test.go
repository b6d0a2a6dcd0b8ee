package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectInstances(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.col", "a.col", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("p edge 1 0\n"), 0o644))
	}
	paths, err := collectInstances(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.col"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.col"), paths[1])
}

func TestBenchmarkInstance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.col")
	require.NoError(t, os.WriteFile(path, []byte("p edge 3 3\ne 1 2\ne 1 3\ne 2 3\n"), 0o644))

	runs, err := benchmarkInstance(path)
	require.NoError(t, err)
	assert.Len(t, runs, len(algorithms)*2)
	for _, r := range runs {
		assert.Equal(t, "triangle.col", r.instance)
		assert.GreaterOrEqual(t, r.colors, 3)
	}
}

func TestBenchmarkInstance_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.col")
	require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o644))

	_, err := benchmarkInstance(path)
	assert.Error(t, err)
}
