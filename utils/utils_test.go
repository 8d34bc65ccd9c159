package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")

	assert.False(t, CheckFileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, CheckFileExists(path))
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")

	require.NoError(t, EnsureParentDir(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Bare file names have no parent to create.
	require.NoError(t, EnsureParentDir("plain.txt"))
}

func TestLogError_NilSafe(t *testing.T) {
	// Must not panic on nil error or nil logger.
	LogError(zap.NewNop(), nil, "ignored")
	LogError(nil, os.ErrNotExist, "ignored")
	LogError(zap.NewNop(), os.ErrNotExist, "logged", zap.String("k", "v"))
}
