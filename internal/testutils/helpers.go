package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to name inside dir and returns the full path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create parent directory")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}

// WriteConfig writes a creational.yaml into a fresh temp dir and returns its path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "creational.yaml", content)
}
