package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fuzzyCutoff: 0.6\n"), 0o644))

	content, err := ReadFileContent(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "fuzzyCutoff: 0.6\n", content)
}

func TestReadFileContentTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	_, err := ReadFileContent(path, 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestReadFileContentNotExist(t *testing.T) {
	_, err := ReadFileContent("/nonexistent/config.yaml", 0)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/config/shellfix.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config/shellfix.yaml"), got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("/etc/shellfix.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/shellfix.yaml", got)

	_, err = ExpandPath("~someoneelse/config.yaml")
	assert.Error(t, err)
}
