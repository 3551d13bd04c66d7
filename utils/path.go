package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFileContent reads a file's contents, expanding a leading "~" to
// the user's home directory and refusing anything larger than maxSize
// (0 defaults to 1MB). Used by the config loader to read the optional
// tunables file.
func ReadFileContent(filePath string, maxSize int64) (string, error) {
	if maxSize == 0 {
		maxSize = 1 * 1024 * 1024
	}

	expandedPath, err := ExpandPath(filePath)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", absPath)
	}
	if err != nil {
		return "", fmt.Errorf("accessing file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", absPath)
	}
	if info.Size() > maxSize {
		return "", fmt.Errorf("file %q is too large (%.2fMB, limit %.2fMB)",
			absPath, float64(info.Size())/1024/1024, float64(maxSize)/1024/1024)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

// ExpandPath expands a leading "~" to the current user's home
// directory. Paths not starting with "~" are returned unmodified.
// Expansion of "~username" is not supported.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}

	if len(path) == 1 {
		return home, nil
	}

	if path[1] != '/' && path[1] != filepath.Separator {
		return "", fmt.Errorf("expansion of ~username is not supported, only ~ for the current user's home directory")
	}
	return filepath.Join(home, path[2:]), nil
}
