package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// EntryPredicate filters candidate directory entries considered by
// CorrectPath, e.g. "is a directory" or "exists" (always true).
type EntryPredicate func(fullPath string) bool

// IsDir is an EntryPredicate matching directories only.
func IsDir(fullPath string) bool {
	info, err := os.Stat(fullPath)
	return err == nil && info.IsDir()
}

// Exists is an EntryPredicate matching anything that exists.
func Exists(fullPath string) bool {
	_, err := os.Stat(fullPath)
	return err == nil
}

// IsFile reports whether filename names an existing filesystem entry
// (file or directory). An absolute filename is checked directly; a
// relative one is resolved against workingDir first.
func IsFile(filename, workingDir string) bool {
	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(workingDir, path)
	}
	return pathExists(path)
}

// CorrectPath walks path component by component, substituting the
// closest existing entry (per predicate) at each level that doesn't
// exist as typed. Returns false if any step can't progress (including
// unreadable directories, which are treated as empty).
func CorrectPath(path, workingDir string, predicate EntryPredicate) (string, bool) {
	abs := filepath.IsAbs(path)

	var soFar string
	if abs {
		soFar = ""
	} else {
		soFar = workingDir
	}

	components := splitPathComponents(path)
	for _, comp := range components {
		switch comp {
		case ".":
			continue
		case "..":
			if soFar == "" || soFar == string(filepath.Separator) {
				return "", false
			}
			soFar = filepath.Dir(soFar)
			continue
		case string(filepath.Separator):
			soFar = string(filepath.Separator)
			continue
		}

		candidate := filepath.Join(soFar, comp)
		if pathExists(candidate) {
			soFar = candidate
			continue
		}

		entries, err := os.ReadDir(soFar)
		if err != nil {
			return "", false
		}
		var names []string
		for _, e := range entries {
			full := filepath.Join(soFar, e.Name())
			if predicate(full) {
				names = append(names, e.Name())
			}
		}
		best, ok := Closest(comp, names)
		if !ok {
			return "", false
		}
		soFar = filepath.Join(soFar, best)
	}

	if !abs {
		if rel, ok := stripPrefixDir(soFar, workingDir); ok {
			return rel, true
		}
	}
	return soFar, true
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// stripPrefixDir strips prefix from path if path is prefix or a
// subdirectory of it, returning the remainder without a leading
// separator (or "." if they're equal).
func stripPrefixDir(path, prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	if path == prefix {
		return ".", true
	}
	withSep := prefix
	if !strings.HasSuffix(withSep, string(filepath.Separator)) {
		withSep += string(filepath.Separator)
	}
	if strings.HasPrefix(path, withSep) {
		return strings.TrimPrefix(path, withSep), true
	}
	return "", false
}

// splitPathComponents splits a path into its components, keeping a
// leading separator as its own "root" component.
func splitPathComponents(path string) []string {
	var comps []string
	if strings.HasPrefix(path, string(filepath.Separator)) {
		comps = append(comps, string(filepath.Separator))
		path = strings.TrimPrefix(path, string(filepath.Separator))
	}
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == "" {
			continue
		}
		comps = append(comps, part)
	}
	return comps
}
