package core

import (
	"path/filepath"
	"strings"
	"unicode"
)

// NormalizeName reports whether name breaks the resource pack naming
// convention (lowercase, no spaces) and returns the conforming form: spaces
// replaced with underscores, everything lowercased. Normalizing an already
// conforming name is a no-op.
func NormalizeName(name string) (bool, string) {
	for _, r := range name {
		if r == ' ' || unicode.IsUpper(r) {
			return true, strings.ToLower(strings.ReplaceAll(name, " ", "_"))
		}
	}
	return false, name
}

// PathIdentifier converts a file path into the identifier used to match
// declared references against files on disk: relative to base, forward
// slashes, extension stripped.
func PathIdentifier(base, path string) (string, error) {
	rel, err := RelSlashPath(base, path)
	if err != nil {
		return "", err
	}
	if ext := filepath.Ext(rel); ext != "" {
		rel = strings.TrimSuffix(rel, ext)
	}
	return rel, nil
}

// RelSlashPath returns path relative to base in forward-slash form.
func RelSlashPath(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// FileStem returns the file name without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
