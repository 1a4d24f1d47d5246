package fileio

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is looked for at the pack root; its patterns extend the
// defaults below.
const IgnoreFileName = ".packmedicignore"

var ignoreDefaults = []string{
	// Defaults (can be overridden with a negating pattern preceded with !)

	// Exclude VCS metadata
	".git/**",
	".gitattributes",
	".gitignore",

	// Exclude OS metadata
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",

	// Exclude this tool's own backups
	"backup/**",

	// Exclude modeling project files that often sit next to the exported assets
	"*.bbmodel",
	"*.psd",

	IgnoreFileName,
}

// LoadIgnore compiles the ignore patterns for a pack root.
func LoadIgnore(root string) *gitignore.GitIgnore {
	ignore, _ := readIgnoreFile(filepath.Join(root, IgnoreFileName))
	return ignore
}

func readIgnoreFile(path string) (*gitignore.GitIgnore, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gitignore.CompileIgnoreLines(ignoreDefaults...), false
	}

	s := strings.Split(string(data), "\n")
	var lines []string
	lines = append(lines, ignoreDefaults...)
	lines = append(lines, s...)
	return gitignore.CompileIgnoreLines(lines...), true
}
