package fileio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadIgnoreDefaults(t *testing.T) {
	ignore := LoadIgnore(t.TempDir())

	assert.True(t, ignore.MatchesPath("backup/20240101-000000/assets/minecraft/textures/item/ruby.png"))
	assert.True(t, ignore.MatchesPath("assets/minecraft/textures/item/ruby.psd"))
	assert.True(t, ignore.MatchesPath(".DS_Store"))
	assert.True(t, ignore.MatchesPath(IgnoreFileName))

	assert.False(t, ignore.MatchesPath("assets/minecraft/textures/item/ruby.png"))
	assert.False(t, ignore.MatchesPath("pack.mcmeta"))
}

func TestLoadIgnoreUserFile(t *testing.T) {
	dir := t.TempDir()
	writeFileT(t, filepath.Join(dir, IgnoreFileName), "*.tga\n")

	ignore := LoadIgnore(dir)

	assert.True(t, ignore.MatchesPath("assets/minecraft/textures/item/ruby.tga"))
	// Defaults still apply alongside the user's patterns.
	assert.True(t, ignore.MatchesPath("assets/minecraft/textures/item/ruby.psd"))
	assert.False(t, ignore.MatchesPath("assets/minecraft/textures/item/ruby.png"))
}
