package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leocov-dev/packmedic/core"
)

// replyConfirmer answers every question the same way and records what was
// asked, so tests can assert both the decisions taken and the prompts shown.
type replyConfirmer struct {
	accept bool
	asked  []string
}

func (c *replyConfirmer) Confirm(question string) bool {
	c.asked = append(c.asked, question)
	return c.accept
}

func scaffoldPack(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "minecraft", "models", "item"), os.ModePerm))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "minecraft", "textures", "item"), os.ModePerm))
	return root
}

func writeModel(t *testing.T, root, name, content string) {
	t.Helper()
	writeFileT(t, filepath.Join(root, "assets", "minecraft", "models", "item", name), content)
}

func writeTexture(t *testing.T, root, name string) {
	t.Helper()
	writeFileT(t, filepath.Join(root, "assets", "minecraft", "textures", "item", name), "png bytes")
}

func scanPack(t *testing.T, root string, accept bool) (*core.Session, *replyConfirmer, *core.RefSets) {
	t.Helper()
	confirmer := &replyConfirmer{accept: accept}
	sess := core.NewSession(confirmer, NewJSONWriter())
	sets, err := ScanAssets(sess, root)
	require.NoError(t, err)
	return sess, confirmer, sets
}

func TestScanAssetsHealthyPack(t *testing.T) {
	root := scaffoldPack(t)
	writeModel(t, root, "sword.json",
		`{"textures": {"layer0": "item/sword"}, "overrides": [{"predicate": {"custom_model_data": 1}, "model": "item/ruby_sword"}]}`)
	writeModel(t, root, "ruby_sword.json",
		`{"textures": {"layer0": "item/ruby"}, "elements": []}`)
	writeTexture(t, root, "ruby.png")

	sess, confirmer, sets := scanPack(t, root, false)

	assert.Empty(t, confirmer.asked)
	assert.Zero(t, sess.Issues())
	mismatches := sets.Reconcile()
	assert.True(t, mismatches.Empty())
}

func TestScanAssetsMismatchedPack(t *testing.T) {
	root := scaffoldPack(t)
	writeModel(t, root, "sword.json",
		`{"textures": {"layer0": "item/sword"}, "overrides": [{"predicate": {"custom_model_data": 1}, "model": "item/ruby_sword"}]}`)
	writeModel(t, root, "old_sword.json",
		`{"textures": {"layer0": "item/gone"}, "elements": []}`)
	writeTexture(t, root, "wip.png")

	_, _, sets := scanPack(t, root, false)

	mismatches := sets.Reconcile()
	assert.Equal(t, []string{"item/ruby_sword"}, mismatches.MissingModels)
	assert.Equal(t, []string{"item/old_sword"}, mismatches.UnusedModels)
	assert.Equal(t, []string{"item/gone"}, mismatches.MissingTextures)
	assert.Equal(t, []string{"item/wip"}, mismatches.UnusedTextures)
	assert.False(t, mismatches.Empty())
}

func TestScanAssetsFixesExtensions(t *testing.T) {
	root := scaffoldPack(t)
	writeTexture(t, root, "ruby.PNG")
	writeTexture(t, root, "gem.png.tmp")

	sess, confirmer, sets := scanPack(t, root, true)

	assert.Len(t, confirmer.asked, 2)
	assert.Equal(t, 2, sess.Fixes())
	textureDir := filepath.Join(root, "assets", "minecraft", "textures", "item")
	assert.True(t, FileExists(filepath.Join(textureDir, "ruby.png")))
	assert.True(t, FileExists(filepath.Join(textureDir, "gem.png")))
	assert.False(t, FileExists(filepath.Join(textureDir, "gem.png.tmp")))

	mismatches := sets.Reconcile()
	assert.Equal(t, []string{"item/gem", "item/ruby"}, mismatches.UnusedTextures)
}

func TestScanAssetsFixesNames(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		root := scaffoldPack(t)
		writeTexture(t, root, "My Sword.png")

		sess, confirmer, sets := scanPack(t, root, true)

		require.Len(t, confirmer.asked, 1)
		assert.Contains(t, confirmer.asked[0], "naming convention")
		assert.Equal(t, 1, sess.Fixes())
		textureDir := filepath.Join(root, "assets", "minecraft", "textures", "item")
		assert.True(t, FileExists(filepath.Join(textureDir, "my_sword.png")))
		assert.False(t, FileExists(filepath.Join(textureDir, "My Sword.png")))
		assert.Equal(t, []string{"item/my_sword"}, sets.Reconcile().UnusedTextures)
	})

	t.Run("declined", func(t *testing.T) {
		root := scaffoldPack(t)
		writeTexture(t, root, "My Sword.png")

		sess, confirmer, sets := scanPack(t, root, false)

		require.Len(t, confirmer.asked, 1)
		assert.Equal(t, 1, sess.Declined())
		textureDir := filepath.Join(root, "assets", "minecraft", "textures", "item")
		assert.True(t, FileExists(filepath.Join(textureDir, "My Sword.png")))
		assert.Equal(t, []string{"item/My Sword"}, sets.Reconcile().UnusedTextures)
	})
}

func TestScanAssetsSkipsIgnoredFiles(t *testing.T) {
	root := scaffoldPack(t)
	// Both would otherwise trigger extension prompts.
	writeTexture(t, root, "ruby.psd")
	writeTexture(t, root, ".DS_Store")

	sess, confirmer, sets := scanPack(t, root, true)

	assert.Empty(t, confirmer.asked)
	assert.Zero(t, sess.Issues())
	assert.True(t, sets.Reconcile().Empty())
}

func TestScanAssetsMissingDirs(t *testing.T) {
	t.Run("no item models", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "minecraft", "textures"), os.ModePerm))

		sess := core.NewSession(&replyConfirmer{}, NewJSONWriter())
		_, err := ScanAssets(sess, root)
		require.Error(t, err)
		assert.True(t, core.IsFatal(err))
		assert.Contains(t, err.Error(), "2d-only packs are not supported")
	})

	t.Run("no textures", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "minecraft", "models", "item"), os.ModePerm))

		sess := core.NewSession(&replyConfirmer{}, NewJSONWriter())
		_, err := ScanAssets(sess, root)
		require.Error(t, err)
		assert.True(t, core.IsFatal(err))
		assert.Contains(t, err.Error(), "`assets/minecraft/textures` not found")
	})
}

func TestScanAssetsPropagatesModelFindings(t *testing.T) {
	t.Run("malformed model file", func(t *testing.T) {
		root := scaffoldPack(t)
		writeModel(t, root, "broken.json", `{"textures": `)

		sess := core.NewSession(&replyConfirmer{}, NewJSONWriter())
		_, err := ScanAssets(sess, root)
		require.Error(t, err)
		assert.True(t, core.IsNoQuickFix(err))
		assert.Contains(t, err.Error(), "can't read")
	})

	t.Run("duplicate custom_model_data", func(t *testing.T) {
		root := scaffoldPack(t)
		writeModel(t, root, "sword.json",
			`{"textures": {"layer0": "item/sword"}, "overrides": [`+
				`{"predicate": {"custom_model_data": 1}, "model": "item/a"}, `+
				`{"predicate": {"custom_model_data": 1}, "model": "item/b"}]}`)

		sess := core.NewSession(&replyConfirmer{}, NewJSONWriter())
		_, err := ScanAssets(sess, root)
		require.Error(t, err)
		assert.True(t, core.IsNoQuickFix(err))
		assert.Contains(t, err.Error(), "duplicate custom_model_data (1)")
	})
}

// A pass that accepts every fix leaves the pack clean: running it again finds
// nothing, because repairs were persisted to disk rather than held in memory.
func TestScanAssetsRepairsPersist(t *testing.T) {
	root := scaffoldPack(t)
	writeTexture(t, root, "Ruby.PNG")
	writeModel(t, root, "Old Sword.json",
		`{"textures": {"layer0": "item/Ruby"}, "elements": []}`)
	writeModel(t, root, "ruby_sword.json",
		`{"textures": {"layer0": "item/ruby"}, "elements": []}`)
	writeModel(t, root, "sword.json",
		`{"textures": {"layer0": "item/sword"}, "overrides": [`+
			`{"predicate": {"custom_model_data": 2, "pulling": 1}, "model": "item/ruby_sword"}, `+
			`{"predicate": {"custom_model_data": 1}, "model": "item/old_sword"}]}`)

	firstPass, firstConfirmer, sets := scanPack(t, root, true)

	// Extension and name fix for the texture, name fix for the model file,
	// texture reference rewrite, override reordering.
	assert.Len(t, firstConfirmer.asked, 5)
	assert.Equal(t, 5, firstPass.Fixes())
	assert.True(t, sets.Reconcile().Empty())

	secondPass, secondConfirmer, sets := scanPack(t, root, true)

	assert.Empty(t, secondConfirmer.asked)
	assert.Zero(t, secondPass.Issues())
	assert.True(t, sets.Reconcile().Empty())

	// The reordered override list was written back with extra predicate
	// fields intact.
	raw, err := ReadJSONMap(filepath.Join(root, "assets", "minecraft", "models", "item", "sword.json"))
	require.NoError(t, err)
	overrides := raw["overrides"].([]interface{})
	require.Len(t, overrides, 2)
	firstEntry := overrides[0].(map[string]interface{})
	assert.Equal(t, "item/old_sword", firstEntry["model"])
	secondEntry := overrides[1].(map[string]interface{})
	assert.Equal(t, "item/ruby_sword", secondEntry["model"])
	predicate := secondEntry["predicate"].(map[string]interface{})
	assert.Contains(t, predicate, "pulling")
}
