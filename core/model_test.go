package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelDocumentIsStandard(t *testing.T) {
	path := filepath.Join("assets", "minecraft", "models", "item", "sword.json")

	t.Run("Own texture as layer0", func(t *testing.T) {
		doc := NewModelDocument(path, map[string]interface{}{
			"textures":  map[string]interface{}{"layer0": "item/sword"},
			"overrides": []interface{}{},
		})

		standard, err := doc.IsStandard()
		assert.NoError(t, err)
		assert.True(t, standard)
	})

	t.Run("Different layer0 is custom", func(t *testing.T) {
		doc := NewModelDocument(path, map[string]interface{}{
			"textures": map[string]interface{}{"layer0": "item/ruby"},
		})

		standard, err := doc.IsStandard()
		assert.NoError(t, err)
		assert.False(t, standard)
	})

	t.Run("Missing layer0 is custom", func(t *testing.T) {
		doc := NewModelDocument(path, map[string]interface{}{
			"textures": map[string]interface{}{"particle": "item/sword"},
		})

		standard, err := doc.IsStandard()
		assert.NoError(t, err)
		assert.False(t, standard)
	})

	t.Run("Missing textures key cannot be classified", func(t *testing.T) {
		doc := NewModelDocument(path, map[string]interface{}{
			"overrides": []interface{}{},
		})

		_, err := doc.IsStandard()
		assert.True(t, IsNoQuickFix(err))
		assert.Contains(t, err.Error(), "`textures` key not found")
	})

	t.Run("Non-object textures is custom", func(t *testing.T) {
		doc := NewModelDocument(path, map[string]interface{}{
			"textures": "item/sword",
		})

		standard, err := doc.IsStandard()
		assert.NoError(t, err)
		assert.False(t, standard)
	})

	t.Run("Classification follows a rename", func(t *testing.T) {
		doc := NewModelDocument(filepath.Join("item", "My Sword.json"), map[string]interface{}{
			"textures": map[string]interface{}{"layer0": "item/my_sword"},
		})

		standard, err := doc.IsStandard()
		assert.NoError(t, err)
		assert.False(t, standard)

		doc.SetFilePath(filepath.Join("item", "my_sword.json"))
		standard, err = doc.IsStandard()
		assert.NoError(t, err)
		assert.True(t, standard)
	})
}

func TestModelDocumentStem(t *testing.T) {
	doc := NewModelDocument(filepath.Join("item", "ruby_sword.json"), nil)
	assert.Equal(t, "ruby_sword", doc.Stem())

	doc.SetFilePath(filepath.Join("item", "emerald_sword.json"))
	assert.Equal(t, "emerald_sword", doc.Stem())
}

func TestModelDocumentTextures(t *testing.T) {
	doc := NewModelDocument("m.json", map[string]interface{}{
		"textures": map[string]interface{}{"layer0": "item/a"},
	})
	textures, ok := doc.Textures()
	assert.True(t, ok)
	assert.Equal(t, "item/a", textures["layer0"])

	doc = NewModelDocument("m.json", map[string]interface{}{"textures": 7})
	_, ok = doc.Textures()
	assert.False(t, ok)
}
