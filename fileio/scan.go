package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/leocov-dev/packmedic/core"
)

// ScanAssets walks the texture and item model subtrees, repairing file
// extensions and names along the way, and accumulates the identifier sets
// for reconciliation. Directory listings are snapshotted before processing
// so a rename performed during the pass is never visited twice.
func ScanAssets(sess *core.Session, root string) (*core.RefSets, error) {
	modelDir := filepath.Join(root, "assets", "minecraft", "models")
	itemDir := filepath.Join(modelDir, "item")
	if !DirExists(itemDir) {
		return nil, core.Fatalf("`assets/minecraft/models/item` not found in %s; 2d-only packs are not supported", core.ResolvePath(root))
	}
	textureDir := filepath.Join(root, "assets", "minecraft", "textures")
	if !DirExists(textureDir) {
		return nil, core.Fatalf("`assets/minecraft/textures` not found in %s; something isn't right with this pack", core.ResolvePath(root))
	}

	ignore := LoadIgnore(root)
	sets := core.NewRefSets()

	textureFiles, err := listFiles(textureDir)
	if err != nil {
		return nil, err
	}
	for _, path := range textureFiles {
		if skip, err := ignoredPath(ignore, root, path); err != nil {
			return nil, err
		} else if skip {
			continue
		}
		if path, err = fixExtension(sess, path, ".png"); err != nil {
			return nil, err
		}
		if path, err = fixFileName(sess, root, path); err != nil {
			return nil, err
		}
		id, err := core.PathIdentifier(textureDir, path)
		if err != nil {
			return nil, err
		}
		sets.AddTextureFile(id)
	}

	modelFiles, err := listFiles(itemDir)
	if err != nil {
		return nil, err
	}
	for _, path := range modelFiles {
		if skip, err := ignoredPath(ignore, root, path); err != nil {
			return nil, err
		} else if skip {
			continue
		}
		if path, err = fixExtension(sess, path, ".json"); err != nil {
			return nil, err
		}
		doc, err := LoadModelFile(path)
		if err != nil {
			return nil, err
		}
		if path, err = fixFileName(sess, root, path); err != nil {
			return nil, err
		}
		doc.SetFilePath(path)

		standard, err := doc.IsStandard()
		if err != nil {
			return nil, err
		}
		if standard {
			refs, err := core.CheckStandard(sess, doc)
			if err != nil {
				return nil, err
			}
			sets.AddModelRefs(refs)
		} else {
			id, err := core.PathIdentifier(modelDir, path)
			if err != nil {
				return nil, err
			}
			sets.AddModelFile(id)
			refs, err := core.CheckCustom(sess, doc)
			if err != nil {
				return nil, err
			}
			sets.AddTextureRefs(refs)
		}
	}

	return sets, nil
}

func ignoredPath(ignore *gitignore.GitIgnore, root, path string) (bool, error) {
	rel, err := core.RelSlashPath(root, path)
	if err != nil {
		return false, err
	}
	return ignore.MatchesPath(rel), nil
}

// fixExtension offers to rename a file whose extension is not the wanted
// one. A stem already carrying the wanted extension has the stray suffix
// dropped ("sword.png.tmp" becomes "sword.png"), otherwise the wanted
// extension is appended.
func fixExtension(sess *core.Session, path, wanted string) (string, error) {
	if filepath.Ext(path) == wanted {
		return path, nil
	}
	if !sess.Confirm(fmt.Sprintf("`%s` does not have the %s extension, it can be renamed", filepath.Base(path), wanted)) {
		return path, nil
	}
	newBase := core.FileStem(path)
	if !strings.HasSuffix(newBase, wanted) {
		newBase += wanted
	}
	newPath := filepath.Join(filepath.Dir(path), newBase)
	if err := os.Rename(path, newPath); err != nil {
		return "", err
	}
	return newPath, nil
}

// fixFileName offers to rename a file whose root-relative path breaks the
// naming convention, creating parent directories for the normalized path as
// needed.
func fixFileName(sess *core.Session, root, path string) (string, error) {
	rel, err := core.RelSlashPath(root, path)
	if err != nil {
		return "", err
	}
	fixed, changed := sess.FixName(rel)
	if !changed {
		return path, nil
	}
	newPath := filepath.Join(root, filepath.FromSlash(fixed))
	if err := os.MkdirAll(filepath.Dir(newPath), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.Rename(path, newPath); err != nil {
		return "", err
	}
	return newPath, nil
}
