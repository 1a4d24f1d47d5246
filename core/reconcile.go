package core

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/sahilm/fuzzy"
	"golang.org/x/exp/slices"
)

// RefSets accumulates the four identifier sets built while walking the pack:
// model references declared by standard documents, custom model files found
// on disk, texture references declared by custom documents, and texture
// files found on disk. Once the walk is done, Reconcile computes the
// mismatches between them.
type RefSets struct {
	modelRefs    map[string]struct{}
	modelFiles   map[string]struct{}
	textureRefs  map[string]struct{}
	textureFiles map[string]struct{}
}

func NewRefSets() *RefSets {
	return &RefSets{
		modelRefs:    make(map[string]struct{}),
		modelFiles:   make(map[string]struct{}),
		textureRefs:  make(map[string]struct{}),
		textureFiles: make(map[string]struct{}),
	}
}

func (r *RefSets) AddModelRefs(ids []string) {
	for _, id := range ids {
		r.modelRefs[id] = struct{}{}
	}
}

func (r *RefSets) AddModelFile(id string) {
	r.modelFiles[id] = struct{}{}
}

func (r *RefSets) AddTextureRefs(ids []string) {
	for _, id := range ids {
		r.textureRefs[id] = struct{}{}
	}
}

func (r *RefSets) AddTextureFile(id string) {
	r.textureFiles[id] = struct{}{}
}

// Mismatches holds the four set differences that make up the final report,
// each sorted for stable output.
type Mismatches struct {
	MissingModels   []string // referenced by an override, no file on disk
	UnusedModels    []string // custom model file nothing references
	MissingTextures []string // referenced by a texture slot, no file on disk
	UnusedTextures  []string // texture file nothing references

	modelFiles   []string
	textureFiles []string
}

// Reconcile computes the report differences from the accumulated sets.
func (r *RefSets) Reconcile() Mismatches {
	return Mismatches{
		MissingModels:   diffSorted(r.modelRefs, r.modelFiles),
		UnusedModels:    diffSorted(r.modelFiles, r.modelRefs),
		MissingTextures: diffSorted(r.textureRefs, r.textureFiles),
		UnusedTextures:  diffSorted(r.textureFiles, r.textureRefs),
		modelFiles:      sortedKeys(r.modelFiles),
		textureFiles:    sortedKeys(r.textureFiles),
	}
}

// diffSorted returns the members of from that are absent from exclude.
func diffSorted(from, exclude map[string]struct{}) []string {
	var result []string
	for key := range from {
		if _, ok := exclude[key]; !ok {
			result = append(result, key)
		}
	}
	slices.Sort(result)
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (m *Mismatches) Empty() bool {
	return len(m.MissingModels) == 0 &&
		len(m.UnusedModels) == 0 &&
		len(m.MissingTextures) == 0 &&
		len(m.UnusedTextures) == 0
}

// FilterAllowed drops unused-file entries the operator has declared
// intentional. Missing references are never filtered; a dangling reference
// is wrong no matter what.
func (m *Mismatches) FilterAllowed(allowed *regexp2.Regexp) error {
	var err error
	if m.UnusedModels, err = filterMatching(m.UnusedModels, allowed); err != nil {
		return err
	}
	m.UnusedTextures, err = filterMatching(m.UnusedTextures, allowed)
	return err
}

func filterMatching(ids []string, re *regexp2.Regexp) ([]string, error) {
	kept := ids[:0]
	for _, id := range ids {
		match, err := re.MatchString(id)
		if err != nil {
			return nil, err
		}
		if !match {
			kept = append(kept, id)
		}
	}
	return kept, nil
}

// Describe renders the report. Dangling references carry a closest-match
// suggestion when one of the actual files resembles them.
func (m *Mismatches) Describe() string {
	var b strings.Builder
	describeMissing(&b, "File not found for model keys:", m.MissingModels, m.modelFiles, ".json")
	describeUnused(&b, "Unused model files:", m.UnusedModels, ".json")
	describeMissing(&b, "File not found for texture keys:", m.MissingTextures, m.textureFiles, ".png")
	describeUnused(&b, "Unused texture files:", m.UnusedTextures, ".png")
	return strings.TrimRight(b.String(), "\n")
}

func describeMissing(b *strings.Builder, heading string, missing, actual []string, ext string) {
	if len(missing) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, id := range missing {
		b.WriteString("    " + id)
		if matches := fuzzy.Find(id, actual); len(matches) > 0 {
			b.WriteString(fmt.Sprintf(" (closest match: %s%s)", matches[0].Str, ext))
		}
		b.WriteString("\n")
	}
}

func describeUnused(b *strings.Builder, heading string, unused []string, ext string) {
	if len(unused) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, id := range unused {
		b.WriteString("    " + id + ext + "\n")
	}
}
