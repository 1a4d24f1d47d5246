package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// missingMarker is the placeholder BlockBench writes for texture slots that
// never had a file assigned. It is searched for in serialized form so nested
// occurrences are caught too.
const missingMarker = `"#missing`

// CheckCustom validates a custom model document: the textures value must be
// an object, geometry (`elements`) must be present, and no texture slot may
// still hold the missing-texture placeholder. Texture references that break
// the naming convention are fixed as a single combined rewrite of the whole
// textures map. The returned slice holds the texture reference values,
// post-decision.
func CheckCustom(sess *Session, doc *ModelDocument) ([]string, error) {
	textures, ok := doc.Textures()
	if !ok {
		return nil, NoQuickFixf("`textures` value is not an object in %s; was it exported from BlockBench correctly?", ResolvePath(doc.filePath))
	}
	if _, present := doc.raw["elements"]; !present {
		return nil, NoQuickFixf("`elements` key not found in %s; was it exported from BlockBench correctly?", ResolvePath(doc.filePath))
	}
	serialized, err := json.Marshal(doc.raw)
	if err != nil {
		return nil, err
	}
	if bytes.Contains(serialized, []byte(missingMarker)) {
		return nil, NoQuickFixf("`#missing` texture found in %s; a texture file was never assigned in BlockBench", ResolvePath(doc.filePath))
	}

	fixed := make(map[string]interface{}, len(textures))
	changed := false
	for slot, value := range textures {
		ref, isString := value.(string)
		if !isString {
			return nil, NoQuickFixf("texture `%s` in %s is not a string", slot, ResolvePath(doc.filePath))
		}
		if needsFix, normalized := NormalizeName(ref); needsFix {
			fixed[slot] = normalized
			changed = true
		} else {
			fixed[slot] = ref
		}
	}

	if changed && sess.Confirm(fmt.Sprintf("texture references in %s break the naming convention, they can all be fixed at once", ResolvePath(doc.filePath))) {
		doc.raw["textures"] = fixed
		textures = fixed
		if err := sess.SaveDoc(doc); err != nil {
			return nil, err
		}
	}

	refs := make([]string, 0, len(textures))
	for _, value := range textures {
		refs = append(refs, value.(string))
	}
	return refs, nil
}
