package core

// ModelDocument is a parsed item model file. The raw map keeps whatever the
// file contained, numbers preserved as json.Number, so a rewrite never loses
// fields this tool does not understand.
type ModelDocument struct {
	filePath string
	raw      map[string]interface{}
}

func NewModelDocument(path string, raw map[string]interface{}) *ModelDocument {
	return &ModelDocument{filePath: path, raw: raw}
}

func (m *ModelDocument) GetFilePath() string {
	return m.filePath
}

// SetFilePath updates the document's location after its file was renamed.
func (m *ModelDocument) SetFilePath(path string) {
	m.filePath = path
}

// Stem is the file name without its extension, the value a standard model's
// layer0 texture is expected to point at.
func (m *ModelDocument) Stem() string {
	return FileStem(m.filePath)
}

func (m *ModelDocument) Marshal() ([]byte, error) {
	return marshalIndented(m.raw)
}

// Textures returns the textures map when it is present and object-valued.
func (m *ModelDocument) Textures() (map[string]interface{}, bool) {
	textures, ok := m.raw["textures"].(map[string]interface{})
	return textures, ok
}

// IsStandard classifies the document. Standard documents carry an override
// list and reference their own texture as layer0 ("item/<stem>"); everything
// else is treated as a custom model. A document without a textures key does
// not meet the minimum contract to be classified at all.
func (m *ModelDocument) IsStandard() (bool, error) {
	if _, present := m.raw["textures"]; !present {
		return false, NoQuickFixf("`textures` key not found in %s; was it exported from BlockBench correctly?", ResolvePath(m.filePath))
	}
	textures, ok := m.Textures()
	if !ok {
		// Wrong type; the custom-document checks will report it.
		return false, nil
	}
	layer0, ok := textures["layer0"].(string)
	return ok && layer0 == "item/"+m.Stem(), nil
}
