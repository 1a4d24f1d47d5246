package core

import (
	"fmt"
	"path/filepath"
)

const (
	DefaultPackFormat  = 8
	DefaultDescription = "Fixed by WingedSeal-Bot"
)

// MetaDocument is the parsed pack.mcmeta file. A document whose content
// failed to parse has a nil raw map and carries the parse diagnostic instead.
type MetaDocument struct {
	filePath string
	raw      map[string]interface{}
	parseErr error
}

func NewMetaDocument(path string, raw map[string]interface{}) *MetaDocument {
	return &MetaDocument{filePath: path, raw: raw}
}

func NewUnparsedMetaDocument(path string, parseErr error) *MetaDocument {
	return &MetaDocument{filePath: path, parseErr: parseErr}
}

func (m *MetaDocument) GetFilePath() string {
	return m.filePath
}

func (m *MetaDocument) Name() string {
	return filepath.Base(m.filePath)
}

func (m *MetaDocument) Marshal() ([]byte, error) {
	return marshalIndented(m.raw)
}

// PackFormat returns the pack_format value if it is present and integral.
func (m *MetaDocument) PackFormat() (int, bool) {
	pack, ok := m.pack()
	if !ok {
		return 0, false
	}
	return integralValue(pack["pack_format"])
}

func (m *MetaDocument) SetPackFormat(format int) {
	m.ensurePack()["pack_format"] = format
}

func (m *MetaDocument) SetDescription(description string) {
	m.ensurePack()["description"] = description
}

func (m *MetaDocument) pack() (map[string]interface{}, bool) {
	if m.raw == nil {
		return nil, false
	}
	pack, ok := m.raw["pack"].(map[string]interface{})
	return pack, ok
}

func (m *MetaDocument) ensurePack() map[string]interface{} {
	if m.raw == nil {
		m.raw = map[string]interface{}{}
	}
	if pack, ok := m.raw["pack"].(map[string]interface{}); ok {
		return pack
	}
	pack := map[string]interface{}{}
	m.raw["pack"] = pack
	return pack
}

// DefaultMeta is the all-or-nothing reset content offered when the metadata
// file cannot be salvaged field by field.
func DefaultMeta() map[string]interface{} {
	return map[string]interface{}{
		"pack": map[string]interface{}{
			"pack_format": DefaultPackFormat,
			"description": DefaultDescription,
		},
	}
}

// CheckMeta validates and repairs the metadata document. On a parse failure
// or a missing/invalid `pack` container it offers a full reset to defaults;
// otherwise pack_format and description are checked and defaulted one by
// one. Whenever a parsed document exists it is rewritten at the end, fixed
// or not, so the on-disk encoding is always the canonical indented form.
func CheckMeta(sess *Session, doc *MetaDocument) error {
	if doc.raw == nil {
		if !sess.Confirm(fmt.Sprintf("%s is not valid JSON (%v), it can be reset to defaults", doc.Name(), doc.parseErr)) {
			return nil
		}
		doc.raw = DefaultMeta()
		return sess.SaveDoc(doc)
	}

	pack, ok := doc.pack()
	if !ok {
		if sess.Confirm(fmt.Sprintf("`pack` object not found in %s, the file can be reset to defaults", doc.Name())) {
			doc.raw = DefaultMeta()
		}
		return sess.SaveDoc(doc)
	}

	if _, present := pack["pack_format"]; !present {
		if sess.Confirm(fmt.Sprintf("`pack_format` not found in %s, it can be set to %d", doc.Name(), DefaultPackFormat)) {
			pack["pack_format"] = DefaultPackFormat
		}
	} else if _, integral := integralValue(pack["pack_format"]); !integral {
		if sess.Confirm(fmt.Sprintf("`pack_format` in %s should be a whole number, it can be set to %d", doc.Name(), DefaultPackFormat)) {
			pack["pack_format"] = DefaultPackFormat
		}
	}

	if _, present := pack["description"]; !present {
		if sess.Confirm(fmt.Sprintf("`description` not found in %s, it can be set to %q", doc.Name(), DefaultDescription)) {
			pack["description"] = DefaultDescription
		}
	}

	return sess.SaveDoc(doc)
}
