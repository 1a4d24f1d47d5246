package fileio

import (
	"encoding/json"
	"os"

	"github.com/leocov-dev/packmedic/core"
)

// ReadJSONMap parses a JSON object file. Numbers stay json.Number so integer
// fields survive a round trip unchanged.
func ReadJSONMap(path string) (map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// LoadModelFile reads and parses an item model document. A file that cannot
// be read or parsed is a no-quick-fix finding carrying the resolved path and
// the underlying diagnostic.
func LoadModelFile(path string) (*core.ModelDocument, error) {
	raw, err := ReadJSONMap(path)
	if err != nil {
		return nil, core.NoQuickFixf("can't read %s, the JSON is malformed: %v", core.ResolvePath(path), err)
	}
	return core.NewModelDocument(path, raw), nil
}

// LoadMetaFile reads the pack metadata file. A malformed file still yields a
// document carrying the parse diagnostic so the caller can offer the reset
// fix; only filesystem errors are returned.
func LoadMetaFile(path string) (*core.MetaDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return core.NewUnparsedMetaDocument(path, err), nil
	}
	return core.NewMetaDocument(path, raw), nil
}

// JSONWriter persists documents to their file paths, creating parent
// directories on demand. It is the single core.DocWriter implementation
// backed by the real filesystem.
type JSONWriter struct {
}

func NewJSONWriter() JSONWriter {
	return JSONWriter{}
}

func (w JSONWriter) Write(doc core.Writable) error {
	f, err := CreateFile(doc.GetFilePath())
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		return err
	}

	return nil
}
