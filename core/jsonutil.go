package core

import (
	"bytes"
	"encoding/json"
)

// marshalIndented renders a document the way every rewrite in this tool
// does: four-space indent, map keys sorted, HTML left unescaped.
func marshalIndented(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// integralValue extracts an int from a decoded JSON value, accepting only
// tokens that are whole numbers.
func integralValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case int:
		return n, true
	}
	return 0, false
}
