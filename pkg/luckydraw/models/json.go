package models

import (
	"bytes"
	"encoding/json"
)

// objectField is one key/value pair of an ordered JSON object.
type objectField struct {
	key   string
	value any
}

// marshalObject encodes fields as a JSON object without reordering keys.
func marshalObject(fields []objectField) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalRaw(f.key)
		if err != nil {
			return nil, err
		}
		v, err := marshalRaw(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw encodes v leaving HTML characters unescaped.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
