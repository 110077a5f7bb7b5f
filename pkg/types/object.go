// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// object is a JSON object decoded with its member order intact. Values holds
// only the members the owning type does not model itself.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func (o object) empty() bool { return len(o.values) == 0 }

// decodeObject reads a JSON object member by member, keeping the source order
// of its keys. A repeated key keeps its first position and its last value.
func decodeObject(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, errors.New("expected a JSON object")
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v in object", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("decoding member %q: %w", key, err)
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}

// encodeObject writes the members named in keys, in that order. Keys missing
// from values are skipped.
func encodeObject(keys []string, values map[string]json.RawMessage) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	n := 0
	for _, k := range keys {
		raw, ok := values[k]
		if !ok {
			continue
		}
		if n > 0 {
			b.WriteByte(',')
		}
		kb, err := marshalRaw(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(raw)
		n++
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// marshalRaw encodes v without HTML escaping, so legal text such as "A & B"
// survives as written.
func marshalRaw(v any) (json.RawMessage, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}
