// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// Status marks a section that no longer carries operative text. The zero value
// means the section is active.
type Status string

const (
	StatusActive   Status = ""
	StatusRepealed Status = "REPEALED"
	StatusReserved Status = "RESERVED"
)

// sectionKeys is the member order used for sections built by the pipeline.
var sectionKeys = []string{"id", "title", "text", "status"}

// Section is one uniquely identified unit of the LUC.
//
// Members of the source JSON that Section does not model are kept, with their
// original order, and written back unchanged. Sections rebuilt by an amendment
// start without them.
type Section struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Text   string `json:"text" yaml:"text"`
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`

	extra object
}

// UnmarshalJSON decodes a section object, retaining unknown members.
func (s *Section) UnmarshalJSON(data []byte) error {
	keys, values, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("decoding section: %w", err)
	}

	var out Section
	extra := make(map[string]json.RawMessage)
	for _, k := range keys {
		raw := values[k]
		switch k {
		case "id":
			err = json.Unmarshal(raw, &out.ID)
		case "title":
			err = json.Unmarshal(raw, &out.Title)
		case "text":
			err = json.Unmarshal(raw, &out.Text)
		case "status":
			err = json.Unmarshal(raw, &out.Status)
		default:
			extra[k] = raw
		}
		if err != nil {
			return fmt.Errorf("decoding section member %q: %w", k, err)
		}
	}
	if len(extra) > 0 {
		out.extra = object{keys: keys, values: extra}
	}

	*s = out
	return nil
}

// MarshalJSON writes id, title, text and a non-empty status, interleaved with
// any retained members in their source order.
func (s Section) MarshalJSON() ([]byte, error) {
	values := make(map[string]json.RawMessage, len(s.extra.values)+4)
	for k, v := range s.extra.values {
		values[k] = v
	}

	fields := map[string]any{"id": s.ID, "title": s.Title, "text": s.Text}
	if s.Status != StatusActive {
		fields["status"] = string(s.Status)
	}
	for k, v := range fields {
		raw, err := marshalRaw(v)
		if err != nil {
			return nil, err
		}
		values[k] = raw
	}

	keys := sectionKeys
	if !s.extra.empty() {
		keys = appendMissing(s.extra.keys, sectionKeys)
	}
	return encodeObject(keys, values)
}

// appendMissing returns keys followed by every name in want not already present.
func appendMissing(keys, want []string) []string {
	out := append([]string(nil), keys...)
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	for _, k := range want {
		if !seen[k] {
			out = append(out, k)
		}
	}
	return out
}
