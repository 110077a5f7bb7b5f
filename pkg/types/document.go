// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
)

// Document is a land-use code: an ordered list of sections plus whatever other
// top-level members the source file carries.
type Document struct {
	Sections []Section `json:"sections" yaml:"sections"`

	extra object
}

// NewDocument returns a document holding only the given sections.
func NewDocument(sections []Section) *Document {
	return &Document{Sections: sections}
}

// WithSections returns a copy of d whose sections are replaced by sections.
// Other top-level members keep their values and positions.
func (d *Document) WithSections(sections []Section) *Document {
	return &Document{Sections: sections, extra: d.extra}
}

// UnmarshalJSON decodes the document, keeping non-section members in order.
func (d *Document) UnmarshalJSON(data []byte) error {
	keys, values, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	var out Document
	if raw, ok := values["sections"]; ok {
		if err := json.Unmarshal(raw, &out.Sections); err != nil {
			return fmt.Errorf("decoding sections: %w", err)
		}
		delete(values, "sections")
	}
	out.extra = object{keys: keys, values: values}

	*d = out
	return nil
}

// MarshalJSON writes the document with "sections" in its original position,
// or last when the source had none.
func (d Document) MarshalJSON() ([]byte, error) {
	values := make(map[string]json.RawMessage, len(d.extra.values)+1)
	for k, v := range d.extra.values {
		values[k] = v
	}

	sections := d.Sections
	if sections == nil {
		sections = []Section{}
	}
	raw, err := marshalRaw(sections)
	if err != nil {
		return nil, fmt.Errorf("encoding sections: %w", err)
	}
	values["sections"] = raw

	return encodeObject(appendMissing(d.extra.keys, []string{"sections"}), values)
}
