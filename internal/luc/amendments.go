// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package luc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/luc-amender/pkg/types"
)

const (
	manualConfidence = 1.0
	manualReasoning  = "Manual amendment"
)

// amendmentsFile is the YAML layout of a manual amendments file:
//
//	amendments:
//	  - section_id: "20.40.100"
//	    action: add
//	    new_text: "..."
type amendmentsFile struct {
	Amendments []manualAmendment `yaml:"amendments"`
}

type manualAmendment struct {
	SectionID  string       `yaml:"section_id"`
	Action     types.Action `yaml:"action"`
	NewText    string       `yaml:"new_text"`
	Confidence *float64     `yaml:"confidence"`
	Reasoning  string       `yaml:"reasoning"`
}

// LoadAmendments reads manual amendments from a YAML file, in file order.
// Confidence defaults to 1.0 and reasoning to "Manual amendment". Unknown
// fields, unknown actions, and add entries without text are rejected.
func LoadAmendments(path string) ([]types.Amendment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading amendments file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file amendmentsFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing amendments file %s: %w", path, err)
	}

	amendments := make([]types.Amendment, 0, len(file.Amendments))
	for i, m := range file.Amendments {
		a := types.Amendment{
			SectionID:  m.SectionID,
			Action:     m.Action,
			NewText:    m.NewText,
			Confidence: manualConfidence,
			Reasoning:  m.Reasoning,
		}
		if m.Confidence != nil {
			a.Confidence = *m.Confidence
		}
		if a.Reasoning == "" {
			a.Reasoning = manualReasoning
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("amendments file %s, entry %d: %w", path, i+1, err)
		}
		amendments = append(amendments, a)
	}
	return amendments, nil
}
