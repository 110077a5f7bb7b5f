// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ReviewThreshold is the confidence below which a log entry is marked for
// human review.
const ReviewThreshold = 0.6

// Amendment is a single instruction derived from an ordinance: change, repeal,
// reserve, or add one Section of the LUC.
type Amendment struct {
	// SectionID is the dotted numeric identifier of the target section
	// (e.g. "20.10.420").
	SectionID string `json:"section_id" yaml:"section_id"`

	// Action selects how the section changes.
	Action Action `json:"action" yaml:"action"`

	// NewText is the replacement body. Ignored for repeal and reserve.
	NewText string `json:"new_text" yaml:"new_text"`

	// Confidence is a heuristic score between 0.0 and 1.0.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Reasoning records where the amendment came from. Diagnostic only.
	Reasoning string `json:"reasoning" yaml:"reasoning"`
}

// NeedsReview reports whether the amendment's confidence falls below
// ReviewThreshold.
func (a Amendment) NeedsReview() bool {
	return a.Confidence < ReviewThreshold
}

// Validate checks an amendment built outside the extractor (for example from a
// manual amendments file).
func (a Amendment) Validate() error {
	var problems []string
	if strings.TrimSpace(a.SectionID) == "" {
		problems = append(problems, "section_id is required")
	}
	if !a.Action.Valid() {
		return fmt.Errorf("section %q: %w: %q", a.SectionID, ErrUnknownAction, string(a.Action))
	}
	if a.Action == ActionAdd && strings.TrimSpace(a.NewText) == "" {
		problems = append(problems, "new_text is required for add")
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		problems = append(problems, fmt.Sprintf("confidence %.2f outside [0, 1]", a.Confidence))
	}
	if len(problems) > 0 {
		return fmt.Errorf("section %q: %w", a.SectionID, errors.New(strings.Join(problems, "; ")))
	}
	return nil
}
