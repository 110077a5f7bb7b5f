// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReviewNote is the marker attached to log entries that need human review.
const ReviewNote = "Review low confidence amendment"

// LogEntry records one applied amendment in the audit log.
type LogEntry struct {
	Section    string  `json:"section" yaml:"section"`
	Action     Action  `json:"action" yaml:"action"`
	OldText    string  `json:"old_text" yaml:"old_text"`
	NewText    string  `json:"new_text" yaml:"new_text"`
	Reasoning  string  `json:"reasoning" yaml:"reasoning"`
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Review is ReviewNote when the amendment's confidence is below
	// ReviewThreshold, empty otherwise. The "TODO" key is what reviewers of
	// the audit log search for.
	Review string `json:"TODO,omitempty" yaml:"review,omitempty"`
}

// NewLogEntry builds the audit record for a applied to a section whose text
// went from oldText to newText.
func NewLogEntry(a Amendment, oldText, newText string) LogEntry {
	e := LogEntry{
		Section:    a.SectionID,
		Action:     a.Action,
		OldText:    oldText,
		NewText:    newText,
		Reasoning:  a.Reasoning,
		Confidence: a.Confidence,
	}
	if a.NeedsReview() {
		e.Review = ReviewNote
	}
	return e
}

// Flagged reports whether the entry carries the review marker.
func (e LogEntry) Flagged() bool {
	return e.Review != ""
}
