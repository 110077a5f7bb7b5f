// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apply merges amendments into the sections of a land-use code and
// records an audit log entry for each one.
package apply

import (
	"fmt"

	"github.com/pdiddy/luc-amender/pkg/types"
)

// ErrUnknownAction is returned when an amendment's action is outside the
// closed set. It wraps types.ErrUnknownAction.
var ErrUnknownAction = fmt.Errorf("apply: %w", types.ErrUnknownAction)

// Apply applies amendments to sections in the order given and returns the
// merged sections with one log entry per amendment.
//
// Sections are keyed by id. Sections never amended keep their original
// position; ids first seen in an amendment follow in amendment order. A later
// amendment to the same id replaces the whole section (last write wins), and
// every action is accepted regardless of the section's current status.
//
// An amendment with an unknown action rejects the run: Apply returns nil
// results and an error wrapping ErrUnknownAction. The input slice is not
// modified.
func Apply(sections []types.Section, amendments []types.Amendment) ([]types.Section, []types.LogEntry, error) {
	idx := newIndex(sections)
	log := make([]types.LogEntry, 0, len(amendments))

	for i, a := range amendments {
		existing, _ := idx.get(a.SectionID)

		updated, err := amendSection(existing, a)
		if err != nil {
			return nil, nil, fmt.Errorf("amendment %d (section %s): %w", i+1, a.SectionID, err)
		}

		idx.put(updated)
		log = append(log, types.NewLogEntry(a, existing.Text, updated.Text))
	}

	return idx.values(), log, nil
}

// amendSection builds the section that results from applying a to existing.
// The result is always a fresh record: only the title is carried over.
func amendSection(existing types.Section, a types.Amendment) (types.Section, error) {
	s := types.Section{ID: a.SectionID, Title: existing.Title}

	switch a.Action {
	case types.ActionAmend:
		s.Text = a.NewText
		if s.Text == "" {
			s.Text = existing.Text
		}
	case types.ActionRepeal:
		s.Status = types.StatusRepealed
	case types.ActionReserve:
		s.Status = types.StatusReserved
	case types.ActionAdd:
		// Unlike amend, add never falls back to the previous text.
		s.Text = a.NewText
	default:
		return types.Section{}, fmt.Errorf("%w: %q", ErrUnknownAction, string(a.Action))
	}

	return s, nil
}
