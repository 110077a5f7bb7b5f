// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apply

import "github.com/pdiddy/luc-amender/pkg/types"

// index is an insertion-ordered map from section id to Section. Replacing an
// existing id keeps its position; a new id goes to the end.
type index struct {
	order    []string
	sections map[string]types.Section
}

func newIndex(sections []types.Section) *index {
	idx := &index{sections: make(map[string]types.Section, len(sections))}
	for _, s := range sections {
		idx.put(s)
	}
	return idx
}

func (idx *index) get(id string) (types.Section, bool) {
	s, ok := idx.sections[id]
	return s, ok
}

func (idx *index) put(s types.Section) {
	if _, ok := idx.sections[s.ID]; !ok {
		idx.order = append(idx.order, s.ID)
	}
	idx.sections[s.ID] = s
}

// values returns the sections in insertion order.
func (idx *index) values() []types.Section {
	out := make([]types.Section, 0, len(idx.order))
	for _, id := range idx.order {
		out = append(out, idx.sections[id])
	}
	return out
}
