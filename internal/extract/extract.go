// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds section amendments in the text of an ordinance.
// The rules are pattern heuristics; every amendment carries a confidence
// score so that weak matches can be routed to human review.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/luc-amender/pkg/types"
)

const (
	// confidenceHigh is assigned to repeals, reservations, and amendments
	// whose replacement text was captured.
	confidenceHigh = 0.8
	// confidenceLow is assigned to amendments with no captured text.
	confidenceLow = 0.5

	reasoningLabel = "Matched phrase: "
	excerptLen     = 40
)

var (
	// sectionPattern matches "Section <dotted id>" in any letter case.
	sectionPattern = regexp.MustCompile(`(?i)Section\s+([\d.]+)`)

	// toReadPattern matches the phrase that introduces replacement text on
	// the header line ("to read:", "to read as follows:").
	toReadPattern = regexp.MustCompile(`(?i)\bto\s+read(?:\s+as\s+follows)?\s*:?`)
)

// header is one "Section <id>" occurrence that ends a line.
type header struct {
	id        string
	start     int // offset of "Section"
	idEnd     int // offset just past the id
	lineEnd   int // offset of the line terminator
	remainder string
	next      int // offset of the next section occurrence, or len(text)
}

// findHeaders returns every section occurrence followed by a line terminator,
// in document order. An occurrence with no terminator after it still bounds
// the text of the header before it.
func findHeaders(text string) []header {
	locs := sectionPattern.FindAllStringSubmatchIndex(text, -1)
	var headers []header
	for i, loc := range locs {
		rel := strings.IndexAny(text[loc[1]:], "\r\n")
		if rel < 0 {
			continue
		}

		h := header{
			id:      text[loc[2]:loc[3]],
			start:   loc[0],
			idEnd:   loc[1],
			lineEnd: loc[1] + rel,
			next:    len(text),
		}
		if i+1 < len(locs) {
			h.next = locs[i+1][0]
		}
		h.remainder = text[h.idEnd:min(h.lineEnd, h.next)]
		headers = append(headers, h)
	}
	return headers
}

// Parse scans ordinance text and returns one amendment per section header,
// in document order. Duplicate section ids are all returned; the applier
// resolves them last-write-wins. Text with no headers yields no amendments.
func Parse(text string) []types.Amendment {
	var amendments []types.Amendment
	for _, h := range findHeaders(text) {
		amendments = append(amendments, amendmentFor(text, h))
	}
	return amendments
}

func amendmentFor(text string, h header) types.Amendment {
	a := types.Amendment{
		SectionID: h.id,
		Action:    classify(h.remainder),
		// The excerpt stops before the line terminator.
		Reasoning: reasoningLabel + excerpt(text[h.start:min(h.lineEnd, h.next)]),
	}
	if a.Action == types.ActionAmend {
		a.NewText = replacementText(text, h)
	}

	a.Confidence = confidenceLow
	if a.Action != types.ActionAmend || a.NewText != "" {
		a.Confidence = confidenceHigh
	}
	return a
}

// classify picks the action from the words after the section id.
func classify(remainder string) types.Action {
	lower := strings.ToLower(remainder)
	switch {
	case strings.Contains(lower, "repealed"):
		return types.ActionRepeal
	case strings.Contains(lower, "reserved"):
		return types.ActionReserve
	default:
		return types.ActionAmend
	}
}

// replacementText returns the trimmed text between the end of the header and
// the next section occurrence. A "to read" phrase on the header line ends the
// header early, so text on the same line is captured.
func replacementText(text string, h header) string {
	start := h.lineEnd + 1
	if loc := toReadPattern.FindStringIndex(h.remainder); loc != nil {
		start = h.idEnd + loc[1]
	}
	if start >= h.next {
		return ""
	}
	return strings.TrimSpace(text[start:h.next])
}

// excerpt returns at most excerptLen runes of s.
func excerpt(s string) string {
	if utf8.RuneCountInString(s) <= excerptLen {
		return s
	}
	return string([]rune(s)[:excerptLen])
}
