// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/luc-amender/pkg/types"
)

const ordinance = `ORDINANCE NO. 6789
AN ORDINANCE amending the Land Use Code.
Section 20.10.420 is amended to read as follows:
Minimum setbacks shall be 20 feet.
Section 20.10.430 is hereby repealed.
Section 20.20.010 is reserved.
Section 20.20.020 is amended.
Section 20.30.100 effective date.
`

type want struct {
	id         string
	action     types.Action
	newText    string
	confidence float64
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []want
	}{
		{
			name: "two headers on one line, bounded by the next section",
			text: "...Section 5.1 shall be repealed. Section 5.2 to read: Foo bar.\nSection 5.3 ...",
			want: []want{
				{"5.1", types.ActionRepeal, "", 0.8},
				{"5.2", types.ActionAmend, "Foo bar.", 0.8},
			},
		},
		{
			name: "full ordinance",
			text: ordinance,
			want: []want{
				{"20.10.420", types.ActionAmend, "Minimum setbacks shall be 20 feet.", 0.8},
				{"20.10.430", types.ActionRepeal, "", 0.8},
				{"20.20.010", types.ActionReserve, "", 0.8},
				{"20.20.020", types.ActionAmend, "", 0.5},
				{"20.30.100", types.ActionAmend, "", 0.5},
			},
		},
		{
			name: "case-insensitive header and keywords",
			text: "SECTION 12.3 IS HEREBY RESERVED.\n",
			want: []want{{"12.3", types.ActionReserve, "", 0.8}},
		},
		{
			name: "carriage-return line endings",
			text: "Section 3.1 is amended as follows:\r\nBody text.\r\n",
			want: []want{{"3.1", types.ActionAmend, "Body text.", 0.8}},
		},
		{
			name: "multi-paragraph replacement text",
			text: "Section 4.1 is amended to read as follows:\nLine one.\n\nLine two.\nSection 4.2 is repealed.\n",
			want: []want{
				{"4.1", types.ActionAmend, "Line one.\n\nLine two.", 0.8},
				{"4.2", types.ActionRepeal, "", 0.8},
			},
		},
		{
			name: "duplicate ids are all emitted",
			text: "Section 2.1 is repealed.\nSection 2.1 to read: New text.\n",
			want: []want{
				{"2.1", types.ActionRepeal, "", 0.8},
				{"2.1", types.ActionAmend, "New text.", 0.8},
			},
		},
		{
			name: "malformed id accepted as matched",
			text: "Section 7..2 is reserved.\n",
			want: []want{{"7..2", types.ActionReserve, "", 0.8}},
		},
		{
			name: "header without line terminator is ignored",
			text: "Section 1.1 is repealed.",
		},
		{
			name: "no headers",
			text: "AN ORDINANCE relating to zoning.\n",
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d amendments, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				a := got[i]
				if a.SectionID != w.id {
					t.Errorf("[%d] SectionID = %q, want %q", i, a.SectionID, w.id)
				}
				if a.Action != w.action {
					t.Errorf("[%d] Action = %q, want %q", i, a.Action, w.action)
				}
				if a.NewText != w.newText {
					t.Errorf("[%d] NewText = %q, want %q", i, a.NewText, w.newText)
				}
				if a.Confidence != w.confidence {
					t.Errorf("[%d] Confidence = %v, want %v", i, a.Confidence, w.confidence)
				}
			}
		})
	}
}

func TestParse_BoundaryExcludesNextSection(t *testing.T) {
	got := Parse("...Section 5.1 shall be repealed. Section 5.2 to read: Foo bar.\nSection 5.3 ...")
	if len(got) != 2 {
		t.Fatalf("got %d amendments, want 2", len(got))
	}
	if !strings.Contains(got[1].NewText, "Foo bar.") {
		t.Errorf("NewText %q should contain the replacement text", got[1].NewText)
	}
	if strings.Contains(got[1].NewText, "Section 5.3") {
		t.Errorf("NewText %q should stop before the next section", got[1].NewText)
	}
}

func TestParse_Reasoning(t *testing.T) {
	got := Parse("Section 20.10.420 is amended to read as follows for all zones:\nText.\n")
	if len(got) != 1 {
		t.Fatalf("got %d amendments, want 1", len(got))
	}
	r := got[0].Reasoning
	if !strings.HasPrefix(r, reasoningLabel+"Section 20.10.420") {
		t.Errorf("reasoning %q should start with the label and the header", r)
	}
	if n := utf8.RuneCountInString(strings.TrimPrefix(r, reasoningLabel)); n > excerptLen {
		t.Errorf("excerpt has %d runes, want at most %d", n, excerptLen)
	}
}

func TestParse_ReasoningStopsAtLineEnd(t *testing.T) {
	for _, text := range []string{
		"Section 4.1 is repealed.\nNext line.\n",
		"Section 4.1 is repealed.\r\nNext line.\r\n",
	} {
		got := Parse(text)
		if len(got) != 1 {
			t.Fatalf("got %d amendments, want 1", len(got))
		}
		if want := reasoningLabel + "Section 4.1 is repealed."; got[0].Reasoning != want {
			t.Errorf("reasoning = %q, want %q", got[0].Reasoning, want)
		}
	}
}

func TestParse_NeverProducesAdd(t *testing.T) {
	for _, a := range Parse(ordinance + "Section 30.1 is added to read: New section.\n") {
		if a.Action == types.ActionAdd {
			t.Errorf("section %s classified as add", a.SectionID)
		}
	}
}

func TestExcerpt(t *testing.T) {
	short := "Section 1.1"
	if got := excerpt(short); got != short {
		t.Errorf("excerpt(%q) = %q", short, got)
	}
	long := strings.Repeat("é", 50)
	if got := excerpt(long); utf8.RuneCountInString(got) != excerptLen {
		t.Errorf("excerpt of 50 runes has %d runes, want %d", utf8.RuneCountInString(got), excerptLen)
	}
}
