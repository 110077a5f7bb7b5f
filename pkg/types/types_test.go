// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{in: "amend", want: ActionAmend},
		{in: "REPEAL", want: ActionRepeal},
		{in: " reserve ", want: ActionReserve},
		{in: "add", want: ActionAdd},
		{in: "unknown", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActionUnmarshalJSON(t *testing.T) {
	var a Amendment
	err := json.Unmarshal([]byte(`{"section_id":"1.1","action":"unknown"}`), &a)
	require.ErrorIs(t, err, ErrUnknownAction)

	require.NoError(t, json.Unmarshal([]byte(`{"section_id":"1.1","action":"repeal"}`), &a))
	assert.Equal(t, ActionRepeal, a.Action)
}

func TestAmendmentValidate(t *testing.T) {
	tests := []struct {
		name   string
		a      Amendment
		errMsg string
	}{
		{name: "valid amend", a: Amendment{SectionID: "20.10", Action: ActionAmend, Confidence: 1}},
		{name: "valid add", a: Amendment{SectionID: "20.10", Action: ActionAdd, NewText: "x", Confidence: 0.9}},
		{name: "missing id", a: Amendment{Action: ActionRepeal, Confidence: 1}, errMsg: "section_id is required"},
		{name: "add without text", a: Amendment{SectionID: "1", Action: ActionAdd, Confidence: 1}, errMsg: "new_text is required"},
		{name: "confidence out of range", a: Amendment{SectionID: "1", Action: ActionAmend, Confidence: 1.5}, errMsg: "outside [0, 1]"},
		{name: "unknown action", a: Amendment{SectionID: "1", Action: Action("unknown")}, errMsg: "unknown amendment action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewLogEntryReviewMarker(t *testing.T) {
	for _, c := range []float64{0, 0.5, 0.59} {
		e := NewLogEntry(Amendment{SectionID: "1", Action: ActionAmend, Confidence: c}, "", "")
		assert.True(t, e.Flagged(), "confidence %v should be flagged", c)
		assert.Equal(t, ReviewNote, e.Review)
	}
	for _, c := range []float64{0.6, 0.8, 1} {
		e := NewLogEntry(Amendment{SectionID: "1", Action: ActionAmend, Confidence: c}, "", "")
		assert.False(t, e.Flagged(), "confidence %v should not be flagged", c)
	}
}

func TestLogEntryJSON(t *testing.T) {
	e := NewLogEntry(Amendment{SectionID: "5.2", Action: ActionAmend, Confidence: 0.5, Reasoning: "r"}, "a", "a")
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"section":"5.2","action":"amend","old_text":"a","new_text":"a","reasoning":"r","confidence":0.5,"TODO":"Review low confidence amendment"}`, string(data))

	e = NewLogEntry(Amendment{SectionID: "5.1", Action: ActionRepeal, Confidence: 0.8}, "a", "")
	data, err = json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "TODO")
}

func TestSectionJSON(t *testing.T) {
	t.Run("keeps unknown members in source order", func(t *testing.T) {
		in := `{"id":"1.1","chapter":"1","title":"T","text":"A & B","notes":["x"]}`
		var s Section
		require.NoError(t, json.Unmarshal([]byte(in), &s))
		assert.Equal(t, "1.1", s.ID)
		assert.Equal(t, "A & B", s.Text)

		out, err := marshalRaw(s)
		require.NoError(t, err)
		assert.Equal(t, `{"id":"1.1","chapter":"1","title":"T","text":"A & B","notes":["x"]}`, string(out))
	})

	t.Run("built sections use canonical order", func(t *testing.T) {
		out, err := json.Marshal(Section{ID: "2", Title: "T", Status: StatusRepealed})
		require.NoError(t, err)
		assert.Equal(t, `{"id":"2","title":"T","text":"","status":"REPEALED"}`, string(out))
	})

	t.Run("active status omitted", func(t *testing.T) {
		out, err := json.Marshal(Section{ID: "3"})
		require.NoError(t, err)
		assert.Equal(t, `{"id":"3","title":"","text":""}`, string(out))
	})

	t.Run("rejects non-object", func(t *testing.T) {
		var s Section
		assert.Error(t, json.Unmarshal([]byte(`"1.1"`), &s))
	})
}

func TestDocumentJSON(t *testing.T) {
	in := `{"code":"LUC","sections":[{"id":"1","title":"A","text":"a"}],"version":2}`
	var d Document
	require.NoError(t, json.Unmarshal([]byte(in), &d))
	require.Len(t, d.Sections, 1)

	updated := d.WithSections([]Section{{ID: "1", Title: "A", Text: "b"}, {ID: "2"}})
	out, err := json.Marshal(updated)
	require.NoError(t, err)
	assert.Equal(t,
		`{"code":"LUC","sections":[{"id":"1","title":"A","text":"b"},{"id":"2","title":"","text":""}],"version":2}`,
		string(out))

	out, err = json.Marshal(NewDocument(nil))
	require.NoError(t, err)
	assert.Equal(t, `{"sections":[]}`, string(out))
}

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()
	assert.Equal(t, "docs/bellevue_amendments/LUC.json", cfg.Paths.LUCPath())
	assert.Equal(t, "docs/bellevue_amendments/ordinance.pdf", cfg.Paths.OrdinancePath())
	assert.Equal(t, "output_json/bellevue/LUC_amended.json", cfg.Paths.AmendedPath())
	assert.Equal(t, "output_json/bellevue/amendment_log.json", cfg.Paths.LogPath())
	assert.Equal(t, BackendNative, cfg.Conversion.Backend)
}
