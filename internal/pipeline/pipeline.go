// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one amendment pass: load the LUC, extract amendments
// from the ordinance, apply them, and write the amended LUC and audit log.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/luc-amender/internal/apply"
	"github.com/pdiddy/luc-amender/internal/convert"
	"github.com/pdiddy/luc-amender/internal/extract"
	"github.com/pdiddy/luc-amender/internal/luc"
	"github.com/pdiddy/luc-amender/pkg/types"
)

// Summary counts the outcome of a run.
type Summary struct {
	Extracted int // amendments found in the ordinance
	Manual    int // amendments read from the manual amendments file

	Amended  int
	Repealed int
	Reserved int
	Added    int

	// Flagged is the number of log entries marked for review.
	Flagged int

	// Sections is the number of sections in the amended document.
	Sections int
}

// Total returns the number of amendments applied.
func (s Summary) Total() int {
	return s.Amended + s.Repealed + s.Reserved + s.Added
}

// HasReviews reports whether any amendment needs human review.
func (s Summary) HasReviews() bool {
	return s.Flagged > 0
}

func (s *Summary) count(e types.LogEntry) {
	switch e.Action {
	case types.ActionAmend:
		s.Amended++
	case types.ActionRepeal:
		s.Repealed++
	case types.ActionReserve:
		s.Reserved++
	case types.ActionAdd:
		s.Added++
	}
	if e.Flagged() {
		s.Flagged++
	}
}

// Run executes the pipeline described by cfg, reading ordinance text through
// ext and printing per-stage status lines to w. Any failure aborts the run
// before outputs are written.
func Run(ctx context.Context, cfg types.PipelineConfig, ext convert.TextExtractor, w io.Writer) (Summary, error) {
	logger := slog.Default().With("run_id", uuid.NewString())

	lucPath := cfg.Paths.LUCPath()
	doc, err := luc.LoadDocument(lucPath)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "loaded: %s (%d sections)\n", lucPath, len(doc.Sections))

	extracted, err := extractAmendments(ctx, cfg.Paths.OrdinancePath(), ext, w, logger)
	if err != nil {
		return Summary{}, err
	}
	var manual []types.Amendment
	if cfg.AmendmentsFile != "" {
		if manual, err = luc.LoadAmendments(cfg.AmendmentsFile); err != nil {
			return Summary{}, err
		}
		fmt.Fprintf(w, "loaded: %d manual amendments from %s\n", len(manual), cfg.AmendmentsFile)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sections, log, err := apply.Apply(doc.Sections, append(extracted, manual...))
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Extracted: len(extracted), Manual: len(manual), Sections: len(sections)}
	for _, e := range log {
		summary.count(e)
		if e.Flagged() {
			fmt.Fprintf(w, "review:  %s %s (confidence %.2f)\n", e.Action, e.Section, e.Confidence)
			logger.Warn("amendment needs review", "section", e.Section, "action", string(e.Action), "confidence", e.Confidence)
			continue
		}
		fmt.Fprintf(w, "applied: %s %s\n", e.Action, e.Section)
	}

	amendedPath := cfg.Paths.AmendedPath()
	if err := luc.SaveDocument(amendedPath, doc.WithSections(sections)); err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "wrote: %s (%d sections)\n", amendedPath, len(sections))

	logPath := cfg.Paths.LogPath()
	if err := luc.SaveLog(logPath, log); err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "wrote: %s (%d entries)\n", logPath, len(log))

	fmt.Fprintf(w, "\nSummary: %d amended, %d repealed, %d reserved, %d added, %d flagged for review (total: %d)\n",
		summary.Amended, summary.Repealed, summary.Reserved, summary.Added, summary.Flagged, summary.Total())
	logger.Info("amendment run complete", "applied", summary.Total(), "flagged", summary.Flagged)
	return summary, nil
}

// extractAmendments reads the ordinance text and parses it. The page count is
// informational only.
func extractAmendments(ctx context.Context, pdfPath string, ext convert.TextExtractor, w io.Writer, logger *slog.Logger) ([]types.Amendment, error) {
	text, err := convert.ReadText(ctx, ext, pdfPath)
	if err != nil {
		return nil, err
	}
	if info, err := convert.Inspect(pdfPath); err != nil {
		logger.Warn("could not read page count", "path", pdfPath, "error", err)
	} else {
		logger.Info("ordinance read", "path", pdfPath, "pages", info.Pages, "chars", len(text))
	}

	amendments := extract.Parse(text)
	fmt.Fprintf(w, "extracted: %d amendments from %s\n", len(amendments), pdfPath)
	if len(amendments) == 0 && strings.TrimSpace(text) != "" {
		logger.Warn("no section headers found in ordinance text", "path", pdfPath, "chars", len(text))
	}
	return amendments, nil
}
