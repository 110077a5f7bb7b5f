// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns an ordinance PDF into plain text for the extractor.
// Backends are pluggable: an in-process reader (native) or a pdftotext
// container (container).
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/luc-amender/internal/container"
	"github.com/pdiddy/luc-amender/pkg/types"
)

var (
	// ErrUnknownBackend is returned for a conversion backend name that is
	// neither native nor container.
	ErrUnknownBackend = errors.New("unknown conversion backend")

	// ErrEmptyText is returned when a backend that should always produce
	// output produced none.
	ErrEmptyText = errors.New("extraction produced empty text")
)

// TextExtractor reads the text of a PDF. The result is a single string; no
// page or layout structure is relied upon downstream.
type TextExtractor interface {
	Extract(ctx context.Context, pdfPath string) (string, error)
}

// NewExtractor builds the extractor selected by cfg.Backend. An empty backend
// means native.
func NewExtractor(ctx context.Context, cfg types.ConversionConfig) (TextExtractor, error) {
	return newExtractor(ctx, cfg, container.Detect)
}

func newExtractor(ctx context.Context, cfg types.ConversionConfig, detect func(context.Context) (container.Runtime, error)) (TextExtractor, error) {
	switch cfg.Backend {
	case types.BackendNative, "":
		return NativeExtractor{}, nil
	case types.BackendContainer:
		rt, err := detect(ctx)
		if err != nil {
			return nil, err
		}
		image := cfg.Image
		if image == "" {
			image = types.DefaultContainerImage
		}
		return NewContainerExtractor(ctx, rt, image)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(cfg.Backend))
	}
}

// ReadText extracts and normalises the text of the PDF at path. A missing
// file is reported with an error wrapping fs.ErrNotExist.
func ReadText(ctx context.Context, ext TextExtractor, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("ordinance PDF: %w", err)
	}
	text, err := ext.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return Normalize(text), nil
}

// Normalize puts extracted text in NFC form and turns non-breaking spaces,
// which PDF text often uses between "Section" and the number, into plain
// spaces. Line terminators are left alone.
func Normalize(text string) string {
	return strings.ReplaceAll(norm.NFC.String(text), "\u00a0", " ")
}
