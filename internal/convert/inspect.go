// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFInfo describes an ordinance PDF.
type PDFInfo struct {
	Path  string
	Pages int
}

// Inspect reads the PDF's page count. Callers treat a failure as a warning:
// a file pdfcpu rejects may still yield text.
func Inspect(pdfPath string) (PDFInfo, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return PDFInfo{}, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	pages, err := api.PageCount(f, nil)
	if err != nil {
		return PDFInfo{}, fmt.Errorf("counting pages of %s: %w", pdfPath, err)
	}
	return PDFInfo{Path: pdfPath, Pages: pages}, nil
}
