// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// wordGap is the horizontal gap, as a fraction of the font size, above which
// two glyphs on a row are treated as separate words.
const wordGap = 0.2

// NativeExtractor reads PDF text in-process. It needs no external tools.
type NativeExtractor struct{}

// Extract returns the text of every page of the PDF at pdfPath, one line per
// text row, top to bottom.
func (NativeExtractor) Extract(ctx context.Context, pdfPath string) (text string, err error) {
	// The reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF %s: %v", pdfPath, r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, line := range pageLines(page.Content().Text) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// pageLines groups positioned glyphs into rows by baseline and returns the
// rows top to bottom. PDF y coordinates grow upwards.
func pageLines(glyphs []pdf.Text) []string {
	rows := make(map[float64][]pdf.Text)
	for _, g := range glyphs {
		if g.S == "\n" || g.S == "\r" {
			continue
		}
		y := math.Round(g.Y)
		rows[y] = append(rows[y], g)
	}

	ys := make([]float64, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	lines := make([]string, 0, len(ys))
	for _, y := range ys {
		if line := rowText(rows[y]); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// rowText joins the glyphs of a row left to right, inserting a space where
// the layout leaves a gap but the content stream has none.
func rowText(glyphs []pdf.Text) string {
	sort.SliceStable(glyphs, func(i, j int) bool { return glyphs[i].X < glyphs[j].X })

	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			if g.X-(prev.X+prev.W) > wordGap*g.FontSize &&
				!strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return strings.TrimSpace(b.String())
}
