// Package pdftext reads positioned word tokens out of a PDF's text layer.
// Scanned pages without a text layer yield no words.
package pdftext

import (
	"fmt"
	"log/slog"
	"os"

	rpdf "rsc.io/pdf"

	"github.com/thywilljoshua/pdf-digest/internal/outline"
)

const defaultHeight = 792

// Loader extracts word tokens page by page.
type Loader struct {
	Logger *slog.Logger
	// Tolerance is the distance in points under which glyphs on the same
	// baseline are merged into one word. Zero means 3.
	Tolerance float64
}

// Pages returns one outline.Page per PDF page. A page whose content stream
// cannot be read is logged and left empty; only failing to open the file is
// an error.
func (l Loader) Pages(path string) ([]outline.Page, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tol := l.Tolerance
	if tol <= 0 {
		tol = 3
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	doc, err := newReader(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}

	n := doc.NumPage()
	pages := make([]outline.Page, 0, n)
	for i := 1; i <= n; i++ {
		p := doc.Page(i)
		page := outline.Page{Number: i, Height: defaultHeight}
		if p.V.IsNull() {
			pages = append(pages, page)
			continue
		}
		page.Height = pageHeight(p.V)
		words, err := pageWords(p, page.Height, tol)
		if err != nil {
			logger.Warn("pdftext.page.failed", "path", path, "page", i, "error", err)
		}
		page.Words = words
		pages = append(pages, page)
	}
	return pages, nil
}

func newReader(f *os.File, size int64) (r *rpdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return rpdf.NewReader(f, size)
}

func pageWords(p rpdf.Page, height, tol float64) (words []outline.WordToken, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			words, err = nil, fmt.Errorf("read page content: %v", rec)
		}
	}()
	return assembleWords(p.Content().Text, height, tol), nil
}

// pageHeight reads the MediaBox, following Parent links for inherited boxes.
func pageHeight(v rpdf.Value) float64 {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == rpdf.Array && box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultHeight
}
