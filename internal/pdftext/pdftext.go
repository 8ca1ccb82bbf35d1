// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext turns paginated documents into plain text for the
// extraction stage. A PageSource yields text page by page; Concat joins
// the pages into the single string the extractor consumes. Per-page
// extraction failures degrade to empty text; only a document that cannot
// be opened at all is a hard error.
package pdftext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnreadable reports that a document could not be opened or parsed at
// all. Per-page failures never produce this error.
var ErrUnreadable = errors.New("document unreadable")

// PageSource yields the text of a paginated document one page at a time.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the text of page pageNr (1-based). An error means
	// this page could not be extracted; the document may still have
	// readable pages.
	PageText(pageNr int) (string, error)
}

// Concat joins every page of src with newline separators, in page order.
// Pages that fail extraction contribute an empty string. No normalization
// happens here; the extraction rules deal with raw text as-is. maxPages
// caps how many pages are read; zero means all.
func Concat(src PageSource, maxPages int) string {
	n := src.PageCount()
	if maxPages > 0 && maxPages < n {
		n = maxPages
	}

	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		text, err := src.PageText(i)
		if err != nil {
			text = ""
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n")
}

// TextSource is a PageSource over in-memory page strings. It backs plain
// text input files and the extraction tests.
type TextSource struct {
	pages []string
}

// NewTextSource builds a TextSource from the given pages.
func NewTextSource(pages ...string) *TextSource {
	return &TextSource{pages: pages}
}

// PageCount returns the number of pages.
func (s *TextSource) PageCount() int { return len(s.pages) }

// PageText returns the text of page pageNr (1-based).
func (s *TextSource) PageText(pageNr int) (string, error) {
	if pageNr < 1 || pageNr > len(s.pages) {
		return "", fmt.Errorf("page %d out of range [1, %d]", pageNr, len(s.pages))
	}
	return s.pages[pageNr-1], nil
}

// Open builds a PageSource for the file at path. PDF files are parsed
// page by page; anything else is read whole as a single-page text
// document. A file that cannot be opened or parsed yields ErrUnreadable.
func Open(path string) (PageSource, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return OpenPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return NewTextSource(string(data)), nil
}
