// Package pdftext extracts plain text from PDF resume bytes.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

// Extractor turns raw PDF bytes into per-page text.
type Extractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// DocconvExtractor implements Extractor with sajari/docconv.
type DocconvExtractor struct{}

// NewDocconvExtractor constructs the docconv-backed extractor.
func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{}
}

// ExtractPages converts the PDF and splits the result on form feeds, the
// page separator pdftotext emits. Pages with no extractable text are
// dropped, so a scanned (image-only) PDF yields an empty slice rather
// than an error.
func (e *DocconvExtractor) ExtractPages(data []byte) ([]string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), "application/pdf", true)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return splitPages(res.Body), nil
}

func splitPages(body string) []string {
	var pages []string
	for _, page := range strings.Split(body, "\f") {
		if trimmed := strings.TrimSpace(page); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}
	return pages
}
