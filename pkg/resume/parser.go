package resume

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf is allowed")

	reBlanks = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// PDFReader extracts text page by page. Pages without extractable text
// contribute an empty string rather than failing the whole document.
type PDFReader struct{}

func NewPDFReader() *PDFReader { return &PDFReader{} }

// Read extracts concatenated page text and the page count.
func (PDFReader) Read(filename string, data []byte) (Document, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return Document{}, ErrUnsupportedFormat
	}
	return extractTextFromPDF(data)
}

func extractTextFromPDF(data []byte) (doc Document, err error) {
	// the pdf package panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			doc, err = Document{}, fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("read pdf: %w", err)
	}
	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		pages = append(pages, normalizeWhitespace(text))
	}
	return Document{Text: strings.Join(pages, "\n"), Pages: n}, nil
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
