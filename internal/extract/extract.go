// ABOUTME: Document-to-text extraction for uploaded study material
// ABOUTME: PDFs go through ledongthuc/pdf; anything else passes through as UTF-8 text
package extract

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"studypilot/internal/core"
)

// Text extracts plain text from an uploaded document. The format is
// chosen by file extension; non-PDF uploads are treated as plain text.
// An empty extraction result is an error: the pipeline has nothing to
// ground on without document text.
func Text(filename string, data []byte) (string, error) {
	var text string
	var err error

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		text, err = fromPDF(data)
	} else {
		text = string(data)
	}
	if err != nil {
		return "", &core.ExtractionError{Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &core.ExtractionError{Err: errors.New("no text content in document")}
	}
	return text, nil
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
