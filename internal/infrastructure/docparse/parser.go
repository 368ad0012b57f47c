// Package docparse extracts plain text from uploaded documents. PDFs and
// Word documents go through docconv; plain text passes through; images are
// rejected here because they go to the provider as multimodal input instead.
package docparse

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

// Supported MIME types
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC   = "application/msword"
	MimeText  = "text/plain"
	MimeCSV   = "text/csv"
	MimePNG   = "image/png"
	MimeJPEG  = "image/jpeg"
	MimeWebP  = "image/webp"
)

// Parser extracts text from binary documents
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// IsImage reports whether the MIME type is an image we forward to the
// provider instead of extracting text from
func IsImage(mimeType string) bool {
	switch normalizeMime(mimeType) {
	case MimePNG, MimeJPEG, MimeWebP:
		return true
	}
	return false
}

// IsPDF reports whether the MIME type is a PDF
func IsPDF(mimeType string) bool {
	return normalizeMime(mimeType) == MimePDF
}

// ExtractText returns the plain text of a document, branching on the declared
// MIME type
func (p *Parser) ExtractText(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("document is empty")
	}

	switch mime := normalizeMime(mimeType); mime {
	case MimeText, MimeCSV:
		return string(data), nil
	case MimePDF, MimeDOCX, MimeDOC:
		res, err := docconv.Convert(bytes.NewReader(data), mime, true)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", mime, err)
		}
		text := strings.TrimSpace(res.Body)
		if text == "" {
			return "", fmt.Errorf("document contains no extractable text")
		}
		return text, nil
	default:
		if IsImage(mime) {
			return "", fmt.Errorf("images are not text documents; use multimodal extraction")
		}
		return "", fmt.Errorf("unsupported document type %q", mimeType)
	}
}

// normalizeMime strips parameters like charset and lowercases the type
func normalizeMime(mimeType string) string {
	mime := strings.TrimSpace(strings.ToLower(mimeType))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime
}
