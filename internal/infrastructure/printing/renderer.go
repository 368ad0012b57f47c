// Package printing renders HTML documents to PDF for report exports.
package printing

import (
	"context"
	"time"
)

// PaperSize identifies the output paper dimensions.
type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperLetter PaperSize = "Letter"
)

// Dimensions returns the paper width and height in millimeters.
func (p PaperSize) Dimensions() (width, height float64) {
	switch p {
	case PaperLetter:
		return 215.9, 279.4
	default:
		return 210, 297
	}
}

// IsValid reports whether the paper size is supported.
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperA4, PaperLetter:
		return true
	}
	return false
}

// Margins are page margins in millimeters.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins are used when a request leaves margins unset.
func DefaultMargins() Margins {
	return Margins{Top: 15, Right: 12, Bottom: 15, Left: 12}
}

// RenderRequest contains the parameters for rendering HTML to PDF.
type RenderRequest struct {
	HTML      string
	Title     string
	PaperSize PaperSize
	Landscape bool
	Margins   Margins
	// FooterHTML is injected as the Chrome print footer when set.
	FooterHTML string
	// Timeout overrides the renderer default.
	Timeout time.Duration
}

// RenderResult contains the output of a render.
type RenderResult struct {
	PDFData        []byte
	RenderDuration time.Duration
}

// PDFRenderer converts HTML documents to PDF.
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

// RenderError carries a stable code alongside the rendering failure.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeRenderTimeout    = "RENDER_TIMEOUT"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeInvalidHTML      = "INVALID_HTML"
	ErrCodeInvalidPaperSize = "INVALID_PAPER_SIZE"
)

func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}
