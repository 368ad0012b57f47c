package aiflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"
)

// Generator is the provider surface a flow needs. Implemented by the Gemini
// client in infrastructure/ai and by fakes in tests.
type Generator interface {
	// GenerateJSON asks the provider for output constrained to schema and
	// returns the raw JSON text
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// GenerateJSONWithImage is GenerateJSON with an inline image part
	GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema) (string, error)
	// GenerateText asks for free-form text
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Observer is notified after every flow run. Set once at startup, before any
// flow executes.
type Observer func(ctx context.Context, flow string, duration time.Duration, err error)

var observer Observer

// SetObserver installs the run observer, typically a metrics recorder.
func SetObserver(fn Observer) { observer = fn }

// Flow is a single prompt-flow unit: a named, typed prompt template paired
// with a response schema derived from Out. Run validates the input, renders
// the prompt, calls the provider with structured output enforced and decodes
// the result.
type Flow[In any, Out any] struct {
	name    string
	tmpl    *template.Template
	schema  *genai.Schema
	prepare func(In) In
	image   func(In) ([]byte, string)
}

// Option configures a Flow at registration
type Option[In any, Out any] func(*Flow[In, Out])

// WithPrepare installs a hook run after validation and before rendering,
// typically to truncate oversized fields
func WithPrepare[In any, Out any](fn func(In) In) Option[In, Out] {
	return func(f *Flow[In, Out]) { f.prepare = fn }
}

// WithImage marks the flow multimodal; the hook extracts the image bytes and
// MIME type from the input
func WithImage[In any, Out any](fn func(In) ([]byte, string)) Option[In, Out] {
	return func(f *Flow[In, Out]) { f.image = fn }
}

// New registers a flow. The schema is derived from the Out zero value and the
// template is parsed eagerly so a malformed flow fails at startup.
func New[In any, Out any](name, tmplText string, opts ...Option[In, Out]) *Flow[In, Out] {
	var out Out
	f := &Flow[In, Out]{
		name:   name,
		tmpl:   mustTemplate(name, tmplText),
		schema: SchemaOf(out),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the flow's registered name
func (f *Flow[In, Out]) Name() string { return f.name }

// Schema returns the derived response schema
func (f *Flow[In, Out]) Schema() *genai.Schema { return f.schema }

// Run executes the flow once. There are no retries; the caller decides
// whether to try again.
func (f *Flow[In, Out]) Run(ctx context.Context, g Generator, in In) (out Out, runErr error) {
	if observer != nil {
		start := time.Now()
		defer func() {
			observer(ctx, f.name, time.Since(start), runErr)
		}()
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return out, newError(KindInvalidInput, f.name, fmt.Errorf("invalid fields: %s", strings.Join(fields, ", ")))
		}
		return out, newError(KindInvalidInput, f.name, err)
	}
	if f.prepare != nil {
		in = f.prepare(in)
	}
	prompt, err := renderPrompt(f.tmpl, in)
	if err != nil {
		return out, newError(KindInvalidInput, f.name, err)
	}

	var raw string
	var data []byte
	var mime string
	if f.image != nil {
		data, mime = f.image(in)
	}
	if len(data) > 0 {
		raw, err = g.GenerateJSONWithImage(ctx, prompt, data, mime, f.schema)
	} else {
		raw, err = g.GenerateJSON(ctx, prompt, f.schema)
	}
	if err != nil {
		return out, newError(KindProviderError, f.name, err)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return out, newError(KindEmptyOutput, f.name, errors.New("provider returned no output"))
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, newError(KindProviderError, f.name, fmt.Errorf("decode structured output: %w", err))
	}
	return out, nil
}
