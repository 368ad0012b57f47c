// Package ai wraps the Gemini SDK behind the generator interfaces the flow
// engine consumes. All outbound generation calls pass through a shared rate
// limiter so a burst of requests cannot exhaust the provider quota.
package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Config holds provider settings
type Config struct {
	APIKey            string
	Model             string
	TTSModel          string
	RequestsPerMinute int
}

// Client calls the Gemini API. Implements aiflow.Generator and
// aiflow.SpeechGenerator.
type Client struct {
	genai    *genai.Client
	model    string
	ttsModel string
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewClient creates a provider client. Fails fast with a descriptive error
// when the API key is missing instead of deferring to the first call.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generation provider API key is not configured")
	}
	if cfg.Model == "" {
		return nil, errors.New("generation model is not configured")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}

	return &Client{
		genai:    gc,
		model:    cfg.Model,
		ttsModel: cfg.TTSModel,
		limiter:  rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm),
		logger:   logger.Named("ai"),
	}, nil
}

// GenerateJSON sends the prompt with schema-constrained decoding enabled and
// returns the raw JSON text
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return c.generate(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
}

// GenerateJSONWithImage is GenerateJSON with an inline image part for
// multimodal extraction
func (c *Client) GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)

	return c.generate(ctx, []*genai.Content{content}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
}

// GenerateText sends the prompt without output constraints
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt), nil)
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.logger.Error("generation call failed", zap.Error(err))
		return "", fmt.Errorf("generation call failed: %w", err)
	}
	return resp.Text(), nil
}

// GenerateSpeech synthesizes text into 16-bit little-endian mono PCM at 24 kHz
func (c *Client) GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if c.ttsModel == "" {
		return nil, errors.New("TTS model is not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.ttsModel, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	})
	if err != nil {
		c.logger.Error("speech call failed", zap.Error(err))
		return nil, fmt.Errorf("speech call failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, errors.New("provider returned no audio")
}
