// Package voice implements text-to-speech synthesis, returning browser-ready
// WAV data URIs.
package voice

import (
	"context"
	"strings"

	"github.com/bizos/backend/internal/aiflow"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/audio"
)

// SpeechService synthesizes speech from text
type SpeechService struct {
	speech       aiflow.SpeechGenerator
	defaultVoice string
}

// NewSpeechService creates a new SpeechService
func NewSpeechService(speech aiflow.SpeechGenerator, defaultVoice string) *SpeechService {
	return &SpeechService{speech: speech, defaultVoice: defaultVoice}
}

// Speak synthesizes the text and wraps the provider's raw PCM into a WAV
// data URI
func (s *SpeechService) Speak(ctx context.Context, req SpeakRequest) (*SpeakResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Text to speak cannot be empty")
	}

	voice := req.Voice
	if voice == "" {
		voice = s.defaultVoice
	}

	pcm, err := s.speech.GenerateSpeech(ctx, text, voice)
	if err != nil {
		return nil, shared.NewDomainError("UPSTREAM_ERROR", "Speech synthesis failed")
	}
	if len(pcm) == 0 {
		return nil, shared.NewDomainError("EMPTY_GENERATION", "The provider returned no audio")
	}

	wav, err := audio.WrapPCM(pcm)
	if err != nil {
		return nil, shared.NewDomainError("UPSTREAM_ERROR", "The provider returned malformed audio")
	}

	return &SpeakResponse{
		AudioDataURI: audio.DataURI(wav),
		Voice:        voice,
		SampleRate:   audio.SampleRate,
	}, nil
}
