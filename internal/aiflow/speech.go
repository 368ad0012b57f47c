package aiflow

import "context"

// SpeechGenerator produces raw PCM audio for a piece of text. Kept separate
// from Generator because only the voice capability needs it.
type SpeechGenerator interface {
	// GenerateSpeech returns 16-bit little-endian mono PCM at 24 kHz
	GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error)
}
