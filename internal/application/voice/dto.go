package voice

// SpeakRequest asks for synthesized speech. Voice falls back to the
// configured default when empty.
type SpeakRequest struct {
	Text  string `json:"text" binding:"required,max=4000"`
	Voice string `json:"voice" binding:"omitempty,max=50"`
}

// SpeakResponse carries the synthesized audio as a WAV data URI ready for
// an <audio> element
type SpeakResponse struct {
	AudioDataURI string `json:"audio_data_uri"`
	Voice        string `json:"voice"`
	SampleRate   int    `json:"sample_rate"`
}
