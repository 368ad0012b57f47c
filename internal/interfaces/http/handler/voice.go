package handler

import (
	"github.com/gin-gonic/gin"

	voiceapp "github.com/bizos/backend/internal/application/voice"
)

// VoiceHandler handles text-to-speech endpoints
type VoiceHandler struct {
	BaseHandler
	speech *voiceapp.SpeechService
}

// NewVoiceHandler creates a new VoiceHandler
func NewVoiceHandler(speech *voiceapp.SpeechService) *VoiceHandler {
	return &VoiceHandler{speech: speech}
}

// RegisterRoutes registers the voice endpoints
func (h *VoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/voice/tts", h.Speak)
}

// Speak synthesizes speech and returns it as a WAV data URI
func (h *VoiceHandler) Speak(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req voiceapp.SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.speech.Speak(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "TTS", err)
		return
	}
	h.Success(c, resp)
}
