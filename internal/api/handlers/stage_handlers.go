package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/services"
	"github.com/yoockh/yoospeak/internal/utils"
)

type TranscriptionHandler struct {
	svc      services.TranscriptionService
	maxBytes int64
}

func NewTranscriptionHandler(svc services.TranscriptionService, maxBytes int64) *TranscriptionHandler {
	return &TranscriptionHandler{svc: svc, maxBytes: maxBytes}
}

func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	const op = "TranscriptionHandler.Transcribe"

	audio, filename, mimetype, err := readAudio(c, op, h.maxBytes)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.svc.Transcribe(c.Request.Context(), audio, utils.AudioMimeType(filename, mimetype))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type EmotionHandler struct {
	svc      services.EmotionService
	maxBytes int64
}

func NewEmotionHandler(svc services.EmotionService, maxBytes int64) *EmotionHandler {
	return &EmotionHandler{svc: svc, maxBytes: maxBytes}
}

func (h *EmotionHandler) Detect(c *gin.Context) {
	audio, filename, _, err := readAudio(c, "EmotionHandler.Detect", h.maxBytes)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.svc.Detect(c.Request.Context(), audio, filename)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type TranslationHandler struct {
	svc services.TranslationService
}

func NewTranslationHandler(svc services.TranslationService) *TranslationHandler {
	return &TranslationHandler{svc: svc}
}

type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang" binding:"required"`
	TargetLang string `json:"target_lang"`
}

func (h *TranslationHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TranslationHandler.Translate", "invalid request body", err))
		return
	}

	out, err := h.svc.Translate(c.Request.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type SpeechHandler struct {
	svc services.SpeechService
}

func NewSpeechHandler(svc services.SpeechService) *SpeechHandler {
	return &SpeechHandler{svc: svc}
}

type GenerateSpeechRequest struct {
	Text              string             `json:"text" binding:"required"`
	Emotion           string             `json:"emotion"`
	EmotionAttributes map[string]float64 `json:"emotion_attributes"`
	LanguageCode      string             `json:"language_code"`
}

func (h *SpeechHandler) Generate(c *gin.Context) {
	var req GenerateSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SpeechHandler.Generate", "invalid request body", err))
		return
	}
	if req.Emotion == "" {
		req.Emotion = string(models.EmotionNeutral)
	}
	if req.LanguageCode == "" {
		req.LanguageCode = "en"
	}

	audio, _, err := h.svc.Synthesize(c.Request.Context(), services.SynthesisRequest{
		Text:         req.Text,
		Emotion:      models.Emotion(req.Emotion),
		Attributes:   req.EmotionAttributes,
		LanguageCode: req.LanguageCode,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=speech.mp3")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (h *SpeechHandler) Voices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": h.svc.Voices(c.Request.Context())})
}
