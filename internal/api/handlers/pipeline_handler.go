package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/services"
)

type PipelineHandler struct {
	svc      services.PipelineService
	maxBytes int64
}

func NewPipelineHandler(svc services.PipelineService, maxBytes int64) *PipelineHandler {
	return &PipelineHandler{svc: svc, maxBytes: maxBytes}
}

type ProcessAudioResponse struct {
	OriginalText      string                   `json:"original_text"`
	OriginalLanguage  string                   `json:"original_language"`
	TranslatedText    string                   `json:"translated_text"`
	TargetLanguage    string                   `json:"target_language"`
	Emotion           models.Emotion           `json:"emotion"`
	EmotionAttributes models.EmotionAttributes `json:"emotion_attributes"`
	AudioBase64       string                   `json:"audio_base64"`
	AudioSizeBytes    int                      `json:"audio_size_bytes"`
}

func (h *PipelineHandler) ProcessAudio(c *gin.Context) {
	audio, filename, mimetype, err := readAudio(c, "PipelineHandler.ProcessAudio", h.maxBytes)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.svc.Process(c.Request.Context(), services.ProcessInput{
		Audio:    audio,
		Filename: filename,
		MimeType: mimetype,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProcessAudioResponse{
		OriginalText:      res.Transcript.Text,
		OriginalLanguage:  res.Transcript.Language,
		TranslatedText:    res.Translation.TranslatedText,
		TargetLanguage:    res.Translation.TargetLanguage,
		Emotion:           res.Emotion.Emotion,
		EmotionAttributes: res.Emotion.Attributes,
		AudioBase64:       base64.StdEncoding.EncodeToString(res.Audio),
		AudioSizeBytes:    res.AudioSize,
	})
}
