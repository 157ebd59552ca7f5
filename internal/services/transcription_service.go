package services

import (
	"context"
	"strings"
	"time"

	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/providers/stt"
	"github.com/yoockh/yoospeak/internal/utils"
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, mimetype string) (*models.Transcript, error)
}

type transcriptionService struct {
	provider stt.Provider
	timeout  time.Duration
}

func NewTranscriptionService(provider stt.Provider, timeout time.Duration) TranscriptionService {
	return &transcriptionService{provider: provider, timeout: timeout}
}

func (s *transcriptionService) Transcribe(ctx context.Context, audio []byte, mimetype string) (*models.Transcript, error) {
	const op = "TranscriptionService.Transcribe"

	if len(audio) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "audio is empty", nil)
	}
	if mimetype == "" {
		mimetype = "audio/wav"
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.provider.Transcribe(ctx, audio, mimetype)
	if err != nil {
		return nil, utils.Upstream(op, "transcription failed", err)
	}

	code := strings.ToLower(strings.TrimSpace(res.LanguageCode))
	if code == "" {
		code = "en"
	}
	return &models.Transcript{
		Text:         res.Text,
		Language:     LanguageName(code),
		LanguageCode: code,
	}, nil
}

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
}

// LanguageName returns the display name for a code, ex: "es-ES" -> "Spanish",
// or the code itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[prefix2(strings.ToLower(code))]; ok {
		return name
	}
	return code
}
