package services

import (
	"context"
	"strings"
	"time"

	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/providers/translate"
	"github.com/yoockh/yoospeak/internal/utils"
)

type TranslationService interface {
	// Translate picks the counterpart language when target is empty.
	Translate(ctx context.Context, text, source, target string) (*models.TranslationResult, error)
}

type translationService struct {
	provider translate.Provider
	timeout  time.Duration
}

func NewTranslationService(provider translate.Provider, timeout time.Duration) TranslationService {
	return &translationService{provider: provider, timeout: timeout}
}

func (s *translationService) Translate(ctx context.Context, text, source, target string) (*models.TranslationResult, error) {
	const op = "TranslationService.Translate"

	if strings.TrimSpace(text) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "text is required", nil)
	}
	if strings.TrimSpace(source) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "source language is required", nil)
	}
	if strings.TrimSpace(target) == "" {
		target = TargetLanguage(source)
	}

	// DeepL rejects region-qualified sources, so only the target becomes EN-US.
	src := NormalizeLanguageCode(source, false)
	tgt := NormalizeLanguageCode(target, true)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.provider.Translate(ctx, text, src, tgt)
	if err != nil {
		return nil, utils.Upstream(op, "translation failed", err)
	}

	detected := res.DetectedSourceLanguage
	if detected == "" {
		detected = src
	}
	return &models.TranslationResult{
		TranslatedText: res.Text,
		SourceLanguage: strings.ToLower(detected),
		TargetLanguage: strings.ToLower(tgt),
	}, nil
}

var counterpart = map[string]string{
	"en": "es",
	"es": "en",
}

// TargetLanguage returns the other side of the English/Spanish pair, or "en".
func TargetLanguage(source string) string {
	if t, ok := counterpart[prefix2(strings.ToLower(source))]; ok {
		return t
	}
	return "en"
}

// NormalizeLanguageCode uppercases to the two-letter DeepL form. English as a
// target must carry a region, ex: "EN-US"; sources never do.
func NormalizeLanguageCode(code string, target bool) string {
	c := prefix2(strings.ToUpper(strings.TrimSpace(code)))
	if target && c == "EN" {
		return "EN-US"
	}
	return c
}

func prefix2(s string) string {
	if len(s) > 2 {
		return s[:2]
	}
	return s
}
