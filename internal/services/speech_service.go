package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/yoospeak/internal/cache"
	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/providers/tts"
	"github.com/yoockh/yoospeak/internal/utils"
	"github.com/yoockh/yoospeak/internal/voice"
)

const (
	voicesCacheKey = "tts:voices"
	voicesCacheTTL = 10 * time.Minute
	voicesTimeout  = 30 * time.Second
)

type SynthesisRequest struct {
	Text         string
	Emotion      models.Emotion
	Attributes   map[string]float64 // optional; nil skips the pitch adjustment
	LanguageCode string
}

type SpeechService interface {
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, models.VoiceSettings, error)
	Voices(ctx context.Context) []models.Voice
}

type speechService struct {
	provider tts.Provider
	cache    cache.Cache
	timeout  time.Duration
	log      *logrus.Logger

	voicesTimeout time.Duration
}

// NewSpeechService accepts a nil cache; voices are then fetched on every call.
func NewSpeechService(provider tts.Provider, c cache.Cache, timeout time.Duration, log *logrus.Logger) SpeechService {
	if log == nil {
		log = logrus.New()
	}
	return &speechService{
		provider:      provider,
		cache:         c,
		timeout:       timeout,
		log:           log,
		voicesTimeout: voicesTimeout,
	}
}

func (s *speechService) Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, models.VoiceSettings, error) {
	const op = "SpeechService.Synthesize"

	if strings.TrimSpace(req.Text) == "" {
		return nil, models.VoiceSettings{}, utils.E(utils.CodeInvalidArgument, op, "text is required", nil)
	}
	label := req.Emotion
	if label == "" {
		label = models.EmotionNeutral
	}
	settings := voice.Map(label, req.Attributes)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	audio, err := s.provider.Synthesize(ctx, tts.SynthesizeRequest{Text: req.Text, Settings: settings})
	if err != nil {
		return nil, settings, utils.Upstream(op, "speech synthesis failed", err)
	}

	s.log.WithFields(logrus.Fields{
		"emotion":       label,
		"language_code": req.LanguageCode,
		"stability":     settings.Stability,
		"style":         settings.Style,
		"bytes":         len(audio),
	}).Debug("speech synthesized")
	return audio, settings, nil
}

// Voices lists provider voices. Failures are logged and yield an empty list.
func (s *speechService) Voices(ctx context.Context) []models.Voice {
	var cached []models.Voice
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, voicesCacheKey, &cached); err == nil && hit {
			return cached
		}
	}

	pctx, cancel := context.WithTimeout(ctx, s.voicesTimeout)
	defer cancel()

	voices, err := s.provider.Voices(pctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list voices")
		return []models.Voice{}
	}
	if voices == nil {
		voices = []models.Voice{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, voicesCacheKey, voices, voicesCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache voices")
		}
	}
	return voices
}
