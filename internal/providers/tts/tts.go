package tts

import (
	"context"

	"github.com/yoockh/yoospeak/internal/models"
)

type SynthesizeRequest struct {
	Text     string
	VoiceID  string // empty uses the provider default
	ModelID  string
	Settings models.VoiceSettings
}

type Provider interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error)
	Voices(ctx context.Context) ([]models.Voice, error)
	Name() string
}
