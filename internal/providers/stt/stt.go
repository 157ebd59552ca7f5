package stt

import "context"

// Result is the common transcription outcome from any provider.
type Result struct {
	Text         string
	LanguageCode string // ISO-639-1 where the provider reports it, ex: "en", "es-es"
	Confidence   float64
}

type Provider interface {
	Transcribe(ctx context.Context, audio []byte, mimetype string) (*Result, error)
	Name() string
	Close() error
}
