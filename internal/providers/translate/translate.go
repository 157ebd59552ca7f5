package translate

import "context"

// Result is a provider translation. DetectedSourceLanguage is in the
// provider's own casing, ex: "EN".
type Result struct {
	Text                   string
	DetectedSourceLanguage string
}

type Provider interface {
	// Translate expects provider-normalized codes; an empty source lets the provider detect it.
	Translate(ctx context.Context, text, source, target string) (*Result, error)
	Name() string
	Close() error
}
