package stt

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

type GoogleSpeech struct {
	c *speech.Client

	Language     string
	AltLanguages []string
}

func NewGoogleSpeech(ctx context.Context, language string, alt []string) (*GoogleSpeech, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	if language == "" {
		language = "en-US"
	}
	return &GoogleSpeech{c: c, Language: language, AltLanguages: alt}, nil
}

func (g *GoogleSpeech) Name() string { return "google" }

func (g *GoogleSpeech) Close() error { return g.c.Close() }

func (g *GoogleSpeech) Transcribe(ctx context.Context, audio []byte, mimetype string) (*Result, error) {
	resp, err := g.c.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   EncodingFor(mimetype),
			LanguageCode:               g.Language,
			AlternativeLanguageCodes:   g.AltLanguages,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, len(resp.Results))
	var conf float64
	lang := ""
	for _, r := range resp.Results {
		if len(r.Alternatives) == 0 || r.Alternatives[0].Transcript == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(r.Alternatives[0].Transcript))
		conf += float64(r.Alternatives[0].Confidence)
		if lang == "" {
			lang = r.LanguageCode
		}
	}
	if len(parts) > 0 {
		conf /= float64(len(parts))
	}
	if lang == "" {
		lang = g.Language
	}

	return &Result{
		Text:         strings.Join(parts, " "),
		LanguageCode: strings.ToLower(lang),
		Confidence:   conf,
	}, nil
}

// EncodingFor maps an upload mimetype to a Speech encoding. WAV and FLAC
// carry their own headers, so sample rate is left to the service.
func EncodingFor(mimetype string) speechpb.RecognitionConfig_AudioEncoding {
	switch strings.ToLower(strings.TrimSpace(mimetype)) {
	case "audio/flac", "audio/x-flac":
		return speechpb.RecognitionConfig_FLAC
	case "audio/ogg", "audio/opus":
		return speechpb.RecognitionConfig_OGG_OPUS
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS
	case "audio/wav", "audio/x-wav", "audio/wave":
		return speechpb.RecognitionConfig_LINEAR16
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}
