package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DeepgramEndpoint = "https://api.deepgram.com/v1/listen"

// Deepgram calls the pre-recorded /listen API with language detection on.
type Deepgram struct {
	apiKey   string
	endpoint string
	model    string
	client   *http.Client
}

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
			DetectedLanguage string `json:"detected_language"`
		} `json:"channels"`
	} `json:"results"`
}

func NewDeepgram(apiKey, endpoint, model string, client *http.Client) *Deepgram {
	if endpoint == "" {
		endpoint = DeepgramEndpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Deepgram{apiKey: apiKey, endpoint: endpoint, model: model, client: client}
}

func (d *Deepgram) Name() string { return "deepgram" }

func (d *Deepgram) Close() error { return nil }

func (d *Deepgram) Transcribe(ctx context.Context, audio []byte, mimetype string) (*Result, error) {
	if mimetype == "" {
		mimetype = "audio/wav"
	}

	q := url.Values{}
	q.Set("detect_language", "true")
	q.Set("smart_format", "true")
	q.Set("punctuate", "true")
	if d.model != "" {
		q.Set("model", d.model)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint+"?"+q.Encode(), bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", mimetype)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepgram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out deepgramResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Results.Channels) == 0 || len(out.Results.Channels[0].Alternatives) == 0 {
		return nil, errors.New("deepgram returned no transcript")
	}

	ch := out.Results.Channels[0]
	lang := ch.DetectedLanguage
	if lang == "" {
		lang = "en"
	}
	return &Result{
		Text:         ch.Alternatives[0].Transcript,
		LanguageCode: lang,
		Confidence:   ch.Alternatives[0].Confidence,
	}, nil
}
