package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yoockh/yoospeak/internal/models"
)

const ElevenLabsBaseURL = "https://api.elevenlabs.io/v1"

type ElevenLabs struct {
	apiKey  string
	baseURL string
	voiceID string
	modelID string
	client  *http.Client
}

type elevenLabsRequest struct {
	Text          string               `json:"text"`
	ModelID       string               `json:"model_id,omitempty"`
	VoiceSettings models.VoiceSettings `json:"voice_settings"`
}

func NewElevenLabs(apiKey, baseURL, voiceID, modelID string, client *http.Client) *ElevenLabs {
	if baseURL == "" {
		baseURL = ElevenLabsBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &ElevenLabs{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		voiceID: voiceID,
		modelID: modelID,
		client:  client,
	}
}

func (e *ElevenLabs) Name() string { return "elevenlabs" }

// Synthesize returns MP3 bytes for the text spoken with the given settings.
func (e *ElevenLabs) Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error) {
	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = e.voiceID
	}
	modelID := req.ModelID
	if modelID == "" {
		modelID = e.modelID
	}

	payload, err := json.Marshal(elevenLabsRequest{Text: req.Text, ModelID: modelID, VoiceSettings: req.Settings})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	endpoint := e.baseURL + "/text-to-speech/" + url.PathEscape(voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", e.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elevenlabs API error (status %d): %s", resp.StatusCode, string(body))
	}
	if len(body) == 0 {
		return nil, errors.New("elevenlabs returned empty audio")
	}
	return body, nil
}

func (e *ElevenLabs) Voices(ctx context.Context) ([]models.Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("elevenlabs API error (status %d): %s", resp.StatusCode, string(b))
	}

	var out struct {
		Voices []models.Voice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Voices, nil
}
