package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const DeepLFreeEndpoint = "https://api-free.deepl.com/v2/translate"

type DeepL struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewDeepL targets the free endpoint unless endpoint is set (api.deepl.com for paid plans).
func NewDeepL(apiKey, endpoint string, client *http.Client) *DeepL {
	if endpoint == "" {
		endpoint = DeepLFreeEndpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	return &DeepL{apiKey: apiKey, endpoint: endpoint, client: client}
}

func (d *DeepL) Name() string { return "deepl" }

func (d *DeepL) Close() error { return nil }

func (d *DeepL) Translate(ctx context.Context, text, source, target string) (*Result, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", target)
	if source != "" {
		form.Set("source_lang", source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("deepl request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepl API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out deeplResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Translations) == 0 {
		return nil, errors.New("no translation returned from DeepL")
	}

	detected := out.Translations[0].DetectedSourceLanguage
	if detected == "" {
		detected = source
	}
	return &Result{Text: out.Translations[0].Text, DetectedSourceLanguage: detected}, nil
}
