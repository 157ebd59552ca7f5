package stt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepgramTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Token dg-key", r.Header.Get("Authorization"))
		assert.Equal(t, "audio/wav", r.Header.Get("Content-Type"))
		assert.Equal(t, "true", r.URL.Query().Get("detect_language"))
		assert.Equal(t, "nova-2", r.URL.Query().Get("model"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "fake_audio", string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"Hello world","confidence":0.97}],"detected_language":"en"}]}}`))
	}))
	defer srv.Close()

	d := NewDeepgram("dg-key", srv.URL, "nova-2", srv.Client())
	res, err := d.Transcribe(context.Background(), []byte("fake_audio"), "")
	require.NoError(t, err)

	assert.Equal(t, "Hello world", res.Text)
	assert.Equal(t, "en", res.LanguageCode)
	assert.InDelta(t, 0.97, res.Confidence, 1e-9)
	assert.Equal(t, "deepgram", d.Name())
}

func TestDeepgramErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"http error", http.StatusUnauthorized, `{"err_msg":"bad key"}`, "status 401"},
		{"bad json", http.StatusOK, `not json`, "decode response"},
		{"no channels", http.StatusOK, `{"results":{"channels":[]}}`, "no transcript"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewDeepgram("k", srv.URL, "", srv.Client()).Transcribe(context.Background(), []byte("a"), "audio/wav")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDeepgramDefaultsLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"hi"}]}]}}`))
	}))
	defer srv.Close()

	res, err := NewDeepgram("k", srv.URL, "", srv.Client()).Transcribe(context.Background(), []byte("a"), "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "en", res.LanguageCode)
}
