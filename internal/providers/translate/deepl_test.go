package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DeepL-Auth-Key deepl-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Hello world", r.PostForm.Get("text"))
		assert.Equal(t, "EN", r.PostForm.Get("source_lang"))
		assert.Equal(t, "ES", r.PostForm.Get("target_lang"))

		_, _ = w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"Hola mundo"}]}`))
	}))
	defer srv.Close()

	res, err := NewDeepL("deepl-key", srv.URL, srv.Client()).Translate(context.Background(), "Hello world", "EN", "ES")
	require.NoError(t, err)
	assert.Equal(t, "Hola mundo", res.Text)
	assert.Equal(t, "EN", res.DetectedSourceLanguage)
}

func TestDeepLOmitsEmptySource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, has := r.PostForm["source_lang"]
		assert.False(t, has)
		_, _ = w.Write([]byte(`{"translations":[{"text":"Hi"}]}`))
	}))
	defer srv.Close()

	res, err := NewDeepL("k", srv.URL, srv.Client()).Translate(context.Background(), "Hola", "", "EN-US")
	require.NoError(t, err)
	assert.Equal(t, "", res.DetectedSourceLanguage)
}

func TestDeepLErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"quota", 456, `{"message":"Quota exceeded"}`, "status 456"},
		{"empty", http.StatusOK, `{"translations":[]}`, "no translation"},
		{"bad json", http.StatusOK, `<html>`, "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewDeepL("k", srv.URL, srv.Client()).Translate(context.Background(), "x", "EN", "ES")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
