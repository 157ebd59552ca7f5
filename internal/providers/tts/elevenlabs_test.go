package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/yoospeak/internal/models"
)

func TestElevenLabsSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/voice-1", r.URL.Path)
		assert.Equal(t, "el-key", r.Header.Get("xi-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Hola mundo", body["text"])
		assert.Equal(t, "eleven_multilingual_v2", body["model_id"])

		vs := body["voice_settings"].(map[string]any)
		assert.Equal(t, 0.4, vs["stability"])
		assert.Equal(t, 0.8, vs["similarity_boost"])
		assert.Equal(t, 0.3, vs["style"])
		assert.Equal(t, true, vs["use_speaker_boost"])

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("fake_audio_data"))
	}))
	defer srv.Close()

	e := NewElevenLabs("el-key", srv.URL+"/", "voice-1", "eleven_multilingual_v2", srv.Client())
	audio, err := e.Synthesize(context.Background(), SynthesizeRequest{
		Text:     "Hola mundo",
		Settings: models.VoiceSettings{Stability: 0.4, SimilarityBoost: 0.8, Style: 0.3, UseSpeakerBoost: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("fake_audio_data"), audio)
}

func TestElevenLabsSynthesizeErrors(t *testing.T) {
	for name, h := range map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":"bad voice"}`))
		},
		"empty": func(w http.ResponseWriter, r *http.Request) {},
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			_, err := NewElevenLabs("k", srv.URL, "v", "m", srv.Client()).
				Synthesize(context.Background(), SynthesizeRequest{Text: "x"})
			assert.Error(t, err)
		})
	}
}

func TestElevenLabsVoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voices", r.URL.Path)
		_, _ = w.Write([]byte(`{"voices":[{"voice_id":"21m00Tcm4TlvDq8ikWAM","name":"Rachel","category":"premade","labels":{"accent":"american"}}]}`))
	}))
	defer srv.Close()

	voices, err := NewElevenLabs("k", srv.URL, "", "", srv.Client()).Voices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "Rachel", voices[0].Name)
	assert.Equal(t, "american", voices[0].Labels["accent"])
}
