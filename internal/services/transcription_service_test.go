package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/yoospeak/internal/providers/stt"
	"github.com/yoockh/yoospeak/internal/utils"
)

func TestTranscribeMapsLanguage(t *testing.T) {
	cases := []struct {
		code, wantCode, wantName string
	}{
		{"en", "en", "English"},
		{"ES", "es", "Spanish"},
		{"es-ES", "es-es", "Spanish"},
		{"en-US", "en-us", "English"},
		{"fr", "fr", "fr"},
		{"", "en", "English"},
	}
	for _, tc := range cases {
		p := &fakeSTT{res: &stt.Result{Text: "Hello world", LanguageCode: tc.code}}
		out, err := NewTranscriptionService(p, time.Second).Transcribe(context.Background(), []byte("x"), "audio/wav")
		require.NoError(t, err)
		assert.Equal(t, "Hello world", out.Text)
		assert.Equal(t, tc.wantCode, out.LanguageCode)
		assert.Equal(t, tc.wantName, out.Language)
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "Spanish", LanguageName("es-ES"))
	assert.Equal(t, "de-DE", LanguageName("de-DE"))
}

func TestTranscribeDefaultsMimetype(t *testing.T) {
	p := &fakeSTT{res: &stt.Result{Text: "hi"}}
	_, err := NewTranscriptionService(p, 0).Transcribe(context.Background(), []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "audio/wav", p.mimetype)
}

func TestTranscribeErrors(t *testing.T) {
	p := &fakeSTT{}
	_, err := NewTranscriptionService(p, 0).Transcribe(context.Background(), nil, "audio/wav")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Zero(t, p.calls)

	p = &fakeSTT{err: errors.New("deepgram API error (status 500)")}
	_, err = NewTranscriptionService(p, 0).Transcribe(context.Background(), []byte("x"), "audio/wav")
	assert.True(t, utils.IsCode(err, utils.CodeUpstream))
	assert.Contains(t, err.Error(), "status 500")

	p = &fakeSTT{block: true}
	_, err = NewTranscriptionService(p, 10*time.Millisecond).Transcribe(context.Background(), []byte("x"), "audio/wav")
	assert.True(t, utils.IsCode(err, utils.CodeTimeout))
}
