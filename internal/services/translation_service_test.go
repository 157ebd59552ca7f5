package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/yoospeak/internal/providers/translate"
	"github.com/yoockh/yoospeak/internal/utils"
)

func TestTargetLanguage(t *testing.T) {
	assert.Equal(t, "es", TargetLanguage("en"))
	assert.Equal(t, "es", TargetLanguage("EN-us"))
	assert.Equal(t, "en", TargetLanguage("es"))
	assert.Equal(t, "en", TargetLanguage("fr"))
	assert.Equal(t, "en", TargetLanguage(""))
}

func TestNormalizeLanguageCode(t *testing.T) {
	assert.Equal(t, "EN", NormalizeLanguageCode("en", false))
	assert.Equal(t, "EN", NormalizeLanguageCode("en-US", false))
	assert.Equal(t, "EN-US", NormalizeLanguageCode("en", true))
	assert.Equal(t, "EN-US", NormalizeLanguageCode("en-gb", true))
	assert.Equal(t, "ES", NormalizeLanguageCode("es-ES", true))
	assert.Equal(t, "ES", NormalizeLanguageCode("es", false))
}

func TestTranslateEnglishToSpanish(t *testing.T) {
	p := &fakeTranslator{res: &translate.Result{Text: "Hola mundo", DetectedSourceLanguage: "EN"}}
	out, err := NewTranslationService(p, 0).Translate(context.Background(), "Hello world", "en", "")
	require.NoError(t, err)

	assert.Equal(t, "EN", p.source)
	assert.Equal(t, "ES", p.target)
	assert.Equal(t, "Hola mundo", out.TranslatedText)
	assert.Equal(t, "en", out.SourceLanguage)
	assert.Equal(t, "es", out.TargetLanguage)
}

func TestTranslateSpanishToEnglish(t *testing.T) {
	p := &fakeTranslator{res: &translate.Result{Text: "Hello world"}}
	out, err := NewTranslationService(p, 0).Translate(context.Background(), "Hola mundo", "es", "")
	require.NoError(t, err)

	assert.Equal(t, "EN-US", p.target)
	assert.Equal(t, "es", out.SourceLanguage)
	assert.Equal(t, "en-us", out.TargetLanguage)
}

func TestTranslateErrors(t *testing.T) {
	p := &fakeTranslator{}
	svc := NewTranslationService(p, 0)

	_, err := svc.Translate(context.Background(), "  ", "en", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	_, err = svc.Translate(context.Background(), "hi", "", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Zero(t, p.calls)

	p.err = errors.New("deepl API error (status 456)")
	_, err = svc.Translate(context.Background(), "hi", "en", "es")
	assert.True(t, utils.IsCode(err, utils.CodeUpstream))
	assert.Equal(t, 1, p.calls)
}
