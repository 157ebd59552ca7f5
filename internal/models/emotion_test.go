package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmotionValid(t *testing.T) {
	for _, e := range Emotions {
		assert.True(t, e.Valid())
	}
	assert.False(t, Emotion("bored").Valid())
	assert.Len(t, Emotions, 5)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.3, Clamp(0.3, 0, 1))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0, 1))
}

func TestAttributesClampedAndMap(t *testing.T) {
	a := EmotionAttributes{PitchMean: 1.4, Energy: -0.2, SpeakingRate: 0.5}.Clamped()
	assert.Equal(t, EmotionAttributes{PitchMean: 1, Energy: 0, SpeakingRate: 0.5}, a)

	m := a.Map()
	assert.Equal(t, 1.0, m["pitch_mean"])
	assert.Len(t, m, 3)
}
