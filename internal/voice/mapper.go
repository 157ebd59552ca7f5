// Package voice maps a detected emotion onto synthesis voice settings.
package voice

import "github.com/yoockh/yoospeak/internal/models"

const (
	MinStability = 0.2
	MaxStability = 0.9

	pitchHigh = 0.6
	pitchLow  = 0.4
	pitchStep = 0.1
)

func Defaults() models.VoiceSettings {
	return models.VoiceSettings{
		Stability:       0.5,
		SimilarityBoost: 0.75,
		Style:           0.0,
		UseSpeakerBoost: true,
	}
}

type override struct {
	stability, similarityBoost, style float64
}

var overrides = map[models.Emotion]override{
	models.EmotionHappy:     {0.4, 0.80, 0.3},
	models.EmotionSad:       {0.7, 0.60, 0.0},
	models.EmotionAngry:     {0.3, 0.90, 0.5},
	models.EmotionNeutral:   {0.5, 0.75, 0.0},
	models.EmotionSurprised: {0.4, 0.80, 0.4},
}

// Map applies the per-emotion override, then nudges stability by pitch_mean.
// A missing pitch_mean leaves stability alone. Unknown emotions keep the defaults.
func Map(e models.Emotion, attrs map[string]float64) models.VoiceSettings {
	vs := Defaults()
	if o, ok := overrides[e]; ok {
		vs.Stability = o.stability
		vs.SimilarityBoost = o.similarityBoost
		vs.Style = o.style
	}

	if pitch, ok := attrs["pitch_mean"]; ok {
		switch {
		case pitch > pitchHigh:
			vs.Stability = max(MinStability, vs.Stability-pitchStep)
		case pitch < pitchLow:
			vs.Stability = min(MaxStability, vs.Stability+pitchStep)
		}
	}

	vs.Stability = models.Clamp(vs.Stability, MinStability, MaxStability)
	vs.SimilarityBoost = models.Clamp(vs.SimilarityBoost, 0, 1)
	vs.Style = models.Clamp(vs.Style, 0, 1)
	return vs
}

// ForProfile maps a full emotion profile.
func ForProfile(p models.EmotionProfile) models.VoiceSettings {
	return Map(p.Emotion, p.Attributes.Map())
}
