package models

type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAngry     Emotion = "angry"
	EmotionNeutral   Emotion = "neutral"
	EmotionSurprised Emotion = "surprised"
)

// Emotions is ordered; the hash detector indexes into it.
var Emotions = []Emotion{EmotionHappy, EmotionSad, EmotionAngry, EmotionNeutral, EmotionSurprised}

func (e Emotion) Valid() bool {
	for _, v := range Emotions {
		if e == v {
			return true
		}
	}
	return false
}

// EmotionAttributes are normalized acoustic measurements, each in [0,1].
type EmotionAttributes struct {
	PitchMean    float64 `json:"pitch_mean"`
	Energy       float64 `json:"energy"`
	SpeakingRate float64 `json:"speaking_rate"`
}

func (a EmotionAttributes) Clamped() EmotionAttributes {
	return EmotionAttributes{
		PitchMean:    Clamp(a.PitchMean, 0, 1),
		Energy:       Clamp(a.Energy, 0, 1),
		SpeakingRate: Clamp(a.SpeakingRate, 0, 1),
	}
}

func (a EmotionAttributes) Map() map[string]float64 {
	return map[string]float64{
		"pitch_mean":    a.PitchMean,
		"energy":        a.Energy,
		"speaking_rate": a.SpeakingRate,
	}
}

type EmotionProfile struct {
	Emotion    Emotion           `json:"emotion"`
	Attributes EmotionAttributes `json:"attributes"`
}

// NeutralProfile is returned whenever acoustic analysis cannot be trusted.
func NeutralProfile() EmotionProfile {
	return EmotionProfile{
		Emotion:    EmotionNeutral,
		Attributes: EmotionAttributes{PitchMean: 0.5, Energy: 0.5, SpeakingRate: 0.5},
	}
}

func Clamp(v, lo, hi float64) float64 {
	if v != v { // NaN
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
