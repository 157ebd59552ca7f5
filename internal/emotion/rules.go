package emotion

import "github.com/yoockh/yoospeak/internal/models"

// Thresholds are cut points on normalized [0,1] attributes.
type Thresholds struct {
	VeryHighPitch       float64 // pitch alone signals arousal
	VeryHighPitchEnergy float64 // energy that turns a very high pitch into anger
	FastRate            float64
	ElevatedEnergy      float64
	ElevatedPitch       float64
	HighPitch           float64
	HighPitchEnergy     float64
	ExtremeEnergy       float64
	LowPitch            float64
	LowEnergy           float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		VeryHighPitch:       0.68,
		VeryHighPitchEnergy: 0.55,
		FastRate:            0.6,
		ElevatedEnergy:      0.65,
		ElevatedPitch:       0.55,
		HighPitch:           0.6,
		HighPitchEnergy:     0.5,
		ExtremeEnergy:       0.75,
		LowPitch:            0.4,
		LowEnergy:           0.4,
	}
}

// Rule pairs a predicate with the label it yields.
type Rule struct {
	Name    string
	Matches func(a models.EmotionAttributes) bool
	Label   models.Emotion
}

// Rules returns the classification table. Order is precedence; the last rule
// always matches so the table is total.
func (t Thresholds) Rules() []Rule {
	veryHigh := func(a models.EmotionAttributes) bool { return a.PitchMean > t.VeryHighPitch }
	high := func(a models.EmotionAttributes) bool {
		return a.PitchMean > t.HighPitch && a.Energy > t.HighPitchEnergy
	}

	return []Rule{
		{
			Name: "very_high_pitch_with_drive",
			Matches: func(a models.EmotionAttributes) bool {
				return veryHigh(a) && (a.Energy > t.VeryHighPitchEnergy || a.SpeakingRate > t.FastRate)
			},
			Label: models.EmotionAngry,
		},
		{Name: "very_high_pitch", Matches: veryHigh, Label: models.EmotionSurprised},
		{
			Name: "elevated_energy_and_pitch",
			Matches: func(a models.EmotionAttributes) bool {
				return a.Energy > t.ElevatedEnergy && a.PitchMean > t.ElevatedPitch
			},
			Label: models.EmotionAngry,
		},
		{
			Name: "high_pitch_fast",
			Matches: func(a models.EmotionAttributes) bool {
				return high(a) && a.SpeakingRate > t.FastRate
			},
			Label: models.EmotionHappy,
		},
		{Name: "high_pitch", Matches: high, Label: models.EmotionSurprised},
		{
			Name:    "extreme_energy",
			Matches: func(a models.EmotionAttributes) bool { return a.Energy > t.ExtremeEnergy },
			Label:   models.EmotionAngry,
		},
		{
			Name: "low_pitch_and_energy",
			Matches: func(a models.EmotionAttributes) bool {
				return a.PitchMean < t.LowPitch && a.Energy < t.LowEnergy
			},
			Label: models.EmotionSad,
		},
		{Name: "default", Matches: func(models.EmotionAttributes) bool { return true }, Label: models.EmotionNeutral},
	}
}

// Classifier evaluates a rule table first-match-wins.
type Classifier struct {
	rules []Rule
}

func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{rules: t.Rules()}
}

func (c *Classifier) Classify(a models.EmotionAttributes) models.Emotion {
	label, _ := c.Explain(a)
	return label
}

// Explain also reports which rule fired.
func (c *Classifier) Explain(a models.EmotionAttributes) (models.Emotion, string) {
	for _, r := range c.rules {
		if r.Matches(a) {
			return r.Label, r.Name
		}
	}
	return models.EmotionNeutral, "default"
}
