package features

import "context"

// eGeMAPSv02 functional names read by the emotion analyzer.
const (
	PitchSemitoneMean = "F0semitoneFrom27.5Hz_sma3nz_amean"
	LoudnessMean      = "loudness_sma3_amean"
	LoudnessP20       = "loudness_sma3_percentile20.0"
)

// Vector is one row of named acoustic functionals.
type Vector map[string]float64

// Get returns the named functional, 0 when the extractor did not emit it.
func (v Vector) Get(name string) float64 {
	return v[name]
}

type Extractor interface {
	// Extract runs acoustic analysis on audio; filename only carries the format hint.
	Extract(ctx context.Context, audio []byte, filename string) (Vector, error)
	Name() string
}
