package emotion

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/providers/features"
)

const (
	ModeAcoustic = "acoustic"
	ModeHash     = "hash"
)

// Detection is a detector outcome. Degraded marks the neutral fallback that
// replaces a failed feature extraction.
type Detection struct {
	Profile  models.EmotionProfile
	Mode     string
	Rule     string
	Degraded bool
}

type Detector interface {
	Detect(ctx context.Context, audio []byte, filename string) Detection
	Mode() string
}

// Normalize rescales raw eGeMAPS functionals into [0,1] attributes.
func Normalize(v features.Vector) models.EmotionAttributes {
	return models.EmotionAttributes{
		PitchMean:    (v.Get(features.PitchSemitoneMean) + 100) / 200,
		Energy:       (v.Get(features.LoudnessMean) + 40) / 80,
		SpeakingRate: (v.Get(features.LoudnessP20) + 40) / 80,
	}.Clamped()
}

// New picks the acoustic detector when an extractor is available and the
// content-hash detector otherwise.
func New(extractor features.Extractor, t Thresholds, log *logrus.Logger) Detector {
	if log == nil {
		log = logrus.New()
	}
	if extractor == nil {
		log.WithField("mode", ModeHash).Warn("feature extractor not available, using hash emotion detection")
		return NewHashDetector(log)
	}
	return NewAcousticDetector(extractor, t, log)
}

type AcousticDetector struct {
	extractor  features.Extractor
	classifier *Classifier
	log        *logrus.Logger
}

func NewAcousticDetector(extractor features.Extractor, t Thresholds, log *logrus.Logger) *AcousticDetector {
	return &AcousticDetector{extractor: extractor, classifier: NewClassifier(t), log: log}
}

func (d *AcousticDetector) Mode() string { return ModeAcoustic }

func (d *AcousticDetector) Detect(ctx context.Context, audio []byte, filename string) Detection {
	vec, err := d.extractor.Extract(ctx, audio, filename)
	if err == nil && len(vec) == 0 {
		err = features.ErrEmptyFeatures
	}
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"extractor": d.extractor.Name(),
			"filename":  filename,
			"degraded":  true,
		}).WithError(err).Warn("emotion detection degraded, returning neutral")
		return Detection{Profile: models.NeutralProfile(), Mode: ModeAcoustic, Rule: "fallback", Degraded: true}
	}

	attrs := Normalize(vec)
	label, rule := d.classifier.Explain(attrs)

	d.log.WithFields(logrus.Fields{
		"emotion":       label,
		"rule":          rule,
		"pitch_mean":    attrs.PitchMean,
		"energy":        attrs.Energy,
		"speaking_rate": attrs.SpeakingRate,
	}).Info("emotion detected")

	return Detection{
		Profile: models.EmotionProfile{Emotion: label, Attributes: attrs},
		Mode:    ModeAcoustic,
		Rule:    rule,
	}
}

// HashDetector derives a stable pseudo-emotion from the audio content. Same
// bytes always give the same profile; different bytes spread across labels.
type HashDetector struct {
	log *logrus.Logger
}

func NewHashDetector(log *logrus.Logger) *HashDetector {
	if log == nil {
		log = logrus.New()
	}
	return &HashDetector{log: log}
}

func (d *HashDetector) Mode() string { return ModeHash }

func (d *HashDetector) Detect(_ context.Context, audio []byte, _ string) Detection {
	h := HashUnit(audio)

	idx := int(h * float64(len(models.Emotions)))
	if idx >= len(models.Emotions) {
		idx = len(models.Emotions) - 1
	}
	p := models.EmotionProfile{
		Emotion: models.Emotions[idx],
		Attributes: models.EmotionAttributes{
			PitchMean:    0.5 + (h-0.5)*0.3,
			Energy:       0.5 + (h-0.5)*0.4,
			SpeakingRate: 0.5,
		}.Clamped(),
	}

	d.log.WithFields(logrus.Fields{"emotion": p.Emotion, "mode": ModeHash}).Info("emotion detected")
	return Detection{Profile: p, Mode: ModeHash, Rule: "content_hash"}
}

// HashUnit maps audio bytes to [0,1).
func HashUnit(audio []byte) float64 {
	return float64(xxhash.Sum64(audio)>>11) / float64(uint64(1)<<53)
}
