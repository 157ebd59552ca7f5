package services

import (
	"context"
	"strconv"
	"time"

	"github.com/yoockh/yoospeak/internal/emotion"
	"github.com/yoockh/yoospeak/internal/metrics"
	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/utils"
)

// EmotionService never fails on analysis problems; the detector degrades
// to a neutral profile instead. Only bad input is an error.
type EmotionService interface {
	Detect(ctx context.Context, audio []byte, filename string) (*models.EmotionProfile, error)
}

type emotionService struct {
	detector emotion.Detector
	timeout  time.Duration
}

func NewEmotionService(detector emotion.Detector, timeout time.Duration) EmotionService {
	return &emotionService{detector: detector, timeout: timeout}
}

func (s *emotionService) Detect(ctx context.Context, audio []byte, filename string) (*models.EmotionProfile, error) {
	const op = "EmotionService.Detect"

	if len(audio) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "audio is empty", nil)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	d := s.detector.Detect(ctx, audio, filename)
	metrics.EmotionDetectionsTotal.
		WithLabelValues(string(d.Profile.Emotion), d.Mode, strconv.FormatBool(d.Degraded)).
		Inc()

	p := d.Profile
	return &p, nil
}
