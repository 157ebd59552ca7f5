package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/yoospeak/internal/cache"
	"github.com/yoockh/yoospeak/internal/metrics"
	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/utils"
)

type State string

const (
	StateIdle            State = "idle"
	StateCached          State = "cached"
	StateTranscribed     State = "transcribed"
	StateEmotionDetected State = "emotion_detected"
	StateTranslated      State = "translated"
	StateSynthesized     State = "synthesized"
	StateComplete        State = "complete"
	StateFailed          State = "failed"
)

const (
	StageTranscription = "transcription"
	StageEmotion       = "emotion_detection"
	StageTranslation   = "translation"
	StageSynthesis     = "synthesis"
)

// StageError names the pipeline stage a failure came from.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

type ProcessInput struct {
	Audio    []byte
	Filename string
	MimeType string
}

type PipelineService interface {
	Process(ctx context.Context, in ProcessInput) (*models.PipelineResult, error)
}

type PipelineConfig struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

type pipelineService struct {
	store         cache.AudioStore
	transcription TranscriptionService
	emotion       EmotionService
	translation   TranslationService
	speech        SpeechService
	cfg           PipelineConfig
	log           *logrus.Logger
}

func NewPipelineService(
	store cache.AudioStore,
	transcription TranscriptionService,
	emotion EmotionService,
	translation TranslationService,
	speech SpeechService,
	cfg PipelineConfig,
	log *logrus.Logger,
) PipelineService {
	if log == nil {
		log = logrus.New()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = cache.DefaultAudioTTL
	}
	return &pipelineService{
		store:         store,
		transcription: transcription,
		emotion:       emotion,
		translation:   translation,
		speech:        speech,
		cfg:           cfg,
		log:           log,
	}
}

type pipelineRun struct {
	state State
	entry *logrus.Entry
}

func (r *pipelineRun) to(next State) {
	r.entry.WithFields(logrus.Fields{"from": r.state, "state": next}).Info("pipeline state")
	r.state = next
}

func (s *pipelineService) Process(ctx context.Context, in ProcessInput) (*models.PipelineResult, error) {
	const op = "PipelineService.Process"

	if len(in.Audio) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "audio is empty", nil)
	}
	if err := utils.ValidateAudioFile(in.Filename, int64(len(in.Audio)), 0); err != nil {
		return nil, err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	key := utils.GenerateAudioKey("audio")
	run := &pipelineRun{
		state: StateIdle,
		entry: s.log.WithFields(logrus.Fields{"cache_key": key, "filename": in.Filename}),
	}

	// The entry is removed exactly once, whichever way we leave.
	defer func() {
		s.store.Delete(context.WithoutCancel(ctx), key)
	}()

	fail := func(stage string, err error) error {
		run.entry.WithFields(logrus.Fields{"stage": stage}).WithError(err).Error("pipeline stage failed")
		run.to(StateFailed)
		metrics.PipelineRunsTotal.WithLabelValues(string(StateFailed), stage).Inc()

		code := utils.CodeUpstream
		if utils.IsCode(err, utils.CodeTimeout) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			code = utils.CodeTimeout
		}
		return utils.E(code, op, stage+" failed", &StageError{Stage: stage, Err: err})
	}

	s.store.Put(ctx, key, in.Audio, s.cfg.CacheTTL)
	run.to(StateCached)

	start := time.Now()
	transcript, err := s.transcription.Transcribe(ctx, in.Audio, utils.AudioMimeType(in.Filename, in.MimeType))
	metrics.ObserveStage(StageTranscription, start)
	if err != nil {
		return nil, fail(StageTranscription, err)
	}
	run.entry = run.entry.WithField("language_code", transcript.LanguageCode)
	run.to(StateTranscribed)

	start = time.Now()
	profile, err := s.emotion.Detect(ctx, in.Audio, in.Filename)
	metrics.ObserveStage(StageEmotion, start)
	if err != nil {
		return nil, fail(StageEmotion, err)
	}
	run.entry = run.entry.WithField("emotion", profile.Emotion)
	run.to(StateEmotionDetected)

	start = time.Now()
	translation, err := s.translation.Translate(ctx, transcript.Text, transcript.LanguageCode, "")
	metrics.ObserveStage(StageTranslation, start)
	if err != nil {
		return nil, fail(StageTranslation, err)
	}
	run.to(StateTranslated)

	start = time.Now()
	audio, settings, err := s.speech.Synthesize(ctx, SynthesisRequest{
		Text:         translation.TranslatedText,
		Emotion:      profile.Emotion,
		Attributes:   profile.Attributes.Map(),
		LanguageCode: translation.TargetLanguage,
	})
	metrics.ObserveStage(StageSynthesis, start)
	if err != nil {
		return nil, fail(StageSynthesis, err)
	}
	run.to(StateSynthesized)

	run.to(StateComplete)
	metrics.PipelineRunsTotal.WithLabelValues(string(StateComplete), "").Inc()

	return &models.PipelineResult{
		CacheKey:    key,
		Transcript:  *transcript,
		Emotion:     *profile,
		Translation: *translation,
		Voice:       settings,
		Audio:       audio,
		AudioSize:   len(audio),
	}, nil
}
