package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/yoospeak/config"
	"github.com/yoockh/yoospeak/internal/api/handlers"
	"github.com/yoockh/yoospeak/internal/api/middleware"
	"github.com/yoockh/yoospeak/internal/api/routes"
	"github.com/yoockh/yoospeak/internal/cache"
	"github.com/yoockh/yoospeak/internal/emotion"
	"github.com/yoockh/yoospeak/internal/logger"
	"github.com/yoockh/yoospeak/internal/metrics"
	"github.com/yoockh/yoospeak/internal/providers/features"
	"github.com/yoockh/yoospeak/internal/providers/stt"
	"github.com/yoockh/yoospeak/internal/providers/translate"
	"github.com/yoockh/yoospeak/internal/providers/tts"
	"github.com/yoockh/yoospeak/internal/services"
)

func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		logger.New("").WithError(err).Fatal("config load error")
	}

	log := logger.New(cfg.LogLevel)
	log.WithFields(logrus.Fields{"app": cfg.AppName, "version": cfg.AppVersion}).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init Redis
	rdb, err := config.NewRedisClient(cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("redis config error")
	}
	defer rdb.Close()
	if err := config.PingRedis(ctx, rdb); err != nil {
		// cache is advisory; keep serving without it
		log.WithError(err).Warn("redis not reachable")
	} else {
		log.Info("redis connected")
	}
	redisCache := cache.NewRedisCache(rdb, log, cfg.Redis.CacheTTL())

	// Providers
	httpClient := &http.Client{}

	var sttProvider stt.Provider
	switch cfg.STT.Provider {
	case "google":
		sttProvider, err = stt.NewGoogleSpeech(ctx, cfg.STT.GoogleLanguage, cfg.STT.GoogleAltLangs)
		if err != nil {
			log.WithError(err).Fatal("google speech init error")
		}
	default:
		sttProvider = stt.NewDeepgram(cfg.STT.DeepgramAPIKey, cfg.STT.DeepgramURL, cfg.STT.DeepgramModel, httpClient)
	}
	defer sttProvider.Close()

	var translator translate.Provider
	switch cfg.Translation.Provider {
	case "vertex":
		translator, err = translate.NewVertexGemini(ctx, cfg.Translation.VertexProject, cfg.Translation.VertexLocation, cfg.Translation.VertexModel)
		if err != nil {
			log.WithError(err).Fatal("vertex init error")
		}
	default:
		translator = translate.NewDeepL(cfg.Translation.DeepLAPIKey, cfg.Translation.DeepLURL, httpClient)
	}
	defer translator.Close()

	synth := tts.NewElevenLabs(cfg.TTS.ElevenLabsAPIKey, cfg.TTS.ElevenLabsURL, cfg.TTS.VoiceID, cfg.TTS.ModelID, httpClient)

	var extractor features.Extractor
	if smile, err := features.NewOpenSmile(cfg.Emotion.OpenSmileBin, cfg.Emotion.OpenSmileConfig); err != nil {
		log.WithError(err).Warn("opensmile unavailable")
	} else {
		extractor = smile
	}
	detector := emotion.New(extractor, cfg.Emotion.Thresholds(), log)

	log.WithFields(logrus.Fields{
		"stt":         sttProvider.Name(),
		"translation": translator.Name(),
		"tts":         synth.Name(),
		"emotion":     detector.Mode(),
	}).Info("providers ready")

	// Services
	transcriptionSvc := services.NewTranscriptionService(sttProvider, cfg.Timeouts.Transcribe)
	emotionSvc := services.NewEmotionService(detector, cfg.Timeouts.Features)
	translationSvc := services.NewTranslationService(translator, cfg.Timeouts.Translate)
	speechSvc := services.NewSpeechService(synth, redisCache, cfg.Timeouts.Synthesize, log)
	pipelineSvc := services.NewPipelineService(
		redisCache,
		transcriptionSvc,
		emotionSvc,
		translationSvc,
		speechSvc,
		services.PipelineConfig{CacheTTL: cfg.Redis.CacheTTL(), Timeout: cfg.Timeouts.Pipeline},
		log,
	)

	// HTTP
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSOrigins), metrics.Instrument())
	r.MaxMultipartMemory = cfg.MaxAudioBytes()

	routes.RegisterRoutes(r, routes.Deps{
		Health:        handlers.NewHealthHandler(cfg.AppName, cfg.AppVersion, redisCache),
		Pipeline:      handlers.NewPipelineHandler(pipelineSvc, cfg.MaxAudioBytes()),
		Transcription: handlers.NewTranscriptionHandler(transcriptionSvc, cfg.MaxAudioBytes()),
		Emotion:       handlers.NewEmotionHandler(emotionSvc, cfg.MaxAudioBytes()),
		Translation:   handlers.NewTranslationHandler(translationSvc),
		Speech:        handlers.NewSpeechHandler(speechSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Timeouts.Pipeline + 30*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http server shutdown error")
	}
	log.Info("stopped")
}
