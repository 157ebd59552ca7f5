package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yoockh/yoospeak/internal/api/handlers"
)

type Deps struct {
	Health        *handlers.HealthHandler
	Pipeline      *handlers.PipelineHandler
	Transcription *handlers.TranscriptionHandler
	Emotion       *handlers.EmotionHandler
	Translation   *handlers.TranslationHandler
	Speech        *handlers.SpeechHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/", d.Health.Root)
	r.GET("/health", d.Health.Health)
	r.GET("/ping", d.Health.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.POST("/process-audio", d.Pipeline.ProcessAudio)

	// Single-stage endpoints
	api.POST("/speech-to-text/transcribe", d.Transcription.Transcribe)
	api.POST("/emotion/detect", d.Emotion.Detect)
	api.POST("/translation/translate", d.Translation.Translate)
	api.POST("/text-to-speech/generate", d.Speech.Generate)
	api.GET("/text-to-speech/voices", d.Speech.Voices)
}
