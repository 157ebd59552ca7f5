package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/yoockh/yoospeak/internal/emotion"
)

type Config struct {
	AppName        string   `env:"APP_NAME" envDefault:"Speech Translation API"`
	AppVersion     string   `env:"APP_VERSION" envDefault:"1.0.0"`
	Debug          bool     `env:"DEBUG" envDefault:"false"`
	Port           string   `env:"PORT" envDefault:"8000"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	MaxAudioSizeMB int64    `env:"MAX_AUDIO_SIZE_MB" envDefault:"25"`
	CORSOrigins    []string `env:"BACKEND_CORS_ORIGINS" envDefault:"*" envSeparator:","`

	Redis       RedisConfig
	STT         STTConfig
	Translation TranslationConfig
	TTS         TTSConfig
	Emotion     EmotionConfig
	Timeouts    TimeoutConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	URL      string `env:"REDIS_URL"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Password string `env:"REDIS_PASSWORD"`
	TTLSecs  int    `env:"REDIS_CACHE_TTL" envDefault:"3600"`
}

func (r RedisConfig) CacheTTL() time.Duration { return time.Duration(r.TTLSecs) * time.Second }

type STTConfig struct {
	Provider       string   `env:"STT_PROVIDER" envDefault:"deepgram"` // deepgram|google
	DeepgramAPIKey string   `env:"DEEPGRAM_API_KEY"`
	DeepgramURL    string   `env:"DEEPGRAM_API_URL" envDefault:"https://api.deepgram.com/v1/listen"`
	DeepgramModel  string   `env:"DEEPGRAM_MODEL" envDefault:"nova-2"`
	GoogleLanguage string   `env:"GOOGLE_SPEECH_LANGUAGE" envDefault:"en-US"`
	GoogleAltLangs []string `env:"GOOGLE_SPEECH_ALT_LANGUAGES" envDefault:"es-ES" envSeparator:","`
}

type TranslationConfig struct {
	Provider       string `env:"TRANSLATION_PROVIDER" envDefault:"deepl"` // deepl|vertex
	DeepLAPIKey    string `env:"DEEPL_API_KEY"`
	DeepLURL       string `env:"DEEPL_API_URL" envDefault:"https://api-free.deepl.com/v2/translate"`
	VertexProject  string `env:"VERTEX_PROJECT_ID"`
	VertexLocation string `env:"VERTEX_LOCATION" envDefault:"us-central1"`
	VertexModel    string `env:"VERTEX_MODEL" envDefault:"gemini-1.5-flash"`
}

type TTSConfig struct {
	ElevenLabsAPIKey string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsURL    string `env:"ELEVENLABS_API_URL" envDefault:"https://api.elevenlabs.io/v1"`
	VoiceID          string `env:"ELEVENLABS_VOICE_ID" envDefault:"21m00Tcm4TlvDq8ikWAM"`
	ModelID          string `env:"ELEVENLABS_MODEL_ID" envDefault:"eleven_multilingual_v2"`
}

type EmotionConfig struct {
	OpenSmileBin    string `env:"OPENSMILE_BIN" envDefault:"SMILExtract"`
	OpenSmileConfig string `env:"OPENSMILE_CONFIG" envDefault:"config/egemaps/v02/eGeMAPSv02.conf"`

	VeryHighPitch       float64 `env:"EMOTION_VERY_HIGH_PITCH" envDefault:"0.68"`
	VeryHighPitchEnergy float64 `env:"EMOTION_VERY_HIGH_PITCH_ENERGY" envDefault:"0.55"`
	FastRate            float64 `env:"EMOTION_FAST_RATE" envDefault:"0.6"`
	ElevatedEnergy      float64 `env:"EMOTION_ELEVATED_ENERGY" envDefault:"0.65"`
	ElevatedPitch       float64 `env:"EMOTION_ELEVATED_PITCH" envDefault:"0.55"`
	HighPitch           float64 `env:"EMOTION_HIGH_PITCH" envDefault:"0.6"`
	HighPitchEnergy     float64 `env:"EMOTION_HIGH_PITCH_ENERGY" envDefault:"0.5"`
	ExtremeEnergy       float64 `env:"EMOTION_EXTREME_ENERGY" envDefault:"0.75"`
	LowPitch            float64 `env:"EMOTION_LOW_PITCH" envDefault:"0.4"`
	LowEnergy           float64 `env:"EMOTION_LOW_ENERGY" envDefault:"0.4"`
}

func (e EmotionConfig) Thresholds() emotion.Thresholds {
	return emotion.Thresholds{
		VeryHighPitch:       e.VeryHighPitch,
		VeryHighPitchEnergy: e.VeryHighPitchEnergy,
		FastRate:            e.FastRate,
		ElevatedEnergy:      e.ElevatedEnergy,
		ElevatedPitch:       e.ElevatedPitch,
		HighPitch:           e.HighPitch,
		HighPitchEnergy:     e.HighPitchEnergy,
		ExtremeEnergy:       e.ExtremeEnergy,
		LowPitch:            e.LowPitch,
		LowEnergy:           e.LowEnergy,
	}
}

type TimeoutConfig struct {
	Transcribe time.Duration `env:"TRANSCRIBE_TIMEOUT" envDefault:"60s"`
	Features   time.Duration `env:"FEATURE_EXTRACTION_TIMEOUT" envDefault:"30s"`
	Translate  time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"30s"`
	Synthesize time.Duration `env:"SYNTHESIZE_TIMEOUT" envDefault:"60s"`
	Pipeline   time.Duration `env:"PIPELINE_TIMEOUT" envDefault:"3m"`
}

// Load reads the .env file (silent if missing) and then the process environment.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the provider keys the selected providers need.
func (c *Config) Validate() error {
	c.STT.Provider = strings.ToLower(strings.TrimSpace(c.STT.Provider))
	c.Translation.Provider = strings.ToLower(strings.TrimSpace(c.Translation.Provider))

	switch c.STT.Provider {
	case "deepgram":
		if c.STT.DeepgramAPIKey == "" {
			return errors.New("DEEPGRAM_API_KEY environment variable is not set")
		}
	case "google":
	default:
		return errors.New("STT_PROVIDER must be one of: deepgram, google")
	}

	switch c.Translation.Provider {
	case "deepl":
		if c.Translation.DeepLAPIKey == "" {
			return errors.New("DEEPL_API_KEY environment variable is not set")
		}
	case "vertex":
		if c.Translation.VertexProject == "" {
			return errors.New("VERTEX_PROJECT_ID environment variable is not set")
		}
	default:
		return errors.New("TRANSLATION_PROVIDER must be one of: deepl, vertex")
	}

	if c.TTS.ElevenLabsAPIKey == "" {
		return errors.New("ELEVENLABS_API_KEY environment variable is not set")
	}
	if c.MaxAudioSizeMB <= 0 {
		return errors.New("MAX_AUDIO_SIZE_MB must be > 0")
	}
	return nil
}

func (c *Config) MaxAudioBytes() int64 { return c.MaxAudioSizeMB << 20 }
