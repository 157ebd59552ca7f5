package models

// PipelineResult aggregates every stage output of one process-audio request.
type PipelineResult struct {
	CacheKey    string            `json:"-"`
	Transcript  Transcript        `json:"transcript"`
	Emotion     EmotionProfile    `json:"emotion"`
	Translation TranslationResult `json:"translation"`
	Voice       VoiceSettings     `json:"voice_settings"`
	Audio       []byte            `json:"-"`
	AudioSize   int               `json:"audio_size_bytes"`
}
