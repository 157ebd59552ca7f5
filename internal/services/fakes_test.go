package services

import (
	"context"
	"sync"
	"time"

	"github.com/yoockh/yoospeak/internal/emotion"
	"github.com/yoockh/yoospeak/internal/models"
	"github.com/yoockh/yoospeak/internal/providers/stt"
	"github.com/yoockh/yoospeak/internal/providers/translate"
	"github.com/yoockh/yoospeak/internal/providers/tts"
)

type fakeSTT struct {
	res      *stt.Result
	err      error
	calls    int
	mimetype string
	block    bool
}

func (f *fakeSTT) Transcribe(ctx context.Context, _ []byte, mimetype string) (*stt.Result, error) {
	f.calls++
	f.mimetype = mimetype
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.res, f.err
}
func (f *fakeSTT) Name() string { return "fake" }
func (f *fakeSTT) Close() error { return nil }

type fakeDetector struct {
	det   emotion.Detection
	calls int
}

func (f *fakeDetector) Detect(context.Context, []byte, string) emotion.Detection {
	f.calls++
	return f.det
}
func (f *fakeDetector) Mode() string { return "fake" }

type fakeTranslator struct {
	res            *translate.Result
	err            error
	calls          int
	source, target string
}

func (f *fakeTranslator) Translate(_ context.Context, _ string, source, target string) (*translate.Result, error) {
	f.calls++
	f.source, f.target = source, target
	return f.res, f.err
}
func (f *fakeTranslator) Name() string { return "fake" }
func (f *fakeTranslator) Close() error { return nil }

type fakeTTS struct {
	audio     []byte
	err       error
	voices    []models.Voice
	voicesErr error
	voiceWait bool
	calls     int
	voiceCall int
	last      tts.SynthesizeRequest
}

func (f *fakeTTS) Synthesize(_ context.Context, req tts.SynthesizeRequest) ([]byte, error) {
	f.calls++
	f.last = req
	return f.audio, f.err
}
func (f *fakeTTS) Voices(ctx context.Context) ([]models.Voice, error) {
	f.voiceCall++
	if f.voiceWait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.voices, f.voicesErr
}
func (f *fakeTTS) Name() string { return "fake" }

// memStore is an in-memory AudioStore that counts calls.
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	down    bool
	puts    int
	deletes int
	keys    []string
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Put(_ context.Context, key string, audio []byte, _ time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	m.keys = append(m.keys, key)
	if m.down {
		return false
	}
	m.data[key] = audio
	return true
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	return b, ok
}

func (m *memStore) Delete(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.down {
		return false
	}
	delete(m.data, key)
	return true
}

func (m *memStore) Exists(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
