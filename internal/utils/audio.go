package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SupportedAudioFormats lists the upload extensions accepted by the API.
var SupportedAudioFormats = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".webm"}

// GenerateAudioKey returns a per-request cache key, ex: "cache/audio:<uuid>".
func GenerateAudioKey(prefix string) string {
	if prefix == "" {
		prefix = "audio"
	}
	return "cache/" + prefix + ":" + uuid.NewString()
}

// ValidateAudioFile checks the upload name and size before anything leaves the process.
func ValidateAudioFile(filename string, size, maxBytes int64) error {
	const op = "ValidateAudioFile"

	ext := strings.ToLower(filepath.Ext(filename))
	supported := false
	for _, f := range SupportedAudioFormats {
		if ext == f {
			supported = true
			break
		}
	}
	if !supported {
		return E(CodeInvalidArgument, op,
			"unsupported audio format. Supported: "+strings.Join(SupportedAudioFormats, ", "), nil)
	}
	if size <= 0 {
		return E(CodeInvalidArgument, op, "audio file is empty", nil)
	}
	if maxBytes > 0 && size > maxBytes {
		return E(CodeInvalidArgument, op, "audio file too large", nil)
	}
	return nil
}

// AudioMimeType guesses a mimetype from the file extension when the client sent none.
func AudioMimeType(filename, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	default:
		return "audio/wav"
	}
}
