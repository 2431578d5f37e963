package ai

import (
	"context"

	"voicebrief/pkg/failover"
)

// Engine is a speech-to-text and summarization provider. A single engine
// exposes a primary and a fallback model for each capability so the
// caller can drive the retry policy without knowing provider details.
type Engine interface {
	Name() string

	// Transcribe converts the audio file at audioPath into plain text.
	// The target selects which of the engine's models to use.
	Transcribe(ctx context.Context, target failover.Target, audioPath, mimeType string) (string, error)

	// Summarize produces a lightweight-markup summary of the text.
	Summarize(ctx context.Context, target failover.Target, text string) (string, error)

	// SpeechTargets returns the primary and fallback transcription models.
	SpeechTargets() (primary, fallback failover.Target)

	// SummaryTargets returns the primary and fallback summarization models.
	SummaryTargets() (primary, fallback failover.Target)
}
