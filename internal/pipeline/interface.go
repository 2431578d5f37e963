package pipeline

import (
	"context"
	"errors"

	"voicebrief/internal/media"
)

// ErrNoSpeech is returned when transcription succeeds but yields no text.
var ErrNoSpeech = errors.New("pipeline: no speech detected")

// Sink receives rendered messages one chunk at a time, in order.
type Sink interface {
	Send(ctx context.Context, text string) error
}

// Result is the raw outcome of a pipeline run, before rendering.
type Result struct {
	Transcript string
	Summary    string
}

// Pipeline drives one media item through normalization, transcription,
// summarization and delivery.
type Pipeline interface {
	// Process runs the full flow and delivers the rendered transcript
	// and summary to the sink.
	Process(ctx context.Context, item media.Item, engine string, sink Sink) error

	// Run executes the flow without delivery and returns the raw result.
	Run(ctx context.Context, item media.Item, engine string) (Result, error)
}
