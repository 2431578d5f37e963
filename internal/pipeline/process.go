package pipeline

import (
	"context"
	"os"

	"github.com/google/uuid"

	"voicebrief/internal/format"
	"voicebrief/internal/media"
)

// Process runs one item end to end. The transcript is always delivered
// before summarization starts; a failed summary degrades to an error
// text instead of aborting the job.
func (p *implPipeline) Process(ctx context.Context, item media.Item, engineName string, sink Sink) error {
	job := uuid.NewString()[:8]
	p.logger.Info(ctx, "[%s] Processing %s %q via %s", job, item.Kind, item.FileName, engineName)

	engine, err := p.engines.Get(engineName)
	if err != nil {
		return err
	}

	audioPath, err := p.normalizer.Normalize(ctx, item)
	if err != nil {
		return err
	}
	defer os.Remove(audioPath)

	transcript, err := p.transcribe(ctx, engine, audioPath)
	if err != nil {
		return err
	}
	p.logger.Info(ctx, "[%s] Transcribed %d characters", job, len(transcript))

	if err := p.deliver(ctx, sink, "Transcription", format.EscapeText(transcript), false); err != nil {
		return err
	}

	summary := p.summarize(ctx, job, engine, transcript)
	msg := format.ToHTML(summary)
	if !msg.WellFormed {
		p.logger.Warn(ctx, "[%s] Summary markup failed validation, sending escaped text", job)
	}

	return p.deliver(ctx, sink, "Summary", msg.HTML, true)
}

// Run executes the flow without delivery. Used by the batch mode, which
// renders results into report files instead of chat messages.
func (p *implPipeline) Run(ctx context.Context, item media.Item, engineName string) (Result, error) {
	job := uuid.NewString()[:8]
	p.logger.Info(ctx, "[%s] Processing %s %q via %s", job, item.Kind, item.FileName, engineName)

	engine, err := p.engines.Get(engineName)
	if err != nil {
		return Result{}, err
	}

	audioPath, err := p.normalizer.Normalize(ctx, item)
	if err != nil {
		return Result{}, err
	}
	defer os.Remove(audioPath)

	transcript, err := p.transcribe(ctx, engine, audioPath)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Transcript: transcript,
		Summary:    p.summarize(ctx, job, engine, transcript),
	}, nil
}

// deliver renders a titled section and sends it chunk by chunk. Spoiler
// wrapping is applied per chunk so every message stays well-formed on
// its own.
func (p *implPipeline) deliver(ctx context.Context, sink Sink, title, body string, spoiler bool) error {
	prefix := "<b>" + title + ":</b>\n\n"
	reserve := len(prefix)
	if spoiler {
		reserve += len("<tg-spoiler></tg-spoiler>")
	}

	for i, chunk := range format.Split(body, p.maxLen-reserve) {
		if spoiler {
			chunk = "<tg-spoiler>" + chunk + "</tg-spoiler>"
		}
		if i == 0 {
			chunk = prefix + chunk
		}
		if err := sink.Send(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}
