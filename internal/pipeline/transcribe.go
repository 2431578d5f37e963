package pipeline

import (
	"context"
	"fmt"
	"strings"

	"voicebrief/internal/ai"
	"voicebrief/internal/media"
	"voicebrief/pkg/failover"
)

func (p *implPipeline) transcribe(ctx context.Context, engine ai.Engine, audioPath string) (string, error) {
	mimeType := media.MIMEForFile(audioPath)
	primary, fallback := engine.SpeechTargets()

	text, err := failover.Execute(ctx, p.policy, primary, fallback,
		func(ctx context.Context, target failover.Target) (string, error) {
			return engine.Transcribe(ctx, target, audioPath, mimeType)
		})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}
