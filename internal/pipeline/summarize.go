package pipeline

import (
	"context"
	"fmt"
	"strings"

	"voicebrief/internal/ai"
	"voicebrief/pkg/failover"
)

// summarize never fails the job. Provider errors and empty answers both
// degrade to a displayable text so the transcript already delivered is
// not wasted.
func (p *implPipeline) summarize(ctx context.Context, job string, engine ai.Engine, transcript string) string {
	primary, fallback := engine.SummaryTargets()

	text, err := failover.Execute(ctx, p.policy, primary, fallback,
		func(ctx context.Context, target failover.Target) (string, error) {
			return engine.Summarize(ctx, target, transcript)
		})
	if err != nil {
		p.logger.Warn(ctx, "[%s] Summarization failed: %v", job, err)
		return fmt.Sprintf("Could not generate a summary: %v", err)
	}

	if strings.TrimSpace(text) == "" {
		p.logger.Warn(ctx, "[%s] Summarization returned an empty answer", job)
		return "No summary was produced for this transcript."
	}
	return text
}
