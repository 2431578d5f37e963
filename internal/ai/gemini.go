package ai

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"voicebrief/pkg/failover"
)

type implGemini struct {
	client        *genai.Client
	primaryModel  string
	fallbackModel string
}

// NewGemini builds a Gemini-backed engine. Both transcription and
// summarization go through the same pair of multimodal models.
func NewGemini(ctx context.Context, apiKey, primaryModel, fallbackModel string) (Engine, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &implGemini{
		client:        client,
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
	}, nil
}

func (g *implGemini) Name() string {
	return EngineGemini
}

func (g *implGemini) SpeechTargets() (failover.Target, failover.Target) {
	return failover.Target{Name: g.primaryModel, Primary: true},
		failover.Target{Name: g.fallbackModel}
}

func (g *implGemini) SummaryTargets() (failover.Target, failover.Target) {
	return g.SpeechTargets()
}

func (g *implGemini) Transcribe(ctx context.Context, target failover.Target, audioPath, mimeType string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				genai.NewPartFromText(transcribePrompt),
				genai.NewPartFromBytes(data, mimeType),
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, target.Name, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini transcription (%s): %w", target.Name, err)
	}
	return resp.Text(), nil
}

func (g *implGemini) Summarize(ctx context.Context, target failover.Target, text string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{genai.NewPartFromText(summarySystemPrompt)},
		},
		{
			Role:  "model",
			Parts: []*genai.Part{genai.NewPartFromText("Understood. Send me the transcript.")},
		},
		{
			Role:  "user",
			Parts: []*genai.Part{genai.NewPartFromText(fmt.Sprintf(summaryUserPromptTemplate, text))},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, target.Name, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini summary (%s): %w", target.Name, err)
	}
	return resp.Text(), nil
}
