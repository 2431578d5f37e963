package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"voicebrief/pkg/failover"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

const (
	groqWhisperModel      = "whisper-large-v3"
	groqChatPrimaryModel  = "gemma2-9b-it"
	groqChatFallbackModel = "llama-3.1-8b-instant"
)

type implGroq struct {
	client *openai.Client
}

// NewGroq builds an engine backed by Groq's OpenAI-compatible API:
// Whisper for speech-to-text and small chat models for summaries.
func NewGroq(apiKey string) Engine {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &implGroq{client: openai.NewClientWithConfig(cfg)}
}

func (g *implGroq) Name() string {
	return EngineGroq
}

func (g *implGroq) SpeechTargets() (failover.Target, failover.Target) {
	// Whisper has no second model on Groq, so both phases hit the same one.
	return failover.Target{Name: groqWhisperModel, Primary: true},
		failover.Target{Name: groqWhisperModel}
}

func (g *implGroq) SummaryTargets() (failover.Target, failover.Target) {
	return failover.Target{Name: groqChatPrimaryModel, Primary: true},
		failover.Target{Name: groqChatFallbackModel}
}

func (g *implGroq) Transcribe(ctx context.Context, target failover.Target, audioPath, mimeType string) (string, error) {
	resp, err := g.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    target.Name,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("groq transcription (%s): %w", target.Name, err)
	}
	return resp.Text, nil
}

func (g *implGroq) Summarize(ctx context.Context, target failover.Target, text string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: target.Name,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(summaryUserPromptTemplate, text)},
		},
		Temperature: 0.5,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", fmt.Errorf("groq summary (%s): %w", target.Name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq summary (%s): empty response", target.Name)
	}
	return resp.Choices[0].Message.Content, nil
}
