package services

import (
	"context"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

// TextGenerator is the capability the AI-backed features depend on. Domain
// logic takes this interface so tests can run without the live service.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const llmCallTimeout = 30 * time.Second

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client.
func NewLLMService(apiKey, model string) (*LLMService, error) {
	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &LLMService{Client: llm}, nil
}

// GenerateText runs a single-prompt completion under a hard timeout. A slow
// or unreachable backend surfaces as 503, never as a hung worker.
func (s *LLMService) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", apierr.ErrServiceUnavailable("AI service call failed")
	}
	return resp, nil
}

// StripCodeFence removes a wrapping markdown code fence from a model reply
// so the remainder can be parsed as JSON.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
