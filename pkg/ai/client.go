package ai

import (
	"context"
	"fmt"
	"strings"
)

// Client is the assistant-model boundary: one call per question, one call
// per image. Implementations return the model's raw text; callers own any
// JSON shaping.
type Client interface {
	Chat(ctx context.Context, message string) (string, error)
	AnalyzeImage(ctx context.Context, mimeType string, image []byte) (string, error)
	Close() error
}

const chatPrompt = "You are an agricultural expert for Indian farmers. Keep answers short and practical. Answer in same language as question.\nQuestion: %s"

const cropHealthPrompt = `Analyze this crop/plant image. Return ONLY valid JSON (no markdown):
{
  "plant": "plant name or Unknown",
  "status": "Healthy" or "Diseased" or "Pest Affected",
  "disease": "disease name or null",
  "severity": "None" or "Low" or "Moderate" or "High",
  "confidence": 0-100,
  "treatment": "treatment steps as string",
  "prevention": "prevention tips as string"
}`

// NewClient creates either an OpenAI or Gemini client based on config.
func NewClient(provider, apiKey, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
