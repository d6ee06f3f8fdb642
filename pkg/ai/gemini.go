package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Chat(ctx context.Context, message string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(fmt.Sprintf(chatPrompt, message)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return firstPart(resp)
}

func (c *GeminiClient) AnalyzeImage(ctx context.Context, mimeType string, image []byte) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.1)

	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" || format == mimeType {
		format = "jpeg"
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout,
		genai.Text(cropHealthPrompt),
		genai.ImageData(format, image),
	)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return firstPart(resp)
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func firstPart(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
