package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiExtractor struct {
	client    *genai.Client
	modelName string
}

// NewGeminiExtractor returns a KeyPhraseExtractor that asks Gemini
// for a JSON array of key phrases per chunk.
func NewGeminiExtractor(apiKey string) (KeyPhraseExtractor, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiExtractor{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// Extract implements KeyPhraseExtractor.
func (g *geminiExtractor) Extract(ctx context.Context, languageCode string, chunk string) ([]string, error) {
	prompt := fmt.Sprintf(`Extract the key phrases (skills, requirements, topics) from the following text.
Language: %s

Text:
%s

Return ONLY a JSON array of strings, one key phrase per element, in order of appearance. No other output.`, languageCode, chunk)

	temperature := float32(0.1)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key phrases: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	var phrases []string
	if err := json.Unmarshal([]byte(extractJSON(text)), &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse key phrase response: %w", err)
	}
	return phrases, nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON array boundaries
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
