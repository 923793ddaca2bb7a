package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/daily-lifehack/internal/logger"
	"github.com/sbilibin2017/daily-lifehack/internal/models"
)

const (
	systemPrompt = "You are the Waffle Goblin, a friendly and helpful creature who loves sharing practical lifehacks with humans. " +
		"Your tone is playful, friendly, and a bit quirky. You create useful, practical lifehacks that solve everyday problems. " +
		"Generate ONE unique, interesting, and practical lifehack that's easy to implement."

	userPrompt = "Generate a fun, practical lifehack. Respond with a JSON object containing: " +
		"1. content: The lifehack text (100-150 words max) " +
		"2. category: A single category (Kitchen, Home, Tech, Garden, Money, Health, Travel, or Cleaning) " +
		"3. tags: An array of 2-3 relevant tags " +
		"4. image_prompt: A short description for a simple image that represents this lifehack"
)

// chatRequest is the OpenAI-compatible chat completion request body.
type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat chatFormat    `json:"response_format"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GeneratorFacade calls an OpenAI-compatible chat completion API to produce
// one lifehack payload.
type GeneratorFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewGeneratorFacade creates a facade for the given endpoint. The timeout
// bounds the whole generation round trip.
func NewGeneratorFacade(baseURL, apiKey, model string, timeout time.Duration) *GeneratorFacade {
	return &GeneratorFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// Generate requests one lifehack payload. Any transport error, non-2xx
// status, or missing field in the decoded payload is returned as an error;
// the caller decides how to recover.
func (f *GeneratorFacade) Generate(ctx context.Context) (*models.GeneratedLifehack, error) {
	reqBody := chatRequest{
		Model: f.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: chatFormat{Type: "json_object"},
		Temperature:    0.7,
		MaxTokens:      500,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("generation request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to read generation response", "error", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("generation API returned non-success status",
			"status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("generation API status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		logger.Log.Errorw("failed to decode generation response", "error", err)
		return nil, err
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, errors.New("empty generation response")
	}

	var result models.GeneratedLifehack
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &result); err != nil {
		logger.Log.Errorw("failed to parse generated lifehack", "error", err)
		return nil, err
	}

	if result.Content == "" || result.Category == "" || len(result.Tags) == 0 || result.ImagePrompt == "" {
		return nil, errors.New("generated lifehack is missing required fields")
	}

	return &result, nil
}
