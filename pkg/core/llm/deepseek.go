package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const deepseekEndpoint = "https://api.deepseek.com/chat/completions"

// DeepSeekProvider calls the DeepSeek chat-completions API.
type DeepSeekProvider struct{}

var _ Provider = (*DeepSeekProvider)(nil)

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepseekMessage `json:"messages"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
	Stream      bool              `json:"stream"`
}

type deepseekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *DeepSeekProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return "", fmt.Errorf("DEEPSEEK_API_KEY environment variable not set")
	}

	model := "deepseek-chat"
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	reqBody := deepseekRequest{
		Model: model,
		Messages: []deepseekMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   4096,
		Temperature: 0.2,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("deepseek request marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deepseekEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("deepseek request create: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepseek api call: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("deepseek read body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek api error: status=%d body=%s", res.StatusCode, string(body))
	}

	var response deepseekResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("deepseek response unmarshal: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("deepseek returned no choices: %s", string(body))
	}
	return response.Choices[0].Message.Content, nil
}
