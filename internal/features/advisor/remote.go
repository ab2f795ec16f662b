package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const systemPreamble = "You are an AI assistant for a Resource Allocation System. " +
	"Help users with workload management, employee assignments, and project planning. " +
	"Provide practical, actionable advice."

const (
	completionMaxTokens   = 500
	completionTemperature = 0.7
	completionTimeout     = 30 * time.Second
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompletionClient calls the remote chat-completion service.
type CompletionClient struct {
	client *resty.Client
	model  string
}

func NewCompletionClient(baseURL, apiKey, model string) *CompletionClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(completionTimeout)

	return &CompletionClient{
		client: client,
		model:  model,
	}
}

func (c *CompletionClient) Complete(ctx context.Context, userQuery string) (string, error) {
	request := completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPreamble},
			{Role: "user", Content: userQuery},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	}

	var response completionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("completion service returned %d: %s", resp.StatusCode(), resp.String())
	}

	if len(response.Choices) == 0 {
		return "", errors.New("completion response carried no choices")
	}

	answer := strings.TrimSpace(response.Choices[0].Message.Content)
	if answer == "" {
		return "", errors.New("completion response was empty")
	}

	return answer, nil
}
