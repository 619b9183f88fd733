package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChatMessage is one turn of a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatClient talks to an OpenAI-compatible chat-completion endpoint.
// Calls are bounded by the client timeout; callers treat any error the
// same as "backend unavailable".
type ChatClient struct {
	apiKey string
	model  string
	http   *resty.Client
}

// NewChatClient builds a client. An empty apiKey yields a disabled
// client; callers should check Enabled before use.
func NewChatClient(apiKey, baseURL, model string, timeout time.Duration) *ChatClient {
	return &ChatClient{
		apiKey: apiKey,
		model:  model,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// Enabled reports whether a remote backend is configured.
func (c *ChatClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Complete sends the messages and returns the first choice's content.
func (c *ChatClient) Complete(messages []ChatMessage, maxTokens int, temperature float64) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("chat backend not configured")
	}

	var out chatCompletionResponse
	resp, err := c.http.R().
		SetAuthToken(c.apiKey).
		SetBody(map[string]interface{}{
			"model":       c.model,
			"messages":    messages,
			"max_tokens":  maxTokens,
			"temperature": temperature,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("chat backend error: %s", out.Error.Message)
		}
		return "", fmt.Errorf("chat backend error: status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat backend returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
