package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// defaultChatBaseURL is the default OpenAI-compatible API base URL.
	defaultChatBaseURL = "https://api.openai.com/v1"
	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gpt-4"
	// DefaultTemperature keeps decisions varied across rounds.
	DefaultTemperature = 0.8
	// DefaultMaxTokens is enough for a one-word answer.
	DefaultMaxTokens = 10
)

// ChatRequest is a single system prompt sent to a chat model.
type ChatRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// ChatClient completes a prompt with free-form text.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// HTTPDoer abstracts HTTP clients used by chat clients.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx response from the chat backend. It unwraps to
// ErrInvalidCredentials for 401/403 and ErrThrottled for 429.
type APIError struct {
	StatusCode int
	Message    string
}

// Error renders the status and backend message.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat completion failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("chat completion failed: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code to a sentinel error.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidCredentials
	case http.StatusTooManyRequests:
		return ErrThrottled
	default:
		return nil
	}
}

// OpenAIClient implements ChatClient for OpenAI-compatible chat completion APIs.
type OpenAIClient struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
	Model   string
}

// NewOpenAIClient constructs a chat client with explicit settings.
func NewOpenAIClient(model, apiKey, baseURL string, client HTTPDoer) (*OpenAIClient, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidCredentials)
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultChatBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAIClient{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Model:   model,
	}, nil
}

// Name identifies the client in run metadata.
func (c *OpenAIClient) Name() string {
	return "openai/" + c.Model
}

// chatCompletionRequest is the JSON payload sent to /chat/completions.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

// chatMessage is one chat message.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the subset of the response we read.
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// chatErrorResponse is the error envelope returned on failures.
type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a system message and returns the reply text.
func (c *OpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model:       c.Model,
		Messages:    []chatMessage{{Role: "system", Content: req.Prompt}},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var decoded chatCompletionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

// errorMessage extracts the backend's error message, falling back to the raw body.
func errorMessage(body []byte) string {
	var envelope chatErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}
