// Package openai implements the chat-completion client against any
// OpenAI-compatible endpoint, including unauthenticated local models.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/penso/llm-mailguard/internal/core"
	"github.com/penso/llm-mailguard/internal/utils"
)

const (
	// maxContentBytes caps the email content sent upstream. Conservative
	// limit so the request stays inside typical token budgets.
	maxContentBytes = 30000

	// maxCompletionTokens caps the classification reply
	maxCompletionTokens = 256

	// temperature stays low for consistent classification
	temperature = 0.1

	// requestTimeout bounds the whole HTTP exchange
	requestTimeout = 60 * time.Second

	completionsSuffix = "/chat/completions"
)

// Client is an implementation of the LLMClient interface for
// OpenAI-compatible chat-completion endpoints
type Client struct {
	client        *openai.Client
	modelName     string
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
}

// NewClient creates a new client. endpoint is the full chat-completions URL;
// an empty apiKey sends the request unauthenticated.
func NewClient(
	endpoint string,
	modelName string,
	apiKey string,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL(endpoint)
	cfg.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &Client{
		client:        openai.NewClientWithConfig(cfg),
		modelName:     modelName,
		textProcessor: textProcessor,
		logger:        logger,
	}
}

// baseURL strips the completions path the library appends itself
func baseURL(endpoint string) string {
	return strings.TrimSuffix(strings.TrimSuffix(endpoint, "/"), completionsSuffix)
}

// Classify sends the system prompt and email content for classification.
// It returns the first choice's message content; ok is false when the
// response carries no usable answer. The call is single-shot: no retries,
// no streaming.
func (c *Client) Classify(ctx context.Context, systemPrompt, emailContent string) (string, bool, error) {
	content := c.textProcessor.TruncateText(emailContent, maxContentBytes)

	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
		MaxCompletionTokens: maxCompletionTokens,
		Temperature:         temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", false, c.classifyError(err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Debug("Response contained no choices", zap.String("model", c.modelName))
		return "", false, nil
	}

	reply := resp.Choices[0].Message.Content
	if reply == "" {
		c.logger.Debug("Response contained no content", zap.String("model", c.modelName))
		return "", false, nil
	}

	return reply, true, nil
}

// classifyError splits failures into the two tiers the caller handles:
// an HTTP error status becomes an APIError with the status code and
// best-effort body, anything else is a transport-level ConnectionError.
func (c *Client) classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &core.APIError{
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &core.APIError{
			StatusCode: reqErr.HTTPStatusCode,
			Body:       string(reqErr.Body),
		}
	}

	return &core.ConnectionError{Err: err}
}
