package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ErrMissingCredential is returned when no provider API key is configured.
var ErrMissingCredential = errors.New("provider credential not configured")

// Provider is an OpenAI-compatible chat-completions backend.
type Provider interface {
	// Configured reports whether a credential is available for outbound calls.
	Configured() bool
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
	// Model is the model id requests should name.
	Model() string
}

// UpstreamError is a non-2xx answer from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// StatusCodeOf returns the upstream HTTP status carried by err, if any.
func StatusCodeOf(err error) (int, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode, true
	}
	return 0, false
}

// FirstChoice returns the first choice of resp, or false when there is none.
func FirstChoice(resp *openai.ChatCompletionResponse) (openai.ChatCompletionChoice, bool) {
	if resp == nil || len(resp.Choices) == 0 {
		return openai.ChatCompletionChoice{}, false
	}
	return resp.Choices[0], true
}

type operationKey struct{}

// WithOperation labels outbound calls made with ctx, for metrics and spans.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

// OperationFrom returns the label set by WithOperation, or "unknown".
func OperationFrom(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok && op != "" {
		return op
	}
	return "unknown"
}
