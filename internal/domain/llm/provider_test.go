package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestStatusCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("call provider: %w", &UpstreamError{StatusCode: 503, Body: "overloaded"})

	code, ok := StatusCodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 503, code)

	_, ok = StatusCodeOf(errors.New("dial tcp: timeout"))
	assert.False(t, ok)
}

func TestUpstreamErrorMessage(t *testing.T) {
	assert.Equal(t, "provider returned status 401", (&UpstreamError{StatusCode: 401}).Error())
	assert.Equal(t, "provider returned status 500: boom", (&UpstreamError{StatusCode: 500, Body: "boom"}).Error())
}

func TestFirstChoice(t *testing.T) {
	_, ok := FirstChoice(nil)
	assert.False(t, ok)

	_, ok = FirstChoice(&openai.ChatCompletionResponse{})
	assert.False(t, ok)

	choice, ok := FirstChoice(&openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{
		{Message: openai.ChatCompletionMessage{Content: "hi"}, FinishReason: openai.FinishReasonStop},
	}})
	assert.True(t, ok)
	assert.Equal(t, "hi", choice.Message.Content)
}

func TestOperationLabel(t *testing.T) {
	assert.Equal(t, "unknown", OperationFrom(context.Background()))
	assert.Equal(t, "agent", OperationFrom(WithOperation(context.Background(), "agent")))
}
