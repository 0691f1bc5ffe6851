package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/furniture-api/internal/domain/llm"
	"github.com/janhq/furniture-api/internal/infrastructure/catalogdata"
)

type stubProvider struct {
	configured bool
	content    string
	err        error

	calls   int
	lastReq openai.ChatCompletionRequest
}

func (p *stubProvider) Configured() bool { return p.configured }
func (p *stubProvider) Model() string    { return "stub-model" }

func (p *stubProvider) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: p.content},
			FinishReason: openai.FinishReasonStop,
		}},
	}, nil
}

var testCatalog = catalogdata.MustLoad()

func newTestService(t *testing.T, p llm.Provider) *Service {
	t.Helper()
	return NewService(p, testCatalog, time.Second, nil, zerolog.Nop())
}

func TestSelectFurnitureMissingCredential(t *testing.T) {
	provider := &stubProvider{configured: false}

	result := newTestService(t, provider).SelectFurniture(context.Background(), "a studio")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "API key not configured", result.Message)
	assert.Equal(t, 0, provider.calls)
}

func TestSelectFurnitureFiltersModelAnswer(t *testing.T) {
	provider := &stubProvider{configured: true, content: "[0, 2, 99, 1.5, 7]"}

	result := newTestService(t, provider).SelectFurniture(context.Background(), "Cozy mid-century living room")

	assert.Equal(t, StatusComplete, result.Status)
	assert.Equal(t, SourceModel, result.Selection.Source)
	assert.Equal(t, []int{0, 2, 7}, result.Selection.Indices)
	assert.Equal(t, "[0, 2, 99, 1.5, 7]", result.Selection.Reasoning)

	req := provider.lastReq
	assert.InDelta(t, 0.3, req.Temperature, 0.0001)
	assert.Equal(t, 100, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, systemMessage, req.Messages[0].Content)
	prompt := req.Messages[1].Content
	assert.Contains(t, prompt, `CLIENT'S REQUIREMENTS: "Cozy mid-century living room"`)
	assert.Contains(t, prompt, "Available furniture catalog (16 pieces):")
	assert.Contains(t, prompt, "0: Mid-Century Sofa ($799)")
	assert.Contains(t, prompt, "15: Platform Bed Frame ($599)")
	assert.True(t, strings.HasSuffix(prompt, "Return ONLY a JSON array of indices: [0,1,2,4,5,8,9,13]"))
}

func TestSelectFurnitureFallbackOnProse(t *testing.T) {
	provider := &stubProvider{configured: true, content: "The sofa, the desk and a bed."}

	result := newTestService(t, provider).SelectFurniture(context.Background(), "bedroom")

	assert.Equal(t, StatusComplete, result.Status)
	assert.True(t, result.Selection.IsFallback())
	assert.Equal(t, []int{0, 1, 2, 4, 5, 8, 9, 13}, result.Selection.Indices)
	assert.Equal(t, FallbackReasoning, result.Selection.Reasoning)
}

func TestSelectFurnitureUpstreamError(t *testing.T) {
	provider := &stubProvider{configured: true, err: &llm.UpstreamError{StatusCode: 401}}

	result := newTestService(t, provider).SelectFurniture(context.Background(), "bedroom")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "AI API error: 401", result.Message)
}

func TestSelectFurnitureTransportError(t *testing.T) {
	provider := &stubProvider{configured: true, err: errors.New("context deadline exceeded")}

	result := newTestService(t, provider).SelectFurniture(context.Background(), "bedroom")

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "AI agent processing failed", result.Message)
}
