package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/furniture-api/internal/domain/catalog"
	"github.com/janhq/furniture-api/internal/domain/llm"
	"github.com/janhq/furniture-api/internal/infrastructure/metrics"
	"github.com/janhq/furniture-api/pkg/observability"
	"github.com/janhq/furniture-api/pkg/telemetry"
)

// Status values reported to callers.
const (
	StatusComplete = "complete"
	StatusError    = "error"
)

// Caller-facing error messages.
const (
	MessageMissingCredential = "API key not configured"
	MessageGenericFailure    = "AI agent processing failed"
)

const (
	operationName = "agent"

	temperature           = 0.3
	maxTokens             = 100
	defaultRequestTimeout = 30 * time.Second
)

// Result is the outcome of a selection run.
type Result struct {
	Status    string
	Selection Selection
	Message   string
}

// Service asks the model provider to pick catalog items for a room description.
type Service struct {
	provider  llm.Provider
	catalog   *catalog.Catalog
	timeout   time.Duration
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

// NewService creates an agent service. A non-positive timeout means 30s.
func NewService(provider llm.Provider, cat *catalog.Catalog, timeout time.Duration, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if sanitizer == nil {
		sanitizer = telemetry.NewSanitizer(telemetry.PIILevelHashed, "")
	}
	return &Service{
		provider:  provider,
		catalog:   cat,
		timeout:   timeout,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "agent").Logger(),
	}
}

// SelectFurniture runs one selection round trip. It never returns an error;
// an unparseable answer yields the fallback selection with StatusComplete.
func (s *Service) SelectFurniture(ctx context.Context, housePrompt string) Result {
	if !s.provider.Configured() {
		s.log.Warn().Msg("agent run rejected: provider credential missing")
		return Result{Status: StatusError, Message: MessageMissingCredential}
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(observability.WithPromptAttr(housePrompt, s.sanitizer)...)

	s.log.Debug().
		Str("house_prompt", s.sanitizer.Preview(housePrompt)).
		Int("catalog_size", s.catalog.Len()).
		Msg("agent run")

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(llm.WithOperation(ctx, operationName)), s.timeout)
	defer cancel()

	resp, err := s.provider.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.provider.Model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(housePrompt, s.catalog.Len(), s.catalog.Listing())},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return s.failureFor(err)
	}

	var content string
	if choice, ok := llm.FirstChoice(resp); ok {
		content = choice.Message.Content
	}

	selection := ParseSelection(content, s.catalog.Contains)
	metrics.RecordAgentSelection(string(selection.Source))
	span.SetAttributes(attribute.String(observability.AttrSelectionSource, string(selection.Source)))
	if selection.IsFallback() {
		s.log.Warn().
			Str("answer", s.sanitizer.Preview(content)).
			Msg("model answer is not a JSON array, using default selection")
	} else {
		s.log.Debug().Ints("selected_indices", selection.Indices).Msg("agent selection parsed")
	}

	return Result{Status: StatusComplete, Selection: selection}
}

func (s *Service) failureFor(err error) Result {
	if errors.Is(err, llm.ErrMissingCredential) {
		return Result{Status: StatusError, Message: MessageMissingCredential}
	}
	if code, ok := llm.StatusCodeOf(err); ok {
		s.log.Error().Err(err).Int("status", code).Msg("provider rejected agent request")
		return Result{Status: StatusError, Message: fmt.Sprintf("AI API error: %d", code)}
	}
	s.log.Error().Err(err).Msg("agent request failed")
	return Result{Status: StatusError, Message: MessageGenericFailure}
}
