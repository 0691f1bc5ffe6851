package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/furniture-api/internal/domain/llm"
	"github.com/janhq/furniture-api/internal/infrastructure/metrics"
	"github.com/janhq/furniture-api/pkg/observability"
	"github.com/janhq/furniture-api/pkg/telemetry"
)

const (
	operationName = "conversation"

	temperature = 0.7
	maxTokens   = 2000

	longPromptChars       = 1000
	nearLimitTokens       = 1900
	shortReplyChars       = 20
	defaultRequestTimeout = 30 * time.Second
)

// Service relays chat turns to the model provider.
type Service struct {
	provider  llm.Provider
	timeout   time.Duration
	sanitizer *telemetry.Sanitizer
	log       zerolog.Logger
}

// NewService creates a conversation service. A non-positive timeout means 30s.
func NewService(provider llm.Provider, timeout time.Duration, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if sanitizer == nil {
		sanitizer = telemetry.NewSanitizer(telemetry.PIILevelHashed, "")
	}
	return &Service{
		provider:  provider,
		timeout:   timeout,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "conversation").Logger(),
	}
}

// HandleTurn builds the prompt for turn, calls the provider once and maps
// every outcome to a Result. It never returns an error.
func (s *Service) HandleTurn(ctx context.Context, turn Turn) Result {
	if !s.provider.Configured() {
		s.log.Warn().Msg("conversation turn rejected: provider credential missing")
		return failure(MessageMissingCredential)
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int(observability.AttrConversationStep, turn.CurrentStep))

	userContext := BuildContext(turn)
	promptLen := utf8.RuneCountInString(systemPrompt) + utf8.RuneCountInString(userContext)

	s.log.Debug().
		Int("step", turn.CurrentStep).
		Str("step_name", StepName(turn.CurrentStep)).
		Str("user_message", s.sanitizer.Preview(turn.UserMessage)).
		Int("prompt_chars", promptLen).
		Int("history_len", len(turn.History)).
		Msg("conversation turn")
	if promptLen > longPromptChars {
		s.log.Warn().Int("prompt_chars", promptLen).Msg("long prompt might affect response")
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(llm.WithOperation(ctx, operationName)), s.timeout)
	defer cancel()

	resp, err := s.provider.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.provider.Model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContext},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return s.failureFor(err)
	}

	choice, ok := llm.FirstChoice(resp)
	if !ok {
		s.log.Warn().Msg("provider returned no choices")
		return success("")
	}
	s.diagnose(choice, resp.Usage)
	return success(choice.Message.Content)
}

func (s *Service) failureFor(err error) Result {
	if errors.Is(err, llm.ErrMissingCredential) {
		return failure(MessageMissingCredential)
	}
	if code, ok := llm.StatusCodeOf(err); ok {
		s.log.Error().Err(err).Int("status", code).Msg("provider rejected conversation request")
		return failure(fmt.Sprintf("AI API error: %d", code))
	}
	s.log.Error().Err(err).Msg("conversation request failed")
	return failure(MessageGenericFailure)
}

func (s *Service) diagnose(choice openai.ChatCompletionChoice, usage openai.Usage) {
	reply := choice.Message.Content
	replyLen := utf8.RuneCountInString(reply)

	s.log.Debug().
		Str("finish_reason", string(choice.FinishReason)).
		Int("reply_chars", replyLen).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Str("reply", s.sanitizer.Preview(reply)).
		Msg("conversation reply")

	if choice.FinishReason == openai.FinishReasonLength {
		metrics.RecordTruncatedReply(operationName)
		s.log.Warn().Msg("reply was truncated by the token limit")
	}
	if usage.CompletionTokens >= nearLimitTokens {
		s.log.Warn().Int("completion_tokens", usage.CompletionTokens).Msg("reply is near the token limit")
	}
	if replyLen < shortReplyChars {
		s.log.Warn().Int("reply_chars", replyLen).Msg("reply is suspiciously short")
	}
}
