package inference

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"resty.dev/v3"

	"github.com/janhq/furniture-api/internal/domain/llm"
	"github.com/janhq/furniture-api/internal/infrastructure/metrics"
	"github.com/janhq/furniture-api/pkg/observability"
	"github.com/janhq/furniture-api/pkg/observability/instrument"
)

const maxErrorBodyLen = 512

// ChatCompletionClient calls an OpenAI-compatible /chat/completions endpoint.
type ChatCompletionClient struct {
	client     *resty.Client
	baseURL    string
	apiKey     string
	model      string
	instrument *instrument.CallInstrumenter
	log        zerolog.Logger
}

var _ llm.Provider = (*ChatCompletionClient)(nil)

// Options configures a ChatCompletionClient.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	// Instrument is optional.
	Instrument *instrument.CallInstrumenter
}

func NewChatCompletionClient(client *resty.Client, opts Options, log zerolog.Logger) *ChatCompletionClient {
	return &ChatCompletionClient{
		client:     client,
		baseURL:    normalizeBaseURL(opts.BaseURL),
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      opts.Model,
		instrument: opts.Instrument,
		log:        log.With().Str("component", "inference").Logger(),
	}
}

func (c *ChatCompletionClient) Configured() bool {
	return c.apiKey != ""
}

func (c *ChatCompletionClient) Model() string {
	return c.model
}

func (c *ChatCompletionClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	if !c.Configured() {
		return nil, llm.ErrMissingCredential
	}
	if request.Model == "" {
		request.Model = c.model
	}
	operation := llm.OperationFrom(ctx)

	var out *openai.ChatCompletionResponse
	call := func(ctx context.Context) error {
		resp, err := c.do(ctx, request)
		out = resp
		if err == nil {
			trace.SpanFromContext(ctx).SetAttributes(
				attribute.Int(observability.AttrTokensPrompt, resp.Usage.PromptTokens),
				attribute.Int(observability.AttrTokensCompletion, resp.Usage.CompletionTokens),
			)
		}
		return err
	}

	start := time.Now()
	var err error
	if c.instrument != nil {
		err = c.instrument.InstrumentCall(ctx, operation, request.Model, call)
	} else {
		err = call(ctx)
	}
	metrics.RecordProviderCall(operation, request.Model, time.Since(start).Seconds())

	if err != nil {
		metrics.RecordProviderError(operation, errorType(err))
		return nil, err
	}

	metrics.RecordTokens(operation, out.Usage.PromptTokens, out.Usage.CompletionTokens)
	if c.instrument != nil {
		c.instrument.RecordTokens(ctx, operation, out.Usage.PromptTokens, out.Usage.CompletionTokens)
	}
	return out, nil
}

func (c *ChatCompletionClient) do(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var respBody openai.ChatCompletionResponse
	resp, err := c.prepareRequest(ctx).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, c.errorFromResponse(resp)
	}
	return &respBody, nil
}

func (c *ChatCompletionClient) prepareRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	req.SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	return req
}

func (c *ChatCompletionClient) endpoint(path string) string {
	if c.baseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

func (c *ChatCompletionClient) errorFromResponse(resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}
	c.log.Warn().
		Int("status", resp.StatusCode()).
		Int("body_len", len(body)).
		Msg("provider returned non-success status")
	return &llm.UpstreamError{StatusCode: resp.StatusCode(), Body: body}
}

func errorType(err error) string {
	var upstream *llm.UpstreamError
	switch {
	case errors.As(err, &upstream):
		if upstream.StatusCode == http.StatusTooManyRequests {
			return "rate_limited"
		}
		if upstream.StatusCode >= http.StatusInternalServerError {
			return "upstream_5xx"
		}
		return "upstream_4xx"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, llm.ErrMissingCredential):
		return "missing_credential"
	default:
		return "transport"
	}
}

func normalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}
