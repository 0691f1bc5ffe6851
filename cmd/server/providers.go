package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/janhq/furniture-api/internal/config"
	"github.com/janhq/furniture-api/internal/domain/agent"
	"github.com/janhq/furniture-api/internal/domain/catalog"
	"github.com/janhq/furniture-api/internal/domain/conversation"
	"github.com/janhq/furniture-api/internal/domain/llm"
	"github.com/janhq/furniture-api/internal/infrastructure/catalogdata"
	"github.com/janhq/furniture-api/internal/infrastructure/inference"
	"github.com/janhq/furniture-api/internal/utils/httpclients"
	"github.com/janhq/furniture-api/pkg/observability"
	"github.com/janhq/furniture-api/pkg/observability/instrument"
	"github.com/janhq/furniture-api/pkg/telemetry"
)

// ProvideObservability initialises OTEL exporters from cfg. The cleanup
// flushes exporters within cfg.ShutdownTimeout.
func ProvideObservability(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*observability.Provider, func(), error) {
	obsCfg := observability.DefaultConfig(cfg.ServiceName)
	obsCfg.ServiceVersion = cfg.ServiceVersion
	obsCfg.Environment = cfg.Environment
	obsCfg.TracingEnabled = cfg.EnableTracing
	obsCfg.MetricsEnabled = cfg.EnableOTelMetrics
	obsCfg.OTLPEndpoint = cfg.OTLPEndpoint
	obsCfg.OTLPHeaders = cfg.OTLPHeaderMap()
	obsCfg.SamplingRate = cfg.SamplingRate
	obsCfg.PIILevel = cfg.LogPIILevel

	obs, err := observability.Init(ctx, obsCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init observability: %w", err)
	}
	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}
	return obs, cleanup, nil
}

// ProvideSanitizer returns the log sanitizer configured by observability.
func ProvideSanitizer(obs *observability.Provider) *telemetry.Sanitizer {
	return obs.Sanitizer
}

// ProvideCallInstrumenter provides OTel instruments for provider calls.
func ProvideCallInstrumenter(obs *observability.Provider) (*instrument.CallInstrumenter, error) {
	return instrument.NewCallInstrumenter(obs.Tracer, obs.Meter, "furniture")
}

// ProvideCatalog loads the embedded furniture catalog.
func ProvideCatalog() (*catalog.Catalog, error) {
	cat, err := catalogdata.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// ProvideLLMProvider provides the chat-completions client.
func ProvideLLMProvider(cfg *config.Config, inst *instrument.CallInstrumenter, log zerolog.Logger) llm.Provider {
	if !cfg.HasProviderCredential() {
		log.Warn().Msg("GMI_CLOUD_API_KEY not set; assistant endpoints will report an error")
	}
	return inference.NewChatCompletionClient(
		httpclients.NewClient("chat-completions", cfg.ProviderTimeout, log),
		inference.Options{
			BaseURL:    cfg.ProviderBaseURL,
			APIKey:     cfg.ProviderAPIKey,
			Model:      cfg.ProviderModel,
			Instrument: inst,
		},
		log,
	)
}

// ProvideConversationService provides the conversation service.
func ProvideConversationService(provider llm.Provider, cfg *config.Config, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *conversation.Service {
	return conversation.NewService(provider, cfg.ProviderTimeout, sanitizer, log)
}

// ProvideAgentService provides the furniture selection agent.
func ProvideAgentService(provider llm.Provider, cat *catalog.Catalog, cfg *config.Config, sanitizer *telemetry.Sanitizer, log zerolog.Logger) *agent.Service {
	return agent.NewService(provider, cat, cfg.ProviderTimeout, sanitizer, log)
}
