//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/janhq/furniture-api/internal/config"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/handlers"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideObservability,
	ProvideSanitizer,
	ProvideCallInstrumenter,
	ProvideCatalog,
	ProvideLLMProvider,

	// Domain providers
	ProvideConversationService,
	ProvideAgentService,

	// Interface providers
	handlers.HandlerProvider,
	httpserver.New,

	// Application
	NewApplication,
)

// CreateApplication creates the application with all dependencies wired.
// The returned cleanup flushes telemetry exporters.
func CreateApplication(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
) (*Application, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
