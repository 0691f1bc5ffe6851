package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/janhq/furniture-api/internal/config"
	"github.com/janhq/furniture-api/internal/domain/agent"
	"github.com/janhq/furniture-api/internal/domain/conversation"
	"github.com/janhq/furniture-api/internal/domain/llm"
	"github.com/janhq/furniture-api/internal/infrastructure/catalogdata"
	"github.com/janhq/furniture-api/internal/infrastructure/inference"
	"github.com/janhq/furniture-api/internal/infrastructure/logger"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/responses"
	"github.com/janhq/furniture-api/internal/utils/httpclients"
	"github.com/janhq/furniture-api/pkg/telemetry"
)

var agentCmd = &cobra.Command{
	Use:   "agent <house prompt>",
	Short: "Ask the model to pick furniture for a space",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAgent,
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send one conversation turn to the model",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().Int("step", 1, "Current step (1-8)")
}

type assistantEnv struct {
	cfg       *config.Config
	log       zerolog.Logger
	provider  llm.Provider
	sanitizer *telemetry.Sanitizer
}

func newAssistantEnv(cmd *cobra.Command) (*assistantEnv, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	log, err := logger.NewWithWriter(cmd.ErrOrStderr(), level, "console")
	if err != nil {
		return nil, err
	}

	provider := inference.NewChatCompletionClient(
		httpclients.NewClient("chat-completions", cfg.ProviderTimeout, log),
		inference.Options{BaseURL: cfg.ProviderBaseURL, APIKey: cfg.ProviderAPIKey, Model: cfg.ProviderModel},
		log,
	)
	return &assistantEnv{
		cfg:       cfg,
		log:       log,
		provider:  provider,
		sanitizer: telemetry.NewSanitizer(telemetry.PIILevel(cfg.LogPIILevel), cfg.ServiceName),
	}, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

func runAgent(cmd *cobra.Command, args []string) error {
	env, err := newAssistantEnv(cmd)
	if err != nil {
		return err
	}
	cat, err := catalogdata.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	service := agent.NewService(env.provider, cat, env.cfg.ProviderTimeout, env.sanitizer, env.log)
	result := service.SelectFurniture(ctx, strings.Join(args, " "))
	if err := writeJSON(cmd.OutOrStdout(), responses.NewAgentResponse(result)); err != nil {
		return err
	}
	if result.Status != agent.StatusComplete {
		return fmt.Errorf("agent failed: %s", result.Message)
	}
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	env, err := newAssistantEnv(cmd)
	if err != nil {
		return err
	}
	step, _ := cmd.Flags().GetInt("step")

	ctx, cancel := signalContext(cmd)
	defer cancel()

	service := conversation.NewService(env.provider, env.cfg.ProviderTimeout, env.sanitizer, env.log)
	result := service.HandleTurn(ctx, conversation.Turn{
		UserMessage: strings.Join(args, " "),
		CurrentStep: step,
	})
	if result.Status != conversation.StatusSuccess {
		return fmt.Errorf("conversation failed: %s", result.Message)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Reply)
	return err
}
