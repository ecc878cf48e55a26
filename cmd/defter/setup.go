package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/defterbot/internal/accounting"
	"github.com/sandevgo/defterbot/internal/config"
	"github.com/sandevgo/defterbot/internal/gateway"
	"github.com/sandevgo/defterbot/internal/providers/llm"
	"github.com/sandevgo/defterbot/internal/service/agent"
	"github.com/sandevgo/defterbot/internal/service/session"
	"github.com/sandevgo/defterbot/internal/service/voice"
	"github.com/sandevgo/defterbot/internal/transport/whatsapp"
	"github.com/sandevgo/defterbot/pkg/log"
	"github.com/sandevgo/defterbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	initEnv(ctx)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	waCfg := config.NewWhatsAppConfig(ctx)
	aiCfg := config.NewOpenAIConfig(ctx)

	// 2. Accounting data
	books, err := accounting.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load accounting data")
	}

	// 3. AI provider
	provider := llm.NewOpenAI(aiCfg.APIKey, aiCfg.Model, aiCfg.WhisperModel)

	// 4. WhatsApp client
	waClient := whatsapp.NewClient(waCfg)

	// 5. Voice pipeline
	transcriber := voice.NewTranscriber(waClient, provider)

	// 6. Agent with per-sender sessions
	store := session.NewStore(appCfg.SessionTimeout)
	ag := agent.New(provider, books, store, appCfg)

	// 7. Webhook gateway
	services = append(services, gateway.NewServer(appCfg, waCfg, waClient, ag, transcriber))

	return services
}

func initEnv(ctx context.Context) {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Err(err).Msg("failed to load .env file")
		return
	}
	logger.Debug().Msg("loaded .env file")
}
