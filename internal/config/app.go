package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/defterbot/pkg/log"
)

type AppConfig struct {
	Port int `env:"PORT" envDefault:"3000"`

	// Session Management
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" envDefault:"5m"`
	ContextWindowSize int           `env:"CONTEXT_WINDOW_SIZE" envDefault:"20"`

	// Tool Loop
	MaxToolIterations int `env:"MAX_TOOL_ITERATIONS" envDefault:"5"`
	MaxResponseTokens int `env:"MAX_RESPONSE_TOKENS" envDefault:"1500"`

	// Inbound flood control, messages per minute per sender
	RateLimitPerMin int `env:"RATE_LIMIT_PER_MIN" envDefault:"20"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
