package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/defterbot/pkg/log"
)

type OpenAIConfig struct {
	APIKey       string `env:"OPENAI_API_KEY,required,notEmpty"`
	Model        string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	WhisperModel string `env:"WHISPER_MODEL" envDefault:"whisper-1"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
