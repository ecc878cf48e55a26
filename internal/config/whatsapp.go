package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/defterbot/pkg/log"
)

type WhatsAppConfig struct {
	PhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID,required,notEmpty"`
	AccessToken   string `env:"WHATSAPP_ACCESS_TOKEN,required,notEmpty"`
	VerifyToken   string `env:"WHATSAPP_VERIFY_TOKEN,required,notEmpty"`
}

func NewWhatsAppConfig(ctx context.Context) *WhatsAppConfig {
	c := &WhatsAppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse WhatsApp config")
	}
	return c
}
