package main

import (
	"context"
	"os"

	"github.com/sandevgo/defterbot/internal/config"
	"github.com/sandevgo/defterbot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "defter",
	Short: "DefterBot — WhatsApp accounting assistant",
	Long:  `DefterBot answers accounting questions over WhatsApp using an LLM agent backed by the company books.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
