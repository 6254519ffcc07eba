package cmd

import (
	"context"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/fxcache/converter/services"
)

var rootCmd = &cobra.Command{
	Use:     "currency-converter",
	Short:   "Currency converter with a local rate archive",
	Version: "v1.0.0",
}

type Config struct {
	Ctx     context.Context
	Service *services.ConversionService
	Writer  services.ResultWriter
	Logger  log.Logger
}

func Execute(config *Config) error {
	if config.Logger == nil {
		config.Logger = log.NewNopLogger()
	}

	rootCmd.AddCommand(convert(config))

	return rootCmd.Execute()
}
