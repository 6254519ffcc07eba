package main

import (
	"context"
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/viper"

	"github.com/fxcache/converter/cli/cmd"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("CURRENCY_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Log("msg", "error while reading in the config file", "err", err)
		os.Exit(1)
	}

	service, writer, err := createServices(getConfig(), logger)

	if err != nil {
		logger.Log("msg", "program will terminate", "err", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&cmd.Config{
		Ctx:     context.Background(),
		Service: service,
		Writer:  writer,
		Logger:  logger,
	}); err != nil {
		logger.Log("msg", "program will terminate", "err", err)
		os.Exit(1)
	}
}
