package main

import (
	"github.com/go-kit/log"

	"github.com/fxcache/converter/fetchers"
	"github.com/fxcache/converter/services"
	"github.com/fxcache/converter/storage"
	"github.com/fxcache/converter/symbols"
)

func createServices(config *Config, logger log.Logger) (*services.ConversionService, services.ResultWriter, error) {
	resolver, err := symbols.New(config.SymbolsFile, logger)

	if err != nil {
		return nil, services.ResultWriter{}, err
	}

	store, err := storage.NewStorage(storage.JSONFile, storage.JSONFileConfig{
		Path:   config.ArchiveFile,
		Logger: logger,
	})

	if err != nil {
		return nil, services.ResultWriter{}, err
	}

	service := &services.ConversionService{
		Fetcher: fetchers.OpenExchangeRatesFetcher{
			URL:    config.ProviderURL,
			AppID:  config.AppID,
			Logger: logger,
		},
		Storage: store,
		Symbols: resolver,
		Logger:  logger,
	}

	writer := services.ResultWriter{Path: config.OutputFile, Logger: logger}

	return service, writer, nil
}
