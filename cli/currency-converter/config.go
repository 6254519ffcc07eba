package main

import "github.com/spf13/viper"

type Config struct {
	ArchiveFile string
	SymbolsFile string
	OutputFile  string
	AppID       string
	ProviderURL string
}

func getConfig() *Config {
	files := viper.GetStringMapString("files")

	return &Config{
		ArchiveFile: files["archive"],
		SymbolsFile: files["symbols"],
		OutputFile:  files["output"],
		AppID:       viper.GetString("provider.app_id"),
		ProviderURL: viper.GetString("provider.url"),
	}
}
