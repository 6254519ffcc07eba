// Package storage holds the archive backends for fetched rate
// snapshots.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-kit/log"

	converter "github.com/fxcache/converter"
)

type (
	Provider string

	JSONFileConfig struct {
		Path   string
		Logger log.Logger
	}
)

const JSONFile Provider = "jsonfile"

var ErrStorageNotFound = errors.New("storage is not found")

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "jsonfile":
		return JSONFile, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewStorage(provider Provider, config interface{}) (converter.Storage, error) {
	switch provider {
	case JSONFile:
		return NewJSONFileStorage(config.(JSONFileConfig)), nil
	}

	return nil, ErrStorageNotFound
}
