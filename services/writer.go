package services

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/go-kit/log"

	converter "github.com/fxcache/converter"
)

// ResultWriter persists a conversion result as JSON at Path.
type ResultWriter struct {
	Path   string
	Logger log.Logger
}

func (w ResultWriter) Save(result converter.ConversionResult) error {
	data, err := json.Marshal(result)

	if err != nil {
		return fmt.Errorf("encoding conversion result: %w", err)
	}

	if err := ioutil.WriteFile(w.Path, data, 0644); err != nil {
		return fmt.Errorf("saving conversion result %s: %w", w.Path, err)
	}

	if w.Logger != nil {
		w.Logger.Log("msg", "results saved", "path", w.Path)
	}

	return nil
}
