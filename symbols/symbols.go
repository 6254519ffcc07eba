// Package symbols translates currency symbols (£, $, ...) into the
// currency codes that use them, backed by a static JSON table.
package symbols

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/go-kit/log"
)

type Resolver struct {
	table  map[string][]string
	logger log.Logger
}

// New loads the symbol table from path. A table that cannot be loaded
// is a fatal configuration error: without it symbol-based requests can
// never be serviced.
func New(path string, logger log.Logger) (*Resolver, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	data, err := ioutil.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("loading currency symbol table %s: %w", path, err)
	}

	var table map[string][]string

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing currency symbol table %s: %w", path, err)
	}

	logger.Log("msg", "currency symbol table loaded", "path", path, "symbols", len(table))

	return &Resolver{table: table, logger: logger}, nil
}

// Resolve returns the currency codes behind token, in table order.
// A token that is not a known symbol resolves to an empty slice.
func (r *Resolver) Resolve(token string) []string {
	return r.table[token]
}
