package storage

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"time"

	"github.com/go-kit/log"

	converter "github.com/fxcache/converter"
)

// archive is the on-disk shape: decimal Unix-timestamp strings mapped
// to code→rate objects. The format is append-only per day and must
// stay readable across runs.
type archive map[string]converter.Rates

type jsonFileStorage struct {
	path   string
	logger log.Logger
}

// NewJSONFileStorage returns a Storage backed by a single JSON
// archive file. The file is read in full on every lookup and
// read-modify-written on every store; single-invocation access is
// assumed, there is no file locking.
func NewJSONFileStorage(config JSONFileConfig) converter.Storage {
	logger := config.Logger

	if logger == nil {
		logger = log.NewNopLogger()
	}

	return jsonFileStorage{
		path:   config.Path,
		logger: logger,
	}
}

// load reads the archive, degrading to an empty one when the file is
// absent or unreadable. That degradation is never an error: a missing
// archive is just a full cache miss.
func (s jsonFileStorage) load() archive {
	data, err := ioutil.ReadFile(s.path)

	if err != nil {
		s.logger.Log("msg", "rate archive not readable, starting from empty", "path", s.path, "err", err)
		return archive{}
	}

	var loaded archive

	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Log("msg", "rate archive corrupted, starting from empty", "path", s.path, "err", err)
		return archive{}
	}

	return loaded
}

// Lookup scans the archive for an entry whose timestamp falls on the
// requested UTC calendar day. The Latest sentinel is always a miss:
// latest rates mutate upstream, so a cached copy would be stale.
//
// Two entries can in theory fall on the same day; the first match in
// iteration order wins. That order is not a contract.
func (s jsonFileStorage) Lookup(date converter.Date) (converter.Rates, bool, error) {
	if date.IsLatest() {
		return nil, false, nil
	}

	for key, rates := range s.load() {
		ts, err := strconv.ParseFloat(key, 64)

		if err != nil {
			s.logger.Log("msg", "skipping archive entry with bad timestamp key", "key", key)
			continue
		}

		saved := time.Unix(int64(ts), 0).UTC()

		if saved.Year() == date.Year && int(saved.Month()) == date.Month && saved.Day() == date.Day {
			return rates, true, nil
		}
	}

	return nil, false, nil
}

// Store appends the snapshot to the archive under its literal
// timestamp key and persists the whole archive back to disk. A write
// failure is returned so the caller can warn; an already computed
// conversion is not invalidated by a failed persist.
func (s jsonFileStorage) Store(snapshot converter.RateSnapshot) error {
	loaded := s.load()
	loaded[strconv.FormatInt(snapshot.Timestamp, 10)] = snapshot.Rates

	data, err := json.Marshal(loaded)

	if err != nil {
		return fmt.Errorf("encoding rate archive: %w", err)
	}

	if err := ioutil.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("saving rate archive %s: %w", s.path, err)
	}

	return nil
}
