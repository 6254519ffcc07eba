package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/go-kit/log"

	converter "github.com/fxcache/converter"
)

// OpenExchangeRatesURL is the production API base URL.
const OpenExchangeRatesURL = "https://openexchangerates.org/api"

type (
	// OpenExchangeRatesFetcher downloads rate snapshots from
	// openexchangerates.org. It issues exactly one request per Fetch
	// and never retries; any failure means the conversion cannot
	// proceed.
	OpenExchangeRatesFetcher struct {
		URL    string
		AppID  string
		Client *http.Client
		Logger log.Logger
	}

	ratesResponse struct {
		Timestamp int64           `json:"timestamp"`
		Base      string          `json:"base"`
		Rates     converter.Rates `json:"rates"`
	}
)

func (f OpenExchangeRatesFetcher) handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode == http.StatusOK {
		return nil
	}

	switch res.StatusCode {
	case http.StatusBadRequest:
		return ErrInvalidBaseCurrency
	case http.StatusUnauthorized:
		return ErrMissingAppID
	case http.StatusForbidden:
		return ErrAccessRestricted
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrNotAllowed
	default:
		return ErrUnknown
	}
}

func (f OpenExchangeRatesFetcher) endpoint(date converter.Date) string {
	url := f.URL

	if url == "" {
		url = OpenExchangeRatesURL
	}

	if date.IsLatest() {
		return url + "/latest.json"
	}

	return url + "/historical/" + date.ISO() + ".json"
}

// Fetch downloads the rate snapshot for date, hitting the latest
// endpoint for the Latest sentinel and the historical endpoint
// otherwise.
func (f OpenExchangeRatesFetcher) Fetch(ctx context.Context, date converter.Date) (converter.RateSnapshot, error) {
	logger := f.Logger

	if logger == nil {
		logger = log.NewNopLogger()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint(date), nil)

	if err != nil {
		return converter.RateSnapshot{}, err
	}

	req.Header.Add("Accept", "application/json")

	q := req.URL.Query()
	q.Add("app_id", f.AppID)
	req.URL.RawQuery = q.Encode()

	client := f.Client

	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	logger.Log("msg", "downloading currency rates", "date", date)

	res, err := client.Do(req)

	if err != nil {
		return converter.RateSnapshot{}, fmt.Errorf("downloading currency rates: %w", err)
	}

	defer res.Body.Close()

	if err := f.handleHTTPStatusCodeError(res); err != nil {
		return converter.RateSnapshot{}, fmt.Errorf("downloading currency rates: %d %w", res.StatusCode, err)
	}

	body, err := ioutil.ReadAll(res.Body)

	if err != nil {
		return converter.RateSnapshot{}, fmt.Errorf("reading rates response: %w", err)
	}

	var data ratesResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return converter.RateSnapshot{}, fmt.Errorf("parsing rates response: %w", err)
	}

	return converter.RateSnapshot{
		Timestamp: data.Timestamp,
		Base:      data.Base,
		Rates:     data.Rates,
	}, nil
}
