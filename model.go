package converter

// BaseCurrency is the base all provider rates are quoted against.
const BaseCurrency = "USD"

type (
	// Rates maps a 3-letter currency code to its exchange rate
	// relative to BaseCurrency.
	Rates map[string]float64

	// RateSnapshot is one fetched set of exchange rates tied to a
	// single point in time. Immutable once created.
	RateSnapshot struct {
		Timestamp int64  `json:"timestamp"`
		Base      string `json:"base"`
		Rates     Rates  `json:"rates"`
	}

	ConversionInput struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}

	// ConversionResult is the persisted outcome of one conversion.
	// Output holds the converted amount per target currency code,
	// rounded to two decimal places.
	ConversionResult struct {
		Input  ConversionInput    `json:"input"`
		Output map[string]float64 `json:"output"`
	}
)
