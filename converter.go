package converter

import "context"

type (
	// Fetcher downloads a rate snapshot from a remote provider,
	// either the latest rates or the rates for a concrete day.
	Fetcher interface {
		Fetch(ctx context.Context, date Date) (RateSnapshot, error)
	}

	// Storage is the date-keyed archive of previously fetched
	// snapshots. Lookup reports whether rates for the requested day
	// are already archived; a Latest date is always a miss.
	Storage interface {
		Lookup(date Date) (Rates, bool, error)
		Store(snapshot RateSnapshot) error
	}

	// Resolver expands a currency symbol into the currency codes
	// that use it. An unknown token resolves to an empty slice.
	Resolver interface {
		Resolve(token string) []string
	}
)
