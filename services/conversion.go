// Package services orchestrates the rate archive, the remote provider
// and the symbol table into currency conversions.
package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"

	converter "github.com/fxcache/converter"
)

type ConversionService struct {
	Fetcher converter.Fetcher
	Storage converter.Storage
	Symbols converter.Resolver
	Logger  log.Logger
}

func (s ConversionService) logger() log.Logger {
	if s.Logger == nil {
		return log.NewNopLogger()
	}

	return s.Logger
}

// GetRates returns the rate table applicable to date: the archived
// snapshot for that day when one exists, otherwise a live fetch whose
// result is archived before being returned. A failed archive persist
// only costs the cache entry, never the conversion.
func (s ConversionService) GetRates(ctx context.Context, date converter.Date) (converter.Rates, error) {
	rates, ok, err := s.Storage.Lookup(date)

	if err != nil {
		s.logger().Log("msg", "rate archive lookup failed, treating as miss", "date", date, "err", err)
		ok = false
	}

	if ok {
		s.logger().Log("msg", "using archived currency rates", "date", date)
		return rates, nil
	}

	snapshot, err := s.Fetcher.Fetch(ctx, date)

	if err != nil {
		return nil, err
	}

	if err := s.Storage.Store(snapshot); err != nil {
		s.logger().Log("msg", "archiving currency rates failed", "err", err)
	}

	return snapshot.Rates, nil
}

// GetTargetCurrencies expands the user-supplied target into the list
// of currency codes to convert to. A symbol expansion wins outright,
// even over an accidental collision with a 3-letter code; an unknown
// or absent target falls back to every known currency.
func (s ConversionService) GetTargetCurrencies(source, target string, rates converter.Rates) ([]string, error) {
	if source != "" && len(source) != 3 {
		return nil, converter.ErrSymbolAsSource
	}

	if _, ok := rates[source]; !ok {
		return nil, fmt.Errorf("%w: %q", converter.ErrUnsupportedCurrency, source)
	}

	if codes := s.Symbols.Resolve(target); len(codes) > 0 {
		return codes, nil
	}

	if _, ok := rates[target]; ok {
		return []string{target}, nil
	}

	all := make([]string, 0, len(rates))

	for code := range rates {
		all = append(all, code)
	}

	sort.Strings(all)

	return all, nil
}

// Convert converts amount from source into every target currency,
// rounding to two decimal places. Targets missing from the rate table
// are skipped with a warning, not an error.
func (s ConversionService) Convert(amount float64, source string, targets []string, rates converter.Rates) (converter.ConversionResult, error) {
	result := converter.ConversionResult{}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return result, converter.ErrAmountNotFinite
	}

	if amount < 0 {
		return result, converter.ErrNegativeAmount
	}

	// A zero rate cannot be divided by; treat it like an unknown code.
	sourceRate, ok := rates[source]

	if !ok || sourceRate == 0 {
		return result, fmt.Errorf("%w: %q", converter.ErrUnsupportedCurrency, source)
	}

	result.Input = converter.ConversionInput{Amount: amount, Currency: source}
	result.Output = make(map[string]float64, len(targets))

	decimalAmount := decimal.NewFromFloat(amount)
	decimalSourceRate := decimal.NewFromFloat(sourceRate)

	for _, code := range targets {
		targetRate, ok := rates[code]

		if !ok {
			s.logger().Log("msg", "currency not supported, skipping", "currency", code)
			continue
		}

		converted, _ := decimalAmount.
			Div(decimalSourceRate).
			Mul(decimal.NewFromFloat(targetRate)).
			Round(2).
			Float64()

		result.Output[code] = converted
	}

	return result, nil
}
