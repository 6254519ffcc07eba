package converter

import "errors"

var (
	ErrInvalidDate         = errors.New("invalid date format")
	ErrUnsupportedCurrency = errors.New("currency invalid or not supported")
	ErrSymbolAsSource      = errors.New("currency symbol as input parameter not supported")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrAmountNotFinite     = errors.New("amount has to be a finite number")
)
