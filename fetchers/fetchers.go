// Package fetchers contains the remote rate provider clients.
package fetchers

import "errors"

var (
	ErrInvalidBaseCurrency = errors.New("rates requested for an unsupported base currency")
	ErrMissingAppID        = errors.New("no App ID provided")
	ErrAccessRestricted    = errors.New("access restricted for repeated over-use or other reason")
	ErrNotFound            = errors.New("requested a non-existent resource/route")
	ErrNotAllowed          = errors.New("no permission to access requested route/feature")
	ErrUnknown             = errors.New("unknown error")
)
