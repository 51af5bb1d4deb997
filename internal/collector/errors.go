package collector

import (
	"context"
	"errors"

	"crypto-collector/internal/exchange"
)

// classifyFetchError maps a fetch failure to its error_type metric label.
func classifyFetchError(err error) string {
	var apiErr *exchange.APIError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &apiErr):
		return "api"
	case errors.Is(err, exchange.ErrMalformed):
		return "decode"
	default:
		return "network"
	}
}
