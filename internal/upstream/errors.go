// Package upstream implements the clients for the two services polymove
// aggregates: the offer catalog (REST) and city-intel (gRPC).
package upstream

import "errors"

// ErrUnavailable covers transport failures, timeouts and non-success
// statuses from either upstream.
var ErrUnavailable = errors.New("upstream unavailable")

// ErrNotFound is returned when a keyed lookup (a city score) has no record.
var ErrNotFound = errors.New("not found upstream")
