package bustracker

import "errors"

var (
	// ErrTransport wraps a request that still failed once the retry
	// budget was spent. This covers connection errors, timeouts and HTTP
	// error statuses alike.
	ErrTransport = errors.New("bustracker: transport failure")

	// ErrAmbiguousEntity wraps a response carrying more than one record
	// where the query identified exactly one entity.
	ErrAmbiguousEntity = errors.New("bustracker: ambiguous entity")

	// ErrMalformedResponse wraps a response body that could not be
	// parsed, or that is missing a required element.
	ErrMalformedResponse = errors.New("bustracker: malformed response")
)
