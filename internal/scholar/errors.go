// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"errors"
	"fmt"
)

// ErrNoResults is returned by QueryWithFallback when every query attempt
// failed or returned an empty page. It is distinct from transport and
// remote errors: it means the whole fallback list ran and nothing
// qualified.
var ErrNoResults = errors.New("all query attempts failed or returned no results")

// TransportError is a network-level failure: DNS, connection refused, or
// the per-request timeout. The underlying error is available via Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is a non-2xx HTTP response from the API, carrying the status
// code and the server-supplied error body.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}
