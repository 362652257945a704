package intents

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by PollUntilComplete when its time budget runs out
var ErrTimeout = errors.New("timeout waiting for swap completion")

// APIError is a request-level failure reported by the intents service.
// Body is the raw response body; Message is its "message" field, if any.
type APIError struct {
	Op         string
	HTTPStatus int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed (%d): %s", e.Op, e.HTTPStatus, e.Body)
}

// IsAPIError reports whether err carries an APIError and returns it
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// QuoteError is the APIError returned by a rejected quote request
type QuoteError = APIError
