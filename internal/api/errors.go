package api

import (
	"errors"
	"fmt"
)

// ErrNotOK is matched by every error caused by a non-2xx response.
var ErrNotOK = errors.New("failed to parse text")

// StatusError reports a non-2xx response from an endpoint.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Code)
}

// Is lets errors.Is(err, ErrNotOK) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotOK
}
