package token

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned for a missing/unknown operation or a
	// renew/delete without a token. No store call is issued.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoSeed is returned for a create request with neither a usable token
	// nor a username to derive one from.
	ErrNoSeed = errors.New("no seed source")
)

// StoreError carries the operator-facing diagnostics PostgreSQL attaches to a
// failed token_request call. Message and Hint are passed through to the
// response verbatim; they are not end-user strings.
type StoreError struct {
	Message string
	Hint    string
}

func (e *StoreError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("token store: %s", e.Message)
	}
	return fmt.Sprintf("token store: %s (hint: %s)", e.Message, e.Hint)
}
