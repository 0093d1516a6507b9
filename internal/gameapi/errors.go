package gameapi

import "fmt"

// NetworkError wraps a transport failure: the remote service could not be
// reached at all. It is surfaced as-is; the client never retries.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "game service unreachable: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries a non-2xx response. Message holds the server-supplied
// detail when one was present in the body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("game service returned status %d", e.Status)
}

// ValidationError is a draft the remote service rejected (duplicate,
// malformed, out of bounds).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
