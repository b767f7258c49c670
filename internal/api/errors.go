package api

import (
	"encoding/json"
	"fmt"
)

// ErrBackend indicates the backend answered with a non-success status.
// Detail carries the backend's human-readable failure reason when the
// body could be parsed.
type ErrBackend struct {
	Status int
	Detail string
}

func (e *ErrBackend) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}

// ErrUnreachable indicates a network or connection failure before any
// backend response was received.
type ErrUnreachable struct {
	Err error
}

func (e *ErrUnreachable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend unreachable: %v", e.Err)
	}
	return "backend unreachable"
}

func (e *ErrUnreachable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend returned a 2xx response
// whose body does not match the expected contract.
type ErrInvalidResponse struct {
	Body json.RawMessage
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid backend response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
