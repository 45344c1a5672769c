// Package apperror defines the error kinds surfaced by the guild API.
package apperror

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("not found")
	ErrRateLimited       = errors.New("rate limited")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrExpired           = errors.New("expired")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInternal          = errors.New("internal error")
)

// Error attaches a client-facing message to an error kind
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is matches the error kind
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an error of the given kind with a client-facing message
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequest(message string) *Error {
	return New(ErrBadRequest, message)
}

func NotFound(message string) *Error {
	return New(ErrNotFound, message)
}

func InvalidCredential(message string) *Error {
	return New(ErrInvalidCredential, message)
}

func Expired(message string) *Error {
	return New(ErrExpired, message)
}

// Internal wraps a downstream failure. The wrapped cause is for logs only.
func Internal(message string, err error) *Error {
	return &Error{Kind: ErrInternal, Message: message, Err: err}
}

// RateLimitError reports a cooldown and how long the caller must wait
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s (retry after %s)", e.Message, e.RetryAfter)
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// RetryAfterHours is the remaining wait in hours, rounded to two decimals
func (e *RateLimitError) RetryAfterHours() float64 {
	return math.Round(e.RetryAfter.Hours()*100) / 100
}

// Message returns the client-facing message of err, or fallback when err carries none
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != ErrInternal {
		return appErr.Message
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl.Message
	}
	return fallback
}
