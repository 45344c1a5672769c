package apperror

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{name: "bad request", err: BadRequest("missing character"), kind: ErrBadRequest},
		{name: "not found", err: NotFound("Character not found"), kind: ErrNotFound},
		{name: "invalid credential", err: InvalidCredential("Invalid OTP"), kind: ErrInvalidCredential},
		{name: "expired", err: Expired("OTP expired"), kind: ErrExpired},
		{name: "internal", err: Internal("failed", errors.New("boom")), kind: ErrInternal},
		{name: "rate limited", err: &RateLimitError{Message: "slow down", RetryAfter: time.Hour}, kind: ErrRateLimited},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.kind))
			wrapped := fmt.Errorf("context: %w", tc.err)
			assert.True(t, errors.Is(wrapped, tc.kind))
		})
	}
}

func TestInternalUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to query OTP", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRetryAfterHours(t *testing.T) {
	err := &RateLimitError{Message: "wait", RetryAfter: 7*time.Hour + 30*time.Minute + 36*time.Second}
	assert.Equal(t, 7.51, err.RetryAfterHours())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Character not found", Message(NotFound("Character not found"), "fallback"))
	assert.Equal(t, "fallback", Message(Internal("db exploded", errors.New("x")), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("plain"), "fallback"))
	assert.Equal(t, "wait", Message(&RateLimitError{Message: "wait"}, "fallback"))
}
