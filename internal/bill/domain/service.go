package domain

import (
	"context"
	"errors"
)

// Service turns a raw request JSON string into a response JSON string.
// It never returns an error for the documented failure taxonomy; every
// recoverable failure becomes part of the response envelope.
type Service interface {
	Generate(ctx context.Context, payload string) string
}

var (
	ErrInvalidPayload = errors.New("invalid_payload")
	ErrRenderFailed   = errors.New("render_failed")
)
