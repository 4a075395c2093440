package domain

import "errors"

var (
	// ErrValidation signals a request value outside its allowed set.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing record in the addressed store.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamWrite signals a text-store or vector-store write failure.
	ErrUpstreamWrite = errors.New("upstream write failed")
	// ErrCompensationFailed signals a failed rollback of a saga step.
	ErrCompensationFailed = errors.New("compensation failed")
	// ErrEmbeddingProviderError signals an embedding gateway failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
