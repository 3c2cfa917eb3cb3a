package lzw

import "errors"

// Package errors. Callers match with errors.Is; returned errors wrap these with context.
var (
	ErrInvalidWidth    = errors.New("code width out of range")
	ErrMalformedStream = errors.New("malformed code stream")
	ErrNilReader       = errors.New("reader is nil")
	ErrNilWriter       = errors.New("writer is nil")
	ErrClosed          = errors.New("lzw: write to closed writer")
)
