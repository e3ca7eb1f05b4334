package intstream

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes decoder failures
type ErrorCode int

const (
	ErrorCodeShortRead ErrorCode = iota + 1
	ErrorCodeEmptyCode
	ErrorCodeWidthOutOfRange
	ErrorCodeRunLengthOverflow
	ErrorCodeVerificationMismatch
)

func (e ErrorCode) String() string {
	switch e {
	case ErrorCodeShortRead:
		return "ShortRead"
	case ErrorCodeEmptyCode:
		return "EmptyCode"
	case ErrorCodeWidthOutOfRange:
		return "WidthOutOfRange"
	case ErrorCodeRunLengthOverflow:
		return "RunLengthOverflow"
	case ErrorCodeVerificationMismatch:
		return "VerificationMismatch"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(e))
	}
}

// StreamError represents a data-dependent failure while decoding a stream.
// All StreamErrors are recoverable by the caller; they mean the supplied
// code bytes are truncated or corrupted, never that the decoder state is
// programmatically misused (misuse panics instead).
type StreamError struct {
	Code    ErrorCode
	Message string
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStreamError creates a new StreamError
func NewStreamError(code ErrorCode, message string) *StreamError {
	return &StreamError{Code: code, Message: message}
}

// IsStreamError checks if an error is a StreamError and returns it
func IsStreamError(err error) (*StreamError, bool) {
	var streamErr *StreamError
	if errors.As(err, &streamErr) {
		return streamErr, true
	}
	return nil, false
}

// Common errors
var (
	ErrShortRead = &StreamError{Code: ErrorCodeShortRead, Message: "ran out of code bytes"}
	ErrEmptyCode = &StreamError{Code: ErrorCodeEmptyCode, Message: "code must contain at least one byte"}
)
