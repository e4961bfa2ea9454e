package genai

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies generation failures for logging and retry decisions.
type ErrorKind string

const (
	// KindTimeout marks deadline or cancellation failures.
	KindTimeout ErrorKind = "timeout"
	// KindRefused marks responses where the model declined to produce output.
	KindRefused ErrorKind = "refused"
	// KindAPI marks transport failures and non-2xx API responses.
	KindAPI ErrorKind = "api"
	// KindDecode marks malformed or unusable response payloads.
	KindDecode ErrorKind = "decode"
)

// Error wraps a generation failure with its kind and operation.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("genai: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("genai: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Code implements the error-code hook picked up by handler summary logging.
func (e *Error) Code() string { return "GENAI_" + string(e.Kind) }

func newError(op string, kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// classify derives an ErrorKind from a transport-level error.
func classify(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindAPI
}

// KindOf extracts the kind from a genai error, or KindAPI for foreign errors.
func KindOf(err error) ErrorKind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindAPI
}
