package mws

import (
	"fmt"

	"github.com/IvanTurko/mws-sdk-go/mws/errs"
)

// APIError is an error document returned by MWS, or a synthesized one for
// a non-2xx response that carried none.
type APIError struct {
	Type       string
	Code       string
	Message    string
	RequestID  string
	StatusCode int
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("mws api error: status=%d code=%s", e.StatusCode, e.Code)
	if e.Type != "" {
		msg += " type=" + e.Type
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request id " + e.RequestID + ")"
	}
	return msg
}

// ErrorCode returns the code for category checks.
func (e *APIError) ErrorCode() errs.ErrorCode {
	return errs.ErrorCode(e.Code)
}

// DecodeError carries a body that could not be decoded.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %d bytes: %v", len(e.Body), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportErrorKind separates deadline expiry from other network failures.
type TransportErrorKind uint8

const (
	TransportNetwork TransportErrorKind = iota
	TransportTimeout
)

func (k TransportErrorKind) String() string {
	switch k {
	case TransportTimeout:
		return "timeout"
	default:
		return "network"
	}
}

// TransportError means no HTTP response was obtained.
type TransportError struct {
	Kind TransportErrorKind
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request deadline expired.
func (e *TransportError) Timeout() bool {
	return e.Kind == TransportTimeout
}
