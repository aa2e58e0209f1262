package dceapi

import (
	"fmt"
)

// Result codes used by the exchange, both as HTTP statuses and inside the
// response envelope.
const (
	CodeSuccess      = 200
	CodeParamError   = 400
	CodeNoPermission = 401
	CodeTokenExpired = 402
	CodeServerError  = 500
	CodeRateLimited  = 501
)

// ConfigError reports invalid or missing configuration. It is returned from
// client construction, never from a request.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dceapi: invalid configuration: %s: %s", e.Field, e.Reason)
}

// ValidationError reports an unusable request parameter, detected before any
// network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dceapi: invalid parameter %q: %s", e.Field, e.Reason)
}

// AuthError reports a failed authentication call: the token endpoint was
// unreachable, rejected the credentials, or returned no usable token.
// Authentication failures are never retried automatically.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dceapi: authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("dceapi: authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError reports a network-level failure: connection error, timeout,
// or an unreadable response. It is surfaced to the caller without retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dceapi: transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports an error response from the exchange. Status is the HTTP
// status, Code the envelope code when one was present (0 otherwise).
type APIError struct {
	Status  int
	Code    int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("dceapi: API error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("dceapi: API error: HTTP %d", e.Status)
}

// TokenExpired reports whether the error is the exchange's expiry signal,
// carried either as the HTTP status or as the envelope code.
func (e *APIError) TokenExpired() bool {
	return e.Status == CodeTokenExpired || e.Code == CodeTokenExpired
}

// DecodeError reports a response body that could not be decompressed, parsed
// as the exchange envelope, or mapped onto the expected type.
type DecodeError struct {
	Raw []byte
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dceapi: decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
