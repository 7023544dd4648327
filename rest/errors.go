package rest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel errors for defensive matching with [errors.Is]. The taxonomy is
// non-exhaustive: callers should treat unknown error kinds as fatal for the
// single call that produced them.
var (
	// ErrInvalidEnvironment is wrapped by [ParseEnvironment] failures.
	ErrInvalidEnvironment = errors.New("invalid environment string")
	// ErrBuildClient is wrapped when the underlying HTTP client cannot be
	// constructed from the builder's TLS configuration.
	ErrBuildClient = errors.New("failed building request client")
)

// CertificateError reports a failure to load the client identity certificate
// during [ClientBuilder.Build]. Op is one of "open", "read" or "parse".
type CertificateError struct {
	Op   string
	Path string
	Err  error
}

func (e *CertificateError) Error() string {
	return fmt.Sprintf("failed to %s identity certificate file at %s: %v", e.Op, e.Path, e.Err)
}

func (e *CertificateError) Unwrap() error { return e.Err }

// URLError reports a request path that could not be resolved against the
// client's base URL.
type URLError struct {
	Path string
	Err  error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("failed to parse URL from path %q: %v", e.Path, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

// RequestError reports a transport-level failure while sending a request:
// connection refused, DNS failure, TLS handshake failure or an elapsed
// timeout. The request was not answered; whether it reached the server is
// unknown.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP request error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// BodyError reports that a response arrived but its body could not be fully
// read. Distinct from [DecodeError]: the bytes never made it off the wire.
type BodyError struct {
	URL string
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("failed to receive response body from %s: %v", e.URL, e.Err)
}

func (e *BodyError) Unwrap() error { return e.Err }

// ErrorResponse is the best-effort decoded body of a non-2xx response:
// the parsed JSON value when the body is valid JSON, or the raw text
// otherwise. It is diagnostic payload only and is never decoded further.
type ErrorResponse struct {
	// JSON holds the decoded body when it parses as JSON.
	JSON any
	// Plain holds the raw body text when it does not.
	Plain string

	isJSON bool
}

// IsJSON reports whether the error body parsed as JSON.
func (r ErrorResponse) IsJSON() bool { return r.isJSON }

func (r ErrorResponse) String() string {
	if r.isJSON {
		return fmt.Sprintf("%v", r.JSON)
	}
	return r.Plain
}

// StatusError reports a response with a non-2xx status code. The response
// body is retained, best-effort decoded, in Response.
type StatusError struct {
	URL        string
	StatusCode int
	Response   ErrorResponse
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP response error: %s returned status %d: %s", e.URL, e.StatusCode, e.Response)
}

// Unwrap maps well-known status codes onto their standard-library
// counterparts so that callers can match with errors.Is without knowing this
// package's types.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case 403:
		return os.ErrPermission
	case 404:
		return fs.ErrNotExist
	default:
		return nil
	}
}

// DecodeError reports a response body that was received but did not parse as
// the expected JSON structure.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed decoding the response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a request payload that could not be serialized to
// JSON. This is almost always a caller bug (an unsupported payload type).
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode request payload: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
