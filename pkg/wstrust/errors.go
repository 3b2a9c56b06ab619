package wstrust

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration failures detected during message
// construction. These are distinct from ServiceFailure: construction has no
// network-dependent failure modes and never synthesizes a ServiceFailure.
var (
	// ErrUnsupportedTrustVersion indicates a protocol version outside the
	// two supported dialects.
	ErrUnsupportedTrustVersion = errors.New("unsupported WS-Trust protocol version")

	// ErrUnsupportedCredential indicates a credential kind the header
	// builder does not recognize.
	ErrUnsupportedCredential = errors.New("unsupported credential type")

	// ErrMissingPassword indicates a UsernamePassword credential without a
	// password buffer.
	ErrMissingPassword = errors.New("username/password credential has no password")

	// ErrMalformedEndpoint indicates a trust endpoint URI that cannot be
	// parsed. Raised by configuration loading, before construction.
	ErrMalformedEndpoint = errors.New("malformed trust endpoint URI")
)

// Failure codes carried by ServiceFailure. These are stable machine-readable
// values consumed by retry policy upstream.
const (
	// CodeServiceNotAvailable is reported for 5xx transport responses.
	CodeServiceNotAvailable = "service_not_available"
	// CodeRequestTimeout is reported for I/O timeouts.
	CodeRequestTimeout = "request_timeout"
	// CodeInvalidAuthority is reported by the authority-discovery
	// collaborator when an authority cannot be resolved.
	CodeInvalidAuthority = "invalid_authority"
)

// ServiceFailure is the uniform error shape for failures downstream of
// message construction: sending the request, or resolving the authority that
// produced the endpoint. It is produced by those collaborators, never by the
// builder itself.
//
// Error strings never include credential material or token bytes; the raw
// response is available separately in ResponseBody for diagnostics.
type ServiceFailure struct {
	// Code is a stable machine-readable failure code (see Code* constants).
	Code string
	// Message is a human-readable description.
	Message string
	// HTTPStatus is the HTTP status of the failing exchange, when one
	// occurred. Zero when the failure happened before a response arrived.
	HTTPStatus int
	// Claims carries a claims-challenge payload when the identity provider
	// returned one; empty otherwise.
	Claims string
	// ResponseBody is the raw response body, for diagnostics.
	ResponseBody string
}

func (e *ServiceFailure) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s: %s (http status %d)", e.Code, e.Message, e.HTTPStatus)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
