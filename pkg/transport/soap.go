package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/beevik/etree"

	"github.com/DisplayNote/azure-activedirectory-library-for-dotnet/pkg/wstrust"
)

// TLS version constants
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// Recommended TLS 1.2 cipher suites for federation endpoints
var RecommendedTLS12CipherSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
}

// Config contains HTTPS client configuration
type Config struct {
	MinTLSVersion   uint16
	MaxTLSVersion   uint16
	CipherSuites    []uint16
	Certificates    []tls.Certificate
	RootCAs         *x509.CertPool
	Timeout         time.Duration
	IdleConnTimeout time.Duration
}

// DefaultConfig returns a default HTTPS configuration
func DefaultConfig() *Config {
	return &Config{
		MinTLSVersion:   TLS12,
		MaxTLSVersion:   TLS13,
		CipherSuites:    RecommendedTLS12CipherSuites,
		Timeout:         30 * time.Second,
		IdleConnTimeout: 90 * time.Second,
	}
}

// Client POSTs WS-Trust request envelopes to federation endpoints over HTTPS.
type Client struct {
	client *http.Client
	config *Config
	logger *slog.Logger
}

// NewClient creates a new transport client. A nil config selects defaults;
// a nil logger discards nothing and falls back to slog.Default.
func NewClient(config *Config, logger *slog.Logger) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	tlsConfig := &tls.Config{
		MinVersion:   config.MinTLSVersion,
		MaxVersion:   config.MaxTLSVersion,
		CipherSuites: config.CipherSuites,
		Certificates: config.Certificates,
		RootCAs:      config.RootCAs,
	}

	transport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		IdleConnTimeout:     config.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		config: config,
		logger: logger,
	}
}

// RequestToken POSTs the envelope to the endpoint with the dialect's SOAP
// action and returns the raw response body. Parsing the returned
// RequestSecurityTokenResponse is the caller's concern.
//
// Failures take the wstrust.ServiceFailure shape: 5xx responses map to
// service_not_available and I/O timeouts map to request_timeout. The
// envelope is not wiped here; the caller retains ownership.
func (c *Client) RequestToken(ctx context.Context, endpoint wstrust.Endpoint, envelope []byte) ([]byte, error) {
	dialect, err := wstrust.ResolveDialect(endpoint.Version)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URI, bytes.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", wstrust.ErrMalformedEndpoint, endpoint.URI)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", dialect.SOAPAction)

	c.logger.Debug("sending token request",
		"endpoint", endpoint.URI,
		"action", dialect.SOAPAction,
		"dialect", endpoint.Version.String(),
		"size", len(envelope))

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &wstrust.ServiceFailure{
				Code:    wstrust.CodeRequestTimeout,
				Message: "token request timed out",
			}
		}
		return nil, fmt.Errorf("failed to send token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		reason, claims := parseFault(body)
		if reason == "" {
			reason = "service unavailable"
		}
		return nil, &wstrust.ServiceFailure{
			Code:         wstrust.CodeServiceNotAvailable,
			Message:      reason,
			HTTPStatus:   resp.StatusCode,
			Claims:       claims,
			ResponseBody: string(body),
		}
	}

	if resp.StatusCode != http.StatusOK {
		reason, _ := parseFault(body)
		if reason != "" {
			return nil, fmt.Errorf("token request rejected (status %d): %s", resp.StatusCode, reason)
		}
		return nil, fmt.Errorf("token request rejected (status %d)", resp.StatusCode)
	}

	return body, nil
}

// parseFault extracts the human-readable reason and any claims-challenge
// payload from a SOAP Fault body. Matching is by local tag name because
// fault namespace prefixes vary across federation deployments. Best effort:
// an unparseable body yields empty results, the raw bytes remain available
// to the caller.
func parseFault(body []byte) (reason, claims string) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", ""
	}
	root := doc.Root()
	if root == nil {
		return "", ""
	}

	fault := findByLocalTag(root, "Fault")
	if fault == nil {
		return "", ""
	}

	if text := findByLocalTag(fault, "Text"); text != nil {
		reason = text.Text()
	} else if text := findByLocalTag(fault, "faultstring"); text != nil {
		// SOAP 1.1 fault shape, seen from older federation deployments.
		reason = text.Text()
	}

	if c := findByLocalTag(fault, "claims"); c != nil {
		claims = c.Text()
	}

	return reason, claims
}

// findByLocalTag returns the first descendant of e whose tag matches,
// ignoring namespace prefixes.
func findByLocalTag(e *etree.Element, tag string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == tag {
			return child
		}
		if found := findByLocalTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
