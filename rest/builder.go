package rest

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultTimeout        = 30 * time.Second
)

// ClientBuilder configures and builds a [Client].
//
// The zero value is not usable; start from [NewClientBuilder]. All setters
// return the builder for chaining. Build consumes the configuration: reuse of
// a builder after Build re-reads the certificate file.
type ClientBuilder struct {
	identityCertFile string
	environment      Environment
	connectTimeout   time.Duration
	timeout          time.Duration
	minTLSVersion    uint16
	logger           zerolog.Logger
}

// NewClientBuilder returns a builder for a [Client] that authenticates with
// the PEM-encoded identity (certificate plus private key) at
// identityCertFile and talks to the given environment.
//
// Defaults: 10s connect timeout, 30s request timeout, minimum TLS 1.2.
// Basispoort does not support TLS 1.3 yet, so the floor is not set higher.
func NewClientBuilder(identityCertFile string, environment Environment) *ClientBuilder {
	return &ClientBuilder{
		identityCertFile: identityCertFile,
		environment:      environment,
		connectTimeout:   defaultConnectTimeout,
		timeout:          defaultTimeout,
		minTLSVersion:    tls.VersionTLS12,
		logger:           zerolog.Nop(),
	}
}

// ConnectTimeout sets the connection-establishment timeout.
func (b *ClientBuilder) ConnectTimeout(d time.Duration) *ClientBuilder {
	b.connectTimeout = d
	return b
}

// Timeout sets the total request-response timeout.
func (b *ClientBuilder) Timeout(d time.Duration) *ClientBuilder {
	b.timeout = d
	return b
}

// MinTLSVersion sets the minimum accepted TLS version (a tls.VersionTLS*
// constant).
func (b *ClientBuilder) MinTLSVersion(version uint16) *ClientBuilder {
	b.minTLSVersion = version
	return b
}

// Logger sets the logger used by the built client. By default all log output
// is discarded.
func (b *ClientBuilder) Logger(logger zerolog.Logger) *ClientBuilder {
	b.logger = logger
	return b
}

// Build reads the identity certificate from disk and constructs an immutable
// [Client] bound to the builder's environment.
//
// Failures are reported as a [*CertificateError] (file open, file read or
// PEM parse) or an error wrapping [ErrBuildClient] when the TLS
// configuration is rejected.
func (b *ClientBuilder) Build() (*Client, error) {
	file, err := os.Open(b.identityCertFile)
	if err != nil {
		return nil, &CertificateError{Op: "open", Path: b.identityCertFile, Err: err}
	}
	defer file.Close()

	pem, err := io.ReadAll(file)
	if err != nil {
		return nil, &CertificateError{Op: "read", Path: b.identityCertFile, Err: err}
	}

	// The identity file carries both the certificate chain and the private
	// key, so the same bytes serve as both arguments.
	identity, err := tls.X509KeyPair(pem, pem)
	if err != nil {
		return nil, &CertificateError{Op: "parse", Path: b.identityCertFile, Err: err}
	}

	if b.minTLSVersion < tls.VersionTLS10 || b.minTLSVersion > tls.VersionTLS13 {
		return nil, fmt.Errorf("%w: unknown minimum TLS version %#x", ErrBuildClient, b.minTLSVersion)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: b.connectTimeout,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{identity},
			MinVersion:   b.minTLSVersion,
		},
		ForceAttemptHTTP2: true,
	}

	httpClient := resty.New().
		SetTransport(transport).
		SetTimeout(b.timeout).
		SetDoNotParseResponse(true)

	baseURL := b.environment.BaseURL()
	b.logger.Info().
		Stringer("environment", b.environment).
		Str("base_url", baseURL.String()).
		Msg("configured Basispoort REST client")

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		log:     b.logger,
	}, nil
}
