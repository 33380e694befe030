package lnd

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the REST interface of one lnd node. It is safe for
// concurrent use.
type Client struct {
	opts       Options
	httpClient *http.Client
	tracer     *tracer
	logger     zerolog.Logger

	mu         sync.Mutex
	state      Reachability
	stateSince time.Time
	now        func() time.Time
}

// NewClient freezes opts into a client. Changing opts afterwards does not
// affect the client.
func NewClient(opts *Options) (*Client, error) {
	if opts.endpoint == "" {
		return nil, fmt.Errorf("%w: no host configured", ErrInvalidHostFormat)
	}
	client := &Client{
		opts:   *opts,
		logger: opts.logger.With().Str("lnd", opts.host).Logger(),
		now:    time.Now,
	}

	client.httpClient = opts.httpClient
	if client.httpClient == nil {
		tlsConfig, err := newTLSConfig(opts)
		if err != nil {
			return nil, err
		}
		client.httpClient = &http.Client{
			Timeout: opts.requestTimeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: opts.connectionTimeout,
				}).DialContext,
				TLSClientConfig:     tlsConfig,
				TLSHandshakeTimeout: opts.connectionTimeout,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	if opts.traceFile != "" {
		t, err := newTracer(opts.traceFile)
		if err != nil {
			return nil, err
		}
		client.tracer = t
	}
	return client, nil
}

// InitClient builds a client from environment configuration.
func InitClient(c *Config, logger zerolog.Logger) (*Client, error) {
	opts, err := c.Options(logger)
	if err != nil {
		return nil, err
	}
	return NewClient(opts)
}

// Verification follows the configuration: with a tls.cert loaded the node must
// present it, without one the connection is encrypted but not verified.
func newTLSConfig(opts *Options) (*tls.Config, error) {
	if !opts.useTLS {
		return &tls.Config{InsecureSkipVerify: true}, nil
	}
	cp := x509.NewCertPool()
	for _, path := range []string{opts.tlsCertPath, opts.caCertPath} {
		if path == "" {
			continue
		}
		pem, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read certificate %s: %w", path, err)
		}
		if !cp.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("failed to add certificate %s to the pool", path)
		}
	}
	return &tls.Config{RootCAs: cp, MinVersion: tls.VersionTLS12}, nil
}

func (c *Client) Endpoint() string {
	return c.opts.endpoint
}

// Close releases the trace file and idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return c.tracer.Close()
}
