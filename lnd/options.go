package lnd

import (
	"encoding/hex"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/macaroon.v2"
)

const (
	defaultConnectionTimeout = 5 * time.Second
	defaultRequestTimeout    = 30 * time.Second
)

// Options are the settings for the connection to a single lnd node. They are
// collected through the setters below and frozen by NewClient.
type Options struct {
	host              string
	endpoint          string
	tlsCertPath       string
	caCertPath        string
	useTLS            bool
	macaroonHex       string
	connectionTimeout time.Duration
	requestTimeout    time.Duration
	forceDisableCache bool
	reprobeInterval   time.Duration
	traceFile         string
	logger            zerolog.Logger
	qr                QRCodec
	httpClient        *http.Client
}

func NewOptions() *Options {
	return &Options{
		connectionTimeout: defaultConnectionTimeout,
		requestTimeout:    defaultRequestTimeout,
		logger:            zerolog.Nop(),
	}
}

// SetHost validates host and derives the REST endpoint from it, e.g.
// node.example.com:8080 becomes https://node.example.com:8080/v1/.
func (o *Options) SetHost(host string) error {
	if !ValidHost(host) {
		return ErrInvalidHostFormat
	}
	o.host = host
	o.endpoint = endpointFor(host)
	return nil
}

func (o *Options) Endpoint() string {
	return o.endpoint
}

// SetConnectionTimeout sets the number of seconds to wait while connecting to
// the node. Input that is not a non-negative number is ignored.
func (o *Options) SetConnectionTimeout(seconds string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(seconds), 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return
	}
	o.connectionTimeout = time.Duration(v * float64(time.Second))
}

func (o *Options) ConnectionTimeout() time.Duration {
	return o.connectionTimeout
}

// SetRequestTimeout bounds a whole request including reading the response.
func (o *Options) SetRequestTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	o.requestTimeout = d
}

func (o *Options) RequestTimeout() time.Duration {
	return o.requestTimeout
}

// LoadMacaroonFromFile reads a macaroon from disk and keeps its uppercase hex
// representation for the request headers.
func (o *Options) LoadMacaroonFromFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrCredentialNotFound
		}
		return fmt.Errorf("failed to stat macaroon %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read macaroon %s: %w", path, err)
	}
	return o.LoadMacaroonFromData(data)
}

func (o *Options) LoadMacaroonFromData(data []byte) error {
	if len(data) == 0 {
		return ErrCredentialEmpty
	}
	o.inspectMacaroon(data)
	o.macaroonHex = strings.ToUpper(hex.EncodeToString(data))
	return nil
}

// SetMacaroonHex accepts a macaroon that is already hex encoded, as found in
// LND_MACAROON_HEX.
func (o *Options) SetMacaroonHex(macaroonHex string) error {
	macaroonHex = strings.TrimSpace(macaroonHex)
	if macaroonHex == "" {
		return ErrCredentialEmpty
	}
	data, err := hex.DecodeString(macaroonHex)
	if err != nil {
		return fmt.Errorf("invalid macaroon hex: %w", err)
	}
	return o.LoadMacaroonFromData(data)
}

func (o *Options) MacaroonHex() string {
	return o.macaroonHex
}

// the credential is sent as an opaque blob, parsing it only feeds the logs
func (o *Options) inspectMacaroon(data []byte) {
	mac := &macaroon.Macaroon{}
	if err := mac.UnmarshalBinary(data); err != nil {
		o.logger.Warn().Err(err).Msg("credential does not parse as a macaroon, sending it as is")
		return
	}
	o.logger.Debug().
		Str("location", mac.Location()).
		Str("id", hex.EncodeToString(mac.Id())).
		Int("caveats", len(mac.Caveats())).
		Msg("loaded macaroon")
}

// LoadTLSCert checks that the node's tls.cert exists and turns on peer and
// host verification against it.
func (o *Options) LoadTLSCert(path string) error {
	if _, err := os.Stat(path); err != nil {
		return ErrCertificateNotFound
	}
	o.tlsCertPath = path
	o.useTLS = true
	return nil
}

// SetCACertFile adds a CA bundle to the trust roots. A missing file leaves the
// previous bundle in place.
func (o *Options) SetCACertFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return ErrCertificateNotFound
	}
	o.caCertPath = path
	return nil
}

func (o *Options) UseTLS() bool {
	return o.useTLS
}

// SetForceDisableCache makes every request go out even after the node was
// found unreachable.
func (o *Options) SetForceDisableCache(disable bool) {
	o.forceDisableCache = disable
}

// SetReprobeInterval lets requests through again once the node has been
// marked unreachable for at least d. Zero keeps it blocked.
func (o *Options) SetReprobeInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	o.reprobeInterval = d
}

// SetTraceFile appends a verbose trace of every request to path. An empty
// path turns tracing off.
func (o *Options) SetTraceFile(path string) {
	o.traceFile = path
}

func (o *Options) SetLogger(logger zerolog.Logger) {
	o.logger = logger
}

func (o *Options) SetQRCodec(codec QRCodec) {
	o.qr = codec
}

// SetHTTPClient replaces the http client built by NewClient. TLS and timeout
// settings are then the caller's business.
func (o *Options) SetHTTPClient(client *http.Client) {
	o.httpClient = client
}
