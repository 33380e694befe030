package lnd

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type Config struct {
	LNDAddress           string `envconfig:"LND_ADDRESS" required:"true"`
	LNDMacaroonFile      string `envconfig:"LND_MACAROON_FILE"`
	LNDMacaroonHex       string `envconfig:"LND_MACAROON_HEX"`
	LNDCertFile          string `envconfig:"LND_CERT_FILE"`
	LNDCACertFile        string `envconfig:"LND_CA_CERT_FILE"`
	LNDConnectionTimeout string `envconfig:"LND_CONNECTION_TIMEOUT" default:"5"` // seconds
	LNDRequestTimeout    int    `envconfig:"LND_REQUEST_TIMEOUT" default:"30"`   // seconds
	LNDForceDisableCache bool   `envconfig:"LND_FORCE_DISABLE_CACHE" default:"false"`
	LNDReprobeInterval   int    `envconfig:"LND_REPROBE_INTERVAL" default:"30"` // seconds, 0 means never
	LNDTraceFile         string `envconfig:"LND_TRACE_FILE"`
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Options validates the config and turns it into client options.
func (c *Config) Options(logger zerolog.Logger) (*Options, error) {
	opts := NewOptions()
	opts.SetLogger(logger)

	if err := opts.SetHost(c.LNDAddress); err != nil {
		return nil, fmt.Errorf("%w: %q", err, c.LNDAddress)
	}
	opts.SetConnectionTimeout(c.LNDConnectionTimeout)
	opts.SetRequestTimeout(time.Duration(c.LNDRequestTimeout) * time.Second)

	// Get the macaroon either from a hex string or a file
	if c.LNDMacaroonHex != "" {
		if err := opts.SetMacaroonHex(c.LNDMacaroonHex); err != nil {
			return nil, err
		}
	} else if c.LNDMacaroonFile != "" {
		if err := opts.LoadMacaroonFromFile(c.LNDMacaroonFile); err != nil {
			return nil, fmt.Errorf("%w: %s", err, c.LNDMacaroonFile)
		}
	} else {
		return nil, fmt.Errorf("LND macaroon is missing")
	}

	if c.LNDCertFile != "" {
		if err := opts.LoadTLSCert(c.LNDCertFile); err != nil {
			return nil, fmt.Errorf("%w: %s", err, c.LNDCertFile)
		}
	}
	if c.LNDCACertFile != "" {
		if err := opts.SetCACertFile(c.LNDCACertFile); err != nil {
			return nil, fmt.Errorf("%w: %s", err, c.LNDCACertFile)
		}
	}

	opts.SetForceDisableCache(c.LNDForceDisableCache)
	opts.SetReprobeInterval(time.Duration(c.LNDReprobeInterval) * time.Second)
	opts.SetTraceFile(c.LNDTraceFile)
	return opts, nil
}
