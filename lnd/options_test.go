package lnd

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/macaroon.v2"
)

func TestValidHost(t *testing.T) {
	cases := map[string]bool{
		"node.example.com:8080":   true,
		"node.example.com":        true,
		"my-node.onion.io:443":    true,
		"127.0.0.1:10009":         true,
		"192.168.1.20":            true,
		"localhost:8080":          true,
		"LOCALHOST:8080":          true,
		"":                        false,
		"node":                    false,
		"node:8080":               false,
		"https://node.com:8080":   false,
		"node.example.com:1":      false,
		"node.example.com:12345":  true,
		"node.example.com:99999":  true,
		"node.example.com:123456": false,
		"node.example.toolong":    false,
		"node.example.com/v1":     false,
	}
	for host, valid := range cases {
		assert.Equal(t, valid, ValidHost(host), host)
	}
}

func TestSetHost(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.SetHost("node.example.com:8080"))
	assert.Equal(t, "https://node.example.com:8080/v1/", opts.Endpoint())

	err := opts.SetHost("not a host")
	assert.ErrorIs(t, err, ErrInvalidHostFormat)
	assert.Equal(t, "Invalid host. Use host:port syntax.", err.Error())
	assert.Equal(t, "https://node.example.com:8080/v1/", opts.Endpoint())
}

func TestSetConnectionTimeout(t *testing.T) {
	opts := NewOptions()
	assert.Equal(t, 5*time.Second, opts.ConnectionTimeout())

	opts.SetConnectionTimeout("10")
	assert.Equal(t, 10*time.Second, opts.ConnectionTimeout())

	opts.SetConnectionTimeout("2.5")
	assert.Equal(t, 2500*time.Millisecond, opts.ConnectionTimeout())

	for _, invalid := range []string{"", "abc", "-1", "Inf", "NaN"} {
		opts.SetConnectionTimeout(invalid)
		assert.Equal(t, 2500*time.Millisecond, opts.ConnectionTimeout(), invalid)
	}
}

func TestSetRequestTimeout(t *testing.T) {
	opts := NewOptions()
	assert.Equal(t, 30*time.Second, opts.RequestTimeout())
	opts.SetRequestTimeout(time.Second)
	assert.Equal(t, time.Second, opts.RequestTimeout())
	opts.SetRequestTimeout(0)
	assert.Equal(t, time.Second, opts.RequestTimeout())
}

func TestLoadMacaroonFromFile(t *testing.T) {
	dir := t.TempDir()
	opts := NewOptions()

	err := opts.LoadMacaroonFromFile(filepath.Join(dir, "missing.macaroon"))
	assert.ErrorIs(t, err, ErrCredentialNotFound)
	assert.Equal(t, "Macaroon not found", err.Error())

	empty := filepath.Join(dir, "empty.macaroon")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	err = opts.LoadMacaroonFromFile(empty)
	assert.ErrorIs(t, err, ErrCredentialEmpty)
	assert.Equal(t, "Macaroon data is empty", err.Error())
	assert.Equal(t, "", opts.MacaroonHex())

	mac := filepath.Join(dir, "admin.macaroon")
	require.NoError(t, os.WriteFile(mac, []byte{0x02, 0x01, 0xab, 0xcd}, 0600))
	require.NoError(t, opts.LoadMacaroonFromFile(mac))
	assert.Equal(t, "0201ABCD", opts.MacaroonHex())
}

func TestLoadMacaroonLogsDetails(t *testing.T) {
	mac, err := macaroon.New([]byte("root-key"), []byte("admin"), "lnd", macaroon.LatestVersion)
	require.NoError(t, err)
	require.NoError(t, mac.AddFirstPartyCaveat([]byte("ipaddr 127.0.0.1")))
	data, err := mac.MarshalBinary()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "admin.macaroon")
	require.NoError(t, os.WriteFile(path, data, 0600))

	var buf bytes.Buffer
	opts := NewOptions()
	opts.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	require.NoError(t, opts.LoadMacaroonFromFile(path))
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(data)), opts.MacaroonHex())
	assert.Contains(t, buf.String(), `"location":"lnd"`)
	assert.Contains(t, buf.String(), `"id":"`+hex.EncodeToString([]byte("admin"))+`"`)
	assert.Contains(t, buf.String(), `"caveats":1`)

	// opaque credentials are still sent, lnd is the one rejecting them
	buf.Reset()
	require.NoError(t, opts.LoadMacaroonFromData([]byte{0xab}))
	assert.Equal(t, "AB", opts.MacaroonHex())
	assert.Contains(t, buf.String(), "does not parse as a macaroon")
}

func TestSetMacaroonHex(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.SetMacaroonHex(" 0201abcd\n"))
	assert.Equal(t, "0201ABCD", opts.MacaroonHex())

	assert.ErrorIs(t, opts.SetMacaroonHex(""), ErrCredentialEmpty)
	assert.Error(t, opts.SetMacaroonHex("xyz"))
	assert.Equal(t, "0201ABCD", opts.MacaroonHex())
}

func TestLoadTLSCert(t *testing.T) {
	opts := NewOptions()
	err := opts.LoadTLSCert(filepath.Join(t.TempDir(), "tls.cert"))
	assert.ErrorIs(t, err, ErrCertificateNotFound)
	assert.Equal(t, "TLS Certificate not found", err.Error())
	assert.False(t, opts.UseTLS())

	cert := filepath.Join(t.TempDir(), "tls.cert")
	require.NoError(t, os.WriteFile(cert, []byte("pem"), 0600))
	require.NoError(t, opts.LoadTLSCert(cert))
	assert.True(t, opts.UseTLS())
}

func TestNewClientRequiresHost(t *testing.T) {
	_, err := NewClient(NewOptions())
	assert.ErrorIs(t, err, ErrInvalidHostFormat)
}

func TestNewClientCopiesOptions(t *testing.T) {
	opts := NewOptions()
	require.NoError(t, opts.SetHost("node.example.com:8080"))
	client, err := NewClient(opts)
	require.NoError(t, err)

	require.NoError(t, opts.SetHost("other.example.com:8080"))
	assert.Equal(t, "https://node.example.com:8080/v1/", client.Endpoint())
}
