package main

import (
	"bytes"
	"encoding/base64"
	"flag"
	"os"
	"testing"

	"github.com/getAlby/lndrest.go/lnd"
	"github.com/getAlby/lndrest.go/qr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestDataURIBytes(t *testing.T) {
	cases := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{name: "png", uri: pngDataURIPrefix + base64.StdEncoding.EncodeToString(pngSignature), want: pngSignature},
		{name: "empty payload", uri: pngDataURIPrefix, want: []byte{}},
		{name: "jpeg", uri: "data:image/jpeg;base64,AAAA", wantErr: true},
		{name: "no prefix", uri: base64.StdEncoding.EncodeToString(pngSignature), wantErr: true},
		{name: "bad base64", uri: pngDataURIPrefix + "%%%", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dataURIBytes(tc.uri)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDataURIBytesFromClient(t *testing.T) {
	opts := lnd.NewOptions()
	require.NoError(t, opts.SetHost("node.example.com:8080"))
	require.NoError(t, opts.SetMacaroonHex("0201abcd"))
	opts.SetQRCodec(qr.NewCodec())
	client, err := lnd.NewClient(opts)
	require.NoError(t, err)

	uri, err := client.DrawQR("lnbcrt1u1pjexample")
	require.NoError(t, err)
	png, err := dataURIBytes(uri)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))
}

// globalContext parses args against the app's global flags the way cli.App
// does and returns the context a subcommand would see.
func globalContext(t *testing.T, args ...string) *cli.Context {
	app := cli.NewApp()
	set := flag.NewFlagSet(app.Name, flag.ContinueOnError)
	for _, f := range globalFlags {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	parent := cli.NewContext(app, set, nil)
	return cli.NewContext(app, flag.NewFlagSet("getinfo", flag.ContinueOnError), parent)
}

func clearLNDEnv(t *testing.T) {
	for _, k := range []string{
		"LND_ADDRESS",
		"LND_MACAROON_FILE",
		"LND_MACAROON_HEX",
		"LND_CERT_FILE",
		"LND_CONNECTION_TIMEOUT",
		"LND_REQUEST_TIMEOUT",
		"LND_TRACE_FILE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestConfigFromFlags(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
		want lnd.Config
	}{
		{
			name: "defaults",
			want: lnd.Config{
				LNDConnectionTimeout: "5",
				LNDRequestTimeout:    30,
				LNDForceDisableCache: true,
			},
		},
		{
			name: "flags",
			args: []string{
				"--rpcserver", "node.example.com:10009",
				"--macaroonpath", "/lnd/admin.macaroon",
				"--macaroonhex", "0201abcd",
				"--tlscertpath", "/lnd/tls.cert",
				"--connecttimeout", "2",
				"--timeout", "60",
				"--tracefile", "/tmp/lnd.trace",
			},
			want: lnd.Config{
				LNDAddress:           "node.example.com:10009",
				LNDMacaroonFile:      "/lnd/admin.macaroon",
				LNDMacaroonHex:       "0201abcd",
				LNDCertFile:          "/lnd/tls.cert",
				LNDConnectionTimeout: "2",
				LNDRequestTimeout:    60,
				LNDForceDisableCache: true,
				LNDTraceFile:         "/tmp/lnd.trace",
			},
		},
		{
			name: "env fallback",
			env: map[string]string{
				"LND_ADDRESS":         "env.example.com:8080",
				"LND_MACAROON_HEX":    "0201",
				"LND_REQUEST_TIMEOUT": "45",
			},
			want: lnd.Config{
				LNDAddress:           "env.example.com:8080",
				LNDMacaroonHex:       "0201",
				LNDConnectionTimeout: "5",
				LNDRequestTimeout:    45,
				LNDForceDisableCache: true,
			},
		},
		{
			name: "flag beats env",
			env:  map[string]string{"LND_ADDRESS": "env.example.com:8080"},
			args: []string{"--rpcserver", "flag.example.com:8080"},
			want: lnd.Config{
				LNDAddress:           "flag.example.com:8080",
				LNDConnectionTimeout: "5",
				LNDRequestTimeout:    30,
				LNDForceDisableCache: true,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearLNDEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg := configFromFlags(globalContext(t, tc.args...))
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestConfigFromFlagsBuildsOptions(t *testing.T) {
	clearLNDEnv(t)
	ctx := globalContext(t, "--rpcserver", "node.example.com:10009", "--macaroonhex", "0201abcd", "--timeout", "60")

	opts, err := configFromFlags(ctx).Options(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "https://node.example.com:10009/v1/", opts.Endpoint())
	assert.Equal(t, "0201ABCD", opts.MacaroonHex())
	assert.Equal(t, int64(60), int64(opts.RequestTimeout().Seconds()))
	assert.False(t, opts.UseTLS())

	_, err = configFromFlags(globalContext(t, "--macaroonhex", "0201abcd")).Options(zerolog.Nop())
	assert.ErrorIs(t, err, lnd.ErrInvalidHostFormat)
}
