package lnd

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/httptrace"
	"os"

	"github.com/rs/zerolog"
)

const redacted = "[redacted]"

// tracer appends a verbose account of each request to a file. The output is
// meant for humans debugging connection problems.
type tracer struct {
	file *os.File
	log  zerolog.Logger
}

func newTracer(path string) (*tracer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	return &tracer{
		file: file,
		log:  zerolog.New(zerolog.SyncWriter(file)).With().Timestamp().Logger(),
	}, nil
}

func (t *tracer) requestLogger(req *http.Request) zerolog.Logger {
	return t.log.With().Str("method", req.Method).Str("url", req.URL.String()).Logger()
}

func (t *tracer) attach(req *http.Request) *http.Request {
	if t == nil {
		return req
	}
	l := t.requestLogger(req)
	l.Info().Interface("headers", redactHeaders(req.Header)).Msg("request")

	trace := &httptrace.ClientTrace{
		DNSDone: func(info httptrace.DNSDoneInfo) {
			l.Info().Interface("addrs", info.Addrs).AnErr("error", info.Err).Msg("dns done")
		},
		ConnectStart: func(network, addr string) {
			l.Info().Str("network", network).Str("addr", addr).Msg("connecting")
		},
		ConnectDone: func(network, addr string, err error) {
			l.Info().Str("network", network).Str("addr", addr).AnErr("error", err).Msg("connected")
		},
		TLSHandshakeStart: func() {
			l.Info().Msg("tls handshake")
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			e := l.Info().
				Str("version", tls.VersionName(state.Version)).
				Str("cipher", tls.CipherSuiteName(state.CipherSuite)).
				Str("server_name", state.ServerName).
				AnErr("error", err)
			if len(state.PeerCertificates) > 0 {
				cert := state.PeerCertificates[0]
				e = e.Str("subject", cert.Subject.String()).
					Str("issuer", cert.Issuer.String()).
					Time("not_after", cert.NotAfter)
			}
			e.Msg("tls handshake done")
		},
		GotConn: func(info httptrace.GotConnInfo) {
			l.Info().Bool("reused", info.Reused).Str("remote", info.Conn.RemoteAddr().String()).Msg("got connection")
		},
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			l.Info().AnErr("error", info.Err).Msg("request written")
		},
		GotFirstResponseByte: func() {
			l.Info().Msg("first response byte")
		},
	}
	return req.WithContext(httptrace.WithClientTrace(req.Context(), trace))
}

func (t *tracer) response(req *http.Request, resp *http.Response, body []byte) {
	if t == nil {
		return
	}
	l := t.requestLogger(req)
	l.Info().
		Int("status", resp.StatusCode).
		Str("proto", resp.Proto).
		Interface("headers", resp.Header).
		Bytes("body", body).
		Msg("response")
}

func (t *tracer) failure(req *http.Request, err error) {
	if t == nil {
		return
	}
	l := t.requestLogger(req)
	l.Info().Err(err).Msg("request failed")
}

func (t *tracer) Close() error {
	if t == nil {
		return nil
	}
	return t.file.Close()
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out.Get(MacaroonHeader) != "" {
		out.Set(MacaroonHeader, redacted)
	}
	return out
}
