package lnd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testMacaroonHex = "0201036c6e6402f801030a10e2133a1cac2c5b4d"
	testPubkey      = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// mockLND serves canned REST responses keyed by "METHOD /v1/path".
type mockLND struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []recordedRequest
}

func newMockLND(t *testing.T) *mockLND {
	m := &mockLND{handlers: map[string]http.HandlerFunc{}}
	m.Server = httptest.NewTLSServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Close)
	return m
}

func (m *mockLND) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	h, ok := m.handlers[key]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code":5,"message":"Not Found"}`)
		return
	}
	h(w, r)
}

func (m *mockLND) handle(method, path string, h http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method+" /v1/"+path] = h
}

func (m *mockLND) respond(method, path string, status int, body string) {
	m.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func (m *mockLND) hits(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.requests {
		if r.Path == "/v1/"+path {
			n++
		}
	}
	return n
}

func (m *mockLND) lastRequest() recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return recordedRequest{}
	}
	return m.requests[len(m.requests)-1]
}

func (m *mockLND) host() string {
	return strings.TrimPrefix(m.URL, "https://")
}

func newTestOptions(t *testing.T, m *mockLND) *Options {
	opts := NewOptions()
	require.NoError(t, opts.SetHost(m.host()))
	require.NoError(t, opts.SetMacaroonHex(testMacaroonHex))
	return opts
}

func newTestClient(t *testing.T, m *mockLND, configure ...func(*Options)) *Client {
	opts := newTestOptions(t, m)
	for _, f := range configure {
		f(opts)
	}
	client, err := NewClient(opts)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}
