package integration_tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockLND is a TLS server answering like the lnd REST gateway. Routes are
// keyed by method and path below /v1/, unknown routes get lnd's 404 body.
type MockLND struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]mockRoute
	hits   map[string]int
}

type mockRoute struct {
	status int
	body   string
}

func NewMockLND() *MockLND {
	mlnd := &MockLND{
		routes: map[string]mockRoute{},
		hits:   map[string]int{},
	}
	mlnd.Server = httptest.NewTLSServer(http.HandlerFunc(mlnd.serve))
	return mlnd
}

// newDefaultMockLND answers the calls every suite needs.
func newDefaultMockLND() *MockLND {
	mlnd := NewMockLND()
	mlnd.Respond(http.MethodGet, "getinfo", http.StatusOK, getInfoResponse)
	mlnd.Respond(http.MethodGet, "balance/channels", http.StatusOK, `{"balance":"150000"}`)
	mlnd.Respond(http.MethodGet, "balance/blockchain", http.StatusOK, `{"total_balance":"50000","confirmed_balance":"40000","unconfirmed_balance":"10000"}`)
	mlnd.Respond(http.MethodGet, "channels", http.StatusOK, listChannelsResponse)
	mlnd.Respond(http.MethodGet, "graph/node/"+simnetLnd2PubKey, http.StatusOK, `{"node":{"pub_key":"`+simnetLnd2PubKey+`","alias":"alby-simnet-lnd2"}}`)
	return mlnd
}

func (mlnd *MockLND) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/v1/")
	mlnd.mu.Lock()
	mlnd.hits[key]++
	route, ok := mlnd.routes[key]
	mlnd.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code":5,"message":"Not Found","details":[]}`)
		return
	}
	w.WriteHeader(route.status)
	io.WriteString(w, route.body)
}

func (mlnd *MockLND) Respond(method, path string, status int, body string) {
	mlnd.mu.Lock()
	defer mlnd.mu.Unlock()
	mlnd.routes[method+" "+path] = mockRoute{status: status, body: body}
}

func (mlnd *MockLND) Hits(method, path string) int {
	mlnd.mu.Lock()
	defer mlnd.mu.Unlock()
	return mlnd.hits[method+" "+path]
}

func (mlnd *MockLND) Host() string {
	return strings.TrimPrefix(mlnd.URL, "https://")
}
