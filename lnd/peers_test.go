package lnd

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePubkey(t *testing.T) {
	assert.NoError(t, validatePubkey(testPubkey))
	for _, invalid := range []string{"", "zz", "02abc", testPubkey[:64], "04" + testPubkey[2:]} {
		assert.ErrorIs(t, validatePubkey(invalid), ErrInvalidPubkey, invalid)
	}
}

func TestPeers(t *testing.T) {
	m := newMockLND(t)
	m.respond(http.MethodGet, "peers", http.StatusOK,
		`{"peers":[{"pub_key":"`+testPubkey+`","address":"10.0.0.2:9735","inbound":true}]}`)
	client := newTestClient(t, m)

	peers, err := client.Peers(context.Background())
	require.NoError(t, err)
	require.Len(t, peers, 1)
	assert.Equal(t, "10.0.0.2:9735", peers[0].Address)
}

func TestConnectPeer(t *testing.T) {
	m := newMockLND(t)
	m.respond(http.MethodPost, "peers", http.StatusOK, `{}`)
	client := newTestClient(t, m)

	require.NoError(t, client.ConnectPeer(context.Background(), testPubkey, "10.0.0.2:9735"))
	assert.JSONEq(t, `{"addr":{"pubkey":"`+testPubkey+`","host":"10.0.0.2:9735"}}`, m.lastRequest().Body)

	m.respond(http.MethodPost, "peers", http.StatusOK, `{"error":"already connected to peer"}`)
	err := client.ConnectPeer(context.Background(), testPubkey, "10.0.0.2:9735")
	assert.True(t, IsAPIError(err))

	assert.ErrorIs(t, client.ConnectPeer(context.Background(), "nope", "10.0.0.2:9735"), ErrInvalidPubkey)
}

func TestDisconnectPeer(t *testing.T) {
	m := newMockLND(t)
	m.respond(http.MethodDelete, "peers/"+testPubkey, http.StatusOK, `{}`)
	client := newTestClient(t, m)

	require.NoError(t, client.DisconnectPeer(context.Background(), testPubkey))
	assert.Equal(t, http.MethodDelete, m.lastRequest().Method)
}

func TestPeerAlias(t *testing.T) {
	m := newMockLND(t)
	m.respond(http.MethodGet, "graph/node/"+testPubkey, http.StatusOK,
		`{"node":{"pub_key":"`+testPubkey+`","alias":"bob"},"num_channels":4}`)
	client := newTestClient(t, m)

	alias, err := client.PeerAlias(context.Background(), testPubkey)
	require.NoError(t, err)
	assert.Equal(t, "bob", alias)

	m.respond(http.MethodGet, "graph/node/"+testPubkey, http.StatusNotFound,
		`{"code":2,"message":"unable to find node"}`)
	_, err = client.PeerAlias(context.Background(), testPubkey)
	assert.ErrorIs(t, err, ErrAliasUnavailable)
	assert.Equal(t, "Alias Unavailable", err.Error())

	m.respond(http.MethodGet, "graph/node/"+testPubkey, http.StatusOK, `{"node":{"alias":""},"num_channels":1}`)
	_, err = client.PeerAlias(context.Background(), testPubkey)
	assert.ErrorIs(t, err, ErrAliasUnavailable)

	_, err = client.PeerAlias(context.Background(), "02")
	assert.ErrorIs(t, err, ErrInvalidPubkey)
}

func TestGraph(t *testing.T) {
	m := newMockLND(t)
	m.respond(http.MethodGet, "graph/info", http.StatusOK, `{"num_nodes":12,"num_channels":30,"total_network_capacity":"600000"}`)
	m.respond(http.MethodGet, "graph", http.StatusOK, `{"nodes":[{"pub_key":"`+testPubkey+`","alias":"bob"}],"edges":[]}`)
	m.respond(http.MethodGet, "graph/node/"+testPubkey, http.StatusOK, `{"node":{"alias":"bob"},"num_channels":4}`)
	client := newTestClient(t, m)
	ctx := context.Background()

	info, err := client.NetworkInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), info.NumNodes)
	assert.Equal(t, int64(600000), info.TotalNetworkCapacity)

	graph, err := client.NetworkGraph(ctx)
	require.NoError(t, err)
	require.Len(t, graph.Nodes, 1)
	assert.Equal(t, "bob", graph.Nodes[0].Alias)

	node, err := client.NodeInfo(ctx, testPubkey)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), node.NumChannels)
}
