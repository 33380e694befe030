package lnd

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lightningnetwork/lnd/lnrpc"
)

func validatePubkey(pubkey string) error {
	b, err := hex.DecodeString(pubkey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPubkey, err)
	}
	if _, err := btcec.ParsePubKey(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPubkey, err)
	}
	return nil
}

func (c *Client) Peers(ctx context.Context) ([]*lnrpc.Peer, error) {
	resp := &lnrpc.ListPeersResponse{}
	if _, err := c.fetch(ctx, Request{Path: "peers"}, resp); err != nil {
		return nil, err
	}
	return resp.Peers, nil
}

// ConnectPeer connects to the node pubkey listening on host.
func (c *Client) ConnectPeer(ctx context.Context, pubkey, host string) error {
	if err := validatePubkey(pubkey); err != nil {
		return err
	}
	req := Request{
		Path: "peers",
		Params: map[string]interface{}{
			"addr": map[string]string{
				"pubkey": pubkey,
				"host":   host,
			},
		},
		AllowEmpty: true,
	}
	_, err := c.fetch(ctx, req, nil)
	return err
}

func (c *Client) DisconnectPeer(ctx context.Context, pubkey string) error {
	if err := validatePubkey(pubkey); err != nil {
		return err
	}
	req := Request{
		Path:       "peers/" + pubkey,
		Method:     http.MethodDelete,
		AllowEmpty: true,
	}
	_, err := c.fetch(ctx, req, nil)
	return err
}

// PeerAlias looks up the alias a node announced to the graph. Nodes the graph
// does not know, or that announced no alias, yield ErrAliasUnavailable.
func (c *Client) PeerAlias(ctx context.Context, pubkey string) (string, error) {
	if err := validatePubkey(pubkey); err != nil {
		return "", err
	}
	doc, err := c.Execute(ctx, Request{Path: "graph/node/" + pubkey})
	if err != nil {
		return "", err
	}
	if doc.Err() != nil {
		return "", ErrAliasUnavailable
	}
	info := &lnrpc.NodeInfo{}
	if err := doc.Unmarshal(info); err != nil {
		return "", fmt.Errorf("failed to decode graph node: %w", err)
	}
	if info.Node == nil || info.Node.Alias == "" {
		return "", ErrAliasUnavailable
	}
	return info.Node.Alias, nil
}
