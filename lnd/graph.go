package lnd

import (
	"context"

	"github.com/lightningnetwork/lnd/lnrpc"
)

func (c *Client) NetworkInfo(ctx context.Context) (*lnrpc.NetworkInfo, error) {
	resp := &lnrpc.NetworkInfo{}
	if _, err := c.fetch(ctx, Request{Path: "graph/info"}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// NetworkGraph returns the whole channel graph known to the node. This is
// slow and large on mainnet.
func (c *Client) NetworkGraph(ctx context.Context) (*lnrpc.ChannelGraph, error) {
	resp := &lnrpc.ChannelGraph{}
	if _, err := c.fetch(ctx, Request{Path: "graph"}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) NodeInfo(ctx context.Context, pubkey string) (*lnrpc.NodeInfo, error) {
	if err := validatePubkey(pubkey); err != nil {
		return nil, err
	}
	resp := &lnrpc.NodeInfo{}
	if _, err := c.fetch(ctx, Request{Path: "graph/node/" + pubkey}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
