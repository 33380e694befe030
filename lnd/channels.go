package lnd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lightningnetwork/lnd/lnrpc"
)

// OpenChannel funds a channel of amount satoshis with the given node and
// returns its funding outpoint.
func (c *Client) OpenChannel(ctx context.Context, amount int64, pubkey string) (*lnrpc.ChannelPoint, error) {
	if err := validatePubkey(pubkey); err != nil {
		return nil, err
	}
	resp := &lnrpc.ChannelPoint{}
	req := Request{
		Path: "channels",
		Params: map[string]interface{}{
			"node_pubkey_string":   pubkey,
			"local_funding_amount": amount,
		},
	}
	if _, err := c.fetch(ctx, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CloseChannel starts closing the channel identified by channelPoint
// ("txid:index") and returns the first status update sent by the node.
func (c *Client) CloseChannel(ctx context.Context, channelPoint string, force bool) (*Document, error) {
	txid, index, ok := strings.Cut(channelPoint, ":")
	if !ok || txid == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannelPoint, channelPoint)
	}
	if _, err := strconv.ParseUint(index, 10, 32); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannelPoint, channelPoint)
	}
	path := fmt.Sprintf("channels/%s/%s", txid, index)
	if force {
		path += "?force=true"
	}
	return c.fetch(ctx, Request{Path: path, Method: http.MethodDelete, Stream: true}, nil)
}

func (c *Client) OpenChannels(ctx context.Context) ([]*lnrpc.Channel, error) {
	resp := &lnrpc.ListChannelsResponse{}
	if _, err := c.fetch(ctx, Request{Path: "channels"}, resp); err != nil {
		return nil, err
	}
	return resp.Channels, nil
}

func (c *Client) ClosedChannels(ctx context.Context) ([]*lnrpc.ChannelCloseSummary, error) {
	resp := &lnrpc.ClosedChannelsResponse{}
	if _, err := c.fetch(ctx, Request{Path: "channels/closed"}, resp); err != nil {
		return nil, err
	}
	return resp.Channels, nil
}

func (c *Client) PendingChannels(ctx context.Context) (*lnrpc.PendingChannelsResponse, error) {
	resp := &lnrpc.PendingChannelsResponse{}
	if _, err := c.fetch(ctx, Request{Path: "channels/pending"}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
