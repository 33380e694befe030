package lnd

import (
	"context"
	"errors"
	"strings"

	"github.com/lightningnetwork/lnd/lnrpc"
)

const StatusOnline = "Online"

// NodeStatus reports "Online", "Error: <message>" when lnd answers with an
// error, or the reason the node could not be queried.
func (c *Client) NodeStatus(ctx context.Context) string {
	doc, err := c.Execute(ctx, Request{Path: "getinfo"})
	if err != nil {
		if errors.Is(err, ErrHostUnreachable) {
			return ErrHostUnreachable.Error()
		}
		return err.Error()
	}
	if err := doc.Err(); err != nil {
		return err.Error()
	}
	return StatusOnline
}

func (c *Client) GetInfo(ctx context.Context) (*lnrpc.GetInfoResponse, error) {
	info := &lnrpc.GetInfoResponse{}
	if _, err := c.fetch(ctx, Request{Path: "getinfo"}, info); err != nil {
		return nil, err
	}
	return info, nil
}

// NodeVersion returns the release part of the version string, e.g.
// "0.17.3-beta" for "0.17.3-beta commit=v0.17.3-beta".
func (c *Client) NodeVersion(ctx context.Context) (string, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(info.Version)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

func (c *Client) NodeAlias(ctx context.Context) (string, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.Alias, nil
}

func (c *Client) NodePubkey(ctx context.Context) (string, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.IdentityPubkey, nil
}

func (c *Client) NodeSynced(ctx context.Context) (bool, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return false, err
	}
	return info.SyncedToChain, nil
}

func (c *Client) NodeBlockHeight(ctx context.Context) (uint32, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return 0, err
	}
	return info.BlockHeight, nil
}

func (c *Client) NodeNumPeers(ctx context.Context) (uint32, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return 0, err
	}
	return info.NumPeers, nil
}

func (c *Client) NodeNumActiveChannels(ctx context.Context) (uint32, error) {
	info, err := c.GetInfo(ctx)
	if err != nil {
		return 0, err
	}
	return info.NumActiveChannels, nil
}
