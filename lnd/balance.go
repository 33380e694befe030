package lnd

import (
	"context"

	"github.com/lightningnetwork/lnd/lnrpc"
)

// ChannelBalance is the sum of the local balances of all open channels, in
// satoshis.
func (c *Client) ChannelBalance(ctx context.Context) (int64, error) {
	balance := &lnrpc.ChannelBalanceResponse{}
	if _, err := c.fetch(ctx, Request{Path: "balance/channels"}, balance); err != nil {
		return 0, err
	}
	return balance.Balance, nil
}

// BlockchainBalance returns the on-chain wallet balance.
func (c *Client) BlockchainBalance(ctx context.Context) (*lnrpc.WalletBalanceResponse, error) {
	balance := &lnrpc.WalletBalanceResponse{}
	if _, err := c.fetch(ctx, Request{Path: "balance/blockchain"}, balance); err != nil {
		return nil, err
	}
	return balance, nil
}

func (c *Client) TotalBlockchainBalance(ctx context.Context) (int64, error) {
	balance, err := c.BlockchainBalance(ctx)
	if err != nil {
		return 0, err
	}
	return balance.TotalBalance, nil
}

func (c *Client) ConfirmedBalance(ctx context.Context) (int64, error) {
	balance, err := c.BlockchainBalance(ctx)
	if err != nil {
		return 0, err
	}
	return balance.ConfirmedBalance, nil
}

func (c *Client) UnconfirmedBalance(ctx context.Context) (int64, error) {
	balance, err := c.BlockchainBalance(ctx)
	if err != nil {
		return 0, err
	}
	return balance.UnconfirmedBalance, nil
}
