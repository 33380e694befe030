package lnd

import (
	"context"

	"github.com/lightningnetwork/lnd/lnrpc"
)

// nested p2wkh, the address type older wallets can pay to
const newAddressPath = "newaddress?type=1"

func (c *Client) NewAddress(ctx context.Context) (string, error) {
	resp := &lnrpc.NewAddressResponse{}
	if _, err := c.fetch(ctx, Request{Path: newAddressPath}, resp); err != nil {
		return "", err
	}
	return resp.Address, nil
}

// Transactions returns the on-chain transactions known to the wallet, newest
// first.
func (c *Client) Transactions(ctx context.Context) ([]*lnrpc.Transaction, error) {
	resp := &lnrpc.TransactionDetails{}
	if _, err := c.fetch(ctx, Request{Path: "transactions"}, resp); err != nil {
		return nil, err
	}
	txs := resp.Transactions
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	return txs, nil
}

// UnlockWallet unlocks the wallet of a node started with a locked wallet. It
// is sent even when the node is marked unreachable.
func (c *Client) UnlockWallet(ctx context.Context, password string) error {
	req := Request{
		Path:       "unlockwallet",
		Params:     map[string]interface{}{"wallet_password": []byte(password)},
		AllowEmpty: true,
	}
	// a locked wallet is what gets the node marked unreachable, so unlocking
	// must get through regardless
	doc, err := c.execute(ctx, req)
	if err != nil {
		return err
	}
	return doc.Err()
}
