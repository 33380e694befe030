package service

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/lightningnetwork/lnd/lnrpc"
)

func (svc *LndRestService) GetInfo(ctx context.Context) (*lnrpc.GetInfoResponse, error) {
	info, err := svc.LndClient.GetInfo(ctx)
	if err != nil {
		return nil, err
	}
	if svc.Config.CustomName != "" {
		info.Alias = svc.Config.CustomName
	}
	return info, nil
}

type Balance struct {
	Channel            int64  `json:"channel"`
	OnchainTotal       int64  `json:"onchain_total"`
	OnchainConfirmed   int64  `json:"onchain_confirmed"`
	OnchainUnconfirmed int64  `json:"onchain_unconfirmed"`
	Total              int64  `json:"total"`
	TotalBTC           string `json:"total_btc"`
	Unit               string `json:"unit"`
}

// Balance combines the lightning and on-chain balances of the node.
func (svc *LndRestService) Balance(ctx context.Context) (*Balance, error) {
	channel, err := svc.LndClient.ChannelBalance(ctx)
	if err != nil {
		return nil, err
	}
	onchain, err := svc.LndClient.BlockchainBalance(ctx)
	if err != nil {
		return nil, err
	}
	total := channel + onchain.TotalBalance
	return &Balance{
		Channel:            channel,
		OnchainTotal:       onchain.TotalBalance,
		OnchainConfirmed:   onchain.ConfirmedBalance,
		OnchainUnconfirmed: onchain.UnconfirmedBalance,
		Total:              total,
		TotalBTC:           btcutil.Amount(total).Format(btcutil.AmountBTC),
		Unit:               "sat",
	}, nil
}

type PeerWithAlias struct {
	*lnrpc.Peer
	Alias string `json:"alias,omitempty"`
}

// PeersWithAliases lists the connected peers together with their announced
// aliases. Peers without an alias are listed without one.
func (svc *LndRestService) PeersWithAliases(ctx context.Context) ([]PeerWithAlias, error) {
	peers, err := svc.LndClient.Peers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]PeerWithAlias, len(peers))
	for i, peer := range peers {
		result[i] = PeerWithAlias{Peer: peer}
		alias, err := svc.LndClient.PeerAlias(ctx, peer.PubKey)
		if err != nil {
			svc.Logger.Debugf("No alias for peer %s: %v", peer.PubKey, err)
			continue
		}
		result[i].Alias = alias
	}
	return result, nil
}
