package service

import (
	"context"
	"time"

	"github.com/getAlby/lndrest.go/lnd"
	"github.com/ziflex/lecho/v3"
)

type LndRestService struct {
	Config    *Config
	LndClient *lnd.Client
	QRCodec   lnd.QRCodec
	Logger    *lecho.Logger
}

type NodeStatus struct {
	Status       string    `json:"status"`
	Online       bool      `json:"online"`
	Reachability string    `json:"reachability"`
	Endpoint     string    `json:"endpoint"`
	CheckedAt    time.Time `json:"checked_at"`
}

func (svc *LndRestService) NodeStatus(ctx context.Context) *NodeStatus {
	status := svc.LndClient.NodeStatus(ctx)
	return &NodeStatus{
		Status:       status,
		Online:       status == lnd.StatusOnline,
		Reachability: svc.LndClient.Reachability().String(),
		Endpoint:     svc.LndClient.Endpoint(),
		CheckedAt:    time.Now().UTC(),
	}
}
