package service

import (
	"context"
	"time"
)

// StartStatusRoutine probes the node every interval so the reachability shown
// on /status follows the node. A node marked unreachable is only probed again
// once the client's reprobe interval allows it.
func (svc *LndRestService) StartStatusRoutine(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if svc.LndClient.IsBlocked() {
				continue
			}
			if !svc.LndClient.Probe(ctx) {
				svc.Logger.Warnf("lnd at %s is not reachable", svc.LndClient.Endpoint())
			}
		}
	}
}

// WaitForNode blocks until lnd answers getinfo or timeout has passed.
func (svc *LndRestService) WaitForNode(ctx context.Context, timeout time.Duration) error {
	svc.Logger.Infof("Waiting up to %s for lnd at %s", timeout, svc.LndClient.Endpoint())
	return svc.LndClient.WaitReachable(ctx, timeout)
}
