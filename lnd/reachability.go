package lnd

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Reachability int

const (
	ReachabilityUnknown Reachability = iota
	Reachable
	Unreachable
)

func (r Reachability) String() string {
	switch r {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// IsBlocked reports whether requests are currently short-circuited because
// an earlier probe found the node unreachable.
func (c *Client) IsBlocked() bool {
	if c.opts.forceDisableCache {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Unreachable {
		return false
	}
	if c.opts.reprobeInterval > 0 && c.now().Sub(c.stateSince) >= c.opts.reprobeInterval {
		return false
	}
	return true
}

func (c *Client) Reachability() Reachability {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) setReachability(r Reachability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != r {
		c.logger.Info().Str("state", r.String()).Msg("lnd reachability changed")
	}
	c.state = r
	c.stateSince = c.now()
}

// Probe checks that the node answers getinfo without an error and records
// the outcome. Once the node is marked unreachable, probes are blocked like
// any other request until the cache is bypassed.
func (c *Client) Probe(ctx context.Context) bool {
	if c.IsBlocked() {
		return false
	}
	if err := c.probe(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("lnd is not reachable")
		c.setReachability(Unreachable)
		return false
	}
	c.setReachability(Reachable)
	return true
}

func (c *Client) probe(ctx context.Context) error {
	_, err := c.fetch(ctx, Request{Path: "getinfo"}, nil)
	return err
}

// WaitReachable probes the node with exponential backoff, ignoring the cache,
// until it answers or maxElapsed has passed. The node is marked unreachable
// only once it gives up.
func (c *Client) WaitReachable(ctx context.Context, maxElapsed time.Duration) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.MaxInterval = time.Second * 10
	exponentialBackoff.MaxElapsedTime = maxElapsed

	err := backoff.Retry(func() error {
		doc, err := c.execute(ctx, Request{Path: "getinfo"})
		if err == nil {
			err = doc.Err()
		}
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			c.logger.Info().Err(err).Msg("waiting for lnd to become reachable")
			return err
		}
		return nil
	}, backoff.WithContext(exponentialBackoff, ctx))
	if err != nil {
		if ctx.Err() == nil {
			c.setReachability(Unreachable)
		}
		return err
	}
	c.setReachability(Reachable)
	return nil
}
