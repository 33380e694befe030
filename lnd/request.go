package lnd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"google.golang.org/protobuf/proto"
)

const MacaroonHeader = "Grpc-Metadata-macaroon"

// Request describes one call against the REST api.
type Request struct {
	// Path is appended to the endpoint as is, e.g. "channels/pending".
	Path string
	// Params are sent as a JSON body. A body implies POST unless Method says
	// otherwise.
	Params map[string]interface{}
	Method string
	// AllowEmpty accepts an empty object from a 2xx response. Some calls
	// such as connecting a peer answer that way on success.
	AllowEmpty bool
	// Stream marks calls that lnd answers with a stream of messages. Only the
	// first one is read.
	Stream bool
}

var errTrailingData = errors.New("unexpected data after JSON response")

func (r Request) method() string {
	if r.Method != "" {
		return r.Method
	}
	if len(r.Params) > 0 {
		return http.MethodPost
	}
	return http.MethodGet
}

// Execute sends req to the node and decodes the answer. It fails with
// ErrHostUnreachable when the node was found unreachable before, when the
// round trip fails or when the body is empty or not JSON. Errors reported by
// lnd inside the body are left for the caller to inspect through
// Document.Err.
func (c *Client) Execute(ctx context.Context, req Request) (*Document, error) {
	if c.IsBlocked() {
		c.logger.Debug().Str("path", req.Path).Msg("node marked unreachable, skipping request")
		return nil, ErrHostUnreachable
	}
	return c.execute(ctx, req)
}

func (c *Client) execute(ctx context.Context, req Request) (*Document, error) {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	httpReq = c.tracer.attach(httpReq)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.tracer.failure(httpReq, err)
		c.logger.Debug().Err(err).Str("method", httpReq.Method).Str("path", req.Path).Msg("lnd request failed")
		return nil, fmt.Errorf("%w: %w", ErrHostUnreachable, err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	dec := json.NewDecoder(resp.Body)
	err = dec.Decode(&raw)
	if err == nil && !req.Stream {
		if _, tokErr := dec.Token(); !errors.Is(tokErr, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		c.tracer.failure(httpReq, err)
		c.logger.Debug().Err(err).Str("path", req.Path).Int("status", resp.StatusCode).Msg("unreadable lnd response")
		return nil, ErrHostUnreachable
	}
	c.tracer.response(httpReq, resp, raw)
	c.logger.Debug().
		Str("method", httpReq.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("lnd request")

	doc, err := decodeDocument(raw, resp.StatusCode)
	if err != nil {
		if req.AllowEmpty && resp.StatusCode >= 200 && resp.StatusCode <= 299 && bytes.Equal(bytes.TrimSpace(raw), emptyObject) {
			return emptyDocument(resp.StatusCode), nil
		}
		return nil, err
	}
	return doc, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	var body io.Reader
	if len(req.Params) > 0 {
		payload, err := json.Marshal(req.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode params for %s: %w", req.Path, err)
		}
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method(), c.opts.endpoint+req.Path, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(MacaroonHeader, c.opts.macaroonHex)
	httpReq.Header.Set("Content-Type", "application/json")
	return httpReq, nil
}

// fetch executes req, turns an embedded error into a failure and decodes the
// document into out when out is not nil.
func (c *Client) fetch(ctx context.Context, req Request, out proto.Message) (*Document, error) {
	doc, err := c.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	if out != nil {
		if err := doc.Unmarshal(out); err != nil {
			return nil, fmt.Errorf("failed to decode %s response: %w", req.Path, err)
		}
	}
	return doc, nil
}
