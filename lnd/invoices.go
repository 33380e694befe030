package lnd

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/lightningnetwork/lnd/lnrpc"
)

type CreatedInvoice struct {
	PaymentRequest string `json:"payment_request"`
	RHash          string `json:"r_hash"`
	Amount         int64  `json:"amount"`
	Memo           string `json:"memo"`
	QR             string `json:"qr,omitempty"`
}

// NewInvoice asks the node for a new invoice over amount satoshis. With
// includeQR the payment request is also rendered as a PNG data URI.
func (c *Client) NewInvoice(ctx context.Context, amount int64, memo string, includeQR bool) (*CreatedInvoice, error) {
	resp := &lnrpc.AddInvoiceResponse{}
	req := Request{
		Path: "invoices",
		Params: map[string]interface{}{
			"memo":  memo,
			"value": amount,
		},
	}
	if _, err := c.fetch(ctx, req, resp); err != nil {
		return nil, err
	}

	invoice := &CreatedInvoice{
		PaymentRequest: resp.PaymentRequest,
		RHash:          base64.StdEncoding.EncodeToString(resp.RHash),
		Amount:         amount,
		Memo:           memo,
	}
	if includeQR {
		qr, err := c.DrawQR(invoice.PaymentRequest)
		if err != nil {
			return nil, err
		}
		invoice.QR = qr
	}
	return invoice, nil
}

// PayInvoice pays a BOLT11 payment request and waits for the outcome.
func (c *Client) PayInvoice(ctx context.Context, paymentRequest string) (*lnrpc.SendResponse, error) {
	resp := &lnrpc.SendResponse{}
	req := Request{
		Path:   "channels/transactions",
		Params: map[string]interface{}{"payment_request": paymentRequest},
	}
	if _, err := c.fetch(ctx, req, resp); err != nil {
		return nil, err
	}
	if resp.PaymentError != "" {
		return resp, &APIError{Message: resp.PaymentError}
	}
	return resp, nil
}

func (c *Client) ListInvoices(ctx context.Context, reversed bool) (*lnrpc.ListInvoiceResponse, error) {
	path := "invoices"
	if reversed {
		path += "?reversed=true"
	}
	resp := &lnrpc.ListInvoiceResponse{}
	if _, err := c.fetch(ctx, Request{Path: path}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DecodeInvoice decodes a payment request into its parts.
func (c *Client) DecodeInvoice(ctx context.Context, paymentRequest string) (*lnrpc.PayReq, error) {
	resp := &lnrpc.PayReq{}
	if _, err := c.fetch(ctx, Request{Path: "payreq/" + paymentRequest}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// InvoiceIsPaid looks up an invoice by its base64 payment hash, as returned in
// CreatedInvoice.RHash, and reports whether it has been settled.
func (c *Client) InvoiceIsPaid(ctx context.Context, paymentHash string) (bool, error) {
	rHash, err := base64.StdEncoding.DecodeString(paymentHash)
	if err != nil {
		rHash, err = base64.URLEncoding.DecodeString(paymentHash)
	}
	if err != nil || len(rHash) == 0 {
		return false, fmt.Errorf("%w: %q", ErrInvalidPaymentHash, paymentHash)
	}

	invoice := &lnrpc.Invoice{}
	if _, err := c.fetch(ctx, Request{Path: "invoice/" + hex.EncodeToString(rHash)}, invoice); err != nil {
		return false, err
	}
	return invoice.Settled || invoice.State == lnrpc.Invoice_SETTLED, nil
}
