package controllers

import (
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/getAlby/lndrest.go/lib/responses"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/lightningnetwork/lnd/lnrpc"
)

// InvoiceController : Invoice controller struct
type InvoiceController struct {
	svc *service.LndRestService
}

func NewInvoiceController(svc *service.LndRestService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type AddInvoiceRequestBody struct {
	Amount int64  `json:"amt" validate:"gt=0"`
	Memo   string `json:"memo" validate:"max=639"`
	QR     bool   `json:"qr"`
}

type PayInvoiceRequestBody struct {
	PaymentRequest string `json:"payment_request" validate:"required"`
}

type PayInvoiceResponseBody struct {
	PaymentHash     string `json:"payment_hash"`
	PaymentPreimage string `json:"payment_preimage"`
	FeeSat          int64  `json:"fee_sat"`
}

type InvoicePaidResponseBody struct {
	RHash string `json:"r_hash"`
	Paid  bool   `json:"paid"`
}

type ListInvoicesResponseBody struct {
	Invoices []*lnrpc.Invoice `json:"invoices"`
}

// AddInvoice : Add invoice handler, optionally with the payment request as QR
// code
func (controller *InvoiceController) AddInvoice(c echo.Context) error {
	var body AddInvoiceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load addinvoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid addinvoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	c.Logger().Infof("Adding invoice: memo:%s value:%v qr:%v", body.Memo, body.Amount, body.QR)
	invoice, err := controller.svc.LndClient.NewInvoice(c.Request().Context(), body.Amount, body.Memo, body.QR)
	if err != nil {
		c.Logger().Errorf("Error creating invoice: %v", err)
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

func (controller *InvoiceController) ListInvoices(c echo.Context) error {
	reversed := true
	if v := c.QueryParam("reversed"); v != "" {
		reversed, _ = strconv.ParseBool(v)
	}
	resp, err := controller.svc.LndClient.ListInvoices(c.Request().Context(), reversed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &ListInvoicesResponseBody{Invoices: resp.Invoices})
}

// IsPaid : IsPaid handler. The payment hash is the r_hash returned when the
// invoice was added, URL safe base64 is accepted too.
func (controller *InvoiceController) IsPaid(c echo.Context) error {
	rHash := c.Param("r_hash")
	paid, err := controller.svc.LndClient.InvoiceIsPaid(c.Request().Context(), rHash)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &InvoicePaidResponseBody{RHash: rHash, Paid: paid})
}

func (controller *InvoiceController) DecodePayReq(c echo.Context) error {
	payreq, err := controller.svc.LndClient.DecodeInvoice(c.Request().Context(), c.Param("payreq"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payreq)
}

// PayInvoice : Pay invoice handler
func (controller *InvoiceController) PayInvoice(c echo.Context) error {
	var body PayInvoiceRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load payinvoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid payinvoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	resp, err := controller.svc.LndClient.PayInvoice(c.Request().Context(), body.PaymentRequest)
	if err != nil {
		c.Logger().Errorf("Payment failed: %v", err)
		return err
	}
	var fee int64
	if resp.PaymentRoute != nil {
		fee = resp.PaymentRoute.TotalFees
	}
	return c.JSON(http.StatusOK, &PayInvoiceResponseBody{
		PaymentHash:     hex.EncodeToString(resp.PaymentHash),
		PaymentPreimage: hex.EncodeToString(resp.PaymentPreimage),
		FeeSat:          fee,
	})
}
