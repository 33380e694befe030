package controllers

import (
	"net/http"

	"github.com/getAlby/lndrest.go/lib/responses"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/lightningnetwork/lnd/lnrpc"
)

// WalletController : WalletController struct
type WalletController struct {
	svc *service.LndRestService
}

func NewWalletController(svc *service.LndRestService) *WalletController {
	return &WalletController{svc: svc}
}

type NewAddressResponseBody struct {
	Address string `json:"address"`
}

type TransactionsResponseBody struct {
	Transactions []*lnrpc.Transaction `json:"transactions"`
}

type UnlockWalletRequestBody struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (controller *WalletController) NewAddress(c echo.Context) error {
	address, err := controller.svc.LndClient.NewAddress(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &NewAddressResponseBody{Address: address})
}

// Transactions : Transactions handler, on-chain transactions newest first
func (controller *WalletController) Transactions(c echo.Context) error {
	txs, err := controller.svc.LndClient.Transactions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &TransactionsResponseBody{Transactions: txs})
}

func (controller *WalletController) Unlock(c echo.Context) error {
	var body UnlockWalletRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load unlockwallet request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.LndClient.UnlockWallet(c.Request().Context(), body.Password); err != nil {
		c.Logger().Errorf("Error unlocking wallet: %v", err)
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
