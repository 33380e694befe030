package controllers

import (
	"net/http"

	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.LndRestService
}

func NewBalanceController(svc *service.LndRestService) *BalanceController {
	return &BalanceController{svc: svc}
}

// Balance : Balance handler, lightning and on-chain balance in satoshi
func (controller *BalanceController) Balance(c echo.Context) error {
	balance, err := controller.svc.Balance(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error fetching balance: %v", err)
		return err
	}
	return c.JSON(http.StatusOK, balance)
}
