package controllers

import (
	"net/http"

	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
)

// StatusController : StatusController struct
type StatusController struct {
	svc *service.LndRestService
}

func NewStatusController(svc *service.LndRestService) *StatusController {
	return &StatusController{svc: svc}
}

// Status : Status handler. The node status is part of the body, the request
// itself always succeeds.
func (controller *StatusController) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.svc.NodeStatus(c.Request().Context()))
}
