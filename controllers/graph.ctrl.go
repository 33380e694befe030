package controllers

import (
	"net/http"

	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
)

// GraphController : GraphController struct
type GraphController struct {
	svc *service.LndRestService
}

func NewGraphController(svc *service.LndRestService) *GraphController {
	return &GraphController{svc: svc}
}

func (controller *GraphController) Info(c echo.Context) error {
	info, err := controller.svc.LndClient.NetworkInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// Graph : Graph handler. The full graph is large, the route is cached.
func (controller *GraphController) Graph(c echo.Context) error {
	graph, err := controller.svc.LndClient.NetworkGraph(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, graph)
}

func (controller *GraphController) Node(c echo.Context) error {
	node, err := controller.svc.LndClient.NodeInfo(c.Request().Context(), c.Param("pubkey"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, node)
}
