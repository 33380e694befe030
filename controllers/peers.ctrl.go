package controllers

import (
	"net/http"

	"github.com/getAlby/lndrest.go/lib/responses"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
)

// PeersController : PeersController struct
type PeersController struct {
	svc *service.LndRestService
}

func NewPeersController(svc *service.LndRestService) *PeersController {
	return &PeersController{svc: svc}
}

type PeersResponseBody struct {
	Peers []service.PeerWithAlias `json:"peers"`
}

type AliasResponseBody struct {
	Pubkey string `json:"pubkey"`
	Alias  string `json:"alias"`
}

type ConnectPeerRequestBody struct {
	Pubkey string `json:"pubkey" validate:"required,hexadecimal,len=66"`
	Host   string `json:"host" validate:"required,hostname_port"`
}

// Peers : Peers handler, connected peers with their aliases
func (controller *PeersController) Peers(c echo.Context) error {
	peers, err := controller.svc.PeersWithAliases(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &PeersResponseBody{Peers: peers})
}

func (controller *PeersController) Alias(c echo.Context) error {
	pubkey := c.Param("pubkey")
	alias, err := controller.svc.LndClient.PeerAlias(c.Request().Context(), pubkey)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &AliasResponseBody{Pubkey: pubkey, Alias: alias})
}

// Connect : Connect handler
func (controller *PeersController) Connect(c echo.Context) error {
	var body ConnectPeerRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load connectpeer request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid connectpeer request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.LndClient.ConnectPeer(c.Request().Context(), body.Pubkey, body.Host); err != nil {
		c.Logger().Errorf("Error connecting peer: pubkey:%s host:%s error: %v", body.Pubkey, body.Host, err)
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *PeersController) Disconnect(c echo.Context) error {
	if err := controller.svc.LndClient.DisconnectPeer(c.Request().Context(), c.Param("pubkey")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
