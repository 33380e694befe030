package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/getAlby/lndrest.go/lib/responses"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/lightningnetwork/lnd/lnrpc"
)

// ChannelsController : ChannelsController struct
type ChannelsController struct {
	svc *service.LndRestService
}

func NewChannelsController(svc *service.LndRestService) *ChannelsController {
	return &ChannelsController{svc: svc}
}

type ChannelsResponseBody struct {
	Channels []*lnrpc.Channel `json:"channels"`
}

type ClosedChannelsResponseBody struct {
	Channels []*lnrpc.ChannelCloseSummary `json:"channels"`
}

type OpenChannelRequestBody struct {
	Pubkey string `json:"pubkey" validate:"required,hexadecimal,len=66"`
	Amount int64  `json:"amt" validate:"gt=0"`
}

type OpenChannelResponseBody struct {
	FundingTxid string `json:"funding_txid"`
	OutputIndex uint32 `json:"output_index"`
}

func (controller *ChannelsController) OpenChannels(c echo.Context) error {
	channels, err := controller.svc.LndClient.OpenChannels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &ChannelsResponseBody{Channels: channels})
}

func (controller *ChannelsController) PendingChannels(c echo.Context) error {
	pending, err := controller.svc.LndClient.PendingChannels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pending)
}

func (controller *ChannelsController) ClosedChannels(c echo.Context) error {
	channels, err := controller.svc.LndClient.ClosedChannels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &ClosedChannelsResponseBody{Channels: channels})
}

// OpenChannel : OpenChannel handler
func (controller *ChannelsController) OpenChannel(c echo.Context) error {
	var body OpenChannelRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load openchannel request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid openchannel request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	c.Logger().Infof("Opening channel: pubkey:%s amount:%v", body.Pubkey, body.Amount)
	point, err := controller.svc.LndClient.OpenChannel(c.Request().Context(), body.Amount, body.Pubkey)
	if err != nil {
		c.Logger().Errorf("Error opening channel: pubkey:%s error: %v", body.Pubkey, err)
		return err
	}
	txid, err := lnrpc.GetChanPointFundingTxid(point)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &OpenChannelResponseBody{
		FundingTxid: txid.String(),
		OutputIndex: point.OutputIndex,
	})
}

// CloseChannel : CloseChannel handler, ?force=true closes unilaterally
func (controller *ChannelsController) CloseChannel(c echo.Context) error {
	force, _ := strconv.ParseBool(c.QueryParam("force"))
	channelPoint := fmt.Sprintf("%s:%s", c.Param("txid"), c.Param("index"))

	c.Logger().Infof("Closing channel: channel_point:%s force:%v", channelPoint, force)
	update, err := controller.svc.LndClient.CloseChannel(c.Request().Context(), channelPoint, force)
	if err != nil {
		c.Logger().Errorf("Error closing channel: channel_point:%s error: %v", channelPoint, err)
		return err
	}
	return c.JSON(http.StatusOK, update)
}
