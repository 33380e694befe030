package controllers

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
)

//go:embed templates/index.html
var indexHtml string

var indexTemplate = template.Must(template.New("index").Parse(indexHtml))

// HomeController : HomeController struct
type HomeController struct {
	svc *service.LndRestService
}

func NewHomeController(svc *service.LndRestService) *HomeController {
	return &HomeController{svc: svc}
}

type HomepageContent struct {
	Status            string
	Online            bool
	Alias             string
	Version           string
	Pubkey            string
	NumActiveChannels int
	NumPeers          int
	SyncedToChain     bool
	BlockHeight       int
	Uris              []string
	QR                template.URL
	Balance           *service.Balance
	Channels          []Channel
}

type Channel struct {
	Name         string
	RemotePubkey string
	CapacityBTC  string
	Local        int64
	Size         int
	Active       bool
}

// Home : Home handler, renders the node dashboard. An unreachable node still
// renders, with its status only.
func (controller *HomeController) Home(c echo.Context) error {
	ctx := c.Request().Context()
	status := controller.svc.NodeStatus(ctx)
	content := HomepageContent{
		Status: status.Status,
		Online: status.Online,
		Alias:  controller.svc.Config.CustomName,
	}
	if status.Online {
		if err := controller.fill(ctx, &content); err != nil {
			return err
		}
	}
	if content.Alias == "" {
		content.Alias = "lnd"
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, content); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=60")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (controller *HomeController) fill(ctx context.Context, content *HomepageContent) error {
	info, err := controller.svc.GetInfo(ctx)
	if err != nil {
		return err
	}
	balance, err := controller.svc.Balance(ctx)
	if err != nil {
		return err
	}
	channels, err := controller.svc.LndClient.OpenChannels(ctx)
	if err != nil {
		return err
	}

	content.Alias = info.Alias
	content.Version = info.Version
	content.Pubkey = info.IdentityPubkey
	content.NumActiveChannels = int(info.NumActiveChannels)
	content.NumPeers = int(info.NumPeers)
	content.SyncedToChain = info.SyncedToChain
	content.BlockHeight = int(info.BlockHeight)
	content.Uris = info.Uris
	content.Balance = balance
	if len(info.Uris) > 0 {
		if uri, err := controller.svc.LndClient.DrawQR(info.Uris[0]); err == nil {
			content.QR = template.URL(uri)
		}
	}

	var maxCapacity int64 = 1
	for _, ch := range channels {
		if ch.Capacity > maxCapacity {
			maxCapacity = ch.Capacity
		}
	}
	for _, ch := range channels {
		name, _ := controller.svc.LndClient.PeerAlias(ctx, ch.RemotePubkey)
		content.Channels = append(content.Channels, Channel{
			Name:         name,
			RemotePubkey: ch.RemotePubkey,
			CapacityBTC:  btcutil.Amount(ch.Capacity).Format(btcutil.AmountBTC),
			Local:        ch.LocalBalance,
			Size:         int(ch.LocalBalance * 100 / maxCapacity),
			Active:       ch.Active,
		})
	}
	return nil
}
