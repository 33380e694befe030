package transport

import (
	"github.com/getAlby/lndrest.go/controllers"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/labstack/echo/v4"
)

// RegisterEndpoints mounts the API. Calls that move funds or change the node
// go through the strict rate limit, the graph is served from the cache.
func RegisterEndpoints(svc *service.LndRestService, e *echo.Echo, strictRateLimitMiddleware echo.MiddlewareFunc, cacheMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	api := e.Group("", logMw)
	strict := e.Group("", strictRateLimitMiddleware, logMw)

	e.GET("/health", controllers.NewHealthController().Check)
	e.GET("/", controllers.NewHomeController(svc).Home, cacheMiddleware, logMw)
	api.GET("/status", controllers.NewStatusController(svc).Status)
	api.GET("/getinfo", controllers.NewGetInfoController(svc).GetInfo)
	api.GET("/balance", controllers.NewBalanceController(svc).Balance)

	channelsCtrl := controllers.NewChannelsController(svc)
	api.GET("/channels", channelsCtrl.OpenChannels)
	api.GET("/channels/pending", channelsCtrl.PendingChannels)
	api.GET("/channels/closed", channelsCtrl.ClosedChannels)
	strict.POST("/channels", channelsCtrl.OpenChannel)
	strict.DELETE("/channels/:txid/:index", channelsCtrl.CloseChannel)

	peersCtrl := controllers.NewPeersController(svc)
	api.GET("/peers", peersCtrl.Peers)
	api.GET("/peers/:pubkey/alias", peersCtrl.Alias)
	strict.POST("/peers", peersCtrl.Connect)
	strict.DELETE("/peers/:pubkey", peersCtrl.Disconnect)

	invoiceCtrl := controllers.NewInvoiceController(svc)
	api.POST("/invoices", invoiceCtrl.AddInvoice)
	api.GET("/invoices", invoiceCtrl.ListInvoices)
	api.GET("/invoices/:r_hash/paid", invoiceCtrl.IsPaid)
	api.GET("/payreq/:payreq", invoiceCtrl.DecodePayReq)
	strict.POST("/payments", invoiceCtrl.PayInvoice)

	graphCtrl := controllers.NewGraphController(svc)
	api.GET("/graph/info", graphCtrl.Info, cacheMiddleware)
	api.GET("/graph", graphCtrl.Graph, cacheMiddleware)
	api.GET("/graph/node/:pubkey", graphCtrl.Node, cacheMiddleware)

	walletCtrl := controllers.NewWalletController(svc)
	api.GET("/transactions", walletCtrl.Transactions)
	strict.POST("/newaddress", walletCtrl.NewAddress)
	strict.POST("/unlockwallet", walletCtrl.Unlock)

	qrCtrl := controllers.NewQRController(svc)
	api.GET("/qr", qrCtrl.Encode)
	api.POST("/qr/decode", qrCtrl.Decode)
}
