package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/getAlby/lndrest.go/lib/responses"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/getAlby/lndrest.go/lnd"
	"github.com/getAlby/lndrest.go/qr"
	"github.com/labstack/echo/v4"
)

// QRController : QRController struct
type QRController struct {
	svc *service.LndRestService
}

func NewQRController(svc *service.LndRestService) *QRController {
	return &QRController{svc: svc}
}

type QRDataURIResponseBody struct {
	Data  string `json:"data"`
	Image string `json:"image"`
}

type QRDecodeResponseBody struct {
	Data string `json:"data"`
}

// Encode : Encode handler, renders ?data= as a PNG or, with
// ?format=datauri, as a JSON wrapped data URI.
func (controller *QRController) Encode(c echo.Context) error {
	data := c.QueryParam("data")
	if data == "" {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if c.QueryParam("format") == "datauri" {
		uri, err := controller.svc.LndClient.DrawQR(data)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, &QRDataURIResponseBody{Data: data, Image: uri})
	}

	if controller.svc.QRCodec == nil {
		return lnd.ErrQRUnavailable
	}
	png, err := controller.svc.QRCodec.Encode(data)
	if err != nil {
		c.Logger().Errorf("Error encoding QR code: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Decode : Decode handler, the request body is the image
func (controller *QRController) Decode(c echo.Context) error {
	image, err := io.ReadAll(c.Request().Body)
	if err != nil || len(image) == 0 {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	data, err := controller.svc.LndClient.DecodeQR(image)
	if err != nil {
		if errors.Is(err, qr.ErrNoQRCode) {
			return c.JSON(http.StatusBadRequest, responses.NoQRCodeError)
		}
		if errors.Is(err, lnd.ErrQRUnavailable) {
			return err
		}
		c.Logger().Errorf("Error decoding QR code: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, &QRDecodeResponseBody{Data: data})
}
