package responses

import (
	"errors"
	"net/http"

	"github.com/getAlby/lndrest.go/lnd"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var InvalidPubkeyError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invalid node pubkey",
	HttpStatusCode: 400,
}

var InvalidPaymentHashError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invalid payment hash",
	HttpStatusCode: 400,
}

var HostUnreachableError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        lnd.ErrHostUnreachable.Error(),
	HttpStatusCode: 503,
}

var AliasUnavailableError = ErrorResponse{
	Error:          true,
	Code:           4,
	Message:        lnd.ErrAliasUnavailable.Error(),
	HttpStatusCode: 404,
}

var QRUnavailableError = ErrorResponse{
	Error:          true,
	Code:           7,
	Message:        "QR codes are not available",
	HttpStatusCode: 501,
}

var NoQRCodeError = ErrorResponse{
	Error:          true,
	Code:           9,
	Message:        "no QR code found in image",
	HttpStatusCode: 400,
}

// NodeError wraps an error reported by lnd itself.
func NodeError(err *lnd.APIError) ErrorResponse {
	return ErrorResponse{
		Error:          true,
		Code:           5,
		Message:        err.Error(),
		HttpStatusCode: http.StatusBadGateway,
	}
}

// ForError picks the response for an error returned by the lnd client. The
// second return value is false for errors without a dedicated response.
func ForError(err error) (ErrorResponse, bool) {
	var apiErr *lnd.APIError
	switch {
	case errors.As(err, &apiErr):
		return NodeError(apiErr), true
	case errors.Is(err, lnd.ErrHostUnreachable):
		return HostUnreachableError, true
	case errors.Is(err, lnd.ErrInvalidPubkey):
		return InvalidPubkeyError, true
	case errors.Is(err, lnd.ErrInvalidPaymentHash):
		return InvalidPaymentHashError, true
	case errors.Is(err, lnd.ErrInvalidChannelPoint):
		return BadArgumentsError, true
	case errors.Is(err, lnd.ErrAliasUnavailable):
		return AliasUnavailableError, true
	case errors.Is(err, lnd.ErrQRUnavailable):
		return QRUnavailableError, true
	}
	return GeneralServerError, false
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)

	if he, ok := err.(*echo.HTTPError); ok {
		if he.Code >= http.StatusInternalServerError {
			captureException(c, err)
		}
		c.JSON(he.Code, he.Message)
		return
	}

	resp, known := ForError(err)
	if !known || resp.HttpStatusCode == http.StatusBadGateway {
		captureException(c, err)
	}
	c.JSON(resp.HttpStatusCode, resp)
}

func captureException(c echo.Context, err error) {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
}
