package integration_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/getAlby/lndrest.go/lib"
	"github.com/getAlby/lndrest.go/lib/logging"
	"github.com/getAlby/lndrest.go/lib/responses"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/getAlby/lndrest.go/lib/transport"
	"github.com/getAlby/lndrest.go/lnd"
	"github.com/getAlby/lndrest.go/qr"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const mockLNDMacaroonHex = "0201036c6e6402f801030a10e2133a1cac2c5b4d"

func LndRestTestServiceInit(mlnd *MockLND) (svc *service.LndRestService, err error) {
	c := &service.Config{
		Port:           3000,
		CacheTTL:       600,
		QRCodeSize:     qr.DefaultSize,
		MaxQRImageSize: "2M",
	}
	lnCfg := &lnd.Config{
		LNDAddress:           mlnd.Host(),
		LNDMacaroonHex:       mockLNDMacaroonHex,
		LNDConnectionTimeout: "5",
		LNDRequestTimeout:    5,
	}
	logger := logging.Logger(c.LogFilePath)
	opts, err := lnCfg.Options(logger.Unwrap())
	if err != nil {
		return nil, err
	}
	codec := &qr.Codec{Size: c.QRCodeSize}
	opts.SetQRCodec(codec)
	client, err := lnd.NewClient(opts)
	if err != nil {
		return nil, err
	}
	svc = &service.LndRestService{
		Config:    c,
		LndClient: client,
		QRCodec:   codec,
		Logger:    logger,
	}
	return svc, nil
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

// newTestEcho mounts every endpoint without rate limits. The cache is left
// out unless one is given.
func newTestEcho(svc *service.LndRestService, cacheMiddleware echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	if cacheMiddleware == nil {
		cacheMiddleware = passthrough
	}
	transport.RegisterEndpoints(svc, e, passthrough, cacheMiddleware, passthrough)
	return e
}

type TestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (suite *TestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *TestSuite) checkErrResponse(rec *httptest.ResponseRecorder, status int) *responses.ErrorResponse {
	errorResponse := &responses.ErrorResponse{}
	assert.Equal(suite.T(), status, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	assert.True(suite.T(), errorResponse.Error)
	return errorResponse
}

func (suite *TestSuite) createAddInvoiceReq(body *ExpectedAddInvoiceRequestBody) *ExpectedAddInvoiceResponseBody {
	rec := suite.do(http.MethodPost, "/invoices", body)
	invoiceResponse := &ExpectedAddInvoiceResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(invoiceResponse))
	return invoiceResponse
}
