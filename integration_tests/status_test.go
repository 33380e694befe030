package integration_tests

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"testing"

	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/getAlby/lndrest.go/lnd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StatusTestSuite struct {
	TestSuite
	service *service.LndRestService
	mlnd    *MockLND
}

func (suite *StatusTestSuite) SetupTest() {
	suite.mlnd = newDefaultMockLND()
	svc, err := LndRestTestServiceInit(suite.mlnd)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc, nil)
}

func (suite *StatusTestSuite) TearDownTest() {
	suite.service.LndClient.Close()
	suite.mlnd.Close()
}

func (suite *StatusTestSuite) getStatus() *ExpectedStatusResponseBody {
	rec := suite.do(http.MethodGet, "/status", nil)
	status := &ExpectedStatusResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(status))
	return status
}

func (suite *StatusTestSuite) TestStatusOnline() {
	status := suite.getStatus()
	assert.Equal(suite.T(), lnd.StatusOnline, status.Status)
	assert.True(suite.T(), status.Online)
	assert.Equal(suite.T(), "https://"+suite.mlnd.Host()+"/v1/", status.Endpoint)
}

func (suite *StatusTestSuite) TestStatusNodeError() {
	suite.mlnd.Respond(http.MethodGet, "getinfo", http.StatusInternalServerError, `{"code":2,"message":"wallet locked, unlock it to enable full RPC access","details":[]}`)

	status := suite.getStatus()
	assert.Equal(suite.T(), "Error: wallet locked, unlock it to enable full RPC access", status.Status)
	assert.False(suite.T(), status.Online)

	rec := suite.do(http.MethodGet, "/getinfo", nil)
	errorResponse := suite.checkErrResponse(rec, http.StatusBadGateway)
	assert.Equal(suite.T(), 5, errorResponse.Code)
	assert.Equal(suite.T(), "Error: wallet locked, unlock it to enable full RPC access", errorResponse.Message)
}

func (suite *StatusTestSuite) TestStatusHostUnreachable() {
	suite.mlnd.Close()

	status := suite.getStatus()
	assert.Equal(suite.T(), lnd.ErrHostUnreachable.Error(), status.Status)
	assert.False(suite.T(), status.Online)

	rec := suite.do(http.MethodGet, "/getinfo", nil)
	errorResponse := suite.checkErrResponse(rec, http.StatusServiceUnavailable)
	assert.Equal(suite.T(), 3, errorResponse.Code)
	assert.Equal(suite.T(), "Host Unreachable", errorResponse.Message)

	// the health check does not depend on lnd
	rec = suite.do(http.MethodGet, "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *StatusTestSuite) TestProbeBlocksUnreachableNode() {
	suite.mlnd.Close()
	assert.False(suite.T(), suite.service.LndClient.Probe(context.Background()))
	assert.Equal(suite.T(), "unreachable", suite.getStatus().Reachability)
}

func (suite *StatusTestSuite) TestUnlockLockedWallet() {
	suite.mlnd.Respond(http.MethodGet, "getinfo", http.StatusOK, `{"error":"wallet locked, unlock it to enable full RPC access"}`)
	suite.mlnd.Respond(http.MethodPost, "unlockwallet", http.StatusOK, `{}`)
	assert.False(suite.T(), suite.service.LndClient.Probe(context.Background()))
	assert.True(suite.T(), suite.service.LndClient.IsBlocked())

	rec := suite.do(http.MethodPost, "/unlockwallet", map[string]string{"password": "correct horse"})
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	assert.Equal(suite.T(), 1, suite.mlnd.Hits(http.MethodPost, "unlockwallet"))
}

func TestStatusSuite(t *testing.T) {
	suite.Run(t, new(StatusTestSuite))
}
