package integration_tests

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/lightningnetwork/lnd/lnrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type GetInfoTestSuite struct {
	TestSuite
	service *service.LndRestService
	mlnd    *MockLND
}

func (suite *GetInfoTestSuite) SetupSuite() {
	suite.mlnd = newDefaultMockLND()
	svc, err := LndRestTestServiceInit(suite.mlnd)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc, nil)
}

func (suite *GetInfoTestSuite) TearDownTest() {
	suite.service.Config.CustomName = ""
}

func (suite *GetInfoTestSuite) TestGetInfoWithDefaultAlias() {
	rec := suite.do(http.MethodGet, "/getinfo", nil)
	getInfoResponse := &lnrpc.GetInfoResponse{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(getInfoResponse))
	assert.Equal(suite.T(), "alby-simnet-lnd1", getInfoResponse.Alias)
	assert.Equal(suite.T(), simnetLnd1PubKey, getInfoResponse.IdentityPubkey)
	assert.Equal(suite.T(), uint32(812345), getInfoResponse.BlockHeight)
}

func (suite *GetInfoTestSuite) TestGetInfoWithGivenAlias() {
	suite.service.Config.CustomName = "test-alias"
	rec := suite.do(http.MethodGet, "/getinfo", nil)
	getInfoResponse := &lnrpc.GetInfoResponse{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(getInfoResponse))
	assert.Equal(suite.T(), suite.service.Config.CustomName, getInfoResponse.Alias)
}

func (suite *GetInfoTestSuite) TestBalance() {
	rec := suite.do(http.MethodGet, "/balance", nil)
	balance := &service.Balance{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(balance))
	assert.Equal(suite.T(), int64(150000), balance.Channel)
	assert.Equal(suite.T(), int64(40000), balance.OnchainConfirmed)
	assert.Equal(suite.T(), int64(200000), balance.Total)
	assert.True(suite.T(), strings.HasPrefix(balance.TotalBTC, "0.002"))
	assert.True(suite.T(), strings.HasSuffix(balance.TotalBTC, " BTC"))
}

func (suite *GetInfoTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *GetInfoTestSuite) TearDownSuite() {
	suite.service.LndClient.Close()
	suite.mlnd.Close()
}

func TestGetInfoSuite(t *testing.T) {
	suite.Run(t, new(GetInfoTestSuite))
}
