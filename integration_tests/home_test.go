package integration_tests

import (
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/getAlby/lndrest.go/lib/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HomeTestSuite struct {
	TestSuite
	service *service.LndRestService
	mlnd    *MockLND
}

func (suite *HomeTestSuite) SetupTest() {
	suite.mlnd = newDefaultMockLND()
	suite.mlnd.Respond(http.MethodGet, "graph/info", http.StatusOK, `{"graph_diameter":7,"num_nodes":15000,"num_channels":60000}`)
	svc, err := LndRestTestServiceInit(suite.mlnd)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	cacheMiddleware, err := transport.CreateCacheMiddleware(time.Minute)
	if err != nil {
		log.Fatalf("Error creating cache middleware: %v", err)
	}
	suite.echo = newTestEcho(svc, cacheMiddleware)
}

func (suite *HomeTestSuite) TearDownTest() {
	suite.service.LndClient.Close()
	suite.mlnd.Close()
}

func (suite *HomeTestSuite) TestHomePage() {
	rec := suite.do(http.MethodGet, "/", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(suite.T(), body, "<h1>alby-simnet-lnd1</h1>")
	assert.Contains(suite.T(), body, "Online")
	assert.Contains(suite.T(), body, simnetLnd1PubKey)
	// channel peer shown by its alias
	assert.Contains(suite.T(), body, "alby-simnet-lnd2")
	assert.Contains(suite.T(), body, "data:image/png;base64,")
	assert.Equal(suite.T(), "public, max-age=60", rec.Header().Get("Cache-Control"))
}

func (suite *HomeTestSuite) TestHomePageUnreachableNode() {
	suite.mlnd.Close()
	rec := suite.do(http.MethodGet, "/", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(suite.T(), body, "Host Unreachable")
	assert.NotContains(suite.T(), body, "<h2>Channels</h2>")
}

func (suite *HomeTestSuite) TestGraphInfoIsCached() {
	for i := 0; i < 3; i++ {
		rec := suite.do(http.MethodGet, "/graph/info", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Contains(suite.T(), rec.Body.String(), "15000")
	}
	assert.Equal(suite.T(), 1, suite.mlnd.Hits(http.MethodGet, "graph/info"))
}

func TestHomeSuite(t *testing.T) {
	suite.Run(t, new(HomeTestSuite))
}
