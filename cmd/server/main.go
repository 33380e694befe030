package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/getAlby/lndrest.go/lib/logging"
	"github.com/getAlby/lndrest.go/lib/service"
	"github.com/getAlby/lndrest.go/lib/transport"
	"github.com/getAlby/lndrest.go/lnd"
	"github.com/getAlby/lndrest.go/qr"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	ddEcho "gopkg.in/DataDog/dd-trace-go.v1/contrib/labstack/echo.v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func main() {

	c := &service.Config{}

	// Load configruation from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configrued log file
	logger := logging.Logger(c.LogFilePath)

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// Init new LND client
	lnCfg, err := lnd.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading LN config: %v", err)
	}
	lndOpts, err := lnCfg.Options(logger.Unwrap())
	if err != nil {
		logger.Fatalf("Error loading LN config: %v", err)
	}
	qrCodec := &qr.Codec{Size: c.QRCodeSize}
	lndOpts.SetQRCodec(qrCodec)
	lndClient, err := lnd.NewClient(lndOpts)
	if err != nil {
		logger.Fatalf("Error initializing the LND client: %v", err)
	}
	defer lndClient.Close()

	svc := &service.LndRestService{
		Config:    c,
		LndClient: lndClient,
		QRCodec:   qrCodec,
		Logger:    logger,
	}

	backGroundCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if c.StartupProbeTimeout > 0 {
		err = svc.WaitForNode(backGroundCtx, time.Duration(c.StartupProbeTimeout)*time.Second)
		if err != nil {
			// keep serving, /status reports the node as unreachable
			logger.Errorf("LND at %s is not reachable: %v", lndClient.Endpoint(), err)
			sentry.CaptureException(err)
		} else {
			logger.Infof("Connected to LND at %s", lndClient.Endpoint())
		}
	}

	//init echo server
	e := transport.InitEcho(c, logger)
	//if Datadog is configured, add datadog middleware
	if c.DatadogAgentUrl != "" {
		tracer.Start(tracer.WithAgentAddr(c.DatadogAgentUrl))
		defer tracer.Stop()
		e.Use(ddEcho.Middleware(ddEcho.WithServiceName("lndrest.go")))
	}

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for requests that move funds or change the node
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)
	cacheMiddleware, err := transport.CreateCacheMiddleware(time.Duration(c.CacheTTL) * time.Second)
	if err != nil {
		logger.Fatal(err)
	}
	transport.RegisterEndpoints(svc, e, strictRateLimitMiddleware, cacheMiddleware, logMw)

	var backgroundWg sync.WaitGroup
	if c.StatusProbeInterval > 0 {
		backgroundWg.Add(1)
		go func() {
			err := svc.StartStatusRoutine(backGroundCtx, time.Duration(c.StatusProbeInterval)*time.Second)
			if err != nil && !errors.Is(err, context.Canceled) {
				sentry.CaptureException(err)
				svc.Logger.Error(err)
			}
			svc.Logger.Info("Status routine done")
			backgroundWg.Done()
		}()
	}

	//Start Prometheus server if necessary
	var echoPrometheus *echo.Echo
	if svc.Config.EnablePrometheus {
		echoPrometheus = transport.StartPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	if echoPrometheus != nil {
		if err := echoPrometheus.Shutdown(ctx); err != nil {
			e.Logger.Fatal(err)
		}
	}
	//Wait for graceful shutdown of background routines
	backgroundWg.Wait()
	svc.Logger.Info("lndrest exiting gracefully. Goodbye.")
}
