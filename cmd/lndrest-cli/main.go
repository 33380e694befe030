package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/getAlby/lndrest.go/lnd"
	"github.com/getAlby/lndrest.go/qr"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[lndrest-cli] %v\n", err)
	os.Exit(1)
}

func printJSON(resp interface{}) {
	b, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(b))
}

func printRespJSON(resp proto.Message) {
	b, err := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "    ",
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}.Marshal(resp)
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(b))
}

// configFromFlags maps the global flags, which fall back to the same LND_*
// variables the server reads, onto a client config. One-shot commands always
// talk to the node, so the reachability cache is off.
func configFromFlags(ctx *cli.Context) *lnd.Config {
	return &lnd.Config{
		LNDAddress:           ctx.GlobalString("rpcserver"),
		LNDMacaroonFile:      ctx.GlobalString("macaroonpath"),
		LNDMacaroonHex:       ctx.GlobalString("macaroonhex"),
		LNDCertFile:          ctx.GlobalString("tlscertpath"),
		LNDConnectionTimeout: ctx.GlobalString("connecttimeout"),
		LNDRequestTimeout:    ctx.GlobalInt("timeout"),
		LNDForceDisableCache: true,
		LNDTraceFile:         ctx.GlobalString("tracefile"),
	}
}

func getClient(ctx *cli.Context) *lnd.Client {
	logger := zerolog.Nop()
	if ctx.GlobalBool("debug") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	cfg := configFromFlags(ctx)
	opts, err := cfg.Options(logger)
	if err != nil {
		fatal(fmt.Errorf("could not load global options: %w", err))
	}
	opts.SetQRCodec(qr.NewCodec())
	client, err := lnd.NewClient(opts)
	if err != nil {
		fatal(err)
	}
	logrus.Debugf("using lnd REST endpoint %s", client.Endpoint())
	return client
}

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "rpcserver",
		Usage:  "The host:port of the lnd REST interface.",
		EnvVar: "LND_ADDRESS",
	},
	cli.StringFlag{
		Name:      "macaroonpath",
		Usage:     "The path to macaroon file.",
		EnvVar:    "LND_MACAROON_FILE",
		TakesFile: true,
	},
	cli.StringFlag{
		Name:   "macaroonhex",
		Usage:  "The macaroon as hex, takes precedence over --macaroonpath.",
		EnvVar: "LND_MACAROON_HEX",
	},
	cli.StringFlag{
		Name:      "tlscertpath",
		Usage:     "The path to lnd's TLS certificate. Without it the certificate is not verified.",
		EnvVar:    "LND_CERT_FILE",
		TakesFile: true,
	},
	cli.StringFlag{
		Name:   "connecttimeout",
		Value:  "5",
		Usage:  "Seconds to wait while connecting.",
		EnvVar: "LND_CONNECTION_TIMEOUT",
	},
	cli.IntFlag{
		Name:   "timeout",
		Value:  30,
		Usage:  "Seconds to wait for a whole request.",
		EnvVar: "LND_REQUEST_TIMEOUT",
	},
	cli.StringFlag{
		Name:      "tracefile",
		Usage:     "Append a verbose trace of every request to this file.",
		EnvVar:    "LND_TRACE_FILE",
		TakesFile: true,
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "Log requests to stderr.",
	},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Debug("no .env file loaded")
	}

	app := cli.NewApp()
	app.Name = "lndrest-cli"
	app.Usage = "query an lnd node over its REST interface"
	app.Flags = globalFlags
	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		statusCommand,
		getInfoCommand,
		balanceCommand,
		channelsCommand,
		peersCommand,
		addInvoiceCommand,
		payInvoiceCommand,
		decodePayReqCommand,
		invoicePaidCommand,
		newAddressCommand,
		unlockCommand,
		qrCommand,
		callCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func requestContext(ctx *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(ctx.GlobalInt("timeout")+5)*time.Second)
}
