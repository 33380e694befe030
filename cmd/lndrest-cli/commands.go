package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/getAlby/lndrest.go/lnd"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

var statusCommand = cli.Command{
	Name:   "status",
	Usage:  "Check whether the node answers.",
	Action: status,
}

func status(ctx *cli.Context) error {
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	st := client.NodeStatus(rctx)
	printJSON(map[string]interface{}{
		"status":   st,
		"online":   st == lnd.StatusOnline,
		"endpoint": client.Endpoint(),
	})
	return nil
}

var getInfoCommand = cli.Command{
	Name:   "getinfo",
	Usage:  "Returns basic information related to the active daemon.",
	Action: getInfo,
}

func getInfo(ctx *cli.Context) error {
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	info, err := client.GetInfo(rctx)
	if err != nil {
		return err
	}
	printRespJSON(info)
	return nil
}

var balanceCommand = cli.Command{
	Name:   "balance",
	Usage:  "Channel and on-chain balance in satoshis.",
	Action: balance,
}

func balance(ctx *cli.Context) error {
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	channel, err := client.ChannelBalance(rctx)
	if err != nil {
		return err
	}
	onchain, err := client.BlockchainBalance(rctx)
	if err != nil {
		return err
	}
	printJSON(map[string]int64{
		"channel":             channel,
		"onchain_total":       onchain.TotalBalance,
		"onchain_confirmed":   onchain.ConfirmedBalance,
		"onchain_unconfirmed": onchain.UnconfirmedBalance,
	})
	return nil
}

var channelsCommand = cli.Command{
	Name:  "channels",
	Usage: "List open channels.",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "pending",
			Usage: "List pending channels instead.",
		},
		cli.BoolFlag{
			Name:  "closed",
			Usage: "List closed channels instead.",
		},
	},
	Action: channels,
}

func channels(ctx *cli.Context) error {
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	switch {
	case ctx.Bool("pending") && ctx.Bool("closed"):
		return fmt.Errorf("either pending or closed should be set, but not both")
	case ctx.Bool("pending"):
		pending, err := client.PendingChannels(rctx)
		if err != nil {
			return err
		}
		printRespJSON(pending)
	case ctx.Bool("closed"):
		closed, err := client.ClosedChannels(rctx)
		if err != nil {
			return err
		}
		printJSON(closed)
	default:
		open, err := client.OpenChannels(rctx)
		if err != nil {
			return err
		}
		printJSON(open)
	}
	return nil
}

var peersCommand = cli.Command{
	Name:   "peers",
	Usage:  "List connected peers.",
	Action: peers,
}

func peers(ctx *cli.Context) error {
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	list, err := client.Peers(rctx)
	if err != nil {
		return err
	}
	printJSON(list)
	return nil
}

var addInvoiceCommand = cli.Command{
	Name:      "addinvoice",
	Usage:     "Add a new invoice.",
	ArgsUsage: "amt",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "amt",
			Usage: "The amount in satoshis.",
		},
		cli.StringFlag{
			Name:  "memo",
			Usage: "A description of the payment.",
		},
		cli.BoolFlag{
			Name:  "qr",
			Usage: "Include the payment request as a PNG data URI.",
		},
	},
	Action: addInvoice,
}

func addInvoice(ctx *cli.Context) error {
	amt := ctx.Int64("amt")
	if amt <= 0 {
		return fmt.Errorf("amt must be positive")
	}
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	invoice, err := client.NewInvoice(rctx, amt, ctx.String("memo"), ctx.Bool("qr"))
	if err != nil {
		return err
	}
	printJSON(invoice)
	return nil
}

var payInvoiceCommand = cli.Command{
	Name:      "payinvoice",
	Usage:     "Pay an invoice over lightning.",
	ArgsUsage: "pay_req",
	Action:    payInvoice,
}

func payInvoice(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "payinvoice")
	}
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	resp, err := client.PayInvoice(rctx, ctx.Args().First())
	if err != nil {
		return err
	}
	printRespJSON(resp)
	return nil
}

var decodePayReqCommand = cli.Command{
	Name:      "decodepayreq",
	Usage:     "Decode a payment request.",
	ArgsUsage: "pay_req",
	Action:    decodePayReq,
}

func decodePayReq(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "decodepayreq")
	}
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	payreq, err := client.DecodeInvoice(rctx, ctx.Args().First())
	if err != nil {
		return err
	}
	printRespJSON(payreq)
	return nil
}

var invoicePaidCommand = cli.Command{
	Name:      "invoicepaid",
	Usage:     "Check whether an invoice has been settled.",
	ArgsUsage: "r_hash",
	Action:    invoicePaid,
}

func invoicePaid(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "invoicepaid")
	}
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	paid, err := client.InvoiceIsPaid(rctx, ctx.Args().First())
	if err != nil {
		return err
	}
	printJSON(map[string]bool{"paid": paid})
	return nil
}

var newAddressCommand = cli.Command{
	Name:   "newaddress",
	Usage:  "Generates a new nested segwit address.",
	Action: newAddress,
}

func newAddress(ctx *cli.Context) error {
	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	addr, err := client.NewAddress(rctx)
	if err != nil {
		return err
	}
	printJSON(map[string]string{"address": addr})
	return nil
}

var unlockCommand = cli.Command{
	Name:   "unlock",
	Usage:  "Unlock an encrypted wallet at startup.",
	Action: unlock,
}

func unlock(ctx *cli.Context) error {
	fmt.Print("Input wallet password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	if err := client.UnlockWallet(rctx, string(pw)); err != nil {
		return err
	}
	fmt.Println("lnd successfully unlocked!")
	return nil
}

var qrCommand = cli.Command{
	Name:  "qr",
	Usage: "Render or read QR codes.",
	Subcommands: []cli.Command{
		{
			Name:      "encode",
			Usage:     "Write data as a PNG QR code.",
			ArgsUsage: "data",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out",
					Value: "qr.png",
					Usage: "The file to write.",
				},
			},
			Action: qrEncode,
		},
		{
			Name:      "decode",
			Usage:     "Read the QR code in an image file.",
			ArgsUsage: "file",
			Action:    qrDecode,
		},
	},
}

func qrEncode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "encode")
	}
	client := getClient(ctx)
	defer client.Close()

	uri, err := client.DrawQR(ctx.Args().First())
	if err != nil {
		return err
	}
	png, err := dataURIBytes(uri)
	if err != nil {
		return err
	}
	if err := os.WriteFile(ctx.String("out"), png, 0644); err != nil {
		return err
	}
	logrus.Infof("wrote %s", ctx.String("out"))
	return nil
}

func qrDecode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "decode")
	}
	image, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return err
	}
	client := getClient(ctx)
	defer client.Close()

	data, err := client.DecodeQR(image)
	if err != nil {
		return err
	}
	fmt.Println(data)
	return nil
}

var callCommand = cli.Command{
	Name:      "call",
	Usage:     "Send a raw request to the REST interface.",
	ArgsUsage: "path",
	Description: `
	Sends a request to any REST path below /v1/ and prints the decoded
	response, e.g.

	lndrest-cli call channels/pending
	lndrest-cli call --method DELETE peers/<pubkey>`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "method",
			Usage: "The HTTP method, POST when --data is set and GET otherwise.",
		},
		cli.StringFlag{
			Name:  "data",
			Usage: "A JSON object sent as the request body.",
		},
	},
	Action: call,
}

func call(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "call")
	}
	req := lnd.Request{
		Path:       strings.TrimPrefix(ctx.Args().First(), "/"),
		Method:     strings.ToUpper(ctx.String("method")),
		AllowEmpty: true,
	}
	if data := ctx.String("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &req.Params); err != nil {
			return fmt.Errorf("invalid --data: %w", err)
		}
		if req.Method == "" {
			req.Method = http.MethodPost
		}
	}

	client := getClient(ctx)
	defer client.Close()
	rctx, cancel := requestContext(ctx)
	defer cancel()

	doc, err := client.Execute(rctx, req)
	if err != nil {
		return err
	}
	if err := doc.Err(); err != nil {
		return err
	}
	printJSON(doc)
	return nil
}
