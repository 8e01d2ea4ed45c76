package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/enarx/keepbroker/api/clients"
	"github.com/enarx/keepbroker/discovery"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var flagURL = &cli.StringFlag{
	Name:    "url",
	Value:   "http://127.0.0.1:8080",
	EnvVars: []string{"ENARX_SERVER"},
	Usage:   "manager base URL, or an absolute path to its unix socket",
}
var flagSRV = &cli.StringFlag{
	Name:  "srv",
	Usage: "DNS SRV name to discover the manager with instead of --url, e.g. _contractmgr._tcp.example.com",
}
var flagDNSServer = &cli.StringFlag{
	Name:  "dns-server",
	Value: discovery.DefaultDNSServer,
	Usage: "DNS server used for --srv lookups",
}

// newProvider builds the manager client from the global flags.
func newProvider(cCtx *cli.Context) (clients.ManagerProvider, error) {
	target := cCtx.String(flagURL.Name)
	if name := cCtx.String(flagSRV.Name); name != "" {
		url, err := discovery.ResolveManagerURL(name, cCtx.String(flagDNSServer.Name))
		if err != nil {
			return nil, err
		}
		target = url
	}
	return clients.NewManagerClient(target), nil
}

func idArg(cCtx *cli.Context) (uuid.UUID, error) {
	if cCtx.NArg() != 1 {
		return uuid.Nil, errors.New("exactly one UUID argument is required")
	}
	id, err := uuid.Parse(cCtx.Args().First())
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", cCtx.Args().First(), err)
	}
	return id, nil
}

// withProvider adapts a command body to a cli action.
func withProvider(fn func(cCtx *cli.Context, p clients.ManagerProvider) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		p, err := newProvider(cCtx)
		if err != nil {
			return err
		}
		return fn(cCtx, p)
	}
}

func withID(fn func(cCtx *cli.Context, p clients.ManagerProvider, id uuid.UUID) error) cli.ActionFunc {
	return withProvider(func(cCtx *cli.Context, p clients.ManagerProvider) error {
		id, err := idArg(cCtx)
		if err != nil {
			return err
		}
		return fn(cCtx, p, id)
	})
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "enarx-client",
		Usage: "Inspect contracts and manage keeps",
		Flags: []cli.Flag{
			flagURL,
			flagSRV,
			flagDNSServer,
		},
		Commands: []*cli.Command{
			{
				Name:  "contracts",
				Usage: "Query the contract catalog",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List all contracts",
						Action: withProvider(func(cCtx *cli.Context, p clients.ManagerProvider) error { return listContracts(cCtx.Context, p, cCtx.App.Writer) }),
					},
					{
						Name:      "show",
						Usage:     "Show a single contract",
						ArgsUsage: "UUID",
						Action: withID(func(cCtx *cli.Context, p clients.ManagerProvider, id uuid.UUID) error {
							return showContract(cCtx.Context, p, cCtx.App.Writer, id)
						}),
					},
				},
			},
			{
				Name:  "keeps",
				Usage: "Manage keeps",
				Subcommands: []*cli.Command{
					{
						Name:      "claim",
						Usage:     "Create a keep from a contract",
						ArgsUsage: "CONTRACT-UUID",
						Action: withID(func(cCtx *cli.Context, p clients.ManagerProvider, id uuid.UUID) error {
							return claimKeep(cCtx.Context, p, cCtx.App.Writer, id)
						}),
					},
					{
						Name:   "list",
						Usage:  "List all keeps",
						Action: withProvider(func(cCtx *cli.Context, p clients.ManagerProvider) error { return listKeeps(cCtx.Context, p, cCtx.App.Writer) }),
					},
					{
						Name:      "show",
						Usage:     "Show a single keep",
						ArgsUsage: "UUID",
						Action: withID(func(cCtx *cli.Context, p clients.ManagerProvider, id uuid.UUID) error {
							return showKeep(cCtx.Context, p, cCtx.App.Writer, id)
						}),
					},
					{
						Name:      "delete",
						Usage:     "Delete a keep",
						ArgsUsage: "UUID",
						Action: withID(func(cCtx *cli.Context, p clients.ManagerProvider, id uuid.UUID) error {
							return deleteKeep(cCtx.Context, p, cCtx.App.Writer, id)
						}),
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
