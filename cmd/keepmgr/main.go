package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/enarx/keepbroker/api/handlers"
	"github.com/enarx/keepbroker/api/server"
	"github.com/enarx/keepbroker/catalog"
	"github.com/enarx/keepbroker/cmd/flags"
	"github.com/urfave/cli/v2"
)

var devRootFlag = &cli.StringFlag{
	Name:  "dev-root",
	Value: "/",
	Usage: "root under which backend device nodes (dev/kvm, dev/sev, dev/sgx_enclave) are probed",
}

func main() {
	app := &cli.App{
		Name:      "keepmgr",
		Usage:     "Serve the contracts this host can run",
		ArgsUsage: flags.ListenArgsUsage,
		Flags:     flags.ServerFlags("keepmgr", devRootFlag),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			probe := catalog.DeviceProbe{Root: cCtx.String(devRootFlag.Name)}
			contracts := catalog.Filter(catalog.Default(), probe)
			for _, c := range contracts.List() {
				logger.Info("Backend available", "contract", c.UUID, "backend", c.Backend)
			}

			listener, err := flags.ResolveListener(cCtx)
			if err != nil {
				return err
			}

			// No registry: only the catalog routes are served.
			handler := handlers.NewHandler(contracts, nil, logger)

			srv, err := server.New(flags.ConfigureServer(cCtx, logger, listener), handler)
			if err != nil {
				listener.Close()
				return err
			}
			srv.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			select {
			case <-exit:
				logger.Info("Shutdown signal received")
			case <-srv.Done():
				logger.Error("Server stopped unexpectedly")
			}

			srv.Shutdown()
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
