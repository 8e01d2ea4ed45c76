package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/enarx/keepbroker/api/handlers"
	"github.com/enarx/keepbroker/api/server"
	"github.com/enarx/keepbroker/catalog"
	"github.com/enarx/keepbroker/cmd/flags"
	"github.com/enarx/keepbroker/registry"
	"github.com/urfave/cli/v2"
)

var catalogFlag = &cli.StringFlag{
	Name:  "catalog",
	Usage: "YAML file with the contracts to offer instead of the built-in catalog",
}

func main() {
	app := &cli.App{
		Name:      "contractmgr",
		Usage:     "Serve the contract catalog and manage keeps",
		ArgsUsage: flags.ListenArgsUsage,
		Flags:     flags.ServerFlags("contractmgr", catalogFlag),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)

			contracts := catalog.Default()
			if path := cCtx.String(catalogFlag.Name); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("could not open catalog: %w", err)
				}
				contracts, err = catalog.Load(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("could not load catalog %s: %w", path, err)
				}
				logger.Info("Loaded catalog", "file", path, "contracts", contracts.Len())
			}

			listener, err := flags.ResolveListener(cCtx)
			if err != nil {
				return err
			}

			keeps := registry.NewKeepRegistry(contracts)
			handler := handlers.NewHandler(contracts, keeps, logger)

			srv, err := server.New(flags.ConfigureServer(cCtx, logger, listener), handler)
			if err != nil {
				listener.Close()
				return err
			}
			srv.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			select {
			case <-exit:
				logger.Info("Shutdown signal received")
			case <-srv.Done():
				logger.Error("Server stopped unexpectedly")
			}

			srv.Shutdown()
			logger.Info("Server shutdown complete")
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
