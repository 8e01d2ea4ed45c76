package flags

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/enarx/keepbroker/api"
	"github.com/enarx/keepbroker/common"
	"github.com/enarx/keepbroker/socket"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// ListenArgsUsage documents the positional listen specification.
const ListenArgsUsage = "LISTEN (inherited fd number, /path/to/unix.sock or host:port)"

var ErrMissingListen = errors.New("exactly one LISTEN argument is required")

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUidFlag.Name)
	logService := cCtx.String("log-service")

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
		Output:  cCtx.App.ErrWriter,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

// ResolveListener turns the single positional argument into a listening socket.
func ResolveListener(cCtx *cli.Context) (*socket.Listener, error) {
	if cCtx.NArg() != 1 {
		return nil, ErrMissingListen
	}

	l, err := socket.Resolve(cCtx.Args().First())
	if err != nil {
		return nil, fmt.Errorf("could not acquire listener: %w", err)
	}
	return l, nil
}

func ConfigureServer(cCtx *cli.Context, logger *slog.Logger, listener *socket.Listener) *api.HTTPServerConfig {
	metricsAddr := cCtx.String(MetricsAddrFlag.Name)
	enablePprof := cCtx.Bool(PprofFlag.Name)
	drainDuration := time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second

	return &api.HTTPServerConfig{
		Listener:                 listener,
		MetricsAddr:              metricsAddr,
		Log:                      logger,
		EnablePprof:              enablePprof,
		DrainDuration:            drainDuration,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}

var LogServiceFlagFn = func(service string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "log-service",
		Value: service,
		Usage: "add 'service' tag to logs",
	}
}

var PprofFlag = &cli.BoolFlag{
	Name:  "pprof",
	Value: false,
	Usage: "enable pprof debug endpoint",
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:  "drain-seconds",
	Value: 45,
	Usage: "seconds to wait in drain HTTP request",
}
var MetricsAddrFlag = &cli.StringFlag{
	Name:  "metrics-addr",
	Value: "127.0.0.1:8090",
	Usage: "address to listen on for Prometheus metrics, empty to disable",
}

var CommonFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
	PprofFlag,
	DrainSecondsFlag,
	MetricsAddrFlag,
}

// ServerFlags returns the flags shared by the manager binaries.
func ServerFlags(service string, extra ...cli.Flag) []cli.Flag {
	flags := append([]cli.Flag{LogServiceFlagFn(service)}, CommonFlags...)
	return append(flags, extra...)
}
