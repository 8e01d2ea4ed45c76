package flags

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/enarx/keepbroker/api"
	"github.com/enarx/keepbroker/socket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args []string, action cli.ActionFunc) error {
	app := &cli.App{
		Name:      "test",
		Flags:     ServerFlags("test-service"),
		ErrWriter: &bytes.Buffer{},
		Action:    action,
	}
	return app.Run(append([]string{"test"}, args...))
}

func TestConfigureServer(t *testing.T) {
	var cfg *api.HTTPServerConfig
	err := runApp(t, []string{"--pprof", "--drain-seconds", "3", "--metrics-addr", "", "127.0.0.1:0"}, func(cCtx *cli.Context) error {
		l, err := ResolveListener(cCtx)
		if err != nil {
			return err
		}
		defer l.Close()

		cfg = ConfigureServer(cCtx, SetupLogger(cCtx), l)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, cfg.EnablePprof)
	assert.Equal(t, 3*time.Second, cfg.DrainDuration)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, socket.KindTCP, cfg.Listener.Kind)
}

func TestResolveListenerArgs(t *testing.T) {
	for _, args := range [][]string{{}, {"127.0.0.1:0", "127.0.0.1:0"}} {
		err := runApp(t, args, func(cCtx *cli.Context) error {
			_, err := ResolveListener(cCtx)
			return err
		})
		assert.True(t, errors.Is(err, ErrMissingListen), "args %v: %v", args, err)
	}

	err := runApp(t, []string{"not-an-address"}, func(cCtx *cli.Context) error {
		_, err := ResolveListener(cCtx)
		return err
	})
	assert.Error(t, err)
}

func TestSetupLoggerService(t *testing.T) {
	out := &bytes.Buffer{}
	app := &cli.App{
		Name:      "test",
		Flags:     ServerFlags("contractmgr"),
		ErrWriter: out,
		Action: func(cCtx *cli.Context) error {
			SetupLogger(cCtx).Info("hello")
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"test", "--log-json", "--log-uid"}))

	assert.Contains(t, out.String(), `"service":"contractmgr"`)
	assert.Contains(t, out.String(), `"uid":`)
}
