package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{JSON: true, Service: "contractmgr", Version: "v1", Output: &buf})

	log.Debug("hidden")
	log.Info("hello", "keeps", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "contractmgr", entry["service"])
	assert.Equal(t, "v1", entry["version"])
	assert.EqualValues(t, 3, entry["keeps"])
}

func TestSetupLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{Debug: true, Output: &buf})

	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "service=")
}
