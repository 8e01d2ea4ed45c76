package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/enarx/keepbroker/api/clients"
	"github.com/enarx/keepbroker/api/handlers"
	"github.com/enarx/keepbroker/catalog"
	"github.com/enarx/keepbroker/interfaces"
	"github.com/enarx/keepbroker/registry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var kvmContract = interfaces.Contract{
	UUID:    uuid.MustParse("0afa438e-acaa-4158-9518-ad59256def34"),
	Backend: interfaces.BackendKvm,
}

func TestListContractsCommand(t *testing.T) {
	p := new(clients.MockManagerProvider)
	p.On("Contracts", mock.Anything).Return([]interfaces.Contract{kvmContract}, nil)

	out := &bytes.Buffer{}
	require.NoError(t, listContracts(context.Background(), p, out))
	assert.Equal(t, "0afa438e-acaa-4158-9518-ad59256def34 (kvm)\n", out.String())
	p.AssertExpectations(t)
}

func TestClaimKeepCommand(t *testing.T) {
	keep := interfaces.Keep{UUID: uuid.New(), Contract: kvmContract}

	p := new(clients.MockManagerProvider)
	p.On("Claim", mock.Anything, kvmContract.UUID).Return(keep, keep.Location(), nil)

	out := &bytes.Buffer{}
	require.NoError(t, claimKeep(context.Background(), p, out, kvmContract.UUID))
	assert.Equal(t, keep.UUID.String()+"\t/keeps/"+keep.UUID.String()+"\n", out.String())
}

func TestDeleteKeepCommandError(t *testing.T) {
	id := uuid.New()

	p := new(clients.MockManagerProvider)
	p.On("DeleteKeep", mock.Anything, id).Return(interfaces.ErrNotFound)

	out := &bytes.Buffer{}
	err := deleteKeep(context.Background(), p, out, id)
	assert.True(t, errors.Is(err, interfaces.ErrNotFound))
	assert.Empty(t, out.String())
}

func runClient(t *testing.T, url string, args ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	err := app.Run(append([]string{"enarx-client", "--url", url}, args...))
	return out.String(), err
}

func TestClientAgainstManager(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := catalog.Default()
	r := chi.NewRouter()
	handlers.NewHandler(c, registry.NewKeepRegistry(c), log).RegisterRoutes(r)
	ts := httptest.NewServer(r)
	defer ts.Close()

	out, err := runClient(t, ts.URL, "contracts", "list")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)

	out, err = runClient(t, ts.URL, "contracts", "show", kvmContract.UUID.String())
	require.NoError(t, err)
	assert.Equal(t, kvmContract.String()+"\n", out)

	out, err = runClient(t, ts.URL, "keeps", "claim", kvmContract.UUID.String())
	require.NoError(t, err)
	keepID := strings.Fields(out)[0]

	out, err = runClient(t, ts.URL, "keeps", "list")
	require.NoError(t, err)
	assert.Equal(t, keepID+"\t"+kvmContract.UUID.String()+"\tkvm\n", out)

	_, err = runClient(t, ts.URL, "keeps", "delete", keepID)
	require.NoError(t, err)

	_, err = runClient(t, ts.URL, "keeps", "show", keepID)
	assert.True(t, errors.Is(err, interfaces.ErrNotFound), "got %v", err)

	_, err = runClient(t, ts.URL, "contracts", "show", "not-a-uuid")
	assert.Error(t, err)
}
