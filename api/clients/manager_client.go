package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/enarx/keepbroker/api"
	"github.com/enarx/keepbroker/interfaces"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ErrUnexpectedStatus is returned when the manager answers with a status
// code other than the one the operation expects.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// ManagerProvider is the set of operations a contract or keep manager offers.
type ManagerProvider interface {
	Contracts(ctx context.Context) ([]interfaces.Contract, error)
	Contract(ctx context.Context, id uuid.UUID) (interfaces.Contract, error)
	Claim(ctx context.Context, contractID uuid.UUID) (interfaces.Keep, string, error)
	Keeps(ctx context.Context) ([]interfaces.Keep, error)
	Keep(ctx context.Context, id uuid.UUID) (interfaces.Keep, error)
	DeleteKeep(ctx context.Context, id uuid.UUID) error
}

// ManagerClient talks to a manager over HTTP.
type ManagerClient struct {
	// BaseURL is the scheme and authority of the manager, e.g. http://127.0.0.1:8080
	BaseURL string

	Client *http.Client
}

// NewManagerClient creates a client for target. An absolute path is taken to
// be a unix-domain socket; anything else must be an http URL.
func NewManagerClient(target string) *ManagerClient {
	if strings.HasPrefix(target, "/") {
		socketPath := target
		return &ManagerClient{
			BaseURL: "http://unix",
			Client: &http.Client{
				Timeout: 30 * time.Second,
				Transport: &http.Transport{
					DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
						var d net.Dialer
						return d.DialContext(ctx, "unix", socketPath)
					},
				},
			},
		}
	}

	return &ManagerClient{
		BaseURL: strings.TrimSuffix(target, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ManagerClient) do(ctx context.Context, method, path string, expected int) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", api.ContentTypeCBOR)

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not request %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: %w", method, path, interfaces.ErrNotFound)
	} else if resp.StatusCode != expected {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%s %s: %w %d: %s", method, path, ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	return resp, nil
}

func getDecoded[T any](ctx context.Context, c *ManagerClient, path string) (T, error) {
	var out T
	resp, err := c.do(ctx, http.MethodGet, path, http.StatusOK)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if err := api.DecodeCBOR(resp, &out); err != nil {
		return out, fmt.Errorf("could not parse response of %s: %w", path, err)
	}
	return out, nil
}

// Contracts lists the manager's catalog.
func (c *ManagerClient) Contracts(ctx context.Context) ([]interfaces.Contract, error) {
	return getDecoded[[]interfaces.Contract](ctx, c, "/contracts")
}

func (c *ManagerClient) Contract(ctx context.Context, id uuid.UUID) (interfaces.Contract, error) {
	return getDecoded[interfaces.Contract](ctx, c, "/contracts/"+id.String())
}

// Claim creates a keep for the contract and returns it together with the
// Location header the manager sent.
func (c *ManagerClient) Claim(ctx context.Context, contractID uuid.UUID) (interfaces.Keep, string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/contracts/"+contractID.String(), http.StatusCreated)
	if err != nil {
		return interfaces.Keep{}, "", err
	}
	defer resp.Body.Close()

	var keep interfaces.Keep
	if err := api.DecodeCBOR(resp, &keep); err != nil {
		return interfaces.Keep{}, "", fmt.Errorf("could not parse claim response: %w", err)
	}
	return keep, resp.Header.Get("Location"), nil
}

func (c *ManagerClient) Keeps(ctx context.Context) ([]interfaces.Keep, error) {
	return getDecoded[[]interfaces.Keep](ctx, c, "/keeps")
}

func (c *ManagerClient) Keep(ctx context.Context, id uuid.UUID) (interfaces.Keep, error) {
	return getDecoded[interfaces.Keep](ctx, c, "/keeps/"+id.String())
}

// DeleteKeep destroys a keep. Deleting an unknown keep returns interfaces.ErrNotFound.
func (c *ManagerClient) DeleteKeep(ctx context.Context, id uuid.UUID) error {
	resp, err := c.do(ctx, http.MethodDelete, "/keeps/"+id.String(), http.StatusOK)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// MockManagerProvider implements a mock ManagerProvider for testing.
type MockManagerProvider struct {
	mock.Mock
}

func (m *MockManagerProvider) Contracts(ctx context.Context) ([]interfaces.Contract, error) {
	args := m.Called(ctx)
	return args.Get(0).([]interfaces.Contract), args.Error(1)
}

func (m *MockManagerProvider) Contract(ctx context.Context, id uuid.UUID) (interfaces.Contract, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.Contract), args.Error(1)
}

func (m *MockManagerProvider) Claim(ctx context.Context, contractID uuid.UUID) (interfaces.Keep, string, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).(interfaces.Keep), args.String(1), args.Error(2)
}

func (m *MockManagerProvider) Keeps(ctx context.Context) ([]interfaces.Keep, error) {
	args := m.Called(ctx)
	return args.Get(0).([]interfaces.Keep), args.Error(1)
}

func (m *MockManagerProvider) Keep(ctx context.Context, id uuid.UUID) (interfaces.Keep, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.Keep), args.Error(1)
}

func (m *MockManagerProvider) DeleteKeep(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ ManagerProvider = (*ManagerClient)(nil)
	_ ManagerProvider = (*MockManagerProvider)(nil)
)
