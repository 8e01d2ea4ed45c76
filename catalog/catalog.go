package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/enarx/keepbroker/interfaces"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateContract is returned when two catalog entries share a UUID.
	ErrDuplicateContract = errors.New("duplicate contract uuid")

	// ErrEmptyCatalog is returned when a catalog file defines no contracts.
	ErrEmptyCatalog = errors.New("catalog defines no contracts")
)

// defaultContracts is the built-in contract table.
var defaultContracts = []interfaces.Contract{
	{UUID: uuid.MustParse("e6234733-513a-4883-981a-bfa972fa706b"), Backend: interfaces.BackendNil},
	{UUID: uuid.MustParse("0afa438e-acaa-4158-9518-ad59256def34"), Backend: interfaces.BackendKvm},
	{UUID: uuid.MustParse("31a41b53-cb9e-447b-bfa2-bfb8e6e42ff9"), Backend: interfaces.BackendSev},
	{UUID: uuid.MustParse("ea392851-3435-42d3-a4ad-c4e5e5c6c4c6"), Backend: interfaces.BackendSgx},
}

// Catalog is an immutable, ordered sequence of contracts.
type Catalog struct {
	contracts []interfaces.Contract
}

// Default returns the built-in catalog with one contract per backend.
func Default() *Catalog {
	c, _ := New(defaultContracts)
	return c
}

// New creates a catalog from the given contracts, preserving their order.
// The slice is copied; later changes to it do not affect the catalog.
func New(contracts []interfaces.Contract) (*Catalog, error) {
	seen := make(map[uuid.UUID]struct{}, len(contracts))
	for _, c := range contracts {
		if !c.Backend.Valid() {
			return nil, fmt.Errorf("contract %s: %w: %q", c.UUID, interfaces.ErrUnknownBackend, c.Backend)
		}
		if _, ok := seen[c.UUID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateContract, c.UUID)
		}
		seen[c.UUID] = struct{}{}
	}

	return &Catalog{contracts: append([]interfaces.Contract(nil), contracts...)}, nil
}

// Load reads a YAML list of contracts:
//
//	- uuid: e6234733-513a-4883-981a-bfa972fa706b
//	  backend: nil
func Load(r io.Reader) (*Catalog, error) {
	var contracts []interfaces.Contract
	if err := yaml.NewDecoder(r).Decode(&contracts); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("could not parse catalog: %w", err)
	}
	if len(contracts) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(contracts)
}

// List returns a copy of all contracts in catalog order.
func (c *Catalog) List() []interfaces.Contract {
	return append([]interfaces.Contract{}, c.contracts...)
}

// Get returns the contract with the given UUID.
func (c *Catalog) Get(id uuid.UUID) (interfaces.Contract, error) {
	for _, contract := range c.contracts {
		if contract.UUID == id {
			return contract, nil
		}
	}
	return interfaces.Contract{}, fmt.Errorf("contract %s: %w", id, interfaces.ErrNotFound)
}

// Len returns the number of contracts in the catalog.
func (c *Catalog) Len() int {
	return len(c.contracts)
}
