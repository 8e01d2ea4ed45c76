package registry

import (
	"fmt"
	"sync"

	"github.com/enarx/keepbroker/interfaces"
	"github.com/google/uuid"
)

// KeepRegistry is the in-memory store of live keeps.
// A single instance is created at startup and shared by all request handlers.
// Contents are lost on restart.
type KeepRegistry struct {
	mutex   sync.RWMutex
	keeps   map[uuid.UUID]interfaces.Keep
	catalog interfaces.ContractCatalog

	// newID generates keep identifiers; replaced in tests.
	newID func() uuid.UUID
}

// NewKeepRegistry creates an empty registry whose keeps are claimed against the given catalog.
func NewKeepRegistry(catalog interfaces.ContractCatalog) *KeepRegistry {
	return &KeepRegistry{
		keeps:   make(map[uuid.UUID]interfaces.Keep),
		catalog: catalog,
		newID:   uuid.New,
	}
}

// Claim looks up the contract and, if it exists, creates a keep with a fresh
// random identifier bound to a copy of that contract.
// Returns interfaces.ErrNotFound without modifying the registry if the contract is unknown.
func (r *KeepRegistry) Claim(contractID uuid.UUID) (interfaces.Keep, error) {
	contract, err := r.catalog.Get(contractID)
	if err != nil {
		return interfaces.Keep{}, err
	}

	keep := interfaces.Keep{
		UUID:     r.newID(),
		Contract: contract,
	}

	r.mutex.Lock()
	r.keeps[keep.UUID] = keep
	r.mutex.Unlock()

	return keep, nil
}

// List returns a snapshot of all keeps. Order is unspecified.
func (r *KeepRegistry) List() []interfaces.Keep {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keeps := make([]interfaces.Keep, 0, len(r.keeps))
	for _, keep := range r.keeps {
		keeps = append(keeps, keep)
	}
	return keeps
}

// Get returns the keep with the given identifier.
func (r *KeepRegistry) Get(keepID uuid.UUID) (interfaces.Keep, error) {
	r.mutex.RLock()
	keep, exists := r.keeps[keepID]
	r.mutex.RUnlock()

	if !exists {
		return interfaces.Keep{}, fmt.Errorf("keep %s: %w", keepID, interfaces.ErrNotFound)
	}
	return keep, nil
}

// Delete removes the keep. Deleting an unknown keep returns interfaces.ErrNotFound.
func (r *KeepRegistry) Delete(keepID uuid.UUID) error {
	r.mutex.Lock()
	_, exists := r.keeps[keepID]
	delete(r.keeps, keepID)
	r.mutex.Unlock()

	if !exists {
		return fmt.Errorf("keep %s: %w", keepID, interfaces.ErrNotFound)
	}
	return nil
}

// Len returns the number of live keeps.
func (r *KeepRegistry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.keeps)
}
