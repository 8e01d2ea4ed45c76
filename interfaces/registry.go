package interfaces

import "github.com/google/uuid"

// ContractCatalog is a fixed, ordered list of contracts a manager offers.
// Implementations never change after construction.
type ContractCatalog interface {
	// List returns every contract in catalog order.
	List() []Contract

	// Get returns the contract with the given identifier or ErrNotFound.
	Get(id uuid.UUID) (Contract, error)
}

// KeepRegistry owns the set of live keeps.
//
// Every returned value is a copy; callers can never observe or induce
// mutation of registry-held state.
type KeepRegistry interface {
	// Claim instantiates a keep for the given contract.
	// Returns ErrNotFound without mutation if the contract is not in the catalog.
	Claim(contractID uuid.UUID) (Keep, error)

	// List returns a point-in-time snapshot of all keeps in no particular order.
	List() []Keep

	// Get returns the keep with the given identifier or ErrNotFound.
	Get(keepID uuid.UUID) (Keep, error)

	// Delete removes the keep, returning ErrNotFound if it does not exist.
	Delete(keepID uuid.UUID) error
}
