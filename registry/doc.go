// Package registry implements the keep registry: a concurrent in-memory map
// from keep identifier to keep record.
//
// KeepRegistry implements interfaces.KeepRegistry. Reads (List, Get) share a
// read lock; Claim and Delete hold the write lock only for the map mutation
// itself. Each public operation is a single critical section, and every value
// handed to a caller is a copy.
//
// Keep identifiers are random (version 4) UUIDs. Collisions are not checked
// for; the probability is negligible.
//
// # Lifecycle
//
//   - A keep is created only by Claim against a contract from the catalog
//   - A keep is immutable after creation
//   - A keep is destroyed only by Delete; deleting twice reports ErrNotFound
//   - Nothing is persisted; a restart starts from an empty registry
//
// # Mocks
//
// MockKeepRegistry and MockContractCatalog are testify mocks for handler tests.
package registry
