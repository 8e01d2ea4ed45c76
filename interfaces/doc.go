// Package interfaces defines core interfaces and types for the keep broker,
// separating interface definitions from implementations.
//
// # Types
//
//   - Backend: the execution technology a contract targets (nil, kvm, sev, sgx)
//   - Contract: a static descriptor of a supported backend, identified by a UUID
//   - Keep: an execution context instance bound to a copy of its contract
//
// # Interfaces
//
// ContractCatalog: the fixed, startup-defined list of contracts a manager offers,
// with lookup by identifier.
//
// KeepRegistry: claim/list/get/delete of keeps under concurrent access.
//
// # Errors
//
//   - ErrNotFound: the requested contract or keep does not exist
//   - ErrUnknownBackend: a backend name outside the supported set
//
// # Wire Shape
//
// Contracts and keeps are serialized as CBOR maps keyed by field name:
//
//	Contract = { "uuid": bstr .size 16, "backend": tstr }
//	Keep     = { "uuid": bstr .size 16, "contract": Contract }
package interfaces
