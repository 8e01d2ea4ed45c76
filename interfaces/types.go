package interfaces

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a contract or keep identifier is not known.
var ErrNotFound = errors.New("not found")

// ErrUnknownBackend is returned when a backend name is not one of the supported kinds.
var ErrUnknownBackend = errors.New("unknown backend")

// Backend identifies the execution technology a contract targets.
type Backend string

const (
	// BackendNil is a no-op backend that performs no isolation.
	BackendNil Backend = "nil"
	// BackendKvm runs keeps as plain KVM virtual machines.
	BackendKvm Backend = "kvm"
	// BackendSev runs keeps under AMD SEV.
	BackendSev Backend = "sev"
	// BackendSgx runs keeps as Intel SGX enclaves.
	BackendSgx Backend = "sgx"
)

// Backends lists every supported backend kind.
var Backends = []Backend{BackendNil, BackendKvm, BackendSev, BackendSgx}

// ParseBackend converts a lowercase backend name into a Backend.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendNil, BackendKvm, BackendSev, BackendSgx:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// String returns the backend name.
func (b Backend) String() string {
	return string(b)
}

// Valid reports whether b is one of the supported backends.
func (b Backend) Valid() bool {
	_, err := ParseBackend(string(b))
	return err == nil
}

// Contract is a static descriptor of an execution backend offered for claiming.
// The uuid is encoded on the wire as a 16-byte CBOR byte string.
type Contract struct {
	UUID    uuid.UUID `cbor:"uuid" yaml:"uuid"`
	Backend Backend   `cbor:"backend" yaml:"backend"`
}

// String returns the contract in "<uuid> (<backend>)" form.
func (c Contract) String() string {
	return fmt.Sprintf("%s (%s)", c.UUID, c.Backend)
}

// Keep is an execution context instance bound to the contract it was claimed against.
// Keeps are immutable once created.
type Keep struct {
	UUID     uuid.UUID `cbor:"uuid"`
	Contract Contract  `cbor:"contract"`
}

// Location returns the resource path at which the keep is served.
func (k Keep) Location() string {
	return "/keeps/" + k.UUID.String()
}
