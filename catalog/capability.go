package catalog

import (
	"os"
	"path/filepath"

	"github.com/enarx/keepbroker/interfaces"
)

// Probe reports whether the host can run keeps on a backend.
type Probe interface {
	Supports(interfaces.Backend) bool
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func(interfaces.Backend) bool

func (f ProbeFunc) Supports(b interfaces.Backend) bool { return f(b) }

// backendDevices maps hardware backends to the device node that exposes them.
var backendDevices = map[interfaces.Backend]string{
	interfaces.BackendKvm: "dev/kvm",
	interfaces.BackendSev: "dev/sev",
	interfaces.BackendSgx: "dev/sgx_enclave",
}

// DeviceProbe detects backend support by the presence of device nodes under Root.
// The nil backend is always supported.
type DeviceProbe struct {
	Root string
}

// Supports implements Probe.
func (p DeviceProbe) Supports(b interfaces.Backend) bool {
	if b == interfaces.BackendNil {
		return true
	}

	dev, ok := backendDevices[b]
	if !ok {
		return false
	}

	root := p.Root
	if root == "" {
		root = "/"
	}
	_, err := os.Stat(filepath.Join(root, dev))
	return err == nil
}

// Filter returns a catalog containing only the contracts whose backend the probe supports.
// Catalog order is preserved.
func Filter(c *Catalog, probe Probe) *Catalog {
	supported := make([]interfaces.Contract, 0, len(c.contracts))
	for _, contract := range c.contracts {
		if probe.Supports(contract.Backend) {
			supported = append(supported, contract)
		}
	}
	return &Catalog{contracts: supported}
}
