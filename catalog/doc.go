// Package catalog provides the fixed list of contracts a manager offers.
//
// A Catalog is built once at process start, either from the built-in table
// (Default) or from a YAML file (Load), and never changes afterwards. Lookups
// are linear scans; catalogs hold a handful of entries.
//
// Filter derives the subset of a catalog whose backends are available on the
// local host, as served by keepmgr. DeviceProbe checks for /dev/kvm, /dev/sev
// and /dev/sgx_enclave; the nil backend is always available.
package catalog
