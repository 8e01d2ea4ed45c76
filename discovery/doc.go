// Package discovery locates managers through DNS SRV records, for example
// _contractmgr._tcp.example.com, so clients need not be configured with a
// fixed address.
package discovery
