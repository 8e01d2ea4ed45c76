// Package main (cmd/keepmgr) serves the subset of the built-in contract
// catalog whose backend is available on this host, using the same routes
// and wire format as contractmgr's GET /contracts and GET /contracts/{id}.
//
//	keepmgr --dev-root / 127.0.0.1:8081
package main
