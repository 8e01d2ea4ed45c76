// Package main (cmd/contractmgr) serves the contract catalog and the keep
// registry.
//
// The single positional argument selects the listening socket: a file
// descriptor number inherited from a supervisor, an absolute path for a
// unix-domain socket, or host:port for TCP. Failure to acquire it is fatal.
//
//	contractmgr 127.0.0.1:8080
//	contractmgr /run/enarx/contractmgr.sock
//	contractmgr --catalog /etc/enarx/contracts.yaml 3
//
// Keeps live in memory only and are lost on restart. The process stops
// gracefully on SIGINT or SIGTERM.
package main
