// Package main (cmd/enarx-client) is the command line client for contract
// and keep managers.
//
//	enarx-client contracts list
//	enarx-client --url /run/enarx/contractmgr.sock keeps claim ea392851-3435-42d3-a4ad-c4e5e5c6c4c6
//	enarx-client --srv _contractmgr._tcp.example.com keeps list
//
// The manager is taken from --url (or ENARX_SERVER), or discovered through
// DNS SRV records with --srv. Responses whose Content-Type is not exactly
// application/cbor are rejected before decoding.
package main
