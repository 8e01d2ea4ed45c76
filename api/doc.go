/*
Package api provides the HTTP surface of the keep broker.

This package is organized into three subpackages:

1. handlers - the route table and the six contract/keep operations
2. server - HTTP server lifecycle over a resolved listening socket
3. clients - a client library that verifies the wire format before decoding

The package itself holds what they share: the wire format constant, CBOR
encode/decode helpers and the server configuration.

# Wire Format

Every successful body is CBOR and is tagged with

	Content-Type: application/cbor

A client must compare the header exactly and refuse to decode anything else
(see CheckContentType and DecodeCBOR). Error responses carry an empty body.

Encoding uses core deterministic CBOR; empty lists are encoded as empty
arrays, never as null.
*/
package api
