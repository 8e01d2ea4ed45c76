/*
Package handlers implements the request router of a manager.

Handler dispatches requests through a static routing table:

	GET    /contracts       list contracts
	GET    /contracts/{id}  show contract
	POST   /contracts/{id}  claim contract, creating a keep
	GET    /keeps           list keeps
	GET    /keeps/{id}      show keep
	DELETE /keeps/{id}      delete keep

The keep routes are only registered when the handler is created with a keep
registry; keepmgr serves the two contract routes alone.

Successful responses carry a CBOR body (see package api) with Content-Type
application/cbor, except DELETE which answers 200 with an empty body. A
request that matches no route, names an unknown identity, or carries a
malformed identifier answers 404 with an empty body. There is no 405.

Usage:

	h := handlers.NewHandler(catalog.Default(), registry.NewKeepRegistry(c), logger)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
*/
package handlers
