package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/enarx/keepbroker/api"
	"github.com/enarx/keepbroker/interfaces"
	"github.com/enarx/keepbroker/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Route is one entry of the static routing table.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Handler serves the contract catalog and, when a keep registry is
// configured, the keep lifecycle operations.
type Handler struct {
	catalog interfaces.ContractCatalog
	keeps   interfaces.KeepRegistry
	log     *slog.Logger
}

// NewHandler creates a new HTTP request handler.
//
// Parameters:
//   - catalog: the fixed contract catalog served on /contracts
//   - keeps: the keep registry; nil serves the catalog routes only (keepmgr)
//   - log: structured logger
func NewHandler(catalog interfaces.ContractCatalog, keeps interfaces.KeepRegistry, log *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		keeps:   keeps,
		log:     log,
	}
}

// Routes returns the routing table in evaluation order:
//
//	GET    /contracts       list contracts
//	GET    /contracts/{id}  show contract
//	POST   /contracts/{id}  claim contract, creating a keep
//	GET    /keeps           list keeps
//	GET    /keeps/{id}      show keep
//	DELETE /keeps/{id}      delete keep
//
// No two patterns overlap, so order does not change which route wins.
func (h *Handler) Routes() []Route {
	routes := []Route{
		{http.MethodGet, "/contracts", h.HandleListContracts},
		{http.MethodGet, "/contracts/{id}", h.HandleGetContract},
	}
	if h.keeps == nil {
		return routes
	}

	return append(routes,
		Route{http.MethodPost, "/contracts/{id}", h.HandleClaimContract},
		Route{http.MethodGet, "/keeps", h.HandleListKeeps},
		Route{http.MethodGet, "/keeps/{id}", h.HandleGetKeep},
		Route{http.MethodDelete, "/keeps/{id}", h.HandleDeleteKeep},
	)
}

// RegisterRoutes configures the router with the routing table.
// Unmatched paths and unmatched methods both answer 404 with an empty body.
func (h *Handler) RegisterRoutes(r chi.Router) {
	for _, route := range h.Routes() {
		r.Method(route.Method, route.Pattern, route.Handler)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// notFoundFor answers 404 and counts it against the matched route.
func (h *Handler) notFoundFor(w http.ResponseWriter, r *http.Request, route string) {
	metrics.RecordNotFound(route)
	notFound(w, r)
}

// idParam parses the {id} path segment. A malformed identifier is treated
// like an unmatched route.
func idParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeBody(w http.ResponseWriter, status int, v any) {
	if err := api.WriteCBOR(w, status, v); err != nil {
		h.log.Error("Failed to encode response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// HandleListContracts returns the whole catalog.
//
// URL format: GET /contracts
//
// Response: CBOR array of interfaces.Contract
func (h *Handler) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	h.writeBody(w, http.StatusOK, h.catalog.List())
}

// HandleGetContract returns a single contract.
//
// URL format: GET /contracts/{id}
//
// Status codes:
//   - 200 OK: CBOR interfaces.Contract
//   - 404 Not Found: unknown or malformed contract id
func (h *Handler) HandleGetContract(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFoundFor(w, r, "/contracts/{id}")
		return
	}

	contract, err := h.catalog.Get(id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.log.Debug("Contract not found", "contract", id)
		h.notFoundFor(w, r, "/contracts/{id}")
		return
	}
	if err != nil {
		h.log.Error("Failed to look up contract", "err", err, "contract", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeBody(w, http.StatusOK, contract)
}

// HandleClaimContract instantiates a keep for the contract.
//
// URL format: POST /contracts/{id}
//
// Status codes:
//   - 201 Created: CBOR interfaces.Keep, Location: /keeps/{keep id}
//   - 404 Not Found: unknown or malformed contract id; no keep is created
func (h *Handler) HandleClaimContract(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFoundFor(w, r, "/contracts/{id}")
		return
	}

	keep, err := h.keeps.Claim(id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.log.Debug("Claim of unknown contract", "contract", id)
		h.notFoundFor(w, r, "/contracts/{id}")
		return
	}
	if err != nil {
		h.log.Error("Failed to claim contract", "err", err, "contract", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	metrics.RecordClaim(keep.Contract.Backend.String())
	h.log.Info("Keep created", "keep", keep.UUID, "contract", id, "backend", keep.Contract.Backend)

	w.Header().Set("Location", keep.Location())
	h.writeBody(w, http.StatusCreated, keep)
}

// HandleListKeeps returns a snapshot of all keeps in unspecified order.
//
// URL format: GET /keeps
//
// Response: CBOR array of interfaces.Keep
func (h *Handler) HandleListKeeps(w http.ResponseWriter, r *http.Request) {
	h.writeBody(w, http.StatusOK, h.keeps.List())
}

// HandleGetKeep returns a single keep.
//
// URL format: GET /keeps/{id}
//
// Status codes:
//   - 200 OK: CBOR interfaces.Keep
//   - 404 Not Found: unknown or malformed keep id
func (h *Handler) HandleGetKeep(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFoundFor(w, r, "/keeps/{id}")
		return
	}

	keep, err := h.keeps.Get(id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.notFoundFor(w, r, "/keeps/{id}")
		return
	}
	if err != nil {
		h.log.Error("Failed to look up keep", "err", err, "keep", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeBody(w, http.StatusOK, keep)
}

// HandleDeleteKeep destroys a keep.
//
// URL format: DELETE /keeps/{id}
//
// Status codes:
//   - 200 OK: empty body
//   - 404 Not Found: unknown or malformed keep id, including an already deleted keep
func (h *Handler) HandleDeleteKeep(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFoundFor(w, r, "/keeps/{id}")
		return
	}

	err := h.keeps.Delete(id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.notFoundFor(w, r, "/keeps/{id}")
		return
	}
	if err != nil {
		h.log.Error("Failed to delete keep", "err", err, "keep", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	metrics.RecordDelete()
	h.log.Info("Keep deleted", "keep", id)
	w.WriteHeader(http.StatusOK)
}
