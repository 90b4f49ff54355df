package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Handler handles HTTP requests for items. It owns no business logic:
// input is decoded, the store is called, and the result or error is
// serialized with its documented status code.
type Handler struct {
	store  *MemoryStore
	logger *Logger
}

// NewHandler creates a Handler with dependencies.
func NewHandler(store *MemoryStore, logger *Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// itemsHandler routes requests without ID: GET for list, POST for create.
func (h *Handler) itemsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListItems(w, r)
	case http.MethodPost:
		h.handleCreateItem(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
}

// itemHandler routes requests with ID: GET, PUT, DELETE. Item ids are
// opaque here; anything the store does not hold, malformed or not, comes
// back as 404.
func (h *Handler) itemHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/items/")
	if id == "" {
		writeError(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.handleGetItem(w, r, id)
	case http.MethodPut:
		h.handleUpdateItem(w, r, id)
	case http.MethodDelete:
		h.handleDeleteItem(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
}

// healthHandler processes GET /health. It touches no state.
func (h *Handler) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC(),
	})
}

// handleCreateItem processes POST /api/v1/items.
func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return
	}
	if err := ensureSingleJSON(dec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.store.CreateItem(r.Context(), req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/items/%s", item.ID))
	writeJSON(w, http.StatusCreated, item)
}

// handleGetItem processes GET /api/v1/items/{id}.
func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request, id string) {
	item, err := h.store.GetItem(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleUpdateItem processes PUT /api/v1/items/{id}. All body fields are
// optional; an empty object is a valid update that only refreshes the
// item's updated_at.
func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request, id string) {
	var req UpdateItemRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return
	}
	if err := ensureSingleJSON(dec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.store.UpdateItem(r.Context(), id, req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleDeleteItem processes DELETE /api/v1/items/{id}.
func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.DeleteItem(r.Context(), id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListItems processes GET /api/v1/items. An empty store yields an
// empty JSON array, never null.
func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items := h.store.ListItems(r.Context())
	writeJSON(w, http.StatusOK, items)
}

// writeStoreError maps a store failure to its documented status code.
// Errors outside the store taxonomy are internal faults: logged, and fatal
// to the request only.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Errorf("store error: %v", err)
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError serializes an {"error": message} body with the given status code.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// ensureSingleJSON ensures only a single JSON object is in the request body.
func ensureSingleJSON(dec *json.Decoder) error {
	// Check for extra JSON tokens
	if t, err := dec.Token(); err != io.EOF || t != nil {
		return fmt.Errorf("request body must only contain a single JSON object")
	}
	return nil
}
