package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/ukydev/fleet-demand-ops/internal/engine"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/policy"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// DemandHandler handles demand board requests
type DemandHandler struct {
	engine *engine.Engine
	store  *store.Store
}

// NewDemandHandler creates a new demand handler
func NewDemandHandler(eng *engine.Engine, st *store.Store) *DemandHandler {
	return &DemandHandler{
		engine: eng,
		store:  st,
	}
}

// writeEngineError maps lifecycle errors onto HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, engine.ErrValidation),
		errors.Is(err, engine.ErrUnknownRegistration),
		errors.Is(err, engine.ErrVehicleUnavailable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrDemandLocked),
		errors.Is(err, engine.ErrNoTransition),
		errors.Is(err, engine.ErrInvalidTarget),
		errors.Is(err, engine.ErrNotReserved),
		errors.Is(err, engine.ErrAlreadyArchived):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrDemandNotFound),
		errors.Is(err, store.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// ListDemands returns a sector's active board, optionally filtered by the
// free-text query q.
func (h *DemandHandler) ListDemands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	sector := models.Sector(r.URL.Query().Get("sector"))
	if sector == "" {
		sector = actor.Sector
	}
	if !models.IsValidSector(sector) {
		http.Error(w, "Invalid sector", http.StatusBadRequest)
		return
	}
	if !policy.CanViewSector(actor, sector) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	demands := h.store.ActiveDemands(sector, r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demands)
}

// History returns the completed, archived demands.
func (h *DemandHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.ArchivedDemands())
}

// CreateDemand raises a new demand on the given sector's board.
func (h *DemandHandler) CreateDemand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		Sector models.Sector `json:"sector"`
		models.CreateDemandForm
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.IsValidSector(req.Sector) {
		http.Error(w, "Invalid sector", http.StatusBadRequest)
		return
	}

	demand, err := h.engine.Create(actor, req.Sector, req.CreateDemandForm)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(demand)
}

// LockDemand claims the edit lock ahead of a full edit.
func (h *DemandHandler) LockDemand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		Sector models.Sector `json:"sector"`
		ID     int64         `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	demand, err := h.engine.LockForEdit(actor, req.Sector, req.ID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demand)
}

// SaveDemand merges a partial edit and releases the lock.
func (h *DemandHandler) SaveDemand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		Sector models.Sector `json:"sector"`
		ID     int64         `json:"id"`
		models.DemandUpdate
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	demand, err := h.engine.SaveEdit(actor, req.Sector, req.ID, req.DemandUpdate)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demand)
}

// CancelDemandEdit releases the edit lock without saving.
func (h *DemandHandler) CancelDemandEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.engine.CancelEdit(actor, req.ID)
	w.WriteHeader(http.StatusNoContent)
}

// InitiateHandover starts the two-phase handover and returns the pending
// action naming the target sector.
func (h *DemandHandler) InitiateHandover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pending, err := h.engine.InitiateHandover(actor, req.ID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pending)
}

// ConfirmHandover moves the demand to the confirmed target sector.
func (h *DemandHandler) ConfirmHandover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID     int64         `json:"id"`
		Target models.Sector `json:"target"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	demand, err := h.engine.ConfirmHandover(actor, req.ID, req.Target)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demand)
}

// InitiateCompletion starts the two-phase completion.
func (h *DemandHandler) InitiateCompletion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pending, err := h.engine.InitiateCompletion(actor, req.ID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pending)
}

// ConfirmCompletion archives the demand and puts its vehicle on hire.
func (h *DemandHandler) ConfirmCompletion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	demand, err := h.engine.ConfirmCompletion(actor, req.ID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demand)
}

// QuickEdit changes a single field in place without taking the edit lock.
func (h *DemandHandler) QuickEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		Sector models.Sector `json:"sector"`
		ID     int64         `json:"id"`
		Field  string        `json:"field"`
		Value  string        `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	demand, err := h.engine.QuickEditField(actor, req.Sector, req.ID, req.Field, req.Value)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demand)
}

// AssignDemand sets or clears (userId zero) the demand's assignee.
func (h *DemandHandler) AssignDemand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID     int64 `json:"id"`
		UserID int64 `json:"userId"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	demand, err := h.engine.AssignUser(actor, req.ID, req.UserID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demand)
}

// DemandAudit returns the audit trail, filtered to one demand when the id
// query parameter is present.
func (h *DemandHandler) DemandAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(h.store.AuditLog())
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid demand id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.AuditForDemand(id))
}

// decodeBody reads and unmarshals a JSON request body.
func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("failed to read request body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.New("invalid JSON")
	}
	return nil
}
