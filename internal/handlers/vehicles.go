package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/policy"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// VehicleHandler handles vehicle stock requests
type VehicleHandler struct {
	store *store.Store
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(st *store.Store) *VehicleHandler {
	return &VehicleHandler{store: st}
}

// ListVehicles returns the full vehicle stock.
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Vehicles())
}

// AddVehicle adds a new vehicle to the stock. Admin only.
func (h *VehicleHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if !policy.CanManageVehicles(actor) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	var req struct {
		Model        string `json:"model"`
		Registration string `json:"registration"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Model == "" || req.Registration == "" {
		http.Error(w, "Model and registration are required", http.StatusBadRequest)
		return
	}
	if _, exists := h.store.VehicleByRegistration(req.Registration); exists {
		http.Error(w, "Registration already exists", http.StatusConflict)
		return
	}

	vehicle := h.store.AddVehicle(req.Model, req.Registration)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vehicle)
}

// RemoveVehicle deletes a vehicle from the stock. Admin only.
func (h *VehicleHandler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if !policy.CanManageVehicles(actor) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.RemoveVehicle(req.ID); err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetVehicleStatus updates a vehicle's stock status. Admin only.
func (h *VehicleHandler) SetVehicleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if !policy.CanManageVehicles(actor) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	var req struct {
		ID     int64                `json:"id"`
		Status models.VehicleStatus `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidVehicleStatus(req.Status) {
		http.Error(w, "Invalid vehicle status", http.StatusBadRequest)
		return
	}

	if err := h.store.SetVehicleStatus(req.ID, req.Status); err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
