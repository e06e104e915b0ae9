package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ukydev/fleet-demand-ops/internal/auth"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/policy"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// SystemHandler handles dashboard-wide requests: the summary counts, the
// home page copy, sector switching and the full state snapshot.
type SystemHandler struct {
	authService *auth.Service
	store       *store.Store
	startedAt   time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(authService *auth.Service, st *store.Store) *SystemHandler {
	return &SystemHandler{
		authService: authService,
		store:       st,
		startedAt:   time.Now(),
	}
}

// Health reports service liveness.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}

// Summary returns the active demand count per sector plus the archive size.
func (h *SystemHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	counts := make(map[models.Sector]int, len(models.Sectors))
	archived := 0
	for _, d := range h.store.Demands() {
		if d.IsArchived {
			archived++
			continue
		}
		counts[d.CurrentSector]++
	}

	stock := make(map[models.VehicleStatus]int)
	for _, v := range h.store.Vehicles() {
		stock[v.Status]++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sectors":  counts,
		"archived": archived,
		"vehicles": stock,
	})
}

// HomeContent returns the landing page copy.
func (h *SystemHandler) HomeContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.HomeContent())
}

// UpdateHomeContent replaces the landing page copy. Admin only.
func (h *SystemHandler) UpdateHomeContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if !policy.CanEditHome(actor) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	var content models.HomePageContent
	if err := decodeBody(r, &content); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.store.SetHomeContent(content)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.HomeContent())
}

// SwitchSector authorizes a change of the actor's viewed sector. Admins
// switch freely; supervisors must present the shared passphrase; plain
// users are refused outright.
func (h *SystemHandler) SwitchSector(w http.ResponseWriter, r *http.Request) {
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
		Sector   models.Sector `json:"sector"`
		Password string        `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidSector(req.Sector) {
		http.Error(w, "Invalid sector", http.StatusBadRequest)
		return
	}

	passphraseOK := h.authService.CheckSupervisorPassword(req.Password)
	if !policy.CanSwitchSector(actor, req.Sector, passphraseOK) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sector":  req.Sector,
		"granted": true,
	})
}

// Snapshot returns the full board state in one consistent read.
func (h *SystemHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Snapshot())
}
