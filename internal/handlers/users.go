package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ukydev/fleet-demand-ops/internal/auth"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/policy"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// UserHandler handles user administration requests
type UserHandler struct {
	authService *auth.Service
	store       *store.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, st *store.Store) *UserHandler {
	return &UserHandler{
		authService: authService,
		store:       st,
	}
}

// ListUsers returns every user account
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Users())
}

// CreateUser creates a new account. Admin only.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	actor, ok := actingUser(h.store, r)
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if !policy.CanManageUsers(actor) {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var createReq models.CreateUserRequest
	if err := json.Unmarshal(body, &createReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if createReq.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if err := h.authService.ValidateEmail(createReq.Email); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.authService.ValidatePassword(createReq.Password); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidRole(createReq.Role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}
	if !models.IsValidSector(createReq.Sector) {
		http.Error(w, "Invalid sector", http.StatusBadRequest)
		return
	}

	passwordHash, err := h.authService.HashPassword(createReq.Password)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := h.store.AddUser(models.User{
		Name:         createReq.Name,
		Email:        createReq.Email,
		PasswordHash: passwordHash,
		Role:         createReq.Role,
		Sector:       createReq.Sector,
		Phone:        createReq.Phone,
		Theme:        models.ThemeDark,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			http.Error(w, "Email already exists", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}
