package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/fleet-demand-ops/internal/auth"
	"github.com/ukydev/fleet-demand-ops/internal/middleware"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *auth.Service
	store       *store.Store
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, st *store.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       st,
	}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var loginReq models.LoginRequest
	if err := json.Unmarshal(body, &loginReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	// Validate input
	if loginReq.Email == "" || loginReq.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	// Find user by email
	user, ok := h.store.UserByEmail(loginReq.Email)
	if !ok {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	// Verify password
	if !h.authService.CheckPassword(loginReq.Password, user.PasswordHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	// Generate token
	token, err := h.authService.GenerateToken(&user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := models.LoginResponse{
		Token: token,
		User:  user,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GetProfile returns the current user's profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	user, ok := h.store.UserByID(claims.UserID)
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpdateProfile updates the current user's profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var updateReq struct {
		Name  string           `json:"name"`
		Email string           `json:"email"`
		Phone string           `json:"phone"`
		Theme models.ThemeName `json:"theme"`
	}

	if err := json.Unmarshal(body, &updateReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if updateReq.Email != "" {
		if err := h.authService.ValidateEmail(updateReq.Email); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// The address must not belong to another account
		existing, ok := h.store.UserByEmail(updateReq.Email)
		if ok && existing.ID != claims.UserID {
			http.Error(w, "Email already exists", http.StatusConflict)
			return
		}
	}
	if updateReq.Theme != "" && !models.IsValidTheme(updateReq.Theme) {
		http.Error(w, "Invalid theme", http.StatusBadRequest)
		return
	}

	user, err := h.store.UpdateUser(claims.UserID, func(u *models.User) error {
		if updateReq.Name != "" {
			u.Name = updateReq.Name
		}
		if updateReq.Email != "" {
			u.Email = updateReq.Email
		}
		if updateReq.Phone != "" {
			u.Phone = updateReq.Phone
		}
		if updateReq.Theme != "" {
			u.Theme = updateReq.Theme
		}
		return nil
	})
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// ChangePassword changes the current user's password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var passwordReq struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	if err := json.Unmarshal(body, &passwordReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if passwordReq.CurrentPassword == "" || passwordReq.NewPassword == "" {
		http.Error(w, "Current password and new password are required", http.StatusBadRequest)
		return
	}

	if err := h.authService.ValidatePassword(passwordReq.NewPassword); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, ok := h.store.UserByID(claims.UserID)
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	// Verify current password
	if !h.authService.CheckPassword(passwordReq.CurrentPassword, user.PasswordHash) {
		http.Error(w, "Current password is incorrect", http.StatusUnauthorized)
		return
	}

	newPasswordHash, err := h.authService.HashPassword(passwordReq.NewPassword)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	_, err = h.store.UpdateUser(claims.UserID, func(u *models.User) error {
		u.PasswordHash = newPasswordHash
		return nil
	})
	if err != nil {
		http.Error(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Password changed successfully"})
}
