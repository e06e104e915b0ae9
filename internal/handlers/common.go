package handlers

import (
	"net/http"

	"github.com/ukydev/fleet-demand-ops/internal/middleware"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// actingUser resolves the authenticated request to its full user record.
// Claims only carry a snapshot from login time; role or sector changes made
// since then must take effect immediately, so the store copy wins.
func actingUser(st *store.Store, r *http.Request) (models.User, bool) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, false
	}
	return st.UserByID(claims.UserID)
}
