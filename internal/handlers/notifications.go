package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ukydev/fleet-demand-ops/internal/recorder"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// NotificationHandler handles the notification feed
type NotificationHandler struct {
	recorder *recorder.Recorder
	store    *store.Store
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(rec *recorder.Recorder, st *store.Store) *NotificationHandler {
	return &NotificationHandler{
		recorder: rec,
		store:    st,
	}
}

// List returns the feed and the unread-mention badge count without touching
// read state.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"notifications":  h.store.Notifications(),
		"unreadMentions": h.store.UnreadMentions(),
	})
}

// OpenPanel marks the feed read and clears the mention badge, returning the
// updated feed.
func (h *NotificationHandler) OpenPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := h.recorder.OpenPanel()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"notifications":  items,
		"unreadMentions": 0,
	})
}
