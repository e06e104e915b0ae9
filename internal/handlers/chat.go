package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ukydev/fleet-demand-ops/internal/chat"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// ChatHandler handles chat channel requests
type ChatHandler struct {
	chat  *chat.Service
	store *store.Store
}

// NewChatHandler creates a new chat handler
func NewChatHandler(svc *chat.Service, st *store.Store) *ChatHandler {
	return &ChatHandler{
		chat:  svc,
		store: st,
	}
}

// Messages returns one channel's history.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	channel := models.Channel(r.URL.Query().Get("channel"))
	messages, err := h.chat.History(channel)
	if err != nil {
		http.Error(w, "Invalid channel", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// Send posts a message to a channel.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
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
		Channel  models.Channel `json:"channel"`
		Message  string         `json:"message"`
		DemandID int64          `json:"demandId"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.chat.SendMessage(actor, req.Channel, req.Message, req.DemandID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidChannel):
			http.Error(w, "Invalid channel", http.StatusBadRequest)
		case errors.Is(err, chat.ErrEmptyMessage):
			http.Error(w, "Message text is required", http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}
