package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newSim(baseURL string) *simulator {
	return &simulator{
		baseURL: baseURL,
		token:   "test-token",
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	defer srv.Close()

	sim := newSim(srv.URL)
	if err := sim.login("admin@example.com", "admin"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sim.token != "issued-token" {
		t.Errorf("token = %q, want issued-token", sim.token)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	sim := newSim(srv.URL)
	if err := sim.login("admin@example.com", "wrong"); err == nil {
		t.Fatal("expected login error")
	}
}

func TestPickAvailableRegistration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"registration": "AA11AAA", "status": "on_hire"},
			{"registration": "BB22BBB", "status": "available"},
		})
	}))
	defer srv.Close()

	sim := newSim(srv.URL)
	if got := sim.pickAvailableRegistration(); got != "BB22BBB" {
		t.Errorf("pickAvailableRegistration() = %q, want BB22BBB", got)
	}
}

func TestPickAvailableRegistrationEmptyStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{})
	}))
	defer srv.Close()

	sim := newSim(srv.URL)
	if got := sim.pickAvailableRegistration(); got != "" {
		t.Errorf("pickAvailableRegistration() = %q, want empty", got)
	}
}

func TestPostSurfacesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "registration not found in vehicle stock", http.StatusBadRequest)
	}))
	defer srv.Close()

	sim := newSim(srv.URL)
	if err := sim.post("/api/demands/create", map[string]string{}); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
