package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ukydev/fleet-demand-ops/internal/models"
)

var (
	ErrDemandNotFound  = errors.New("demand not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrEmailExists     = errors.New("email already exists")
)

// maxNotifications caps the transient notification list.
const maxNotifications = 20

// Store is the single source of truth for all entity collections. Every
// collection lives in process memory; nothing is persisted. Accessors hand
// out copies so callers can never mutate shared state behind the lock.
type Store struct {
	mu     sync.RWMutex
	nextID int64

	users          []models.User
	vehicles       []models.Vehicle
	demands        []models.DemandEntry
	chat           map[models.Channel][]models.ChatMessage
	audit          []models.AuditLog
	notifications  []models.NotificationItem
	unreadMentions int
	home           models.HomePageContent
}

// New creates an empty store.
func New() *Store {
	return &Store{
		chat: make(map[models.Channel][]models.ChatMessage),
	}
}

// newID returns a creation-time id: the current unix millisecond timestamp,
// bumped when two allocations land on the same millisecond. Callers must
// hold s.mu.
func (s *Store) newID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.nextID {
		id = s.nextID + 1
	}
	s.nextID = id
	return id
}

// Snapshot is a consistent, caller-owned view of every collection.
type Snapshot struct {
	Users          []models.User                           `json:"users"`
	Vehicles       []models.Vehicle                        `json:"vehicles"`
	Demands        []models.DemandEntry                    `json:"demands"`
	ChatMessages   map[models.Channel][]models.ChatMessage `json:"chatMessages"`
	AuditLog       []models.AuditLog                       `json:"auditLog"`
	Notifications  []models.NotificationItem               `json:"notifications"`
	UnreadMentions int                                     `json:"unreadMentions"`
	HomePage       models.HomePageContent                  `json:"homePage"`
}

// Snapshot returns a copy of the full store state under one read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chat := make(map[models.Channel][]models.ChatMessage, len(s.chat))
	for ch, msgs := range s.chat {
		chat[ch] = copyMessages(msgs)
	}
	return Snapshot{
		Users:          append([]models.User(nil), s.users...),
		Vehicles:       append([]models.Vehicle(nil), s.vehicles...),
		Demands:        copyDemands(s.demands),
		ChatMessages:   chat,
		AuditLog:       append([]models.AuditLog(nil), s.audit...),
		Notifications:  append([]models.NotificationItem(nil), s.notifications...),
		UnreadMentions: s.unreadMentions,
		HomePage:       copyHome(s.home),
	}
}

// --- Users ---

// Users returns all users, newest first.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// UserByID finds a user by id.
func (s *Store) UserByID(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail finds a user by email, case-insensitively.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser inserts a new user. The email must not collide with an existing
// account; the comparison is case-insensitive.
func (s *Store) AddUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, ErrEmailExists
		}
	}
	if user.ID == 0 {
		user.ID = s.newID()
	}
	s.users = append([]models.User{user}, s.users...)
	return user, nil
}

// UpdateUser applies fn to the stored user under the write lock and returns
// the updated copy.
func (s *Store) UpdateUser(id int64, fn func(*models.User) error) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			if err := fn(&s.users[i]); err != nil {
				return models.User{}, err
			}
			return s.users[i], nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// --- Vehicles ---

// Vehicles returns the full vehicle stock.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Vehicle(nil), s.vehicles...)
}

// VehicleByID finds a vehicle by id.
func (s *Store) VehicleByID(id int64) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// VehicleByRegistration finds a vehicle by its registration, the stock's
// natural key. Matching is case-insensitive.
func (s *Store) VehicleByRegistration(registration string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if strings.EqualFold(v.Registration, registration) {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// AddVehicle appends a new vehicle to the stock with status available.
func (s *Store) AddVehicle(model, registration string) models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := models.Vehicle{
		ID:           s.newID(),
		Model:        model,
		Registration: registration,
		Status:       models.VehicleAvailable,
	}
	s.vehicles = append(s.vehicles, v)
	return v
}

// RemoveVehicle deletes a vehicle from the stock.
func (s *Store) RemoveVehicle(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vehicles {
		if v.ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return nil
		}
	}
	return ErrVehicleNotFound
}

// SetVehicleStatus updates a vehicle's stock status.
func (s *Store) SetVehicleStatus(id int64, status models.VehicleStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			s.vehicles[i].Status = status
			return nil
		}
	}
	return ErrVehicleNotFound
}

// --- Home page ---

// HomeContent returns the current home page copy.
func (s *Store) HomeContent() models.HomePageContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyHome(s.home)
}

// SetHomeContent replaces the home page copy.
func (s *Store) SetHomeContent(content models.HomePageContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.home = copyHome(content)
}

// --- copy helpers ---

func copyDemand(d models.DemandEntry) models.DemandEntry {
	d.Tags = append([]models.Tag(nil), d.Tags...)
	return d
}

func copyDemands(in []models.DemandEntry) []models.DemandEntry {
	out := make([]models.DemandEntry, len(in))
	for i, d := range in {
		out[i] = copyDemand(d)
	}
	return out
}

func copyMessages(in []models.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, len(in))
	for i, m := range in {
		m.Mentions = append([]int64(nil), m.Mentions...)
		out[i] = m
	}
	return out
}

func copyHome(h models.HomePageContent) models.HomePageContent {
	h.Updates = append([]models.UpdateItem(nil), h.Updates...)
	return h
}
