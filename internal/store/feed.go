package store

import (
	"time"

	"github.com/ukydev/fleet-demand-ops/internal/models"
)

// --- Chat ---

// Messages returns one channel's history in chronological order.
func (s *Store) Messages(channel models.Channel) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMessages(s.chat[channel])
}

// AppendMessage appends a message to its channel, assigning the id and
// timestamp when unset.
func (s *Store) AppendMessage(msg models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.ID == 0 {
		msg.ID = s.newID()
	}
	if msg.Timestamp == "" {
		msg.Timestamp = time.Now().Format(models.ClockLayout)
	}
	s.chat[msg.Channel] = append(s.chat[msg.Channel], msg)
	return msg
}

// --- Audit log ---

// AppendAudit prepends an audit entry. The log is append-only and unbounded;
// entries are never mutated or removed.
func (s *Store) AppendAudit(entry models.AuditLog) models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == 0 {
		entry.ID = s.newID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	s.audit = append([]models.AuditLog{entry}, s.audit...)
	return entry
}

// AuditLog returns the full audit trail, newest first.
func (s *Store) AuditLog() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditLog(nil), s.audit...)
}

// AuditForDemand returns the audit entries of one demand, newest first.
func (s *Store) AuditForDemand(demandID int64) []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.AuditLog
	for _, entry := range s.audit {
		if entry.DemandID == demandID {
			out = append(out, entry)
		}
	}
	return out
}

// --- Notifications ---

// PushNotification prepends an unread notification and evicts the oldest
// entries beyond the cap of twenty.
func (s *Store) PushNotification(message string) models.NotificationItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := models.NotificationItem{
		ID:        s.newID(),
		Message:   message,
		Timestamp: time.Now().Format(models.ClockLayout),
	}
	s.notifications = append([]models.NotificationItem{item}, s.notifications...)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[:maxNotifications]
	}
	return item
}

// Notifications returns the notification list, newest first.
func (s *Store) Notifications() []models.NotificationItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NotificationItem(nil), s.notifications...)
}

// MarkNotificationsRead flags every notification as read and resets the
// unread-mention counter. This is the panel-open side effect: both happen
// under one lock acquisition.
func (s *Store) MarkNotificationsRead() []models.NotificationItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.unreadMentions = 0
	return append([]models.NotificationItem(nil), s.notifications...)
}

// IncrementUnreadMentions bumps the unread-mention counter.
func (s *Store) IncrementUnreadMentions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unreadMentions++
}

// UnreadMentions returns the current unread-mention count.
func (s *Store) UnreadMentions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadMentions
}
