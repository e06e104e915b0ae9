// Package recorder is the single write path for audit entries and system
// notifications. The lifecycle engine and the chat service never touch the
// feeds directly; everything goes through here so each event is stored and
// fanned out exactly once.
package recorder

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-demand-ops/internal/events"
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

// Recorder appends to the audit log and the notification list and mirrors
// each event to the wallboard publisher.
type Recorder struct {
	store *store.Store
	pub   *events.Publisher
	log   *logrus.Logger
}

// New creates a recorder. pub may be nil when no broker is configured.
func New(st *store.Store, pub *events.Publisher, log *logrus.Logger) *Recorder {
	return &Recorder{store: st, pub: pub, log: log}
}

// Audit records one demand mutation, attributed to actor.
func (r *Recorder) Audit(d models.DemandEntry, action, details, actor string) models.AuditLog {
	entry := r.store.AppendAudit(models.AuditLog{
		DemandID:       d.ID,
		DemandProclaim: d.Proclaim,
		User:           actor,
		Action:         action,
		Details:        details,
	})
	r.pub.PublishAudit(entry)
	r.log.WithFields(logrus.Fields{
		"demand_id": entry.DemandID,
		"action":    entry.Action,
		"user":      entry.User,
	}).Info("Audit entry recorded")
	return entry
}

// Notify pushes a system notification onto the feed.
func (r *Recorder) Notify(message string) models.NotificationItem {
	item := r.store.PushNotification(message)
	r.pub.PublishNotification(item)
	return item
}

// NotifyMention pushes a mention notification and bumps the unread-mention
// counter that drives the chat badge.
func (r *Recorder) NotifyMention(author models.User, target models.User, channel models.Channel) models.NotificationItem {
	r.store.IncrementUnreadMentions()
	message := fmt.Sprintf("%s mentioned %s in %s", author.Name, target.Name, channel)
	return r.Notify(message)
}

// OpenPanel marks every notification read, clears the unread-mention badge
// and returns the feed. Both effects happen atomically in the store.
func (r *Recorder) OpenPanel() []models.NotificationItem {
	return r.store.MarkNotificationsRead()
}
