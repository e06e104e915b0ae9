package models

import "time"

// Audit action labels written by the lifecycle engine.
const (
	ActionCreate     = "Create"
	ActionUpdate     = "Update"
	ActionHandover   = "Handover"
	ActionComplete   = "Complete"
	ActionQuickEdit  = "Quick Edit"
	ActionAssignment = "Assignment"
)

// AuditLog is an immutable record of a demand mutation. Entries are
// append-only and always attributable to an authenticated actor.
type AuditLog struct {
	ID             int64     `json:"id"`
	DemandID       int64     `json:"demandId"`
	DemandProclaim string    `json:"demandProclaim"`
	User           string    `json:"user"`
	Action         string    `json:"action"`
	Timestamp      time.Time `json:"timestamp"`
	Details        string    `json:"details"`
}

// NotificationItem is a transient system notification. The recorder keeps
// the most recent twenty and evicts the oldest beyond that.
type NotificationItem struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}
