package model

import "time"

// Audit actions recorded by the engine.
const (
	AuditActionDispatch         = "alert_dispatch"
	AuditActionAcknowledge      = "alert_acknowledge"
	AuditActionAcknowledgeAll   = "alert_acknowledge_all"
	AuditActionPreferenceChange = "preference_change"
	AuditActionAuditView        = "audit_view"
)

// Audit outcomes.
const (
	AuditOutcomeOK     = "ok"
	AuditOutcomeDenied = "denied"
)

// AuditEntry is one immutable line of the audit trail. Entries are
// append-only; the engine never mutates or deletes them.
type AuditEntry struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}
