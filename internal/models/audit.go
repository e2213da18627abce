package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Admin action types recorded in the audit log.
const (
	AuditTopUp  = "wallet_topup"
	AuditSetCap = "wallet_set_cap"
	AuditRenew  = "wallet_renewal"
)

// AdminAuditDB records one privileged wallet mutation: who did it, to which
// tenant, and the wallet state before and after.
type AdminAuditDB struct {
	ID        int64           `json:"id" db:"id"`
	ActorID   uuid.UUID       `json:"actor_id" db:"actor_id"`
	TenantID  uuid.UUID       `json:"tenant_id" db:"tenant_id"`
	Action    string          `json:"action" db:"action"`
	Before    json.RawMessage `json:"before,omitempty" db:"before_state"`
	After     json.RawMessage `json:"after,omitempty" db:"after_state"`
	Reason    string          `json:"reason" db:"reason"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
