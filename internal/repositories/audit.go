package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// AuditLogRepository appends admin action entries. Like the ledger, the
// audit log is append-only.
type AuditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Save appends one audit entry and fills in the generated id and timestamp.
func (r *AuditLogRepository) Save(ctx context.Context, entry *models.AdminAuditDB) error {
	const query = `
		INSERT INTO admin_audit_log (actor_id, tenant_id, action, before_state, after_state, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	return executor(ctx, r.db).QueryRowxContext(ctx, query,
		entry.ActorID, entry.TenantID, entry.Action, entry.Before, entry.After, entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)
}
