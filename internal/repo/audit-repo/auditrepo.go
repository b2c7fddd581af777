package auditrepo

import (
	"context"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Append writes one audit entry in its own transaction. The manager always
// opens a fresh unit of work, so the append commits or rolls back on its own
// regardless of what the operation that produced the entry ends up doing.
func (r *Repository) Append(ctx context.Context, entry *domain.AuditLog) error {
	query := `
        INSERT INTO audit_logs (user_id, username, action_type, status, old_balance, new_balance)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			entry.UserID, entry.Username, entry.ActionType, entry.Status, entry.OldBalance, entry.NewBalance,
		).Scan(&entry.ID)
		if err != nil {
			zap.L().Error("can't append audit log", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
