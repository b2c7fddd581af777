package auditservice

import (
	"context"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Append(ctx context.Context, entry *domain.AuditLog) error
}

// Service records audit trail entries. Failures are logged and swallowed so
// that auditing never breaks the operation being audited.
type Service struct {
	auditRepo Repo
}

func New(auditRepo Repo) *Service {
	return &Service{auditRepo: auditRepo}
}

// Log appends an audit entry for the given action. A nil user is recorded
// under the "Unknown" username, which happens for failed logins against
// addresses that do not belong to any account.
func (s *Service) Log(ctx context.Context, user *domain.User, action, status string, oldBalance, newBalance *float64) {
	entry := &domain.AuditLog{
		Username:   domain.AuditUnknownUser,
		ActionType: action,
		Status:     status,
		OldBalance: oldBalance,
		NewBalance: newBalance,
	}
	if user != nil {
		entry.UserID = &user.ID
		entry.Username = user.Name
	}

	if err := s.auditRepo.Append(ctx, entry); err != nil {
		zap.L().Error("Failed to append audit entry",
			zap.String("action", action),
			zap.String("status", status),
			zap.Error(err),
		)
	}
}
