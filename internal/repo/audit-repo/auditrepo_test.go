package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Append(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	userID := 1
	oldBalance := 1000.00
	newBalance := 800.00

	tests := []struct {
		name      string
		entry     *domain.AuditLog
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Entry appended in its own transaction",
			entry: &domain.AuditLog{
				UserID:     &userID,
				Username:   "Alice",
				ActionType: domain.AuditActionTransfer,
				Status:     domain.AuditStatusSuccess,
				OldBalance: &oldBalance,
				NewBalance: &newBalance,
			},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				rows := pgxmock.NewRows([]string{"id"}).AddRow(10)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_logs (user_id, username, action_type, status, old_balance, new_balance) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)).
					WithArgs(&userID, "Alice", domain.AuditActionTransfer, domain.AuditStatusSuccess, &oldBalance, &newBalance).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Entry without a user",
			entry: &domain.AuditLog{
				Username:   domain.AuditUnknownUser,
				ActionType: domain.AuditActionLogin,
				Status:     domain.AuditStatusFailure,
			},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				rows := pgxmock.NewRows([]string{"id"}).AddRow(11)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_logs (user_id, username, action_type, status, old_balance, new_balance) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)).
					WithArgs(nil, domain.AuditUnknownUser, domain.AuditActionLogin, domain.AuditStatusFailure, nil, nil).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Insert fails",
			entry: &domain.AuditLog{
				UserID:     &userID,
				Username:   "Alice",
				ActionType: domain.AuditActionLogin,
				Status:     domain.AuditStatusSuccess,
			},
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_logs (user_id, username, action_type, status, old_balance, new_balance) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)).
					WithArgs(&userID, "Alice", domain.AuditActionLogin, domain.AuditStatusSuccess, nil, nil).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Append(context.Background(), tt.entry)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.entry.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
