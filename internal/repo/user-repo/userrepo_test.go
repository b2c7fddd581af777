package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"github.com/jackc/pgx/v5"
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

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing email returns user",
			email: "alice@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash"}).
					AddRow(1, "Alice", "alice@example.com", "hashedPassword")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE email = $1`)).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Name:         "Alice",
				Email:        "alice@example.com",
				PasswordHash: "hashedPassword",
			},
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "alice@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE email = $1`)).
					WithArgs("alice@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Existing id returns user",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash"}).
					AddRow(1, "Alice", "alice@example.com", "hashedPassword")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Name:         "Alice",
				Email:        "alice@example.com",
				PasswordHash: "hashedPassword",
			},
		},
		{
			name: "Unknown id returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password_hash FROM users WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateWithWallet(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	tests := []struct {
		name           string
		user           *domain.User
		initialBalance float64
		mockSetup      func()
		expectErr      bool
	}{
		{
			name:           "User and wallet created together",
			user:           &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hashedPassword"},
			initialBalance: 1000.00,
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`)).
					WithArgs("Alice", "alice@example.com", "hashedPassword").
					WillReturnRows(rows)
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wallets (user_id, balance) VALUES ($1, $2)`)).
					WithArgs(1, 1000.00).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:           "User insert fails",
			user:           &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hashedPassword"},
			initialBalance: 1000.00,
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`)).
					WithArgs("Alice", "alice@example.com", "hashedPassword").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:           "Wallet insert fails",
			user:           &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hashedPassword"},
			initialBalance: 1000.00,
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`)).
					WithArgs("Alice", "alice@example.com", "hashedPassword").
					WillReturnRows(rows)
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wallets (user_id, balance) VALUES ($1, $2)`)).
					WithArgs(1, 1000.00).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.CreateWithWallet(context.Background(), tt.user, tt.initialBalance)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
