package userrepo

import (
	"context"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, "SELECT id, name, email, password_hash FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, "SELECT id, name, email, password_hash FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// CreateWithWallet inserts the user and their wallet as one unit of work.
// A user without a wallet must never be observable.
func (r *Repository) CreateWithWallet(ctx context.Context, user *domain.User, initialBalance float64) (*domain.User, error) {
	userQuery := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	walletQuery := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, userQuery, user.Name, user.Email, user.PasswordHash).Scan(&user.ID)
		if err != nil {
			zap.L().Error("can't save user", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, walletQuery, user.ID, initialBalance); err != nil {
			zap.L().Error("can't save wallet", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
