package walletrepo

import (
	"context"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE user_id = $1
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find wallet by user id", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE id = $1
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, id).Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find wallet by id", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// DebitBalance subtracts amount from the wallet and returns the new balance.
// The update only matches when the wallet still holds enough funds, so a
// concurrent debit that got there first makes this one fail instead of
// driving the balance negative. The matched row stays locked until the
// surrounding transaction commits.
func (r *Repository) DebitBalance(ctx context.Context, walletID int, amount float64) (float64, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `
	var balance float64
	err := r.db.QueryRow(ctx, query, amount, walletID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrInsufficientBalance
		}
		zap.L().Error("can't debit wallet", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// CreditBalance adds amount to the wallet and returns the new balance.
func (r *Repository) CreditBalance(ctx context.Context, walletID int, amount float64) (float64, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	var balance float64
	err := r.db.QueryRow(ctx, query, amount, walletID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrWalletNotFound
		}
		zap.L().Error("can't credit wallet", zap.Error(err))
		return 0, err
	}
	return balance, nil
}
