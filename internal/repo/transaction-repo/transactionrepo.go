package transactionrepo

import (
	"context"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
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

func (r *Repository) Save(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (from_wallet_id, to_wallet_id, amount)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, transaction.FromWalletID, transaction.ToWalletID, transaction.Amount).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByWalletID(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, from_wallet_id, to_wallet_id, amount, created_at
        FROM transactions
        WHERE from_wallet_id = $1 OR to_wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(&transaction.ID, &transaction.FromWalletID, &transaction.ToWalletID, &transaction.Amount, &transaction.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
