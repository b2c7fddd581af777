package walletservice

import (
	"context"
	"errors"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	FindByID(ctx context.Context, id int) (*domain.Wallet, error)
	DebitBalance(ctx context.Context, walletID int, amount float64) (float64, error)
	CreditBalance(ctx context.Context, walletID int, amount float64) (float64, error)
}

type TransactionRepo interface {
	Save(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByWalletID(ctx context.Context, walletID int) ([]domain.Transaction, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type AuditService interface {
	Log(ctx context.Context, user *domain.User, action, status string, oldBalance, newBalance *float64)
}

type Notifier interface {
	PublishBalance(walletID int, balance float64)
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	audit           AuditService
	notifier        Notifier
	txManager       pg.TXManager
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, userRepo UserRepo, audit AuditService, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		audit:           audit,
		notifier:        notifier,
		txManager:       txManager,
	}
}

// Transfer moves amount from the caller's wallet into toWalletID. Both
// balance updates and the transaction record commit in one unit of work;
// the audit entries and balance notifications happen after the commit and
// cannot fail the transfer.
func (s *Service) Transfer(ctx context.Context, userID, toWalletID int, amount float64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	srcWallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find sender wallet", zap.Error(err))
		return nil, err
	}
	if user == nil || srcWallet == nil {
		return nil, domain.ErrWalletNotFound
	}

	dstWallet, err := s.walletRepo.FindByID(ctx, toWalletID)
	if err != nil {
		zap.L().Error("can't find recipient wallet", zap.Error(err))
		return nil, err
	}
	if dstWallet == nil {
		return nil, domain.ErrWalletNotFound
	}
	if dstWallet.ID == srcWallet.ID {
		return nil, domain.ErrSameWallet
	}

	if srcWallet.Balance < amount {
		s.audit.Log(ctx, user, domain.AuditActionTransfer, domain.AuditStatusFailure, &srcWallet.Balance, nil)
		return nil, domain.ErrInsufficientBalance
	}

	transaction := &domain.Transaction{
		FromWalletID: srcWallet.ID,
		ToWalletID:   dstWallet.ID,
		Amount:       amount,
	}

	var newSrcBalance, newDstBalance float64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Wallet rows are always touched in ascending id order, so two
		// overlapping transfers over the same pair cannot deadlock.
		if srcWallet.ID < dstWallet.ID {
			if newSrcBalance, err = s.walletRepo.DebitBalance(ctx, srcWallet.ID, amount); err != nil {
				return err
			}
			if newDstBalance, err = s.walletRepo.CreditBalance(ctx, dstWallet.ID, amount); err != nil {
				return err
			}
		} else {
			if newDstBalance, err = s.walletRepo.CreditBalance(ctx, dstWallet.ID, amount); err != nil {
				return err
			}
			if newSrcBalance, err = s.walletRepo.DebitBalance(ctx, srcWallet.ID, amount); err != nil {
				return err
			}
		}
		if transaction, err = s.transactionRepo.Save(ctx, transaction); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		// a concurrent debit can still win the race between the balance
		// check above and the guarded update inside the transaction
		if errors.Is(err, domain.ErrInsufficientBalance) {
			s.audit.Log(ctx, user, domain.AuditActionTransfer, domain.AuditStatusFailure, &srcWallet.Balance, nil)
			return nil, domain.ErrInsufficientBalance
		}
		zap.L().Error("transfer failed", zap.Error(err))
		return nil, err
	}

	recipient, err := s.userRepo.FindByID(ctx, dstWallet.UserID)
	if err != nil {
		zap.L().Error("can't resolve recipient for audit", zap.Error(err))
		recipient = nil
	}

	srcOldBalance := newSrcBalance + amount
	dstOldBalance := newDstBalance - amount
	s.audit.Log(ctx, user, domain.AuditActionTransfer, domain.AuditStatusSuccess, &srcOldBalance, &newSrcBalance)
	s.audit.Log(ctx, recipient, domain.AuditActionTransfer, domain.AuditStatusSuccess, &dstOldBalance, &newDstBalance)

	s.notifier.PublishBalance(srcWallet.ID, newSrcBalance)
	s.notifier.PublishBalance(dstWallet.ID, newDstBalance)

	return transaction, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.TransactionView, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}

	transactions, err := s.transactionRepo.FindByWalletID(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("can't fetch transactions", zap.Error(err))
		return nil, err
	}

	views := make([]domain.TransactionView, len(transactions))
	for i, transaction := range transactions {
		direction := domain.TransactionTypeCredit
		if transaction.FromWalletID == wallet.ID {
			direction = domain.TransactionTypeDebit
		}
		views[i] = domain.TransactionView{
			Transaction: transaction,
			Type:        direction,
		}
	}
	return views, nil
}
