package repo

import (
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	auditrepo "github.com/Gautam-Jha-13/ewallet-simulator/internal/repo/audit-repo"
	transactionrepo "github.com/Gautam-Jha-13/ewallet-simulator/internal/repo/transaction-repo"
	userrepo "github.com/Gautam-Jha-13/ewallet-simulator/internal/repo/user-repo"
	walletrepo "github.com/Gautam-Jha-13/ewallet-simulator/internal/repo/wallet-repo"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/service/auditservice"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/service/walletservice"
)

type Repositories struct {
	// serves both the auth service and the transfer engine's user lookups
	UserRepo        *userrepo.Repository
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	AuditRepo       auditservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn, txManager)
	walletRepo := walletrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	auditRepo := auditrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:        userRepo,
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		AuditRepo:       auditRepo,
	}
}
