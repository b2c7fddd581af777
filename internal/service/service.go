package service

import (
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/handlers/auth"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/handlers/wallet"

	pkgauth "github.com/Gautam-Jha-13/ewallet-simulator/pkg/auth"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/pg"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/repo"
	auditservice "github.com/Gautam-Jha-13/ewallet-simulator/internal/service/auditservice"
	authservice "github.com/Gautam-Jha-13/ewallet-simulator/internal/service/authservice"
	walletservice "github.com/Gautam-Jha-13/ewallet-simulator/internal/service/walletservice"
)

type Services struct {
	AuthService   auth.Service
	WalletService wallet.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier walletservice.Notifier, sessions authservice.SessionCache) *Services {
	auditService := auditservice.New(repo.AuditRepo)
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, repo.UserRepo, auditService, notifier, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, auditService, sessions)

	return &Services{
		AuthService:   authService,
		WalletService: walletService,
	}
}
