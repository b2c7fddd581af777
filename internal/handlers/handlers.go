package handlers

import (
	"net/http"

	_ "github.com/Gautam-Jha-13/ewallet-simulator/docs"
	authhandlers "github.com/Gautam-Jha-13/ewallet-simulator/internal/handlers/auth"
	wallethandlers "github.com/Gautam-Jha-13/ewallet-simulator/internal/handlers/wallet"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/service"
	"github.com/Gautam-Jha-13/ewallet-simulator/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Transfer(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})
	r.Route("/api/wallet", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/transfer", h.WalletHandler.Transfer)
		r.Get("/balance", h.WalletHandler.GetBalance)
		r.Get("/transactions", h.WalletHandler.GetTransactions)
	})

	return r
}
