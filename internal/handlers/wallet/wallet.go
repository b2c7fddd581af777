package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/dto"
	"github.com/Gautam-Jha-13/ewallet-simulator/pkg/auth"
	"github.com/Gautam-Jha-13/ewallet-simulator/pkg/utils"
	pkgvalidate "github.com/Gautam-Jha-13/ewallet-simulator/pkg/validate"
)

type Service interface {
	Transfer(ctx context.Context, userID, toWalletID int, amount float64) (*domain.Transaction, error)
	GetBalance(ctx context.Context, userID int) (*domain.Wallet, error)
	GetHistory(ctx context.Context, userID int) ([]domain.TransactionView, error)
}

var validate = pkgvalidate.New()

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Transfer godoc
//
//	@Summary		Transfer funds
//	@Description	Move funds from the authenticated user's wallet to another wallet
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	transaction, err := h.walletService.Transfer(r.Context(), userID, req.ToWalletID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrSameWallet), errors.Is(err, domain.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		TransactionID: transaction.ID,
		FromWalletID:  transaction.FromWalletID,
		ToWalletID:    transaction.ToWalletID,
		Amount:        transaction.Amount,
	})
}

// GetBalance godoc
//
//	@Summary		Get current balance
//	@Description	Retrieve the wallet balance for the authenticated user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		WalletID: wallet.ID,
		Balance:  wallet.Balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List the authenticated user's transfers, newest first, labeled DEBIT or CREDIT relative to their wallet
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	history, err := h.walletService.GetHistory(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(history))
	for _, view := range history {
		response = append(response, dto.TransactionResponseDTO{
			ID:           view.ID,
			FromWalletID: view.FromWalletID,
			ToWalletID:   view.ToWalletID,
			Amount:       view.Amount,
			Type:         view.Type,
			CreatedAt:    view.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
