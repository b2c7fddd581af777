package dto

import "time"

type TransferRequestDTO struct {
	ToWalletID int     `json:"to_wallet_id" validate:"required,gt=0" example:"2"`
	Amount     float64 `json:"amount" validate:"required,gt=0,scale2" example:"200"`
}

type TransferResponseDTO struct {
	TransactionID int     `json:"transaction_id" example:"101"`
	FromWalletID  int     `json:"from_wallet_id" example:"1"`
	ToWalletID    int     `json:"to_wallet_id" example:"2"`
	Amount        float64 `json:"amount" example:"200"`
}

type BalanceResponseDTO struct {
	WalletID int     `json:"wallet_id" example:"1"`
	Balance  float64 `json:"balance" example:"800"`
}

type TransactionResponseDTO struct {
	ID           int       `json:"id" example:"101"`
	FromWalletID int       `json:"from_wallet_id" example:"1"`
	ToWalletID   int       `json:"to_wallet_id" example:"2"`
	Amount       float64   `json:"amount" example:"200"`
	Type         string    `json:"type" example:"DEBIT"`
	CreatedAt    time.Time `json:"created_at" example:"2024-11-05T16:09:57+03:00"`
}
