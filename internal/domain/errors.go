package domain

import "errors"

var (
	ErrUserExists          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrBalanceBelowMinimum = errors.New("initial balance must be at least 1000")

	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSameWallet          = errors.New("cannot transfer to your own wallet")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)
