package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Balance   float64   `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

type Transaction struct {
	ID           int       `db:"id"`
	FromWalletID int       `db:"from_wallet_id"`
	ToWalletID   int       `db:"to_wallet_id"`
	Amount       float64   `db:"amount"`
	CreatedAt    time.Time `db:"created_at"`
}

type AuditLog struct {
	ID         int       `db:"id"`
	UserID     *int      `db:"user_id"`
	Username   string    `db:"username"`
	ActionType string    `db:"action_type"`
	Status     string    `db:"status"`
	OldBalance *float64  `db:"old_balance"`
	NewBalance *float64  `db:"new_balance"`
	CreatedAt  time.Time `db:"created_at"`
}

// TransactionView is a transaction annotated with its direction from the
// requesting wallet owner's perspective.
type TransactionView struct {
	Transaction
	Type string
}

// audit action types
const (
	AuditActionRegister = "REGISTER"
	AuditActionLogin    = "LOGIN"
	AuditActionTransfer = "TRANSFER"
)

// audit statuses
const (
	AuditStatusSuccess = "SUCCESS"
	AuditStatusFailure = "FAILURE"
)

// transaction direction from the wallet owner's point of view
const (
	TransactionTypeDebit  = "DEBIT"
	TransactionTypeCredit = "CREDIT"
)

// AuditUnknownUser is recorded when the acting user could not be resolved,
// e.g. a login attempt with an unregistered email.
const AuditUnknownUser = "Unknown"
