package dto

import (
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open a checking account.
// A nil WithdrawalLimit or MaxWithdrawals falls back to the configured default;
// an explicit zero is kept.
type OpenAccountRequest struct {
	Number          int              `json:"number" validate:"gt=0"`
	Branch          string           `json:"branch" validate:"required"`
	WithdrawalLimit *decimal.Decimal `json:"withdrawalLimit,omitempty" validate:"omitempty,gte=0"`
	MaxWithdrawals  *int             `json:"maxWithdrawals,omitempty" validate:"omitempty,gte=0"`
}

// AccountResponse defines the data returned for a checking account.
type AccountResponse struct {
	Number               int             `json:"number"`
	Branch               string          `json:"branch"`
	Balance              decimal.Decimal `json:"balance"`
	WithdrawalLimit      decimal.Decimal `json:"withdrawalLimit"`
	MaxWithdrawals       int             `json:"maxWithdrawals"`
	Withdrawals          int             `json:"withdrawals"`
	RemainingWithdrawals int             `json:"remainingWithdrawals"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	Number  int             `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}
