package dto

import (
	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommandType names one discrete operation a caller can request.
type CommandType string

const (
	CommandDeposit   CommandType = "deposit"
	CommandWithdraw  CommandType = "withdraw"
	CommandBalance   CommandType = "balance"
	CommandStatement CommandType = "statement"
)

// Command is a single request against a session's account.
// Amount is only read for deposit and withdraw.
type Command struct {
	Type   CommandType     `json:"type" validate:"required,oneof=deposit withdraw balance statement"`
	Amount decimal.Decimal `json:"amount"`
}

// Session is the caller-held state: who is operating on which account.
// The service keeps no session state of its own.
type Session struct {
	ID      string                  `json:"id"`
	Client  domain.Client           `json:"-" validate:"required"`
	Account *domain.CheckingAccount `json:"-" validate:"required"`
}

// CommandResult is the outcome of one Command. Account holds the balance
// after the command ran.
// Domain rule failures are reported here with Success=false and Err set.
type CommandResult struct {
	Command   CommandType            `json:"command"`
	RequestID string                 `json:"requestId,omitempty"`
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	Account   AccountBalanceResponse `json:"account"`
	Entries   []string               `json:"entries,omitempty"`
	Err       error                  `json:"-"`
}
