package domain

import (
	"fmt"
	"sync"

	"github.com/SscSPs/simple_banking_system/internal/apperrors"
	"github.com/SscSPs/simple_banking_system/internal/utils"
	"github.com/shopspring/decimal"
)

// Account is the capability every account type provides.
type Account interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Balance() decimal.Decimal
	Number() int
	Branch() string
	Owner() Client
	History() []string
}

// BaseAccount holds the balance and history shared by all account types.
// mu guards balance and log together so they never drift apart.
type BaseAccount struct {
	mu      sync.Mutex
	balance decimal.Decimal
	number  int
	branch  string
	owner   Client
	log     TransactionLog
}

// NewBaseAccount creates an account with a zero balance and an empty history.
func NewBaseAccount(owner Client, number int, branch string) *BaseAccount {
	return &BaseAccount{
		balance: decimal.Zero,
		number:  number,
		branch:  branch,
		owner:   owner,
	}
}

// Deposit adds a positive amount to the balance and records it.
func (a *BaseAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: deposit of %s", apperrors.ErrInvalidAmount, utils.FormatAmount(amount))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.log.Record("Deposit of " + utils.FormatAmount(amount))
	return nil
}

// Withdraw removes a positive amount no larger than the balance and records it.
func (a *BaseAccount) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount)
}

// withdrawLocked applies the base withdrawal rules. Caller must hold a.mu.
func (a *BaseAccount) withdrawLocked(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal of %s", apperrors.ErrInvalidAmount, utils.FormatAmount(amount))
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: requested %s, available %s",
			apperrors.ErrInsufficientFunds, utils.FormatAmount(amount), utils.FormatAmount(a.balance))
	}

	a.balance = a.balance.Sub(amount)
	a.log.Record("Withdrawal of " + utils.FormatAmount(amount))
	return nil
}

// Balance returns the current balance.
func (a *BaseAccount) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *BaseAccount) Number() int    { return a.number }
func (a *BaseAccount) Branch() string { return a.branch }
func (a *BaseAccount) Owner() Client  { return a.owner }

// History returns a snapshot of the transaction log.
func (a *BaseAccount) History() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.log.Entries()
}
