package domain

import (
	"fmt"

	"github.com/SscSPs/simple_banking_system/internal/apperrors"
	"github.com/SscSPs/simple_banking_system/internal/utils"
	"github.com/shopspring/decimal"
)

// CheckingAccount is an account with a per-withdrawal cap and a lifetime
// cap on the number of withdrawals. Deposits behave as in BaseAccount.
type CheckingAccount struct {
	*BaseAccount
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
	withdrawals     int // never reset; always <= maxWithdrawals
}

// NewCheckingAccount creates a checking account with a zero balance.
func NewCheckingAccount(owner Client, number int, branch string, withdrawalLimit decimal.Decimal, maxWithdrawals int) *CheckingAccount {
	return &CheckingAccount{
		BaseAccount:     NewBaseAccount(owner, number, branch),
		withdrawalLimit: withdrawalLimit,
		maxWithdrawals:  maxWithdrawals,
	}
}

// Withdraw checks the withdrawal count, then the per-withdrawal limit, then
// the base balance rules. The count only moves when the withdrawal succeeds.
func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.withdrawals >= c.maxWithdrawals {
		return fmt.Errorf("%w: maximum is %d", apperrors.ErrWithdrawalLimitReached, c.maxWithdrawals)
	}
	if amount.GreaterThan(c.withdrawalLimit) {
		return fmt.Errorf("%w: limit is %s", apperrors.ErrAmountExceedsLimit, utils.FormatAmount(c.withdrawalLimit))
	}
	if err := c.withdrawLocked(amount); err != nil {
		return err
	}

	c.withdrawals++
	return nil
}

func (c *CheckingAccount) WithdrawalLimit() decimal.Decimal { return c.withdrawalLimit }
func (c *CheckingAccount) MaxWithdrawals() int              { return c.maxWithdrawals }

// Withdrawals returns how many withdrawals have succeeded so far.
func (c *CheckingAccount) Withdrawals() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.withdrawals
}

// RemainingWithdrawals returns how many more withdrawals are allowed.
func (c *CheckingAccount) RemainingWithdrawals() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxWithdrawals - c.withdrawals
}
