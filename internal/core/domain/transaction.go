package domain

import (
	"fmt"

	"github.com/SscSPs/simple_banking_system/internal/apperrors"
	"github.com/SscSPs/simple_banking_system/internal/utils"
	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is a Deposit or a Withdrawal.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is an intent to move a fixed amount into or out of an account.
// It is applied once and then discarded; its only lasting effect is on the account.
type Transaction struct {
	kind   TransactionKind
	amount decimal.Decimal
}

// NewDeposit returns a deposit of amount. The amount is validated by the account, not here.
func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{kind: Deposit, amount: amount}
}

// NewWithdrawal returns a withdrawal of amount.
func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{kind: Withdrawal, amount: amount}
}

func (t Transaction) Kind() TransactionKind   { return t.kind }
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Apply performs the transaction against account and returns the account's result.
func (t Transaction) Apply(account Account) error {
	switch t.kind {
	case Deposit:
		return account.Deposit(t.amount)
	case Withdrawal:
		return account.Withdraw(t.amount)
	default:
		return fmt.Errorf("%w: unknown transaction kind '%s'", apperrors.ErrValidation, t.kind)
	}
}

func (t Transaction) String() string {
	switch t.kind {
	case Deposit:
		return "Deposit of " + utils.FormatAmount(t.amount)
	case Withdrawal:
		return "Withdrawal of " + utils.FormatAmount(t.amount)
	default:
		return fmt.Sprintf("%s of %s", t.kind, utils.FormatAmount(t.amount))
	}
}
