package mapping

import (
	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	"github.com/SscSPs/simple_banking_system/internal/dto"
)

// ToAccountResponse converts a domain CheckingAccount to an AccountResponse DTO
func ToAccountResponse(acc *domain.CheckingAccount) dto.AccountResponse {
	withdrawals := acc.Withdrawals()
	return dto.AccountResponse{
		Number:               acc.Number(),
		Branch:               acc.Branch(),
		Balance:              acc.Balance(),
		WithdrawalLimit:      acc.WithdrawalLimit(),
		MaxWithdrawals:       acc.MaxWithdrawals(),
		Withdrawals:          withdrawals,
		RemainingWithdrawals: acc.MaxWithdrawals() - withdrawals,
	}
}

// ToAccountBalanceResponse converts any domain Account to an AccountBalanceResponse DTO
func ToAccountBalanceResponse(acc domain.Account) dto.AccountBalanceResponse {
	return dto.AccountBalanceResponse{
		Number:  acc.Number(),
		Balance: acc.Balance(),
	}
}
