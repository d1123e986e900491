package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a deposit or withdrawal amount that is not positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrWithdrawalLimitReached indicates a checking account has used all of its allowed withdrawals.
var ErrWithdrawalLimitReached = errors.New("maximum number of withdrawals reached")

// ErrAmountExceedsLimit indicates a withdrawal above the per-transaction limit of a checking account.
var ErrAmountExceedsLimit = errors.New("amount exceeds withdrawal limit")
