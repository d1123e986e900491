package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/simple_banking_system/internal/apperrors"
	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	portssvc "github.com/SscSPs/simple_banking_system/internal/core/ports/services"
	"github.com/SscSPs/simple_banking_system/internal/dto"
	"github.com/SscSPs/simple_banking_system/internal/middleware"
	"github.com/SscSPs/simple_banking_system/internal/utils"
	"github.com/SscSPs/simple_banking_system/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// bankService implements the BankSvcFacade interface
type bankService struct {
	BaseService
	validate               *validator.Validate
	defaultWithdrawalLimit decimal.Decimal
	defaultMaxWithdrawals  int
}

// ServiceOption is a functional option for configuring the bank service
type ServiceOption func(*bankService)

// WithDefaultWithdrawalLimit sets the per-withdrawal limit used when a request leaves it unset
func WithDefaultWithdrawalLimit(limit decimal.Decimal) ServiceOption {
	return func(s *bankService) {
		s.defaultWithdrawalLimit = limit
	}
}

// WithDefaultMaxWithdrawals sets the withdrawal count used when a request leaves it unset
func WithDefaultMaxWithdrawals(maxWithdrawals int) ServiceOption {
	return func(s *bankService) {
		s.defaultMaxWithdrawals = maxWithdrawals
	}
}

// NewBankService creates a new bank service with the provided options
func NewBankService(options ...ServiceOption) portssvc.BankSvcFacade {
	svc := &bankService{
		validate:               newValidator(),
		defaultWithdrawalLimit: decimal.NewFromInt(500),
		defaultMaxWithdrawals:  3,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

func (s *bankService) RegisterClient(ctx context.Context, req dto.CreateClientRequest) (*domain.PersonClient, error) {
	if err := validateStruct(s.validate, req); err != nil {
		s.LogWarn(ctx, err, "Invalid client registration request")
		return nil, err
	}

	client := domain.NewPersonClient(req.TaxID, req.Name, req.BirthDate, req.Address)

	s.LogInfo(ctx, "Client registered successfully", slog.String("name", client.Name))
	return client, nil
}

func (s *bankService) OpenCheckingAccount(ctx context.Context, client domain.Client, req dto.OpenAccountRequest) (*domain.CheckingAccount, error) {
	if client == nil {
		err := fmt.Errorf("%w: client is required to open an account", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Invalid open account request")
		return nil, err
	}
	if err := validateStruct(s.validate, req); err != nil {
		s.LogWarn(ctx, err, "Invalid open account request", slog.Int("account_number", req.Number))
		return nil, err
	}

	limit := s.defaultWithdrawalLimit
	if req.WithdrawalLimit != nil {
		limit = *req.WithdrawalLimit
	}
	maxWithdrawals := s.defaultMaxWithdrawals
	if req.MaxWithdrawals != nil {
		maxWithdrawals = *req.MaxWithdrawals
	}

	account := domain.NewCheckingAccount(client, req.Number, req.Branch, limit, maxWithdrawals)
	client.AddAccount(account)

	s.LogInfo(ctx, "Checking account opened successfully",
		slog.Int("account_number", account.Number()),
		slog.String("branch", account.Branch()),
		slog.String("withdrawal_limit", utils.FormatAmount(limit)),
		slog.Int("max_withdrawals", maxWithdrawals))
	return account, nil
}

func (s *bankService) Execute(ctx context.Context, session dto.Session, cmd dto.Command) (*dto.CommandResult, error) {
	if err := validateStruct(s.validate, session); err != nil {
		s.LogWarn(ctx, err, "Invalid session")
		return nil, err
	}
	if err := validateStruct(s.validate, cmd); err != nil {
		s.LogWarn(ctx, err, "Invalid command", slog.String("command", string(cmd.Type)))
		return nil, err
	}

	account := session.Account
	requestID, _ := middleware.GetRequestIDFromCtx(ctx)
	switch cmd.Type {
	case dto.CommandDeposit:
		return s.applyTransaction(ctx, session, requestID, cmd.Type, domain.NewDeposit(cmd.Amount)), nil
	case dto.CommandWithdraw:
		return s.applyTransaction(ctx, session, requestID, cmd.Type, domain.NewWithdrawal(cmd.Amount)), nil
	case dto.CommandBalance:
		snapshot := mapping.ToAccountBalanceResponse(account)
		s.LogDebug(ctx, "Balance retrieved", slog.Int("account_number", snapshot.Number))
		return &dto.CommandResult{
			Command:   cmd.Type,
			RequestID: requestID,
			Success:   true,
			Message:   "Current balance: " + utils.FormatAmount(snapshot.Balance),
			Account:   snapshot,
		}, nil
	case dto.CommandStatement:
		entries := account.History()
		s.LogDebug(ctx, "Statement retrieved",
			slog.Int("account_number", account.Number()),
			slog.Int("entries", len(entries)))
		return &dto.CommandResult{
			Command:   cmd.Type,
			RequestID: requestID,
			Success:   true,
			Message:   fmt.Sprintf("%d transaction(s)", len(entries)),
			Account:   mapping.ToAccountBalanceResponse(account),
			Entries:   entries,
		}, nil
	default:
		// unreachable while the oneof tag on Command.Type matches this switch
		return nil, fmt.Errorf("%w: unsupported command '%s'", apperrors.ErrValidation, cmd.Type)
	}
}

// applyTransaction hands the transaction to the session's client and turns the
// outcome into a result. Rule violations are expected and logged at warn level.
// A rejected result carries the request id so the user can quote it.
func (s *bankService) applyTransaction(ctx context.Context, session dto.Session, requestID string, cmdType dto.CommandType, tx domain.Transaction) *dto.CommandResult {
	account := session.Account
	err := session.Client.ApplyTransaction(account, tx)
	result := &dto.CommandResult{
		Command:   cmdType,
		RequestID: requestID,
		Account:   mapping.ToAccountBalanceResponse(account),
	}
	if err != nil {
		s.LogWarn(ctx, err, "Transaction rejected",
			slog.String("transaction", tx.String()),
			slog.Int("account_number", account.Number()),
			slog.String("request_id", requestID))
		result.Err = err
		result.Message = describeFailure(tx, err)
		return result
	}

	s.LogInfo(ctx, "Transaction applied",
		slog.String("transaction", tx.String()),
		slog.Int("account_number", account.Number()),
		slog.String("balance", utils.FormatAmount(result.Account.Balance)))
	result.Success = true
	result.Message = tx.String() + " completed."
	return result
}

// describeFailure renders a rejected transaction for the person at the console.
func describeFailure(tx domain.Transaction, err error) string {
	switch {
	case errors.Is(err, apperrors.ErrWithdrawalLimitReached):
		return "Maximum number of withdrawals reached: " + errDetail(err, apperrors.ErrWithdrawalLimitReached) + "."
	case errors.Is(err, apperrors.ErrAmountExceedsLimit):
		return "Amount exceeds the withdrawal limit: " + errDetail(err, apperrors.ErrAmountExceedsLimit) + "."
	case tx.Kind() == domain.Deposit && errors.Is(err, apperrors.ErrInvalidAmount):
		return "Invalid deposit amount."
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInsufficientFunds):
		return "Insufficient balance or invalid amount."
	default:
		return err.Error()
	}
}

// errDetail strips the sentinel prefix from an error built as "%w: detail".
func errDetail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
