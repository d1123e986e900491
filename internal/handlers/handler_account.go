package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/simple_banking_system/internal/apperrors"
	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	"github.com/SscSPs/simple_banking_system/internal/dto"
	"github.com/SscSPs/simple_banking_system/internal/middleware"
	"github.com/SscSPs/simple_banking_system/internal/utils"
	"github.com/SscSPs/simple_banking_system/internal/utils/mapping"
	"github.com/google/uuid"
)

// setupSession collects client and account details until the service accepts them.
func (h *ConsoleHandler) setupSession(ctx context.Context) (dto.Session, error) {
	client, err := h.registerClient(ctx)
	if err != nil {
		return dto.Session{}, setupErr(err)
	}

	account, err := h.openAccount(ctx, client)
	if err != nil {
		return dto.Session{}, setupErr(err)
	}

	return dto.Session{ID: uuid.NewString(), Client: client, Account: account}, nil
}

func (h *ConsoleHandler) registerClient(ctx context.Context) (*domain.PersonClient, error) {
	for {
		req, err := h.readClientRequest(ctx)
		if err != nil {
			return nil, err
		}

		var client *domain.PersonClient
		err = middleware.StructuredLogging(h.logger, "register_client", func(ctx context.Context) error {
			var svcErr error
			client, svcErr = h.bankService.RegisterClient(ctx, req)
			return svcErr
		})(ctx)
		if err == nil {
			resp := mapping.ToClientResponse(client)
			h.printf("Client %s registered.\n", resp.Name)
			return client, nil
		}
		if !errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		h.printf("Could not register client: %v\n", err)
	}
}

func (h *ConsoleHandler) readClientRequest(ctx context.Context) (dto.CreateClientRequest, error) {
	var req dto.CreateClientRequest
	var err error

	if req.TaxID, err = h.promptRequired(ctx, "Enter the tax ID (CPF): "); err != nil {
		return req, err
	}
	if req.Name, err = h.promptRequired(ctx, "Enter the name: "); err != nil {
		return req, err
	}
	for {
		raw, err := h.promptRequired(ctx, "Enter the birth date (YYYY-MM-DD): ")
		if err != nil {
			return req, err
		}
		birthDate, err := time.Parse(time.DateOnly, raw)
		if err == nil {
			req.BirthDate = birthDate
			break
		}
		h.println("Invalid date, use the format YYYY-MM-DD.")
	}
	if req.Address, err = h.promptRequired(ctx, "Enter the address: "); err != nil {
		return req, err
	}
	return req, nil
}

func (h *ConsoleHandler) openAccount(ctx context.Context, client domain.Client) (*domain.CheckingAccount, error) {
	for {
		req, err := h.readAccountRequest(ctx)
		if err != nil {
			return nil, err
		}

		var account *domain.CheckingAccount
		err = middleware.StructuredLogging(h.logger, "open_account", func(ctx context.Context) error {
			var svcErr error
			account, svcErr = h.bankService.OpenCheckingAccount(ctx, client, req)
			return svcErr
		})(ctx)
		if err == nil {
			resp := mapping.ToAccountResponse(account)
			h.printf("Checking account %d opened at branch %s (withdrawal limit %s, %d withdrawals allowed).\n",
				resp.Number, resp.Branch, utils.FormatWithSymbol(h.currencySymbol, resp.WithdrawalLimit), resp.MaxWithdrawals)
			return account, nil
		}
		if !errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		h.printf("Could not open account: %v\n", err)
	}
}

func (h *ConsoleHandler) readAccountRequest(ctx context.Context) (dto.OpenAccountRequest, error) {
	var req dto.OpenAccountRequest
	var err error

	if req.Number, err = h.promptInt(ctx, "Enter the account number: "); err != nil {
		return req, err
	}
	if req.Branch, err = h.promptRequired(ctx, "Enter the branch number: "); err != nil {
		return req, err
	}
	if req.WithdrawalLimit, err = h.promptOptionalAmount(ctx, "Enter the withdrawal limit (blank for default): "); err != nil {
		return req, err
	}
	if req.MaxWithdrawals, err = h.promptOptionalInt(ctx, "Enter the maximum number of withdrawals (blank for default): "); err != nil {
		return req, err
	}
	return req, nil
}

func setupErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return fmt.Errorf("session setup failed: %w", err)
}
