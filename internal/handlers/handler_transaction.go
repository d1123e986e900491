package handlers

import (
	"context"

	"github.com/SscSPs/simple_banking_system/internal/dto"
	"github.com/SscSPs/simple_banking_system/internal/middleware"
	"github.com/SscSPs/simple_banking_system/internal/utils"
)

func (h *ConsoleHandler) deposit(ctx context.Context, session dto.Session) error {
	amount, err := h.promptAmount(ctx, "Enter the deposit amount: ")
	if err != nil {
		return err
	}
	result, err := h.execute(ctx, session, dto.Command{Type: dto.CommandDeposit, Amount: amount})
	if err != nil {
		return err
	}
	h.printResult(result)
	return nil
}

func (h *ConsoleHandler) withdraw(ctx context.Context, session dto.Session) error {
	amount, err := h.promptAmount(ctx, "Enter the withdrawal amount: ")
	if err != nil {
		return err
	}
	result, err := h.execute(ctx, session, dto.Command{Type: dto.CommandWithdraw, Amount: amount})
	if err != nil {
		return err
	}
	h.printResult(result)
	return nil
}

func (h *ConsoleHandler) showBalance(ctx context.Context, session dto.Session) error {
	result, err := h.execute(ctx, session, dto.Command{Type: dto.CommandBalance})
	if err != nil {
		return err
	}
	h.printf("Current balance: %s\n", utils.FormatWithSymbol(h.currencySymbol, result.Account.Balance))
	return nil
}

func (h *ConsoleHandler) showHistory(ctx context.Context, session dto.Session) error {
	result, err := h.execute(ctx, session, dto.Command{Type: dto.CommandStatement})
	if err != nil {
		return err
	}
	h.println("Transaction history:")
	if len(result.Entries) == 0 {
		h.println("No transactions yet.")
		return nil
	}
	for _, entry := range result.Entries {
		h.println(entry)
	}
	return nil
}

// printResult prints a transaction outcome. Rejections also show the request
// id, which matches the request_id field in the logs.
func (h *ConsoleHandler) printResult(result *dto.CommandResult) {
	h.println(result.Message)
	if !result.Success && result.RequestID != "" {
		h.printf("Reference: %s\n", result.RequestID)
	}
}

// execute runs cmd through the service with a request-scoped logger.
func (h *ConsoleHandler) execute(ctx context.Context, session dto.Session, cmd dto.Command) (*dto.CommandResult, error) {
	var result *dto.CommandResult
	err := middleware.StructuredLogging(h.logger, string(cmd.Type), func(ctx context.Context) error {
		var svcErr error
		result, svcErr = h.bankService.Execute(ctx, session, cmd)
		return svcErr
	})(ctx)
	return result, err
}
