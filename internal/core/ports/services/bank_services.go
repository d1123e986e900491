package services

import (
	"context"

	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	"github.com/SscSPs/simple_banking_system/internal/dto"
)

// ClientWriterSvc defines operations that set up a client and its accounts
type ClientWriterSvc interface {
	// RegisterClient validates the request and creates a person client with no accounts.
	RegisterClient(ctx context.Context, req dto.CreateClientRequest) (*domain.PersonClient, error)

	// OpenCheckingAccount creates a checking account and attaches it to client.
	OpenCheckingAccount(ctx context.Context, client domain.Client, req dto.OpenAccountRequest) (*domain.CheckingAccount, error)
}

// CommandExecutorSvc runs discrete commands against a session's account
type CommandExecutorSvc interface {
	// Execute runs one command. Domain rule failures are reported in the result;
	// the returned error is reserved for malformed commands or sessions.
	Execute(ctx context.Context, session dto.Session, cmd dto.Command) (*dto.CommandResult, error)
}

// BankSvcFacade combines all banking service interfaces
// This is a facade for clients that need access to all operations
type BankSvcFacade interface {
	ClientWriterSvc
	CommandExecutorSvc
}
