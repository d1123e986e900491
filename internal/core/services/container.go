package services

import (
	portssvc "github.com/SscSPs/simple_banking_system/internal/core/ports/services"
	"github.com/SscSPs/simple_banking_system/pkg/config"
)

// Container holds all the services and manages their dependencies
type Container struct {
	Bank portssvc.BankSvcFacade
}

// NewContainer creates a new service container configured from cfg
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		Bank: NewBankService(
			WithDefaultWithdrawalLimit(cfg.DefaultWithdrawalLimit),
			WithDefaultMaxWithdrawals(cfg.DefaultMaxWithdrawals),
		),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BankSvcFacade = (*bankService)(nil)
)
