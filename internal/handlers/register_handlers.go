package handlers

import (
	"context"

	"github.com/SscSPs/simple_banking_system/internal/dto"
)

// menuAction runs one menu entry against the session's account.
type menuAction func(ctx context.Context, session dto.Session) error

type menuOption struct {
	key    string
	label  string
	action menuAction
	exit   bool
}

// registerMenu sets up all menu entries in display order
func registerMenu(h *ConsoleHandler) []menuOption {
	return []menuOption{
		{key: "1", label: "Deposit", action: h.deposit},
		{key: "2", label: "Withdraw", action: h.withdraw},
		{key: "3", label: "Show balance", action: h.showBalance},
		{key: "4", label: "Show history", action: h.showHistory},
		{key: "5", label: "Exit", exit: true},
	}
}

func (h *ConsoleHandler) printMenu() {
	h.println()
	h.println("Choose an operation:")
	for _, opt := range h.menu {
		h.printf("%s. %s\n", opt.key, opt.label)
	}
}

func (h *ConsoleHandler) lookup(choice string) (menuOption, bool) {
	for _, opt := range h.menu {
		if opt.key == choice {
			return opt, true
		}
	}
	return menuOption{}, false
}
