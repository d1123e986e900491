package handlers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	portssvc "github.com/SscSPs/simple_banking_system/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when input ends before the session is set up.
var ErrInputClosed = errors.New("input closed before setup completed")

// ConsoleHandler drives the interactive menu. It parses what the user types,
// hands discrete commands to the bank service and prints the results.
type ConsoleHandler struct {
	bankService    portssvc.BankSvcFacade
	logger         *slog.Logger
	in             io.Reader
	out            io.Writer
	currencySymbol string
	menu           []menuOption

	startReader sync.Once
	lines       chan inputLine
}

// inputLine is one line read from the console, or the error that ended input.
type inputLine struct {
	text string
	err  error
}

// ConsoleOption is a functional option for configuring the console handler
type ConsoleOption func(*ConsoleHandler)

// WithCurrencySymbol sets the symbol printed in front of balances
func WithCurrencySymbol(symbol string) ConsoleOption {
	return func(h *ConsoleHandler) {
		h.currencySymbol = symbol
	}
}

// WithLogger sets the base logger used for request-scoped command logging
func WithLogger(logger *slog.Logger) ConsoleOption {
	return func(h *ConsoleHandler) {
		h.logger = logger
	}
}

// NewConsoleHandler creates a console handler reading from in and writing to out.
func NewConsoleHandler(bankService portssvc.BankSvcFacade, in io.Reader, out io.Writer, options ...ConsoleOption) *ConsoleHandler {
	h := &ConsoleHandler{
		bankService:    bankService,
		logger:         slog.Default(),
		in:             in,
		out:            out,
		currencySymbol: "R$",
		lines:          make(chan inputLine),
	}
	for _, option := range options {
		option(h)
	}
	h.menu = registerMenu(h)
	return h
}

// Run sets up the client and account, then serves menu commands until the
// user exits, input ends or ctx is cancelled.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	h.println("Welcome to the Banking System!")

	session, err := h.setupSession(ctx)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.printMenu()
		choice, err := h.prompt(ctx, "Option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		opt, ok := h.lookup(choice)
		if !ok {
			h.println("Invalid option, try again.")
			continue
		}
		if opt.exit {
			h.println("Goodbye!")
			return nil
		}
		if err := opt.action(ctx, session); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *ConsoleHandler) println(a ...any) {
	fmt.Fprintln(h.out, a...)
}

func (h *ConsoleHandler) printf(format string, a ...any) {
	fmt.Fprintf(h.out, format, a...)
}

// readInput feeds h.lines from the input until it ends. It runs on its own
// goroutine so a blocked read never holds up cancellation.
func (h *ConsoleHandler) readInput() {
	defer close(h.lines)
	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		h.lines <- inputLine{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	h.lines <- inputLine{err: err}
}

// prompt prints label and returns the next trimmed input line. It returns
// ctx.Err() as soon as ctx is cancelled, even while waiting for input.
func (h *ConsoleHandler) prompt(ctx context.Context, label string) (string, error) {
	h.startReader.Do(func() { go h.readInput() })
	h.printf("%s", label)

	select {
	case <-ctx.Done():
		h.println()
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if err := ctx.Err(); err != nil {
			h.println()
			return "", err
		}
		if !ok {
			line.err = io.EOF
		}
		if line.err != nil {
			h.println()
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

// promptRequired re-prompts until a non-empty line is entered.
func (h *ConsoleHandler) promptRequired(ctx context.Context, label string) (string, error) {
	for {
		value, err := h.prompt(ctx, label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		h.println("This field is required.")
	}
}

// promptInt re-prompts until an integer is entered.
func (h *ConsoleHandler) promptInt(ctx context.Context, label string) (int, error) {
	n, err := promptParsed(ctx, h, label, false, intRetry, strconv.Atoi)
	if err != nil {
		return 0, err
	}
	return *n, nil
}

// promptOptionalInt is promptInt where a blank line yields nil.
func (h *ConsoleHandler) promptOptionalInt(ctx context.Context, label string) (*int, error) {
	return promptParsed(ctx, h, label, true, intRetry, strconv.Atoi)
}

// promptAmount re-prompts until a decimal amount is entered.
func (h *ConsoleHandler) promptAmount(ctx context.Context, label string) (decimal.Decimal, error) {
	amount, err := promptParsed(ctx, h, label, false, amountRetry, parseAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return *amount, nil
}

// promptOptionalAmount is promptAmount where a blank line yields nil.
func (h *ConsoleHandler) promptOptionalAmount(ctx context.Context, label string) (*decimal.Decimal, error) {
	return promptParsed(ctx, h, label, true, amountRetry, parseAmount)
}

const (
	intRetry    = "Invalid number, please enter a whole number."
	amountRetry = "Invalid amount, please enter a number such as 100.50."
)

func promptParsed[T any](ctx context.Context, h *ConsoleHandler, label string, optional bool, retry string, parse func(string) (T, error)) (*T, error) {
	for {
		value, err := h.prompt(ctx, label)
		if err != nil {
			return nil, err
		}
		if value == "" && optional {
			return nil, nil
		}
		parsed, err := parse(value)
		if err == nil {
			return &parsed, nil
		}
		h.println(retry)
	}
}

// parseAmount accepts either '.' or ',' as the decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
