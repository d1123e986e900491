package handlers_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/simple_banking_system/internal/apperrors"
	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	"github.com/SscSPs/simple_banking_system/internal/core/services"
	"github.com/SscSPs/simple_banking_system/internal/dto"
	"github.com/SscSPs/simple_banking_system/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock BankService ---
type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) RegisterClient(ctx context.Context, req dto.CreateClientRequest) (*domain.PersonClient, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonClient), args.Error(1)
}

func (m *MockBankService) OpenCheckingAccount(ctx context.Context, client domain.Client, req dto.OpenAccountRequest) (*domain.CheckingAccount, error) {
	args := m.Called(ctx, client, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckingAccount), args.Error(1)
}

func (m *MockBankService) Execute(ctx context.Context, session dto.Session, cmd dto.Command) (*dto.CommandResult, error) {
	args := m.Called(ctx, session, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommandResult), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

// setupInput registers a client and opens an account with default limits.
var setupInput = lines("123", "Ana", "1990-05-17", "Rua A, 1", "1", "0001", "", "")

// syncBuffer lets a test read output while Run is still writing it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// --- End-to-end against the real service ---

func TestConsoleHandler_FullSession(t *testing.T) {
	input := lines(
		"123.456.789-00", "Ana", "1990-13-01", "1990-05-17", "Rua A, 1",
		"abc", "1001", "0001", "5000", "2",
		"1", "100",
		"2", "30",
		"2", "1000",
		"2", "10",
		"2", "10",
		"3",
		"4",
		"9",
		"5",
	)
	var out bytes.Buffer
	h := handlers.NewConsoleHandler(services.NewBankService(), strings.NewReader(input), &out,
		handlers.WithLogger(discardLogger()))

	require.NoError(t, h.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Welcome to the Banking System!")
	assert.Contains(t, got, "Invalid date, use the format YYYY-MM-DD.")
	assert.Contains(t, got, "Client Ana registered.")
	assert.Contains(t, got, "Invalid number, please enter a whole number.")
	assert.Contains(t, got, "Checking account 1001 opened at branch 0001 (withdrawal limit R$ 5000.00, 2 withdrawals allowed).")
	assert.Contains(t, got, "Deposit of 100.00 completed.")
	assert.Contains(t, got, "Withdrawal of 30.00 completed.")
	assert.Contains(t, got, "Insufficient balance or invalid amount.\nReference: ")
	assert.Contains(t, got, "Withdrawal of 10.00 completed.")
	assert.Contains(t, got, "Maximum number of withdrawals reached: maximum is 2.")
	assert.Contains(t, got, "Current balance: R$ 60.00")
	assert.Contains(t, got, "Transaction history:\nDeposit of 100.00\nWithdrawal of 30.00\nWithdrawal of 10.00\n")
	assert.Contains(t, got, "Invalid option, try again.")
	assert.True(t, strings.HasSuffix(got, "Goodbye!\n"))
}

func TestConsoleHandler_DefaultsAndEmptyHistory(t *testing.T) {
	input := lines(
		"1", "Bruno", "1985-01-02", "Av. Central, 10",
		"7", "0002", "", "",
		"4",
	)
	var out bytes.Buffer
	svc := services.NewBankService(
		services.WithDefaultWithdrawalLimit(decimal.NewFromInt(300)),
		services.WithDefaultMaxWithdrawals(4),
	)
	h := handlers.NewConsoleHandler(svc, strings.NewReader(input), &out,
		handlers.WithLogger(discardLogger()), handlers.WithCurrencySymbol("US$"))

	// Input ends inside the menu loop, which is a normal exit.
	require.NoError(t, h.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "(withdrawal limit US$ 300.00, 4 withdrawals allowed)")
	assert.Contains(t, got, "Transaction history:\nNo transactions yet.\n")
}

func TestConsoleHandler_ExplicitZeroWithdrawals(t *testing.T) {
	input := lines(
		"123", "Ana", "1990-05-17", "Rua A, 1",
		"3", "0001", "0", "0",
		"1", "50",
		"2", "10",
		"3",
		"5",
	)
	var out bytes.Buffer
	h := handlers.NewConsoleHandler(services.NewBankService(), strings.NewReader(input), &out,
		handlers.WithLogger(discardLogger()))

	require.NoError(t, h.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Checking account 3 opened at branch 0001 (withdrawal limit R$ 0.00, 0 withdrawals allowed).")
	assert.Contains(t, got, "Maximum number of withdrawals reached: maximum is 0.")
	assert.Contains(t, got, "Current balance: R$ 50.00")
}

func TestConsoleHandler_InputClosedDuringSetup(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewConsoleHandler(services.NewBankService(), strings.NewReader(lines("123", "Ana")), &out,
		handlers.WithLogger(discardLogger()))

	err := h.Run(context.Background())

	assert.ErrorIs(t, err, handlers.ErrInputClosed)
}

func TestConsoleHandler_RetriesInvalidAccount(t *testing.T) {
	input := lines(
		"123", "Ana", "1990-05-17", "Rua A, 1",
		"-5", "0001", "", "",
		"8", "0001", "", "",
		"5",
	)
	var out bytes.Buffer
	h := handlers.NewConsoleHandler(services.NewBankService(), strings.NewReader(input), &out,
		handlers.WithLogger(discardLogger()))

	require.NoError(t, h.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Could not open account:")
	assert.Contains(t, got, "Checking account 8 opened at branch 0001")
}

func TestConsoleHandler_CancelledContext(t *testing.T) {
	input := lines("123", "Ana", "1990-05-17", "Rua A, 1", "1", "0001", "", "", "3")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := handlers.NewConsoleHandler(services.NewBankService(), strings.NewReader(input), io.Discard,
		handlers.WithLogger(discardLogger()))

	assert.ErrorIs(t, h.Run(ctx), context.Canceled)
}

// --- Handler behaviour against a mocked service ---

type ConsoleHandlerMockSuite struct {
	suite.Suite
	mockService *MockBankService
	client      *domain.PersonClient
	account     *domain.CheckingAccount
}

func (suite *ConsoleHandlerMockSuite) SetupTest() {
	suite.mockService = new(MockBankService)
	suite.client = domain.NewPersonClient("123", "Ana", time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), "Rua A, 1")
	suite.account = domain.NewCheckingAccount(suite.client, 1, "0001", decimal.NewFromInt(500), 3)

	suite.mockService.On("RegisterClient", mock.Anything, mock.AnythingOfType("dto.CreateClientRequest")).
		Return(suite.client, nil).Once()
	suite.mockService.On("OpenCheckingAccount", mock.Anything, suite.client, mock.AnythingOfType("dto.OpenAccountRequest")).
		Return(suite.account, nil).Once()
}

func (suite *ConsoleHandlerMockSuite) run(menuInput ...string) (string, error) {
	input := setupInput + lines(menuInput...)
	var out bytes.Buffer
	h := handlers.NewConsoleHandler(suite.mockService, strings.NewReader(input), &out,
		handlers.WithLogger(discardLogger()))
	err := h.Run(context.Background())
	return out.String(), err
}

func (suite *ConsoleHandlerMockSuite) TestDepositParsesCommaDecimal() {
	isDeposit := mock.MatchedBy(func(cmd dto.Command) bool {
		return cmd.Type == dto.CommandDeposit && cmd.Amount.Equal(decimal.RequireFromString("100.5"))
	})
	suite.mockService.On("Execute", mock.Anything, mock.AnythingOfType("dto.Session"), isDeposit).
		Return(&dto.CommandResult{Command: dto.CommandDeposit, Success: true, Message: "Deposit of 100.50 completed."}, nil).Once()

	out, err := suite.run("1", "ten", "100,5", "5")

	suite.Require().NoError(err)
	suite.Contains(out, "Invalid amount, please enter a number such as 100.50.")
	suite.Contains(out, "Deposit of 100.50 completed.")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConsoleHandlerMockSuite) TestSessionCarriesClientAndAccount() {
	sameSession := mock.MatchedBy(func(s dto.Session) bool {
		return s.ID != "" && s.Account == suite.account && s.Client == domain.Client(suite.client)
	})
	suite.mockService.On("Execute", mock.Anything, sameSession, dto.Command{Type: dto.CommandBalance}).
		Return(&dto.CommandResult{
			Command: dto.CommandBalance,
			Success: true,
			Account: dto.AccountBalanceResponse{Number: 1, Balance: decimal.RequireFromString("12.3")},
		}, nil).Once()

	out, err := suite.run("3", "5")

	suite.Require().NoError(err)
	suite.Contains(out, "Current balance: R$ 12.30")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConsoleHandlerMockSuite) TestServiceErrorStopsTheLoop() {
	suite.mockService.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.run("4", "5")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ConsoleHandlerMockSuite) TestCancelWhileWaitingForInput() {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out syncBuffer
	h := handlers.NewConsoleHandler(suite.mockService, pr, &out, handlers.WithLogger(discardLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	go func() { _, _ = io.WriteString(pw, setupInput) }()

	suite.Require().Eventually(func() bool {
		return strings.Contains(out.String(), "Option: ")
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		suite.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		suite.FailNow("Run kept waiting for input after cancellation")
	}

	// A deposit typed after cancellation must never reach the service.
	go func() { _, _ = io.WriteString(pw, lines("1", "100")) }()
	time.Sleep(50 * time.Millisecond)
	suite.NotContains(out.String(), "Enter the deposit amount")
	suite.mockService.AssertNotCalled(suite.T(), "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConsoleHandlerMockSuite) TestRejectionShowsReference() {
	suite.mockService.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return(&dto.CommandResult{
			Command:   dto.CommandWithdraw,
			RequestID: "req-42",
			Message:   "Insufficient balance or invalid amount.",
		}, nil).Once()

	out, err := suite.run("2", "10", "5")

	suite.Require().NoError(err)
	suite.Contains(out, "Insufficient balance or invalid amount.\nReference: req-42\n")
	suite.mockService.AssertExpectations(suite.T())
}

func TestConsoleHandlerMockSuite(t *testing.T) {
	suite.Run(t, new(ConsoleHandlerMockSuite))
}
