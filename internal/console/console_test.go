package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/banco-ledger/internal/directory"
	"github.com/banco-ledger/internal/domain/account"
	"github.com/banco-ledger/internal/service"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession feeds a scripted input through the menu loop and returns
// everything it printed, together with the directory for state assertions.
func runSession(t *testing.T, input string) (string, *directory.Directory) {
	t.Helper()
	color.NoColor = true

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := directory.New()
	transfers := service.NewTransferService(logger)
	interest := service.NewInterestService(
		decimal.RequireFromString("0.02"),
		decimal.RequireFromString("0.005"),
		logger,
	)
	batch, err := service.NewBatchAccrualService(interest, 2, logger)
	require.NoError(t, err)
	defer batch.Shutdown()

	var out bytes.Buffer
	ui := New(strings.NewReader(input), &out, dir, transfers, interest, batch, logger)
	require.NoError(t, ui.Run(context.Background()))
	return out.String(), dir
}

func TestConsole_CreateDepositAndQuit(t *testing.T) {
	input := strings.Join([]string{
		"1", "Alice", "2", "100", // create savings account
		"4", "1", "50", // deposit 50
		"2", "1", // check balance
		"9",
	}, "\n") + "\n"

	out, dir := runSession(t, input)

	assert.Contains(t, out, "Account created: ID:1 - Alice (SAVINGS) - Saldo: 100.00")
	assert.Contains(t, out, "Deposit successful. New balance: 150.00")
	assert.Contains(t, out, "Current balance: 150.00")
	assert.Contains(t, out, "Exiting...")

	acc, ok := dir.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "150.00", acc.Balance().StringFixed(2))
}

func TestConsole_KindSelectionDefaultsToChecking(t *testing.T) {
	input := "1\nBob\nx\n10\n9\n"

	out, dir := runSession(t, input)

	assert.Contains(t, out, "(CHECKING)")
	acc, ok := dir.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, account.KindChecking, acc.Kind())
}

func TestConsole_WithdrawInsufficientFunds(t *testing.T) {
	input := strings.Join([]string{
		"1", "Alice", "1", "100",
		"3", "1", "150", // withdraw more than available
		"9",
	}, "\n") + "\n"

	out, dir := runSession(t, input)

	assert.Contains(t, out, "insufficient funds: requested 150.00, available 100.00")

	acc, _ := dir.Lookup(1)
	assert.Equal(t, "100.00", acc.Balance().StringFixed(2))
}

func TestConsole_Transfer(t *testing.T) {
	input := strings.Join([]string{
		"1", "Alice", "1", "100",
		"1", "Bob", "2", "0",
		"6", "1", "2", "40",
		"5", // list accounts
		"9",
	}, "\n") + "\n"

	out, _ := runSession(t, input)

	assert.Contains(t, out, "Transfer successful.")
	assert.Contains(t, out, "ID:1 - Alice (CHECKING) - Saldo: 60.00")
	assert.Contains(t, out, "ID:2 - Bob (SAVINGS) - Saldo: 40.00")
}

func TestConsole_History(t *testing.T) {
	input := strings.Join([]string{
		"1", "Alice", "2", "100",
		"8", "1", // apply interest to account 1
		"7", "1", // view history
		"9",
	}, "\n") + "\n"

	out, _ := runSession(t, input)

	assert.Contains(t, out, "Interest applied. New balance: 102.00")
	assert.Contains(t, out, "Transaction history:")
	assert.Contains(t, out, "opening: 100.00")
	assert.Contains(t, out, "deposit: 2.00")
	assert.Contains(t, out, "interest applied (2%): 2.00")
}

func TestConsole_ApplyInterestToAll(t *testing.T) {
	input := strings.Join([]string{
		"1", "Alice", "2", "100",
		"1", "Bob", "1", "100",
		"8", "all",
		"9",
	}, "\n") + "\n"

	out, dir := runSession(t, input)

	assert.Contains(t, out, "Account 1: interest 2.00 applied.")
	assert.Contains(t, out, "Account 2: interest 0.50 applied.")

	savings, _ := dir.Lookup(1)
	checking, _ := dir.Lookup(2)
	assert.Equal(t, "102.00", savings.Balance().StringFixed(2))
	assert.Equal(t, "100.50", checking.Balance().StringFixed(2))
}

func TestConsole_InvalidInput(t *testing.T) {
	input := strings.Join([]string{
		"abc",      // not a number
		"42",       // unknown option
		"2", "999", // balance of missing account
		"4", "nope", // deposit with invalid id
		"9",
	}, "\n") + "\n"

	out, _ := runSession(t, input)

	assert.Contains(t, out, "Invalid option.")
	assert.Contains(t, out, "Unknown option.")
	assert.Contains(t, out, "Account not found.")
	assert.Contains(t, out, "Invalid ID.")
}

func TestConsole_EndOfInputEndsLoop(t *testing.T) {
	out, _ := runSession(t, "5\n") // list accounts, then EOF

	assert.Contains(t, out, "No accounts.")
	assert.NotContains(t, out, "Exiting...")
}
