package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/banco-ledger/internal/domain/account"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingAccount indicates a nil source or destination.
	ErrMissingAccount = errors.New("source and destination accounts are required")
	// ErrSameAccount indicates a transfer where source and destination are
	// the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")
)

// TransferService moves funds between two accounts as a single logical unit.
type TransferService struct {
	logger *slog.Logger
}

// NewTransferService creates a new TransferService.
func NewTransferService(logger *slog.Logger) *TransferService {
	return &TransferService{logger: logger}
}

// Transfer withdraws amount from source, deposits it into destination and
// records one descriptive history entry on each side.
//
// If the withdrawal fails the transfer has no effect anywhere. After a
// successful withdrawal the deposit cannot fail (the amount is positive and
// balances have no upper bound), so the success path is atomic. The two
// accounts are locked one after the other, not together; that is sufficient
// as long as the deposit leg is infallible.
func (s *TransferService) Transfer(source, destination *account.Account, amount decimal.Decimal) error {
	if source == nil || destination == nil {
		return ErrMissingAccount
	}
	if amount.Sign() <= 0 {
		return account.ErrInvalidAmount
	}
	if source.ID() == destination.ID() {
		return ErrSameAccount
	}

	if err := source.Withdraw(amount); err != nil {
		s.logger.Warn("transfer aborted",
			"source_id", source.ID(),
			"destination_id", destination.ID(),
			"amount", amount.String(),
			"error", err,
		)
		return err
	}
	if err := destination.Deposit(amount); err != nil {
		// Unreachable for a positive amount; surfaced rather than swallowed
		// so a future fallible deposit cannot pass silently.
		return fmt.Errorf("deposit leg failed after withdrawal from account %d: %w", source.ID(), err)
	}

	source.RecordTransaction(fmt.Sprintf("transfer out to account %d", destination.ID()), amount.Neg())
	destination.RecordTransaction(fmt.Sprintf("transfer in from account %d", source.ID()), amount)

	s.logger.Info("transfer completed",
		"source_id", source.ID(),
		"destination_id", destination.ID(),
		"amount", amount.String(),
	)
	return nil
}
