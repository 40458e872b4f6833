package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrEmptyOwner        = errors.New("owner name cannot be empty")
	ErrUnknownKind       = errors.New("unknown account kind")
)

// InsufficientFundsError reports a withdrawal that exceeds the current
// balance. It matches ErrInsufficientFunds under errors.Is.
type InsufficientFundsError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %s, available %s", e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

func (e InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
