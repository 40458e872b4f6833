package service

import (
	"fmt"
	"log/slog"

	"github.com/banco-ledger/internal/domain/account"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// InterestService applies a rate-dependent accrual to an account. The rate
// depends on the account kind; both rates come from configuration.
type InterestService struct {
	savingsRate  decimal.Decimal
	checkingRate decimal.Decimal
	logger       *slog.Logger
}

// NewInterestService creates an InterestService with the given per-kind rates.
func NewInterestService(savingsRate, checkingRate decimal.Decimal, logger *slog.Logger) *InterestService {
	return &InterestService{
		savingsRate:  savingsRate,
		checkingRate: checkingRate,
		logger:       logger,
	}
}

// RateFor returns the accrual rate for the given account kind.
func (s *InterestService) RateFor(kind account.Kind) decimal.Decimal {
	if kind == account.KindSavings {
		return s.savingsRate
	}
	return s.checkingRate
}

// Apply computes interest as balance times rate, deposits it (which appends
// the generic "deposit" record) and then appends a second descriptive
// "interest applied" record. Two history entries per accrual is the ledger's
// established behavior.
//
// A zero balance yields zero interest, which the deposit rejects; the error
// is returned to the caller like any other invalid amount.
func (s *InterestService) Apply(acc *account.Account) (decimal.Decimal, error) {
	rate := s.RateFor(acc.Kind())
	interest := acc.Balance().Mul(rate)

	if err := acc.Deposit(interest); err != nil {
		return decimal.Zero, err
	}
	acc.RecordTransaction(fmt.Sprintf("interest applied (%s%%)", rate.Mul(oneHundred).String()), interest)

	s.logger.Info("interest applied",
		"account_id", acc.ID(),
		"kind", string(acc.Kind()),
		"rate", rate.String(),
		"interest", interest.String(),
	)
	return interest, nil
}
