package service

import (
	"testing"

	"github.com/banco-ledger/internal/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterestService() *InterestService {
	return NewInterestService(
		decimal.RequireFromString("0.02"),
		decimal.RequireFromString("0.005"),
		discardLogger(),
	)
}

func TestInterestService_RateFor(t *testing.T) {
	svc := newInterestService()

	assert.Equal(t, "0.02", svc.RateFor(account.KindSavings).String())
	assert.Equal(t, "0.005", svc.RateFor(account.KindChecking).String())
}

func TestInterestService_Apply(t *testing.T) {
	testCases := []struct {
		name             string
		kind             account.Kind
		expectedBalance  string
		expectedInterest string
		expectedRateText string
	}{
		{"SavingsTwoPercent", account.KindSavings, "102.00", "2.00", "interest applied (2%)"},
		{"CheckingHalfPercent", account.KindChecking, "100.50", "0.50", "interest applied (0.5%)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			acc, err := account.New(1, "Alice", tc.kind, decimal.NewFromInt(100))
			require.NoError(t, err)

			svc := newInterestService()
			interest, err := svc.Apply(acc)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedInterest, interest.StringFixed(2))
			assert.Equal(t, tc.expectedBalance, acc.Balance().StringFixed(2))

			// One generic deposit record plus one descriptive record per accrual.
			history := acc.History()
			require.Len(t, history, 3)
			assert.Equal(t, "deposit", history[1].Description)
			assert.Equal(t, tc.expectedRateText, history[2].Description)
			assert.True(t, history[2].Amount.Equal(interest))
		})
	}
}

func TestInterestService_Apply_ZeroBalance(t *testing.T) {
	acc, err := account.New(1, "Alice", account.KindSavings, decimal.Zero)
	require.NoError(t, err)

	svc := newInterestService()
	_, err = svc.Apply(acc)
	assert.ErrorIs(t, err, account.ErrInvalidAmount, "zero interest is rejected by the deposit precondition")
	assert.Len(t, acc.History(), 1, "no records appended on failure")
}
