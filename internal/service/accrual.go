package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/banco-ledger/internal/domain/account"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
)

// AccrualResult reports the outcome of one account's interest accrual.
type AccrualResult struct {
	AccountID int64
	Interest  decimal.Decimal
	Err       error
}

// BatchAccrualService runs interest accrual across many accounts on a worker
// pool. Accounts serialize their own mutation, so accruals on different
// accounts are independent and can run concurrently.
type BatchAccrualService struct {
	interest *InterestService
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewBatchAccrualService creates a batch accrual service backed by a worker
// pool of the given size.
func NewBatchAccrualService(interest *InterestService, poolSize int, logger *slog.Logger) (*BatchAccrualService, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &BatchAccrualService{
		interest: interest,
		pool:     pool,
		logger:   logger,
	}, nil
}

// ApplyAll applies interest to every account exactly once and returns one
// result per account, in the same order as the input. Accounts whose accrual
// fails (zero balance) are reported in their result; the batch itself always
// completes. A cancelled context stops submitting new work; accounts not yet
// processed report the context error.
func (s *BatchAccrualService) ApplyAll(ctx context.Context, accounts []*account.Account) []AccrualResult {
	results := make([]AccrualResult, len(accounts))

	var wg sync.WaitGroup
	for i, acc := range accounts {
		i, acc := i, acc
		results[i].AccountID = acc.ID()

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		wg.Add(1)
		if err := s.pool.Submit(func() {
			defer wg.Done()
			interest, err := s.interest.Apply(acc)
			results[i].Interest = interest
			results[i].Err = err
		}); err != nil {
			wg.Done()
			results[i].Err = err
			s.logger.Error("failed to submit accrual to worker pool", "account_id", acc.ID(), "error", err)
		}
	}
	wg.Wait()

	s.logger.Info("batch accrual completed", "accounts", len(accounts), "workers", s.pool.Cap())
	return results
}

// Running returns the number of workers currently executing accruals.
func (s *BatchAccrualService) Running() int {
	return s.pool.Running()
}

// Shutdown releases the worker pool.
func (s *BatchAccrualService) Shutdown() {
	s.logger.Info("shutting down accrual worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}
