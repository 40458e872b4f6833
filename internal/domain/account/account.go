package account

import (
	"fmt"
	"sync"

	"github.com/banco-ledger/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// Account is a bank account holding a balance and an append-only transaction
// history. All balance reads and writes and all history appends on one
// account are serialized by its own mutex; operations on different accounts
// never block each other.
//
// The balance never goes negative, and history[0] is always the opening
// record created at construction.
type Account struct {
	id    int64
	owner string
	kind  Kind

	mu      sync.Mutex
	balance decimal.Decimal
	history []ledger.Record
}

// New creates an account with the given id, owner and kind. A negative
// initial balance is clamped to zero for the stored balance, but the opening
// record keeps the amount as requested.
func New(id int64, owner string, kind Kind, initialBalance decimal.Decimal) (*Account, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	balance := initialBalance
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	return &Account{
		id:      id,
		owner:   owner,
		kind:    kind,
		balance: balance,
		history: []ledger.Record{ledger.NewRecord("opening", initialBalance)},
	}, nil
}

// ID returns the account's identifier. Assigned once, never reused.
func (a *Account) ID() int64 { return a.id }

// Owner returns the account holder's name.
func (a *Account) Owner() string { return a.owner }

// Kind returns the account kind.
func (a *Account) Kind() Kind { return a.kind }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds amount to the balance and appends a "deposit" record.
// The amount must be positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	a.history = append(a.history, ledger.NewRecord("deposit", amount))
	return nil
}

// Withdraw subtracts amount from the balance and appends a "withdrawal"
// record with the negated amount. The amount must be positive and must not
// exceed the current balance; the check and the subtraction happen under the
// account lock, so no concurrent mutation can overdraw the account.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return InsufficientFundsError{Requested: amount, Available: a.balance}
	}
	a.balance = a.balance.Sub(amount)
	a.history = append(a.history, ledger.NewRecord("withdrawal", amount.Neg()))
	return nil
}

// RecordTransaction appends a record with an arbitrary signed amount without
// touching the balance. Services use it to log the other leg of a compound
// operation after the balance change has already been applied; the caller is
// responsible for keeping balance and records consistent.
func (a *Account) RecordTransaction(description string, amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, ledger.NewRecord(description, amount))
}

// History returns an order-preserving snapshot of the transaction history.
// The returned slice is a copy; mutating it has no effect on the account.
func (a *Account) History() []ledger.Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ledger.Record, len(a.history))
	copy(out, a.history)
	return out
}

// String renders the account as "ID:<id> - <owner> (<kind>) - Saldo: <balance>".
func (a *Account) String() string {
	return fmt.Sprintf("ID:%d - %s (%s) - Saldo: %s", a.id, a.owner, a.kind, a.Balance().StringFixed(2))
}
