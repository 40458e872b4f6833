// Package directory holds the in-memory account registry. It assigns unique,
// strictly increasing ids to new accounts and preserves creation order for
// listing. It carries no business invariants of its own.
package directory

import (
	"sync"

	"github.com/banco-ledger/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Directory maps account ids to accounts. One instance lives for the whole
// process; accounts are never removed. Id assignment and insertion happen
// under the directory's mutex, so concurrent Create calls yield distinct,
// gapless ids.
type Directory struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*account.Account
	order  []*account.Account
}

// New returns an empty directory. Ids start at 1.
func New() *Directory {
	return &Directory{byID: make(map[int64]*account.Account)}
}

// Create constructs an account with the next sequential id and stores it.
// The only failures are the account's own construction errors; a failed
// construction does not consume an id.
func (d *Directory) Create(owner string, kind account.Kind, initialBalance decimal.Decimal) (*account.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	acc, err := account.New(d.nextID+1, owner, kind, initialBalance)
	if err != nil {
		return nil, err
	}
	d.nextID++
	d.byID[acc.ID()] = acc
	d.order = append(d.order, acc)
	return acc, nil
}

// Lookup returns the account for id, reporting absence with the boolean
// rather than an error.
func (d *Directory) Lookup(id int64) (*account.Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byID[id]
	return acc, ok
}

// List returns a snapshot of all accounts in creation order. The slice is a
// copy; the accounts themselves guard their own state.
func (d *Directory) List() []*account.Account {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*account.Account, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of accounts created so far.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}
