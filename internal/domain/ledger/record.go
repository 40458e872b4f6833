package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a single entry in an account's transaction history.
// A positive amount is a credit, a negative amount a debit. Records are
// immutable after construction; the owning account appends them and hands
// out copies only.
type Record struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

// NewRecord creates a record for the given movement, stamping it with the
// current time.
func NewRecord(description string, amount decimal.Decimal) Record {
	return Record{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Timestamp:   time.Now(),
	}
}

// String renders the record as "[dd/mm/yyyy hh:mm] description: amount".
func (r Record) String() string {
	return fmt.Sprintf("[%s] %s: %s", r.Timestamp.Format("02/01/2006 15:04"), r.Description, r.Amount.StringFixed(2))
}
