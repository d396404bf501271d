package model

import "time"

// EntryKind discriminates the direction of a ledger entry.
type EntryKind string

const (
	EntryKindDeposit  EntryKind = "deposit"
	EntryKindWithdraw EntryKind = "withdraw"
)

// Valid reports whether the kind is one of the supported values.
func (k EntryKind) Valid() bool {
	return k == EntryKindDeposit || k == EntryKindWithdraw
}

// Entry is a single line in a user's ledger. Seq is assigned on append,
// is unique within the owning user's ledger and never reused.
type Entry struct {
	ID         int64
	UserID     int64
	Seq        int64
	Amount     Cents
	Title      string
	Kind       EntryKind
	RecordedAt time.Time
}
