// Package ledger records completed transactions. A History is an
// append-only, chronological log owned by exactly one account; the ledger
// only remembers what happened, balances are derived elsewhere.
package ledger

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Kind classifies a ledger entry. The set is closed: money moves in or out.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
)

// Entry is one recorded transaction. An Entry is created at the moment a
// transaction successfully applies and never changes afterwards.
type Entry struct {
	ID     snowflake.ID
	Kind   Kind
	Amount decimal.Decimal // always positive
	Time   time.Time
}

// History is the chronological log of one account's entries. Not safe for
// concurrent use; the session processes one operation at a time.
type History struct {
	entries []Entry
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Append records an entry. Validation happens before an entry is built, so
// appending always succeeds. Entries are never reordered or removed.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Entries returns the recorded entries in order. The slice is a copy; the
// log cannot be modified through it.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// CountWithdrawalsOn counts withdraw entries recorded on day's calendar
// date. Counted fresh on every call: the day boundary is wall-clock
// relative, so a cached counter would go stale at midnight.
func (h *History) CountWithdrawalsOn(day time.Time) int {
	y, m, d := day.Date()
	n := 0
	for _, e := range h.entries {
		if e.Kind != KindWithdraw {
			continue
		}
		ey, em, ed := e.Time.Date()
		if ey == y && em == m && ed == d {
			n++
		}
	}
	return n
}
