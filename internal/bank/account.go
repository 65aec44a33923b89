// Package bank holds the account model, the transaction policies that
// apply money movements, and the in-memory directory of clients and
// accounts.
package bank

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"github.com/caixa-dev/caixa/internal/ledger"
)

// Account is the capability surface of a bank account. The variant set is
// closed: both implementations live in this package, and the unexported
// operations keep balance mutation and history recording behind the
// transaction policies in policy.go.
type Account interface {
	Branch() string
	Number() int
	Owner() *Client
	Balance() decimal.Decimal
	History() *ledger.History

	deposit(amount decimal.Decimal) error
	withdraw(amount decimal.Decimal) error
	record(kind ledger.Kind, amount decimal.Decimal)
}

// baseAccount carries the state shared by every account variant. The
// balance is never set directly; it only moves through deposit and
// withdraw, so it always equals deposits minus withdrawals in the history.
type baseAccount struct {
	branch  string
	number  int
	owner   *Client
	balance decimal.Decimal
	history *ledger.History

	node *snowflake.Node
	now  func() time.Time
}

func (a *baseAccount) Branch() string           { return a.branch }
func (a *baseAccount) Number() int              { return a.number }
func (a *baseAccount) Owner() *Client           { return a.owner }
func (a *baseAccount) Balance() decimal.Decimal { return a.balance }
func (a *baseAccount) History() *ledger.History { return a.history }

func (a *baseAccount) deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *baseAccount) withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %s, requested %s",
			ErrInsufficientFunds, a.balance.StringFixed(2), amount.StringFixed(2))
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *baseAccount) record(kind ledger.Kind, amount decimal.Decimal) {
	a.history.Append(ledger.Entry{
		ID:     a.node.Generate(),
		Kind:   kind,
		Amount: amount,
		Time:   a.now(),
	})
}

// CheckingAccount is the single account specialization: it layers a
// per-withdrawal amount limit and a daily withdrawal count cap on top of
// the base rules.
type CheckingAccount struct {
	baseAccount
	limit    decimal.Decimal
	dailyCap int
}

// Limit returns the maximum amount of a single withdrawal.
func (c *CheckingAccount) Limit() decimal.Decimal { return c.limit }

// DailyCap returns the maximum number of withdrawals per calendar day.
func (c *CheckingAccount) DailyCap() int { return c.dailyCap }

// RemainingWithdrawals returns how many withdrawals are still allowed on
// now's calendar date.
func (c *CheckingAccount) RemainingWithdrawals(now time.Time) int {
	rem := c.dailyCap - c.history.CountWithdrawalsOn(now)
	if rem < 0 {
		rem = 0
	}
	return rem
}

// withdraw checks the two checking-account limits, in this order, before
// the shared positivity and funds rules run.
func (c *CheckingAccount) withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(c.limit) {
		return fmt.Errorf("%w: limit %s, requested %s",
			ErrPerTransactionLimit, c.limit.StringFixed(2), amount.StringFixed(2))
	}
	if c.history.CountWithdrawalsOn(c.now()) >= c.dailyCap {
		return fmt.Errorf("%w: %d per day", ErrDailyWithdrawalLimit, c.dailyCap)
	}
	return c.baseAccount.withdraw(amount)
}
