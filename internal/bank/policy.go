package bank

import (
	"github.com/shopspring/decimal"

	"github.com/caixa-dev/caixa/internal/ledger"
)

// Transaction applies one money movement to an account. Deposit and
// Withdraw are the only implementations; pick one at the call site.
type Transaction func(acct Account, amount decimal.Decimal) error

// Deposit applies a deposit and, only on success, records the matching
// ledger entry. Callers always go through a policy so the balance change
// and the history append stay consistent.
func Deposit(acct Account, amount decimal.Decimal) error {
	if err := acct.deposit(amount); err != nil {
		return err
	}
	acct.record(ledger.KindDeposit, amount)
	return nil
}

// Withdraw applies a withdrawal and, only on success, records the matching
// ledger entry.
func Withdraw(acct Account, amount decimal.Decimal) error {
	if err := acct.withdraw(amount); err != nil {
		return err
	}
	acct.record(ledger.KindWithdraw, amount)
	return nil
}
