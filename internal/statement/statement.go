// Package statement renders an account's ledger for people to read: plain
// text for the session, CSV and PDF for file exports. Rendering reads
// account state only and never mutates it.
package statement

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caixa-dev/caixa/internal/bank"
)

const timeFormat = "02/01/2006 15:04:05"

// Render writes a text statement: titular, limits for checking accounts,
// every ledger entry in order, and the final balance.
func Render(w io.Writer, acct bank.Account, now time.Time) {
	rule := strings.Repeat("=", 43)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Titular:  %s\n", acct.Owner().Name)
	fmt.Fprintf(w, "Account:  %s/%d\n", acct.Branch(), acct.Number())
	if ca, ok := acct.(*bank.CheckingAccount); ok {
		fmt.Fprintf(w, "Withdrawal limit:       %s\n", ca.Limit().StringFixed(2))
		fmt.Fprintf(w, "Withdrawals left today: %d\n", ca.RemainingWithdrawals(now))
	}
	fmt.Fprintln(w, strings.Repeat("-", 43))

	entries := acct.History().Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No transactions.")
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s | %-8s | %10s\n", e.Time.Format(timeFormat), e.Kind, e.Amount.StringFixed(2))
	}

	fmt.Fprintln(w, strings.Repeat("-", 43))
	fmt.Fprintf(w, "Balance:  %s\n", acct.Balance().StringFixed(2))
	fmt.Fprintln(w, rule)
}
