package statement

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/caixa-dev/caixa/internal/bank"
)

// WritePDF renders the statement as a PDF document.
func WritePDF(w io.Writer, acct bank.Account, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Account Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Titular: %s", acct.Owner().Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Account: %s/%d", acct.Branch(), acct.Number()))
	pdf.Ln(6)
	if ca, ok := acct.(*bank.CheckingAccount); ok {
		pdf.Cell(0, 6, fmt.Sprintf("Withdrawal limit: %s", ca.Limit().StringFixed(2)))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Withdrawals left today: %d", ca.RemainingWithdrawals(now)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "Kind", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	entries := acct.History().Entries()
	if len(entries) == 0 {
		pdf.CellFormat(140, 7, "No transactions.", "1", 1, "", false, 0, "")
	}
	for _, e := range entries {
		pdf.CellFormat(60, 7, e.Time.Format(timeFormat), "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, string(e.Kind), "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, e.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Balance: %s", acct.Balance().StringFixed(2)))

	return pdf.Output(w)
}
