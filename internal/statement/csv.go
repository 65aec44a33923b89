package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caixa-dev/caixa/internal/ledger"
)

// Header is the CSV header for a statement export.
const Header = "entry_id,date,kind,amount"

const (
	numFields = 4
	colID     = 0
	colDate   = 1
	colKind   = 2
	colAmount = 3
)

// WriteCSV exports ledger entries as CSV, header first.
func WriteCSV(w io.Writer, entries []ledger.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e ledger.Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID.String()
	row[colDate] = e.Time.Format(time.RFC3339)
	row[colKind] = string(e.Kind)
	row[colAmount] = e.Amount.StringFixed(2)
	return row
}
