package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/caixa-dev/caixa/internal/bank"
	"github.com/caixa-dev/caixa/internal/config"
	"github.com/caixa-dev/caixa/internal/statement"
)

func newSessionCommand(log zerolog.Logger) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive teller session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			limit, err := cfg.PerWithdrawalLimit()
			if err != nil {
				return err
			}
			dir, err := bank.NewDirectory(bank.Settings{
				Branch:           cfg.Bank.Branch,
				WithdrawalLimit:  limit,
				DailyWithdrawals: cfg.Limits.DailyWithdrawals,
				NodeID:           cfg.Ledger.NodeID,
			}, log)
			if err != nil {
				return err
			}
			s := &session{
				dir: dir,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
				log: log,
				now: time.Now,
			}
			return s.run()
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "caixa.yaml", "path to configuration file")

	return cmd
}

// loadConfig falls back to the built-in defaults when no config file is
// present; a file that exists but cannot be parsed is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// session holds the state of one interactive teller run. The directory
// lives exactly as long as the session and is discarded on quit.
type session struct {
	dir *bank.Directory
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
	now func() time.Time
}

const sessionHelp = `Commands:
  register    register a new client
  open        open a checking account for a client
  deposit     deposit into a client's account
  withdraw    withdraw from a client's account
  statement   print a client's account statement
  accounts    list every open account
  export      export a statement to a pdf or csv file
  help        show this help
  quit        end the session`

func (s *session) run() error {
	fmt.Fprintln(s.out, "caixa teller session. Type 'help' for commands.")
	for {
		fmt.Fprint(s.out, "=> ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}
		switch strings.ToLower(line) {
		case "":
		case "register":
			s.register()
		case "open":
			s.openAccount()
		case "deposit":
			s.transact("deposit", bank.Deposit)
		case "withdraw":
			s.transact("withdraw", bank.Withdraw)
		case "statement":
			s.statement()
		case "accounts":
			s.listAccounts()
		case "export":
			s.export()
		case "help":
			fmt.Fprintln(s.out, sessionHelp)
		case "quit", "q", "exit":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", line)
		}
	}
}

func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	return s.readLine()
}

func (s *session) register() {
	id, ok := s.prompt("Tax ID (11 digits)")
	if !ok {
		return
	}
	name, ok := s.prompt("Full name")
	if !ok {
		return
	}
	birth, ok := s.promptBirthDate()
	if !ok {
		return
	}
	addr, ok := s.prompt("Address")
	if !ok {
		return
	}
	c, err := s.dir.RegisterClient(id, name, birth, addr)
	if err != nil {
		s.fail("register", err)
		return
	}
	fmt.Fprintf(s.out, "Client %s registered.\n", c.Name)
}

// promptBirthDate re-prompts until the date parses; the core never sees an
// unvalidated date.
func (s *session) promptBirthDate() (string, bool) {
	for {
		birth, ok := s.prompt("Birth date (DD/MM/YYYY)")
		if !ok {
			return "", false
		}
		if _, err := time.Parse("02/01/2006", birth); err != nil {
			fmt.Fprintln(s.out, "Invalid date, use DD/MM/YYYY.")
			continue
		}
		return birth, true
	}
}

func (s *session) openAccount() {
	id, ok := s.prompt("Tax ID")
	if !ok {
		return
	}
	acct, err := s.dir.OpenAccount(id)
	if err != nil {
		s.fail("open", err)
		return
	}
	fmt.Fprintf(s.out, "Account %s/%d opened for %s.\n", acct.Branch(), acct.Number(), acct.Owner().Name)
}

// transact runs one deposit or withdrawal: resolve the account, prompt for
// the amount, apply the selected policy.
func (s *session) transact(name string, apply bank.Transaction) {
	id, ok := s.prompt("Tax ID")
	if !ok {
		return
	}
	acct, err := s.dir.FirstAccount(id)
	if err != nil {
		s.fail(name, err)
		return
	}
	raw, ok := s.prompt("Amount")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(s.out, "Operation failed: invalid amount %q.\n", raw)
		return
	}
	if err := apply(acct, amount); err != nil {
		s.fail(name, err)
		return
	}
	s.log.Info().
		Str("op", name).
		Int("account", acct.Number()).
		Str("amount", amount.StringFixed(2)).
		Msg("transaction applied")
	fmt.Fprintf(s.out, "Success. New balance: %s\n", acct.Balance().StringFixed(2))
}

func (s *session) statement() {
	id, ok := s.prompt("Tax ID")
	if !ok {
		return
	}
	acct, err := s.dir.FirstAccount(id)
	if err != nil {
		s.fail("statement", err)
		return
	}
	statement.Render(s.out, acct, s.now())
}

func (s *session) listAccounts() {
	accts := s.dir.Accounts()
	if len(accts) == 0 {
		fmt.Fprintln(s.out, "No accounts registered.")
		return
	}
	for _, a := range accts {
		fmt.Fprintln(s.out, strings.Repeat("=", 43))
		fmt.Fprintf(s.out, "Branch:   %s\n", a.Branch())
		fmt.Fprintf(s.out, "Number:   %d\n", a.Number())
		fmt.Fprintf(s.out, "Titular:  %s\n", a.Owner().Name)
		fmt.Fprintf(s.out, "Tax ID:   %s\n", a.Owner().TaxID)
	}
	fmt.Fprintln(s.out, strings.Repeat("=", 43))
}

func (s *session) export() {
	id, ok := s.prompt("Tax ID")
	if !ok {
		return
	}
	acct, err := s.dir.FirstAccount(id)
	if err != nil {
		s.fail("export", err)
		return
	}
	format, ok := s.prompt("Format (pdf or csv)")
	if !ok {
		return
	}
	path, ok := s.prompt("Output file")
	if !ok {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(s.out, "Operation failed: %s.\n", err)
		return
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "pdf":
		err = statement.WritePDF(f, acct, s.now())
	case "csv":
		err = statement.WriteCSV(f, acct.History().Entries())
	default:
		fmt.Fprintf(s.out, "Unknown format %q, use pdf or csv.\n", format)
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "Operation failed: %s.\n", err)
		return
	}
	fmt.Fprintf(s.out, "Statement written to %s.\n", path)
}

// fail prints the user-facing message for a rejected operation and logs the
// rejection.
func (s *session) fail(op string, err error) {
	s.log.Warn().Str("op", op).Err(err).Msg("operation rejected")
	fmt.Fprintf(s.out, "Operation failed: %s.\n", userMessage(err))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		return "the amount is invalid"
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "insufficient funds"
	case errors.Is(err, bank.ErrPerTransactionLimit):
		return "the amount exceeds the withdrawal limit"
	case errors.Is(err, bank.ErrDailyWithdrawalLimit):
		return "the daily withdrawal limit was reached"
	case errors.Is(err, bank.ErrClientNotFound):
		return "client not found"
	case errors.Is(err, bank.ErrAccountNotFound):
		return "the client has no account"
	case errors.Is(err, bank.ErrDuplicateClient):
		return "a client with this tax ID already exists"
	case errors.Is(err, bank.ErrMalformedTaxID):
		return "the tax ID must contain exactly 11 digits"
	default:
		return err.Error()
	}
}
