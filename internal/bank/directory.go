package bank

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/caixa-dev/caixa/internal/ledger"
	"github.com/caixa-dev/caixa/internal/taxid"
)

// Settings carries the directory-wide defaults applied to every account
// it opens.
type Settings struct {
	Branch           string
	WithdrawalLimit  decimal.Decimal
	DailyWithdrawals int
	NodeID           int64 // seeds the snowflake generator for entry IDs
}

// Directory is the in-memory collection of all clients and accounts. It is
// created empty at program start, passed by reference to every operation,
// and discarded at exit. Not safe for concurrent use.
type Directory struct {
	branch     string
	limit      decimal.Decimal
	dailyCap   int
	clients    map[string]*Client
	accounts   []Account
	byNumber   map[int]Account
	nextNumber int
	node       *snowflake.Node
	now        func() time.Time
	log        zerolog.Logger
}

// NewDirectory builds an empty directory.
func NewDirectory(s Settings, log zerolog.Logger) (*Directory, error) {
	node, err := snowflake.NewNode(s.NodeID)
	if err != nil {
		return nil, fmt.Errorf("creating entry ID node: %w", err)
	}
	return &Directory{
		branch:     s.Branch,
		limit:      s.WithdrawalLimit,
		dailyCap:   s.DailyWithdrawals,
		clients:    make(map[string]*Client),
		byNumber:   make(map[int]Account),
		nextNumber: 1,
		node:       node,
		now:        time.Now,
		log:        log,
	}, nil
}

// RegisterClient validates the tax ID, rejects duplicates, and stores a new
// client. The returned client is the stored instance.
func (d *Directory) RegisterClient(taxID, name, birthDate, address string) (*Client, error) {
	id, ok := taxid.Normalize(taxID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTaxID, taxID)
	}
	if _, exists := d.clients[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClient, id)
	}
	c := &Client{TaxID: id, Name: name, BirthDate: birthDate, Address: address}
	d.clients[id] = c
	d.log.Info().Str("tax_id", id).Str("name", name).Msg("client registered")
	return c, nil
}

// OpenAccount allocates the next sequential account number and opens a
// checking account with the directory defaults for the given client.
func (d *Directory) OpenAccount(taxID string) (Account, error) {
	c, err := d.FindClient(taxID)
	if err != nil {
		return nil, err
	}
	acct := &CheckingAccount{
		baseAccount: baseAccount{
			branch:  d.branch,
			number:  d.nextNumber,
			owner:   c,
			history: ledger.NewHistory(),
			node:    d.node,
			now:     func() time.Time { return d.now() },
		},
		limit:    d.limit,
		dailyCap: d.dailyCap,
	}
	d.nextNumber++
	d.accounts = append(d.accounts, acct)
	d.byNumber[acct.number] = acct
	c.AddAccount(acct)
	d.log.Info().Int("number", acct.number).Str("tax_id", c.TaxID).Msg("account opened")
	return acct, nil
}

// FindClient looks a client up by tax ID, accepting any formatting that
// normalizes to 11 digits.
func (d *Directory) FindClient(taxID string) (*Client, error) {
	id, ok := taxid.Normalize(taxID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTaxID, taxID)
	}
	c, exists := d.clients[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	return c, nil
}

// FindAccount looks an account up by number.
func (d *Directory) FindAccount(number int) (Account, error) {
	acct, ok := d.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: number %d", ErrAccountNotFound, number)
	}
	return acct, nil
}

// FirstAccount resolves the account transactions run against: the client's
// first (oldest) account.
func (d *Directory) FirstAccount(taxID string) (Account, error) {
	c, err := d.FindClient(taxID)
	if err != nil {
		return nil, err
	}
	accts := c.Accounts()
	if len(accts) == 0 {
		return nil, fmt.Errorf("%w: client %s", ErrAccountNotFound, c.TaxID)
	}
	return accts[0], nil
}

// Accounts returns every open account in opening order.
func (d *Directory) Accounts() []Account {
	out := make([]Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}
