package bank

// Client owns identity data and the accounts opened in its name. Clients
// are created through Directory.RegisterClient and never deleted; the only
// mutation after registration is linking new accounts.
type Client struct {
	TaxID     string // normalized, exactly 11 digits
	Name      string
	BirthDate string // DD/MM/YYYY, validated by the shell
	Address   string

	accounts []Account
}

// AddAccount links a newly opened account to the client. Account numbers
// are assigned by the Directory, so duplicates cannot occur here.
func (c *Client) AddAccount(acct Account) {
	c.accounts = append(c.accounts, acct)
}

// Accounts returns the client's accounts in opening order.
func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}
