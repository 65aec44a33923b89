package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClientNormalizesTaxID(t *testing.T) {
	d := newTestDirectory(t)

	c, err := d.RegisterClient("123.456.789-01", "Ana Souza", "01/02/1990", "Rua A, 1")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", c.TaxID)

	// Lookup accepts any formatting of the same digits.
	got, err := d.FindClient("12345678901")
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestRegisterClientMalformedTaxID(t *testing.T) {
	d := newTestDirectory(t)

	tests := []string{"123", "123456789012", "", "abcdefghijk"}
	for _, id := range tests {
		_, err := d.RegisterClient(id, "Ana", "01/02/1990", "Rua A")
		assert.ErrorIs(t, err, ErrMalformedTaxID, "tax ID %q", id)
	}
}

func TestRegisterDuplicateClient(t *testing.T) {
	d := newTestDirectory(t)

	first, err := d.RegisterClient("12345678901", "Ana Souza", "01/02/1990", "Rua A, 1")
	require.NoError(t, err)

	// Same digits, different formatting: still a duplicate.
	_, err = d.RegisterClient("123.456.789-01", "Outra Pessoa", "02/03/1980", "Rua B, 2")
	assert.ErrorIs(t, err, ErrDuplicateClient)

	got, err := d.FindClient("12345678901")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", got.Name, "first registration must remain unchanged")
	assert.Same(t, first, got)
}

func TestFindClientNotFound(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.FindClient("12345678901")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestOpenAccountSequentialNumbers(t *testing.T) {
	d := newTestDirectory(t)
	_, err := d.RegisterClient("12345678901", "Ana Souza", "01/02/1990", "Rua A, 1")
	require.NoError(t, err)
	_, err = d.RegisterClient("98765432109", "Bruno Lima", "05/06/1985", "Rua B, 2")
	require.NoError(t, err)

	a1, err := d.OpenAccount("12345678901")
	require.NoError(t, err)
	a2, err := d.OpenAccount("98765432109")
	require.NoError(t, err)
	a3, err := d.OpenAccount("12345678901")
	require.NoError(t, err)

	assert.Equal(t, 1, a1.Number())
	assert.Equal(t, 2, a2.Number())
	assert.Equal(t, 3, a3.Number())
	assert.Equal(t, "0001", a1.Branch())

	got, err := d.FindAccount(2)
	require.NoError(t, err)
	assert.Equal(t, "Bruno Lima", got.Owner().Name)
}

func TestOpenAccountUnknownClient(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.OpenAccount("12345678901")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestFindAccountNotFound(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.FindAccount(7)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFirstAccount(t *testing.T) {
	d := newTestDirectory(t)
	_, err := d.RegisterClient("12345678901", "Ana Souza", "01/02/1990", "Rua A, 1")
	require.NoError(t, err)

	_, err = d.FirstAccount("12345678901")
	assert.ErrorIs(t, err, ErrAccountNotFound, "registered client without an account")

	_, err = d.OpenAccount("12345678901")
	require.NoError(t, err)
	_, err = d.OpenAccount("12345678901")
	require.NoError(t, err)

	acct, err := d.FirstAccount("123.456.789-01")
	require.NoError(t, err)
	assert.Equal(t, 1, acct.Number(), "transactions run against the oldest account")
}

func TestAccountsOrder(t *testing.T) {
	d := newTestDirectory(t)
	assert.Empty(t, d.Accounts())

	_, err := d.RegisterClient("12345678901", "Ana Souza", "01/02/1990", "Rua A, 1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = d.OpenAccount("12345678901")
		require.NoError(t, err)
	}

	accts := d.Accounts()
	require.Len(t, accts, 3)
	for i, a := range accts {
		assert.Equal(t, i+1, a.Number())
	}
}

func TestClientAccountsLinked(t *testing.T) {
	d := newTestDirectory(t)
	c, err := d.RegisterClient("12345678901", "Ana Souza", "01/02/1990", "Rua A, 1")
	require.NoError(t, err)

	acct, err := d.OpenAccount("12345678901")
	require.NoError(t, err)

	accts := c.Accounts()
	require.Len(t, accts, 1)
	assert.Equal(t, acct.Number(), accts[0].Number())
	assert.Same(t, c, acct.Owner())
}
