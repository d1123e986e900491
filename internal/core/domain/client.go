package domain

import "time"

// Client owns accounts and applies transactions to them on behalf of a user.
type Client interface {
	Address() string
	Accounts() []Account
	AddAccount(account Account)
	ApplyTransaction(account Account, transaction Transaction) error
}

// BaseClient is a client identified only by its address.
type BaseClient struct {
	address  string
	accounts []Account // creation order
}

// NewBaseClient creates a client with no accounts.
func NewBaseClient(address string) *BaseClient {
	return &BaseClient{address: address}
}

func (c *BaseClient) Address() string { return c.address }

// Accounts returns the client's accounts in the order they were added.
func (c *BaseClient) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// AddAccount appends account without checking for duplicates or ownership.
func (c *BaseClient) AddAccount(account Account) {
	c.accounts = append(c.accounts, account)
}

// ApplyTransaction applies transaction to account and surfaces its failure, if any.
func (c *BaseClient) ApplyTransaction(account Account, transaction Transaction) error {
	return transaction.Apply(account)
}

// PersonClient is a client that is a natural person.
type PersonClient struct {
	*BaseClient
	TaxID     string    `json:"taxID"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
}

// NewPersonClient creates a person client with no accounts.
func NewPersonClient(taxID, name string, birthDate time.Time, address string) *PersonClient {
	return &PersonClient{
		BaseClient: NewBaseClient(address),
		TaxID:      taxID,
		Name:       name,
		BirthDate:  birthDate,
	}
}
