package dto

import (
	"time"
)

// CreateClientRequest defines the data needed to register a person client.
type CreateClientRequest struct {
	TaxID     string    `json:"taxID" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	BirthDate time.Time `json:"birthDate" validate:"required"`
	Address   string    `json:"address" validate:"required"`
}

// ClientResponse defines the data returned for a registered client.
type ClientResponse struct {
	TaxID        string    `json:"taxID"`
	Name         string    `json:"name"`
	BirthDate    time.Time `json:"birthDate"`
	Address      string    `json:"address"`
	AccountCount int       `json:"accountCount"`
}
