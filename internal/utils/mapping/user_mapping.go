package mapping

import (
	"github.com/SscSPs/simple_banking_system/internal/core/domain"
	"github.com/SscSPs/simple_banking_system/internal/dto"
)

// ToClientResponse converts a domain PersonClient to a ClientResponse DTO
func ToClientResponse(c *domain.PersonClient) dto.ClientResponse {
	return dto.ClientResponse{
		TaxID:        c.TaxID,
		Name:         c.Name,
		BirthDate:    c.BirthDate,
		Address:      c.Address(),
		AccountCount: len(c.Accounts()),
	}
}
