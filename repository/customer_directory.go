package repository

import (
	"context"

	"credflow/domain"
)

// CustomerDirectory resolves a phone number to a CRM profile. Lookups that
// find nothing return domain.ErrCustomerNotFound.
type CustomerDirectory interface {
	ResolveByPhone(ctx context.Context, phoneNumber string) (domain.CustomerProfile, error)
}
