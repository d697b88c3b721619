package icustomerrepo

import (
	"context"

	"github.com/avetra-labs/oms/internal/service/models/customer"
)

// ICustomerRepository is an interface for customer postgres repository.
type ICustomerRepository interface {
	// GetByID fetches a customer by ID, returning customer.ErrNotFound when
	// no row exists.
	GetByID(ctx context.Context, customerID int64) (*customer.Customer, error)
}
