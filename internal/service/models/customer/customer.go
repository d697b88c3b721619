package customer

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no customer exists for the requested ID.
var ErrNotFound = errors.New("customer not found")

// Customer represents a customer in the system. It is a read-only input to
// order processing; discount rules inspect the VIP flag and registration date.
type Customer struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	IsVip            bool      `json:"isVip"`
	RegistrationDate time.Time `json:"registrationDate"`
}
