package orderstatus

import (
	"database/sql/driver"
	"errors"
)

type Status string

const (
	// StatusPending marks an order awaiting processing.
	StatusPending Status = "Pending"
	// StatusProcessed marks an order with the discount applied, before the
	// stock check decides the terminal status.
	StatusProcessed Status = "Processed"
	// StatusReady marks an order whose stock was sufficient and reserved.
	StatusReady Status = "Ready"
	// StatusOnHold marks an order whose stock was insufficient.
	StatusOnHold Status = "OnHold"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusPending.String():
		return StatusPending, nil
	case StatusProcessed.String():
		return StatusProcessed, nil
	case StatusReady.String():
		return StatusReady, nil
	case StatusOnHold.String():
		return StatusOnHold, nil
	default:
		return "", ErrInvalidStatus
	}
}
