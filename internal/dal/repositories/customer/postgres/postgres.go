package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/avetra-labs/oms/internal/dal/postgres"
	"github.com/avetra-labs/oms/internal/service/models/customer"
)

// CustomerDal represents customer data access layer model.
type CustomerDal struct {
	Id               int64     `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	IsVip            bool      `db:"is_vip"`
	RegistrationDate time.Time `db:"registration_date"`
}

// ToModel converts CustomerDal to service layer Customer model.
func (c *CustomerDal) ToModel() *customer.Customer {
	return &customer.Customer{
		ID:               c.Id,
		Name:             c.Name,
		Email:            c.Email,
		IsVip:            c.IsVip,
		RegistrationDate: c.RegistrationDate,
	}
}

// PostgresCustomerRepository represents a Postgres customer repository.
type PostgresCustomerRepository struct {
	conn postgres.GenericConn
}

// NewPostgresCustomerRepository creates a new Postgres customer repository.
func NewPostgresCustomerRepository(conn postgres.GenericConn) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		conn: conn,
	}
}

// GetByID retrieves a customer by ID. Returns customer.ErrNotFound when no
// row exists for the identifier.
func (r *PostgresCustomerRepository) GetByID(
	ctx context.Context,
	customerID int64,
) (*customer.Customer, error) {
	sql := `
		SELECT id, name, email, is_vip, registration_date
		FROM customers
		WHERE id = $1
	`

	var dal CustomerDal
	err := r.conn.QueryRow(ctx, sql, customerID).Scan(
		&dal.Id,
		&dal.Name,
		&dal.Email,
		&dal.IsVip,
		&dal.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer with id %d: %w", customerID, customer.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return dal.ToModel(), nil
}
