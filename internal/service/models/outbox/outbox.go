package outbox

import (
	"time"
)

// OutboxMessage represents an audit event staged for publishing to RabbitMQ.
// Rows are inserted in the same transaction as the order mutations they
// describe, so a rollback discards the events along with the data.
type OutboxMessage struct {
	ID           int64
	QueueName    string
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}
