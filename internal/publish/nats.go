// Package publish forwards fetched Horizon records to a NATS subject.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

// HeaderResource carries the Horizon resource a record was read from.
const HeaderResource = "Horizon-Resource"

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	PublishMsg(msg *nats.Msg) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

// Publisher sends one NATS message per record to <subject>.<collection>.
type Publisher struct {
	mu      sync.Mutex
	conn    Conn
	subject string
	closed  bool
}

// Connect dials the NATS server at url.
func Connect(url, subject string) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("horizon-cli"),
		nats.MaxReconnects(0),
		nats.Timeout(constants.ShortHTTPTimeout),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	publisher, err := NewPublisher(nc, subject)
	if err != nil {
		nc.Close()

		return nil, err
	}

	return publisher, nil
}

// NewPublisher wraps an established connection.
func NewPublisher(conn Conn, subject string) (*Publisher, error) {
	subject = strings.TrimSuffix(strings.TrimSpace(subject), ".")
	if subject == "" {
		return nil, constants.ErrEmptySubject
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

// Subject returns the subject records of resource are published to.
func (p *Publisher) Subject(resource string) string {
	collection, _, _ := strings.Cut(strings.Trim(resource, "/"), "/")
	if collection == "" {
		collection = "root"
	}

	return p.subject + "." + collection
}

// Publish sends each record as a JSON message.
func Publish[T any](ctx context.Context, p *Publisher, resource string, records []T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return constants.ErrPublisherClosed
	}

	subject := p.Subject(resource)

	for i := range records {
		err := ctx.Err()
		if err != nil {
			return fmt.Errorf("publishing to %s: %w", subject, err)
		}

		data, err := json.Marshal(records[i])
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		msg := nats.NewMsg(subject)
		msg.Header.Set(HeaderResource, resource)
		msg.Data = data

		err = p.conn.PublishMsg(msg)
		if err != nil {
			return fmt.Errorf("publishing to %s: %w", subject, err)
		}
	}

	return nil
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	err := p.conn.FlushTimeout(constants.PublishFlushTimeout)

	p.conn.Close()

	if err != nil {
		return fmt.Errorf("flushing NATS connection: %w", err)
	}

	return nil
}
