package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher sends finalized order payloads to the kitchen bus over NATS.
// Fire-and-forget: the kitchen display service subscribes on its own side.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// Config holds the kitchen bus connection settings.
type Config struct {
	URL     string
	Subject string
	Name    string // client name shown in NATS monitoring
}

// New connects to the NATS server. The connection reconnects forever; a
// kitchen outage must not take the order line down.
func New(cfg Config) (*Publisher, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{conn: conn, subject: cfg.Subject}, nil
}

// Publish sends one payload to the kitchen subject.
func (p *Publisher) Publish(ctx context.Context, data []byte) error {
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.subject, err)
	}
	// Publish is buffered; flush so the caller's deadline bounds delivery.
	return p.conn.FlushWithContext(ctx)
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
