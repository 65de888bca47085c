package repository

import (
	"context"

	"restaurant-order-agent/internal/model"
)

// TicketRepository is the append-only ticket store. Append assigns the
// next sequential ticket number and persists the record.
type TicketRepository interface {
	Append(ctx context.Context, t model.Ticket) (model.Ticket, error)
}
