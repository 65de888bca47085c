package ticket

import (
	"context"

	"restaurant-order-agent/internal/model"
)

// UseCase finalizes a confirmed order: price it, cut a sequential ticket,
// persist it, and hand it to the kitchen.
type UseCase interface {
	Commit(ctx context.Context, sc model.Scope, s *model.Session) (model.Ticket, error)
}

// KitchenNotifier pushes a cut ticket to the kitchen display. Publishing is
// best-effort; the ticket is already persisted when this is called.
type KitchenNotifier interface {
	PublishTicket(ctx context.Context, t model.Ticket, rendered string) error
}
