package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/pricing"
	"restaurant-order-agent/internal/ticket"
)

// Commit prices the completed session, cuts a sequential ticket, persists
// it, and notifies the kitchen. The session must already be customer-
// confirmed; Commit does not re-validate slot completeness beyond that.
func (uc *implUseCase) Commit(ctx context.Context, sc model.Scope, s *model.Session) (model.Ticket, error) {
	if s == nil || !s.Completed {
		return model.Ticket{}, ticket.ErrSessionNotCompleted
	}
	if len(s.LineItems) == 0 {
		return model.Ticket{}, ticket.ErrNoItems
	}

	quote, skipped := pricing.PriceWithSkips(uc.store, *s)
	for _, item := range skipped {
		// Data-quality problem, not a customer problem: the order proceeds.
		uc.l.Warnf(ctx, "Commit: no price for %s %q (size %q), line skipped in quote",
			item.Kind, item.Name, item.Size)
	}

	t := model.Ticket{
		SessionID: s.ID,
		Channel:   sc.Channel,
		OrderType: s.OrderType,
		Address:   s.Address,
		Items:     s.LineItems,
		Quote:     quote,
		CreatedAt: time.Now(),
	}

	stamped, err := uc.repo.Append(ctx, t)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("failed to persist ticket: %w", err)
	}

	uc.l.Infof(ctx, "Commit: ticket #%d cut for session %s (%d items, total %.2f)",
		stamped.Number, s.ID, len(stamped.Items), stamped.Quote.Total)

	if uc.notifier != nil {
		rendered := ticket.Format(stamped, uc.store.Settings.Name)
		if err := uc.notifier.PublishTicket(ctx, stamped, rendered); err != nil {
			// Best-effort: the ticket is on disk, the kitchen can re-read it.
			uc.l.Warnf(ctx, "Commit: kitchen publish failed for ticket #%d (non-fatal): %v",
				stamped.Number, err)
		}
	}

	return stamped, nil
}
