package usecase

import (
	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/ticket"
	"restaurant-order-agent/internal/ticket/repository"
	pkgLog "restaurant-order-agent/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	store    model.Store
	repo     repository.TicketRepository
	notifier ticket.KitchenNotifier // optional
}

// New creates the ticket UseCase. notifier may be nil when no kitchen bus
// is configured.
func New(l pkgLog.Logger, store model.Store, repo repository.TicketRepository, notifier ticket.KitchenNotifier) *implUseCase {
	return &implUseCase{
		l:        l,
		store:    store,
		repo:     repo,
		notifier: notifier,
	}
}
