package usecase

import (
	"strings"
	"sync"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/nlu"
	"restaurant-order-agent/internal/order"
	"restaurant-order-agent/internal/order/repository"
	"restaurant-order-agent/internal/ticket"
	pkgLog "restaurant-order-agent/pkg/log"
)

var _ order.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l        pkgLog.Logger
	sessions repository.SessionRepository
	interp   nlu.Interpreter
	tickets  ticket.UseCase
	store    model.Store
	index    []catalog.Entry
	entries  map[string]catalog.Entry
	locks    sessionLocks
}

// New creates the order UseCase. The catalog index must be built from the
// same store the pricing and ticket layers use.
func New(
	l pkgLog.Logger,
	sessions repository.SessionRepository,
	interp nlu.Interpreter,
	tickets ticket.UseCase,
	store model.Store,
	index []catalog.Entry,
) *implUseCase {
	entries := make(map[string]catalog.Entry, len(index))
	for _, e := range index {
		entries[entryKey(e.Kind, e.Name)] = e
	}
	return &implUseCase{
		l:        l,
		sessions: sessions,
		interp:   interp,
		tickets:  tickets,
		store:    store,
		index:    index,
		entries:  entries,
	}
}

// entryFor returns the catalog entry backing a line item, if any. Line items
// only ever come from the interpreter, which draws names from the index, so
// a miss here means the catalog changed under a live session.
func (uc *implUseCase) entryFor(li model.LineItem) (catalog.Entry, bool) {
	e, ok := uc.entries[entryKey(li.Kind, li.Name)]
	return e, ok
}

func entryKey(kind model.ItemKind, name string) string {
	return string(kind) + "|" + strings.ToLower(name)
}

// sessionLocks serializes turns per session id. The state machine is not
// designed for interleaved mutation, so two concurrent requests for one
// session must queue.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (sl *sessionLocks) lock(id string) func() {
	sl.mu.Lock()
	if sl.locks == nil {
		sl.locks = make(map[string]*sync.Mutex)
	}
	m, ok := sl.locks[id]
	if !ok {
		m = &sync.Mutex{}
		sl.locks[id] = m
	}
	sl.mu.Unlock()

	m.Lock()
	return m.Unlock
}
