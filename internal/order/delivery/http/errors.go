package http

import (
	"errors"

	"restaurant-order-agent/internal/order"
)

var errSomethingWentWrong = errors.New("something went wrong, please try again")

// mapError translates domain errors into customer-safe messages. The
// customer never sees a raw internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, order.ErrEmptySessionID):
		return order.ErrEmptySessionID
	case errors.Is(err, order.ErrEmptyCatalog):
		return errSomethingWentWrong
	default:
		return errSomethingWentWrong
	}
}
