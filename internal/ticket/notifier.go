package ticket

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/pkg/kitchen"
)

// kitchenPayload is what the kitchen display service receives: the
// structured ticket plus the pre-rendered printer text.
type kitchenPayload struct {
	Ticket   model.Ticket `json:"ticket"`
	Rendered string       `json:"rendered"`
}

// NATSNotifier publishes cut tickets on the kitchen bus.
type NATSNotifier struct {
	pub *kitchen.Publisher
}

var _ KitchenNotifier = (*NATSNotifier)(nil)

// NewNATSNotifier wraps a connected kitchen publisher.
func NewNATSNotifier(pub *kitchen.Publisher) *NATSNotifier {
	return &NATSNotifier{pub: pub}
}

func (n *NATSNotifier) PublishTicket(ctx context.Context, t model.Ticket, rendered string) error {
	data, err := json.Marshal(kitchenPayload{Ticket: t, Rendered: rendered})
	if err != nil {
		return fmt.Errorf("failed to marshal kitchen payload: %w", err)
	}
	return n.pub.Publish(ctx, data)
}
