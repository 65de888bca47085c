package usecase

import (
	"fmt"
	"strings"

	"restaurant-order-agent/internal/model"
)

// RenderConfirmation builds the read-back summary presented before the
// customer's final yes/no. Deterministic over the session. The state
// machine only reaches it with a slot-complete order, but an empty item
// list still renders a "No items" sentinel instead of panicking.
func RenderConfirmation(s *model.Session) string {
	var b strings.Builder
	b.WriteString("Here's your order: ")

	if len(s.LineItems) == 0 {
		b.WriteString("No items. ")
	} else {
		for i, li := range s.LineItems {
			fmt.Fprintf(&b, "%d) %s. ", i+1, confirmLine(li))
		}
	}

	if s.OrderType != "" {
		fmt.Fprintf(&b, "Order type: %s. ", s.OrderType)
	}
	if s.OrderType == model.OrderDelivery && s.Address != "" {
		fmt.Fprintf(&b, "Deliver to: %s. ", s.Address)
	}

	b.WriteString("Is that correct?")
	return b.String()
}

func confirmLine(li model.LineItem) string {
	parts := []string{fmt.Sprintf("%d", li.Qty)}
	if li.Size != "" {
		parts = append(parts, string(li.Size))
	}
	parts = append(parts, li.Name)
	if t := li.Option(model.OptionWingType); t != "" {
		parts = append(parts, t)
	}
	if f := li.Option(model.OptionWingFlavor); f != "" {
		parts = append(parts, f)
	}
	line := strings.Join(parts, " ")
	if li.Spice != "" {
		line += fmt.Sprintf(" (%s)", li.Spice)
	}
	return line
}
