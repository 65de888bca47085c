package ticket

import (
	"fmt"
	"strings"

	"restaurant-order-agent/internal/model"
)

// Format renders the kitchen-ticket text for a cut ticket. Deterministic;
// the kitchen printer gets exactly this.
func Format(t model.Ticket, storeName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "==== %s ====\n", storeName)
	fmt.Fprintf(&b, "TICKET #%d\n", t.Number)
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(string(t.OrderType)))
	if t.OrderType == model.OrderDelivery && t.Address != "" {
		fmt.Fprintf(&b, "DELIVER TO: %s\n", t.Address)
	}
	b.WriteString("----------------\n")

	for _, item := range t.Items {
		fmt.Fprintf(&b, "%dx %s", item.Qty, itemLabel(item))
		b.WriteByte('\n')
	}

	b.WriteString("----------------\n")
	fmt.Fprintf(&b, "SUBTOTAL %6.2f\n", t.Quote.Subtotal)
	fmt.Fprintf(&b, "TAX      %6.2f\n", t.Quote.Tax)
	fmt.Fprintf(&b, "TOTAL    %6.2f\n", t.Quote.Total)

	return b.String()
}

func itemLabel(item model.LineItem) string {
	parts := []string{}
	if item.Size != "" {
		parts = append(parts, string(item.Size))
	}
	parts = append(parts, item.Name)
	if item.Spice != "" {
		parts = append(parts, "("+string(item.Spice)+")")
	}
	if t := item.Option(model.OptionWingType); t != "" {
		parts = append(parts, "- "+t)
	}
	if f := item.Option(model.OptionWingFlavor); f != "" {
		parts = append(parts, "- "+f)
	}
	return strings.Join(parts, " ")
}
