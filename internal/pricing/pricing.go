package pricing

import (
	"math"

	"restaurant-order-agent/internal/model"
)

// Price computes the quote for a finalized session against the store's
// price table. Items or sizes missing from the table are skipped rather
// than failing the order; callers should log skips as a data-quality
// warning because the customer is silently undercharged.
func Price(store model.Store, s model.Session) model.Quote {
	quote, _ := PriceWithSkips(store, s)
	return quote
}

// PriceWithSkips is Price plus the list of line items that had no usable
// price entry.
func PriceWithSkips(store model.Store, s model.Session) (model.Quote, []model.LineItem) {
	var subtotal float64
	var skipped []model.LineItem

	for _, item := range s.LineItems {
		unit, ok := unitPrice(store.Prices, item)
		if !ok {
			skipped = append(skipped, item)
			continue
		}
		subtotal += unit * float64(item.Qty)
	}

	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * store.Settings.TaxRate)

	return model.Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
	}, skipped
}

func unitPrice(prices model.PriceTable, item model.LineItem) (float64, bool) {
	if item.Kind == model.KindPizza {
		sizes, ok := prices.Pizzas[item.Name]
		if !ok {
			return 0, false
		}
		price, ok := sizes[item.Size]
		return price, ok
	}

	price, ok := prices.Items[item.Name]
	return price, ok
}

// roundCents rounds half-up at the cent.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
