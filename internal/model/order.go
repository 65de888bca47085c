package model

import (
	"sort"
	"strings"
	"time"
)

// ItemKind classifies a line item by catalog category.
type ItemKind string

const (
	KindPizza    ItemKind = "pizza"
	KindSide     ItemKind = "side"
	KindBeverage ItemKind = "beverage"
	KindPasta    ItemKind = "pasta"
	KindSalad    ItemKind = "salad"
	KindWings    ItemKind = "wings"
)

// Size is a pizza size supported by the store.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// SpiceLevel is the spice choice for entries that require one.
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "Mild"
	SpiceMedium SpiceLevel = "Medium"
	SpiceHot    SpiceLevel = "Hot"
)

// OrderType is how the customer receives the order.
type OrderType string

const (
	OrderPickup   OrderType = "Pickup"
	OrderDelivery OrderType = "Delivery"
)

// Wing option keys used in LineItem.Options.
const (
	OptionWingType   = "type"
	OptionWingFlavor = "flavor"
)

// LineItem is one entry of the order in progress.
type LineItem struct {
	Kind    ItemKind          `json:"kind"`
	Name    string            `json:"name"`
	Qty     int               `json:"qty"`
	Size    Size              `json:"size,omitempty"`  // pizzas only
	Spice   SpiceLevel        `json:"spice,omitempty"` // only when the catalog entry requires it
	Options map[string]string `json:"options,omitempty"`
}

// MergeKey identifies line items that must be folded into one entry by
// summing quantities. Spice is deliberately excluded: two mentions of the
// same pizza merge before the spice slot is resolved.
func (li LineItem) MergeKey() string {
	parts := []string{string(li.Kind), strings.ToLower(li.Name), string(li.Size)}
	if len(li.Options) > 0 {
		keys := make([]string, 0, len(li.Options))
		for k := range li.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, k+"="+strings.ToLower(li.Options[k]))
		}
	}
	return strings.Join(parts, "|")
}

// Option returns the named option value, or "" when unset.
func (li LineItem) Option(key string) string {
	if li.Options == nil {
		return ""
	}
	return li.Options[key]
}

// SlotKind names the single slot the dialogue engine may block on.
type SlotKind string

const (
	SlotSize       SlotKind = "size"
	SlotSpice      SlotKind = "spice"
	SlotWingType   SlotKind = "wingType"
	SlotWingFlavor SlotKind = "wingFlavor"
	SlotOrderType  SlotKind = "orderType"
	SlotAddress    SlotKind = "address"
)

// Awaiting is the cursor for the one question currently pending.
// ItemIndex is -1 for session-level slots (order type, address).
type Awaiting struct {
	Slot      SlotKind `json:"slot"`
	ItemIndex int      `json:"item_index"`
	Choices   []string `json:"choices,omitempty"`
}

// Session is the order-in-progress for one conversation. It is mutated only
// by the order usecase, one turn at a time.
type Session struct {
	ID         string     `json:"id"`
	LineItems  []LineItem `json:"line_items"`
	OrderType  OrderType  `json:"order_type,omitempty"`
	Address    string     `json:"address,omitempty"`
	Awaiting   *Awaiting  `json:"awaiting,omitempty"`
	Confirming bool       `json:"confirming"`
	Completed  bool       `json:"completed"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewSession creates an empty session for a conversation.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
