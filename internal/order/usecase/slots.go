package usecase

import (
	"fmt"
	"strings"

	"restaurant-order-agent/internal/model"
)

// nextAwaiting scans line items in insertion order and returns the cursor
// for the first unfilled slot, then falls back to the session-level slots.
// Per item the order is size, spice, wing type, wing flavor. Returning nil
// means the order is ready to confirm.
func (uc *implUseCase) nextAwaiting(s *model.Session) *model.Awaiting {
	for i, li := range s.LineItems {
		entry, known := uc.entryFor(li)

		if li.Kind == model.KindPizza && li.Size == "" {
			return &model.Awaiting{Slot: model.SlotSize, ItemIndex: i, Choices: sizeChoices(uc.store.Settings)}
		}
		if known && entry.RequiresSpice && li.Spice == "" {
			return &model.Awaiting{Slot: model.SlotSpice, ItemIndex: i, Choices: []string{"Mild", "Medium", "Hot"}}
		}
		if li.Kind == model.KindWings && known {
			if len(entry.WingTypes) > 0 && li.Option(model.OptionWingType) == "" {
				return &model.Awaiting{Slot: model.SlotWingType, ItemIndex: i, Choices: entry.WingTypes}
			}
			if len(entry.WingFlavors) > 0 && li.Option(model.OptionWingFlavor) == "" {
				return &model.Awaiting{Slot: model.SlotWingFlavor, ItemIndex: i, Choices: entry.WingFlavors}
			}
		}
	}

	if s.OrderType == "" {
		return &model.Awaiting{Slot: model.SlotOrderType, ItemIndex: -1, Choices: []string{"pickup", "delivery"}}
	}
	if s.OrderType == model.OrderDelivery && s.Address == "" {
		return &model.Awaiting{Slot: model.SlotAddress, ItemIndex: -1}
	}

	return nil
}

// questionFor builds the one question for an awaiting cursor. Deterministic:
// a rejected answer gets the byte-identical question again.
func (uc *implUseCase) questionFor(aw model.Awaiting, s *model.Session) string {
	name := ""
	if aw.ItemIndex >= 0 && aw.ItemIndex < len(s.LineItems) {
		name = s.LineItems[aw.ItemIndex].Name
	}

	switch aw.Slot {
	case model.SlotSize:
		return fmt.Sprintf("What size would you like for the %s? We have %s.", name, joinChoices(aw.Choices, "and"))
	case model.SlotSpice:
		return fmt.Sprintf("How spicy would you like the %s? %s?", name, joinChoices(aw.Choices, "or"))
	case model.SlotWingType:
		return fmt.Sprintf("Would you like %s wings?", joinChoices(aw.Choices, "or"))
	case model.SlotWingFlavor:
		return fmt.Sprintf("What flavor for the %s? We have %s.", name, strings.Join(aw.Choices, ", "))
	case model.SlotOrderType:
		return promptOrderType
	case model.SlotAddress:
		return promptAddress
	}
	return promptFirstItem
}

func sizeChoices(settings model.StoreSettings) []string {
	sizes := settings.Sizes()
	out := make([]string, 0, len(sizes))
	for _, sz := range sizes {
		out = append(out, string(sz))
	}
	return out
}

// joinChoices renders "a, b, or c" style lists.
func joinChoices(choices []string, conj string) string {
	switch len(choices) {
	case 0:
		return ""
	case 1:
		return choices[0]
	case 2:
		return choices[0] + " " + conj + " " + choices[1]
	default:
		return strings.Join(choices[:len(choices)-1], ", ") + ", " + conj + " " + choices[len(choices)-1]
	}
}
