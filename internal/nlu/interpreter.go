package nlu

import (
	"context"
	"strings"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
)

// Interpreter turns one raw utterance into a Result. Implementations must
// never fail into the dialogue engine: when nothing is understood they
// return an empty Result.
type Interpreter interface {
	Interpret(ctx context.Context, text string) Result
}

// RuleInterpreter is the keyword/alias-based interpreter. It is pure and
// deterministic over a built catalog index.
type RuleInterpreter struct {
	index    []catalog.Entry
	settings model.StoreSettings
}

var _ Interpreter = (*RuleInterpreter)(nil)

// NewRuleInterpreter creates the rule-based interpreter for one store.
func NewRuleInterpreter(index []catalog.Entry, settings model.StoreSettings) *RuleInterpreter {
	return &RuleInterpreter{index: index, settings: settings}
}

// Interpret classifies the utterance and extracts candidate line items.
// Question detection runs before item extraction so a customer can browse
// the menu mid-order without being misread as ordering.
func (ri *RuleInterpreter) Interpret(_ context.Context, text string) Result {
	norm := catalog.Normalize(text)
	if norm == "" {
		return Result{Intent: IntentNone}
	}

	res := Result{
		Intent:          IntentNone,
		OrderType:       DetectOrderType(norm),
		ChangeRequested: HasChangeCue(norm),
	}

	if IsVegetarianQuestion(norm) {
		res.Intent = IntentCategoryQuestion
		res.Category = model.KindPizza
		res.Vegetarian = true
		return res
	}
	if kind, ok := DetectCategoryQuestion(norm); ok {
		res.Intent = IntentCategoryQuestion
		res.Category = kind
		return res
	}
	if IsMenuQuestion(norm) {
		res.Intent = IntentMenuQuestion
		return res
	}

	res.Items, res.SpiceAmbiguous = ri.extractItems(norm)
	if len(res.Items) > 0 {
		res.Intent = IntentOrderItems
		return res
	}

	switch {
	case IsDone(norm):
		res.Intent = IntentDone
	case IsAffirmative(norm):
		res.Intent = IntentConfirmYes
	case IsNegative(norm):
		res.Intent = IntentConfirmNo
	case res.OrderType != "":
		res.Intent = IntentOrderType
	}

	return res
}

// extractItems emits one candidate per catalog entry whose alias set has a
// substring hit in the normalized text. Candidates identical in
// (kind, name, size, options) are qty-summed before being returned.
func (ri *RuleInterpreter) extractItems(norm string) (items []model.LineItem, spiceAmbiguous bool) {
	qty := DetectQuantity(norm)

	for _, entry := range ri.index {
		if !aliasHit(norm, entry.Aliases) {
			continue
		}

		item := model.LineItem{
			Kind: entry.Kind,
			Name: entry.Name,
			Qty:  qty,
		}

		if entry.Kind == model.KindPizza {
			item.Size = DetectSize(norm, ri.settings)
		}

		if entry.RequiresSpice {
			spice, ambiguous := DetectSpice(norm)
			if ambiguous {
				spiceAmbiguous = true
			} else {
				item.Spice = spice
			}
		}

		if entry.Kind == model.KindWings {
			opts := map[string]string{}
			if t := DetectWingType(norm, entry.WingTypes); t != "" {
				opts[model.OptionWingType] = t
			}
			if f := DetectWingFlavor(norm, entry.WingFlavors); f != "" {
				opts[model.OptionWingFlavor] = f
			}
			if len(opts) > 0 {
				item.Options = opts
			}
		}

		items = append(items, item)
	}

	return MergeItems(items), spiceAmbiguous
}

func aliasHit(norm string, aliases []string) bool {
	for _, a := range aliases {
		if containsPhrase(norm, a) {
			return true
		}
	}
	return false
}

// containsPhrase is substring matching on normalized text. Token-boundary
// anchoring is intentionally not required so plural mentions ("cokes",
// "meatballs") still hit the singular alias.
func containsPhrase(norm, phrase string) bool {
	return phrase != "" && strings.Contains(norm, phrase)
}

// MergeItems folds duplicate candidates (same merge key) into single line
// items by summing quantities, preserving first-seen order.
func MergeItems(items []model.LineItem) []model.LineItem {
	if len(items) < 2 {
		return items
	}

	byKey := make(map[string]int, len(items))
	merged := make([]model.LineItem, 0, len(items))

	for _, item := range items {
		key := item.MergeKey()
		if idx, ok := byKey[key]; ok {
			merged[idx].Qty += item.Qty
			// A later duplicate may carry a spice the first lacked.
			if merged[idx].Spice == "" && item.Spice != "" {
				merged[idx].Spice = item.Spice
			}
			continue
		}
		byKey[key] = len(merged)
		merged = append(merged, item)
	}

	return merged
}
