package nlu

import "restaurant-order-agent/internal/model"

// Intent is the primary classification of one customer utterance.
type Intent string

const (
	IntentNone             Intent = "none"
	IntentMenuQuestion     Intent = "menu_question"
	IntentCategoryQuestion Intent = "category_question"
	IntentOrderItems       Intent = "order_items"
	IntentConfirmYes       Intent = "confirm_yes"
	IntentConfirmNo        Intent = "confirm_no"
	IntentDone             Intent = "done"
	IntentOrderType        Intent = "order_type"
)

// Result is what one utterance was understood to mean. Secondary signals
// (order type, change cue, spice ambiguity) are carried alongside the
// primary intent because a single utterance can express several things:
// "actually make it 2 pepperoni for delivery".
type Result struct {
	Intent Intent

	// Items extracted from the utterance, duplicates already qty-summed.
	Items []model.LineItem

	// Category is set for category questions; empty for the general menu.
	Category model.ItemKind

	// Vegetarian marks a vegetarian-menu question.
	Vegetarian bool

	// OrderType is set whenever the utterance states pickup or delivery,
	// regardless of the primary intent.
	OrderType model.OrderType

	// SpiceAmbiguous is set when the utterance mentions more than one spice
	// level for a spice-required item. The engine must re-prompt, never pick.
	SpiceAmbiguous bool

	// ChangeRequested is set on a "change"/"actually"/"instead" cue.
	ChangeRequested bool
}

// Empty reports whether nothing at all was recognized.
func (r Result) Empty() bool {
	return r.Intent == IntentNone && len(r.Items) == 0 &&
		r.OrderType == "" && !r.ChangeRequested
}
