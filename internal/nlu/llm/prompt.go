package llm

import (
	"fmt"
	"strings"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
)

// orderParsingSystemPrompt is the system instruction sent to Gemini for
// utterance parsing. The model must answer with one JSON object and nothing
// else; anything unparsable is discarded by the caller.
const orderParsingSystemPrompt = `You are an order-taking assistant for a restaurant. Classify ONE customer utterance and extract any ordered items.

RULES:
1. intent MUST be exactly one of: "none", "menu_question", "category_question", "order_items", "confirm_yes", "confirm_no", "done", "order_type".
2. items is an array; each element has:
   - name: EXACTLY one of the menu item names listed below (required)
   - qty: integer 1-49, default 1
   - size: "Small", "Medium" or "Large" for pizzas, empty otherwise or when not stated
   - spice: "Mild", "Medium" or "Hot" only for items marked spice-required, empty when not stated
   - options: object with "type" and/or "flavor" keys for wings, only values listed below
3. If the utterance mentions MORE THAN ONE spice level for a spice-required item, leave spice empty and set spice_ambiguous to true. Never pick one.
4. Set category to the category name ("pizza", "wings", "pasta", "salad", "side", "beverage") for category questions; set vegetarian to true for vegetarian-options questions.
5. Set order_type to "Pickup" or "Delivery" whenever the utterance states it, regardless of intent.
6. Set change_requested to true when the customer wants to revise the order ("change", "actually", "instead").
7. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
"actually make it 2 large pepperoni, mild, for delivery"

EXAMPLE OUTPUT:
{"intent":"order_items","items":[{"name":"Pepperoni","qty":2,"size":"Large","spice":"Mild"}],"order_type":"Delivery","change_requested":true}`

// buildOrderParsingPrompt builds the full prompt for one utterance.
func buildOrderParsingPrompt(menu, utterance string) string {
	return orderParsingSystemPrompt + "\n\nMENU:\n" + menu +
		"\n\nNow parse the following utterance and return ONLY the JSON object:\n" + utterance
}

// menuBlock renders the catalog index as the prompt's MENU section.
func menuBlock(index []catalog.Entry) string {
	var b strings.Builder
	for _, e := range index {
		fmt.Fprintf(&b, "- %s (%s", e.Name, e.Kind)
		if e.RequiresSpice {
			b.WriteString(", spice-required")
		}
		if e.IsVegetarian {
			b.WriteString(", vegetarian")
		}
		if e.Kind == model.KindWings {
			if len(e.WingTypes) > 0 {
				fmt.Fprintf(&b, ", types: %s", strings.Join(e.WingTypes, "/"))
			}
			if len(e.WingFlavors) > 0 {
				fmt.Fprintf(&b, ", flavors: %s", strings.Join(e.WingFlavors, "/"))
			}
		}
		b.WriteString(")\n")
	}
	return b.String()
}
