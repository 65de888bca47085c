package nlu

import (
	"strings"

	"restaurant-order-agent/internal/model"
)

// Conversational vocabularies. Exact or near-exact matching only: these
// classifiers are consulted by the dialogue engine in states where the
// phrasing is meaningful, so they stay deliberately strict.

var affirmExact = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "yup": true, "sure": true,
	"ok": true, "okay": true, "correct": true, "right": true,
	"that s right": true, "that s correct": true, "sounds good": true,
	"looks good": true, "confirm": true, "confirmed": true,
}

var affirmLeading = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "yup": true,
}

// IsAffirmative reports a confirm-yes answer.
func IsAffirmative(norm string) bool {
	if affirmExact[norm] {
		return true
	}
	if tok := firstToken(norm); tok != "" && affirmLeading[tok] {
		return true
	}
	return false
}

var negateLeading = map[string]bool{
	"no": true, "nope": true, "nah": true, "wrong": true, "incorrect": true,
}

// IsNegative reports a confirm-no answer. A change cue counts as negation
// so "change the size" during confirmation reopens the order.
func IsNegative(norm string) bool {
	if tok := firstToken(norm); tok != "" && negateLeading[tok] {
		return true
	}
	return HasChangeCue(norm)
}

var changeCues = []string{"change", "actually", "instead"}

// HasChangeCue detects an edit request: the customer wants to revise what
// was already ordered rather than add to it.
func HasChangeCue(norm string) bool {
	for _, cue := range changeCues {
		if containsWord(norm, cue) {
			return true
		}
	}
	return false
}

var donePhrases = []string{
	"done", "that s all", "that s it", "that is all", "that is it",
	"nothing else", "no more", "i m done", "that ll be all", "that will be all",
}

// IsDone detects "no more items" statements.
func IsDone(norm string) bool {
	for _, p := range donePhrases {
		if norm == p || containsWord(norm, p) {
			return true
		}
	}
	return false
}

// questionCues gate category questions so that "2 pepperoni pizzas" is not
// mistaken for a browse of the pizza category.
var questionCues = []string{"what", "which", "show", "list", "options", "kinds", "types", "tell me"}

func hasQuestionCue(norm string) bool {
	for _, cue := range questionCues {
		if containsWord(norm, cue) {
			return true
		}
	}
	return false
}

// IsMenuQuestion detects a general menu question.
func IsMenuQuestion(norm string) bool {
	if containsWord(norm, "menu") {
		return true
	}
	// "what do you have" and friends, without the word menu.
	return hasQuestionCue(norm) && containsWord(norm, "have") && !containsWord(norm, "can")
}

var categoryKeywords = []struct {
	kind  model.ItemKind
	words []string
}{
	{model.KindPizza, []string{"pizza", "pizzas"}},
	{model.KindWings, []string{"wing", "wings"}},
	{model.KindPasta, []string{"pasta", "pastas"}},
	{model.KindSalad, []string{"salad", "salads"}},
	{model.KindSide, []string{"side", "sides"}},
	{model.KindBeverage, []string{"beverage", "beverages", "drink", "drinks"}},
}

// DetectCategoryQuestion reports which category the customer is asking
// about, if any. Requires a question cue alongside the category word.
func DetectCategoryQuestion(norm string) (model.ItemKind, bool) {
	if !hasQuestionCue(norm) {
		return "", false
	}
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if containsWord(norm, w) {
				return c.kind, true
			}
		}
	}
	return "", false
}

// IsVegetarianQuestion detects a vegetarian-options question.
func IsVegetarianQuestion(norm string) bool {
	if !containsWord(norm, "vegetarian") && !containsWord(norm, "veggie") {
		return false
	}
	return hasQuestionCue(norm) || containsWord(norm, "menu")
}

func firstToken(norm string) string {
	if i := strings.IndexByte(norm, ' '); i >= 0 {
		return norm[:i]
	}
	return norm
}
