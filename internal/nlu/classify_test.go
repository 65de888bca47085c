package nlu_test

import (
	"testing"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/nlu"
)

func TestIsAffirmative(t *testing.T) {
	yes := []string{"yes", "yeah", "yep", "sure", "ok", "okay", "that s correct", "sounds good", "yes please"}
	no := []string{"no", "maybe", "2 pizzas", "", "yesterday s order"}

	for _, s := range yes {
		if !nlu.IsAffirmative(s) {
			t.Errorf("IsAffirmative(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if nlu.IsAffirmative(s) {
			t.Errorf("IsAffirmative(%q) = true, want false", s)
		}
	}
}

func TestIsNegative(t *testing.T) {
	yes := []string{"no", "nope", "no change the size", "actually make it large", "wrong"}
	no := []string{"yes", "2 pizzas", ""}

	for _, s := range yes {
		if !nlu.IsNegative(s) {
			t.Errorf("IsNegative(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if nlu.IsNegative(s) {
			t.Errorf("IsNegative(%q) = true, want false", s)
		}
	}
}

func TestIsDone(t *testing.T) {
	yes := []string{"done", "that s all", "nothing else", "no more", "that s it thanks"}
	no := []string{"yes", "one more coke", ""}

	for _, s := range yes {
		if !nlu.IsDone(s) {
			t.Errorf("IsDone(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if nlu.IsDone(s) {
			t.Errorf("IsDone(%q) = true, want false", s)
		}
	}
}

func TestIsMenuQuestion(t *testing.T) {
	yes := []string{"what s on the menu", "menu", "show me the menu", "what do you have"}
	no := []string{"2 large pepperoni", "can i have a coke", ""}

	for _, s := range yes {
		if !nlu.IsMenuQuestion(s) {
			t.Errorf("IsMenuQuestion(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if nlu.IsMenuQuestion(s) {
			t.Errorf("IsMenuQuestion(%q) = true, want false", s)
		}
	}
}

func TestDetectCategoryQuestion(t *testing.T) {
	tests := []struct {
		norm     string
		wantKind model.ItemKind
		wantOK   bool
	}{
		{"what pizzas do you have", model.KindPizza, true},
		{"which wings are there", model.KindWings, true},
		{"show me the drinks", model.KindBeverage, true},
		{"what kinds of pasta", model.KindPasta, true},
		{"2 pepperoni pizzas", "", false}, // no question cue
		{"what time do you close", "", false},
	}

	for _, tt := range tests {
		kind, ok := nlu.DetectCategoryQuestion(tt.norm)
		if kind != tt.wantKind || ok != tt.wantOK {
			t.Errorf("DetectCategoryQuestion(%q) = (%q, %v), want (%q, %v)",
				tt.norm, kind, ok, tt.wantKind, tt.wantOK)
		}
	}
}

func TestIsVegetarianQuestion(t *testing.T) {
	if !nlu.IsVegetarianQuestion("what vegetarian pizzas do you have") {
		t.Errorf("expected vegetarian question")
	}
	if !nlu.IsVegetarianQuestion("show me veggie options") {
		t.Errorf("expected vegetarian question")
	}
	if nlu.IsVegetarianQuestion("veggie supreme pizza please") {
		t.Errorf("ordering a veggie pizza is not a question")
	}
}
