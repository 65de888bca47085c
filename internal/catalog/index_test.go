package catalog_test

import (
	"reflect"
	"testing"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercases", "Pepperoni", "pepperoni"},
		{"Strips punctuation", "what's on the menu?", "what s on the menu"},
		{"Collapses whitespace", "  two   large \t pizzas ", "two large pizzas"},
		{"Preserves digits", "2 Large Pepperoni!", "2 large pepperoni"},
		{"Empty", "", ""},
		{"Only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildIndex(t *testing.T) {
	store := model.StoreCatalog{
		Pizzas: []model.PizzaGroup{
			{Group: "classic", Items: []model.CatalogItem{
				{Name: "Pepperoni", Aliases: []string{"pepperoni pizza", "Pepperoni!"}, RequiresSpice: true},
				{Name: "Margherita", IsVegetarian: true},
			}},
			{Group: "specialty", Items: []model.CatalogItem{
				{Name: "BBQ Chicken"},
			}},
		},
		Beverages: []model.CatalogItem{{Name: "Coke", Aliases: []string{"coca cola", "cola"}}},
		Wings: []model.CatalogItem{{
			Name:  "Chicken Wings",
			Wings: &model.WingOptionSchema{Types: []string{"Boneless", "Traditional"}, Flavors: []string{"Buffalo", "BBQ"}},
		}},
	}

	index := catalog.BuildIndex(store)

	if len(index) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(index))
	}

	// Pizzas come first, in group order.
	if index[0].Name != "Pepperoni" || index[0].Kind != model.KindPizza {
		t.Errorf("entry 0 = %+v, want Pepperoni pizza", index[0])
	}
	if !index[0].RequiresSpice {
		t.Errorf("Pepperoni should require spice")
	}
	if index[2].Name != "BBQ Chicken" {
		t.Errorf("entry 2 = %q, want BBQ Chicken (group order)", index[2].Name)
	}

	// Alias set is normalized and deduplicated: "Pepperoni!" normalizes to
	// the same key as the name.
	wantAliases := []string{"pepperoni", "pepperoni pizza"}
	if !reflect.DeepEqual(index[0].Aliases, wantAliases) {
		t.Errorf("Pepperoni aliases = %v, want %v", index[0].Aliases, wantAliases)
	}

	// Wings carry their normalized option schema.
	wings := index[4]
	if wings.Kind != model.KindWings {
		t.Fatalf("entry 4 kind = %s, want wings", wings.Kind)
	}
	if !reflect.DeepEqual(wings.WingTypes, []string{"boneless", "traditional"}) {
		t.Errorf("wing types = %v", wings.WingTypes)
	}
	if !reflect.DeepEqual(wings.WingFlavors, []string{"buffalo", "bbq"}) {
		t.Errorf("wing flavors = %v", wings.WingFlavors)
	}

	// Vegetarian flag survives flattening.
	if !index[1].IsVegetarian {
		t.Errorf("Margherita should be vegetarian")
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	store := model.StoreCatalog{
		Sides: []model.CatalogItem{{Name: "Garlic Bread"}, {Name: "Fries"}},
	}

	a := catalog.BuildIndex(store)
	b := catalog.BuildIndex(store)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("BuildIndex is not deterministic: %v vs %v", a, b)
	}
}
