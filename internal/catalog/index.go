package catalog

import "restaurant-order-agent/internal/model"

// Entry is one orderable item flattened out of the store catalog, carrying
// everything the interpreter needs to match and slot-fill it.
type Entry struct {
	Kind          model.ItemKind
	Name          string   // display name, kept verbatim for prompts and tickets
	Aliases       []string // normalized match keys: {normalized name} ∪ {normalized aliases}
	RequiresSpice bool
	IsVegetarian  bool
	WingTypes     []string // populated for wings entries only
	WingFlavors   []string
}

// BuildIndex flattens the hierarchical store catalog into a uniform entry
// list. Pure and deterministic: entry order follows catalog order (pizzas
// group by group, then sides, beverages, pastas, salads, wings), and callers
// rely on that order for first-match-wins tie-breaking.
func BuildIndex(c model.StoreCatalog) []Entry {
	var index []Entry

	for _, group := range c.Pizzas {
		for _, item := range group.Items {
			index = append(index, newEntry(model.KindPizza, item))
		}
	}
	for _, item := range c.Sides {
		index = append(index, newEntry(model.KindSide, item))
	}
	for _, item := range c.Beverages {
		index = append(index, newEntry(model.KindBeverage, item))
	}
	for _, item := range c.Pastas {
		index = append(index, newEntry(model.KindPasta, item))
	}
	for _, item := range c.Salads {
		index = append(index, newEntry(model.KindSalad, item))
	}
	for _, item := range c.Wings {
		index = append(index, newEntry(model.KindWings, item))
	}

	return index
}

func newEntry(kind model.ItemKind, item model.CatalogItem) Entry {
	e := Entry{
		Kind:          kind,
		Name:          item.Name,
		Aliases:       aliasSet(item),
		RequiresSpice: item.RequiresSpice,
		IsVegetarian:  item.IsVegetarian,
	}
	if item.Wings != nil {
		e.WingTypes = normalizeAll(item.Wings.Types)
		e.WingFlavors = normalizeAll(item.Wings.Flavors)
	}
	return e
}

// aliasSet builds the deduplicated, normalized alias set for one item.
// Empty normalizations (pure-punctuation aliases) are dropped.
func aliasSet(item model.CatalogItem) []string {
	seen := make(map[string]bool, len(item.Aliases)+1)
	var set []string

	add := func(raw string) {
		norm := Normalize(raw)
		if norm == "" || seen[norm] {
			return
		}
		seen[norm] = true
		set = append(set, norm)
	}

	add(item.Name)
	for _, a := range item.Aliases {
		add(a)
	}
	return set
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if norm := Normalize(v); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}
