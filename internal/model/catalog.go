package model

// CatalogItem is one orderable menu entry as configured in the store file.
type CatalogItem struct {
	Name          string   // Display name, e.g. "Pepperoni"
	Aliases       []string // Alternate phrasings customers use
	RequiresSpice bool     // Pizzas only
	IsVegetarian  bool     // Pizzas only
	Wings         *WingOptionSchema
}

// WingOptionSchema enumerates the option values a wings entry supports.
type WingOptionSchema struct {
	Types   []string // e.g. "boneless", "traditional"
	Flavors []string // e.g. "buffalo", "bbq", "lemon pepper"
}

// PizzaGroup is a sub-category of pizzas (e.g. "classic", "specialty").
type PizzaGroup struct {
	Group string
	Items []CatalogItem
}

// StoreCatalog is the hierarchical menu as loaded from configuration.
type StoreCatalog struct {
	Pizzas    []PizzaGroup
	Sides     []CatalogItem
	Beverages []CatalogItem
	Pastas    []CatalogItem
	Salads    []CatalogItem
	Wings     []CatalogItem
}

// Empty reports whether the catalog has no orderable items at all.
// A store with an empty catalog must refuse to take orders.
func (c StoreCatalog) Empty() bool {
	for _, g := range c.Pizzas {
		if len(g.Items) > 0 {
			return false
		}
	}
	return len(c.Sides) == 0 && len(c.Beverages) == 0 &&
		len(c.Pastas) == 0 && len(c.Salads) == 0 && len(c.Wings) == 0
}

// StoreSettings carries per-store behavior knobs.
type StoreSettings struct {
	Name           string
	Greeting       string
	SupportedSizes []Size // defaults to Small/Medium/Large when empty
	TaxRate        float64
}

// Sizes returns the store's supported sizes, falling back to the default set.
func (s StoreSettings) Sizes() []Size {
	if len(s.SupportedSizes) == 0 {
		return []Size{SizeSmall, SizeMedium, SizeLarge}
	}
	return s.SupportedSizes
}

// SupportsSize reports whether the store sells the given size.
func (s StoreSettings) SupportsSize(size Size) bool {
	for _, sz := range s.Sizes() {
		if sz == size {
			return true
		}
	}
	return false
}

// PriceTable maps catalog names to unit prices. Pizzas are priced per size,
// everything else flat.
type PriceTable struct {
	Pizzas map[string]map[Size]float64
	Items  map[string]float64
}

// Store bundles everything loaded for one store.
type Store struct {
	Settings StoreSettings
	Catalog  StoreCatalog
	Prices   PriceTable
}
