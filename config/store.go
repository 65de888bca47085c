package config

import (
	"fmt"

	"github.com/spf13/viper"

	"restaurant-order-agent/internal/model"
)

// Wire structs for the menu file. Kept separate from the domain model so
// the YAML layout can evolve without touching internal/model.

type menuFile struct {
	Store   storeSection   `mapstructure:"store"`
	Catalog catalogSection `mapstructure:"catalog"`
	Prices  pricesSection  `mapstructure:"prices"`
}

type storeSection struct {
	Name           string   `mapstructure:"name"`
	Greeting       string   `mapstructure:"greeting"`
	TaxRate        float64  `mapstructure:"tax_rate"`
	SupportedSizes []string `mapstructure:"supported_sizes"`
}

type catalogSection struct {
	Pizzas    []pizzaGroupEntry `mapstructure:"pizzas"`
	Sides     []catalogEntry    `mapstructure:"sides"`
	Beverages []catalogEntry    `mapstructure:"beverages"`
	Pastas    []catalogEntry    `mapstructure:"pastas"`
	Salads    []catalogEntry    `mapstructure:"salads"`
	Wings     []catalogEntry    `mapstructure:"wings"`
}

type pizzaGroupEntry struct {
	Group string         `mapstructure:"group"`
	Items []catalogEntry `mapstructure:"items"`
}

type catalogEntry struct {
	Name          string       `mapstructure:"name"`
	Aliases       []string     `mapstructure:"aliases"`
	RequiresSpice bool         `mapstructure:"requires_spice"`
	IsVegetarian  bool         `mapstructure:"is_vegetarian"`
	Options       *wingOptions `mapstructure:"options"`
}

type wingOptions struct {
	Types   []string `mapstructure:"types"`
	Flavors []string `mapstructure:"flavors"`
}

type pricesSection struct {
	Pizzas map[string]map[string]float64 `mapstructure:"pizzas"`
	Items  map[string]float64            `mapstructure:"items"`
}

// LoadStore reads the menu file into the domain store. An empty catalog is
// fatal: a store with nothing to sell must refuse to take orders rather
// than fail to match every utterance.
func LoadStore(path string) (model.Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return model.Store{}, fmt.Errorf("error reading menu file %s: %w", path, err)
	}

	var mf menuFile
	if err := v.Unmarshal(&mf); err != nil {
		return model.Store{}, fmt.Errorf("error parsing menu file %s: %w", path, err)
	}

	store := model.Store{
		Settings: model.StoreSettings{
			Name:           mf.Store.Name,
			Greeting:       mf.Store.Greeting,
			TaxRate:        mf.Store.TaxRate,
			SupportedSizes: toSizes(mf.Store.SupportedSizes),
		},
		Catalog: model.StoreCatalog{
			Pizzas:    toPizzaGroups(mf.Catalog.Pizzas),
			Sides:     toItems(mf.Catalog.Sides),
			Beverages: toItems(mf.Catalog.Beverages),
			Pastas:    toItems(mf.Catalog.Pastas),
			Salads:    toItems(mf.Catalog.Salads),
			Wings:     toItems(mf.Catalog.Wings),
		},
		Prices: toPrices(mf.Prices),
	}

	if store.Settings.Name == "" {
		return model.Store{}, fmt.Errorf("menu file %s: store.name is required", path)
	}
	if store.Catalog.Empty() {
		return model.Store{}, fmt.Errorf("menu file %s: catalog has no orderable items", path)
	}

	return store, nil
}

func toSizes(raw []string) []model.Size {
	sizes := make([]model.Size, 0, len(raw))
	for _, s := range raw {
		sizes = append(sizes, model.Size(s))
	}
	return sizes
}

func toPizzaGroups(raw []pizzaGroupEntry) []model.PizzaGroup {
	groups := make([]model.PizzaGroup, 0, len(raw))
	for _, g := range raw {
		groups = append(groups, model.PizzaGroup{
			Group: g.Group,
			Items: toItems(g.Items),
		})
	}
	return groups
}

func toItems(raw []catalogEntry) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(raw))
	for _, e := range raw {
		item := model.CatalogItem{
			Name:          e.Name,
			Aliases:       e.Aliases,
			RequiresSpice: e.RequiresSpice,
			IsVegetarian:  e.IsVegetarian,
		}
		if e.Options != nil {
			item.Wings = &model.WingOptionSchema{
				Types:   e.Options.Types,
				Flavors: e.Options.Flavors,
			}
		}
		items = append(items, item)
	}
	return items
}

func toPrices(raw pricesSection) model.PriceTable {
	table := model.PriceTable{
		Items: raw.Items,
	}
	if len(raw.Pizzas) > 0 {
		table.Pizzas = make(map[string]map[model.Size]float64, len(raw.Pizzas))
		for name, bySize := range raw.Pizzas {
			sized := make(map[model.Size]float64, len(bySize))
			for size, price := range bySize {
				sized[model.Size(size)] = price
			}
			table.Pizzas[name] = sized
		}
	}
	return table
}
