package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"restaurant-order-agent/config"
	"restaurant-order-agent/internal/model"
)

const menuYAML = `
store:
  name: "Testaurant"
  greeting: "Hi there!"
  tax_rate: 0.08
  supported_sizes: [Small, Medium, Large]

catalog:
  pizzas:
    - group: classic
      items:
        - name: Pepperoni
          aliases: [pepperoni pizza]
          requires_spice: true
        - name: Margherita
          is_vegetarian: true
  wings:
    - name: Chicken Wings
      aliases: [wings]
      options:
        types: [boneless, traditional]
        flavors: [buffalo, bbq]
  beverages:
    - name: Coke

prices:
  pizzas:
    Pepperoni: { Small: 9.99, Medium: 12.99, Large: 15.99 }
  items:
    Chicken Wings: 8.99
    Coke: 2.50
`

func writeMenu(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	return path
}

func TestLoadStore(t *testing.T) {
	store, err := config.LoadStore(writeMenu(t, menuYAML))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	if store.Settings.Name != "Testaurant" {
		t.Errorf("name = %q", store.Settings.Name)
	}
	if store.Settings.TaxRate != 0.08 {
		t.Errorf("tax rate = %v", store.Settings.TaxRate)
	}
	if len(store.Settings.SupportedSizes) != 3 || store.Settings.SupportedSizes[0] != model.Size("Small") {
		t.Errorf("sizes = %v", store.Settings.SupportedSizes)
	}

	if len(store.Catalog.Pizzas) != 1 || store.Catalog.Pizzas[0].Group != "classic" {
		t.Fatalf("pizza groups = %+v", store.Catalog.Pizzas)
	}
	pep := store.Catalog.Pizzas[0].Items[0]
	if pep.Name != "Pepperoni" || !pep.RequiresSpice || len(pep.Aliases) != 1 {
		t.Errorf("pepperoni = %+v", pep)
	}
	if !store.Catalog.Pizzas[0].Items[1].IsVegetarian {
		t.Error("margherita should be vegetarian")
	}

	if len(store.Catalog.Wings) != 1 {
		t.Fatalf("wings = %+v", store.Catalog.Wings)
	}
	w := store.Catalog.Wings[0]
	if w.Wings == nil || len(w.Wings.Types) != 2 || len(w.Wings.Flavors) != 2 {
		t.Errorf("wing options = %+v", w.Wings)
	}

	if got := store.Prices.Pizzas["Pepperoni"][model.Size("Large")]; got != 15.99 {
		t.Errorf("large pepperoni price = %v", got)
	}
	if got := store.Prices.Items["Coke"]; got != 2.50 {
		t.Errorf("coke price = %v", got)
	}
}

func TestLoadStoreRejectsEmptyCatalog(t *testing.T) {
	_, err := config.LoadStore(writeMenu(t, `
store:
  name: "Empty Store"
  tax_rate: 0.05
catalog: {}
prices: {}
`))
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestLoadStoreRejectsMissingName(t *testing.T) {
	_, err := config.LoadStore(writeMenu(t, `
store:
  tax_rate: 0.05
catalog:
  beverages:
    - name: Coke
`))
	if err == nil {
		t.Fatal("expected error for missing store name")
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	_, err := config.LoadStore(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
