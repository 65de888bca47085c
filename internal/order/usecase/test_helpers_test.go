package usecase_test

import (
	"context"
	"time"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/nlu"
	"restaurant-order-agent/internal/order"
	"restaurant-order-agent/internal/order/repository/memory"
	orderuc "restaurant-order-agent/internal/order/usecase"
	ticketuc "restaurant-order-agent/internal/ticket/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

// memTicketRepo assigns ticket numbers without touching disk.
type memTicketRepo struct {
	tickets []model.Ticket
}

func (r *memTicketRepo) Append(_ context.Context, t model.Ticket) (model.Ticket, error) {
	t.Number = len(r.tickets) + 1
	r.tickets = append(r.tickets, t)
	return t, nil
}

func testStore() model.Store {
	return model.Store{
		Settings: model.StoreSettings{Name: "Santino's Pizza", TaxRate: 0.08},
		Catalog: model.StoreCatalog{
			Pizzas: []model.PizzaGroup{
				{Group: "classic", Items: []model.CatalogItem{
					{Name: "Pepperoni", Aliases: []string{"pepperoni pizza"}, RequiresSpice: true},
					{Name: "Margherita", IsVegetarian: true},
				}},
			},
			Beverages: []model.CatalogItem{{Name: "Coke", Aliases: []string{"coca cola", "cola"}}},
			Wings: []model.CatalogItem{{
				Name:    "Chicken Wings",
				Aliases: []string{"wings"},
				Wings:   &model.WingOptionSchema{Types: []string{"boneless", "traditional"}, Flavors: []string{"buffalo", "bbq"}},
			}},
		},
		Prices: model.PriceTable{
			Pizzas: map[string]map[model.Size]float64{
				"Pepperoni":  {model.SizeSmall: 9.99, model.SizeMedium: 12.99, model.SizeLarge: 15.99},
				"Margherita": {model.SizeSmall: 8.99, model.SizeMedium: 11.99, model.SizeLarge: 14.99},
			},
			Items: map[string]float64{
				"Coke":          2.50,
				"Chicken Wings": 8.99,
			},
		},
	}
}

// newTestEngine wires a full dialogue engine on in-memory stores and returns
// the session repository so tests can inspect state between turns.
func newTestEngine() (order.UseCase, *memory.SessionStore) {
	store := testStore()
	index := catalog.BuildIndex(store.Catalog)
	interp := nlu.NewRuleInterpreter(index, store.Settings)
	sessions := memory.New(time.Hour, 100)

	tickets := ticketuc.New(&mockLogger{}, store, &memTicketRepo{}, nil)
	uc := orderuc.New(&mockLogger{}, sessions, interp, tickets, store, index)

	return uc, sessions
}

func turn(uc order.UseCase, sessionID, text string) (order.TurnOutput, error) {
	return uc.Turn(context.Background(), model.Scope{SessionID: sessionID, Channel: "test"}, order.TurnInput{Text: text})
}
