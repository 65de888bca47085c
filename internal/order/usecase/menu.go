package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/nlu"
)

// Greet returns the opening line for a new conversation.
func (uc *implUseCase) Greet(_ context.Context) string {
	if g := uc.store.Settings.Greeting; g != "" {
		return g
	}
	return fmt.Sprintf("Welcome to %s! What can I get for you?", uc.store.Settings.Name)
}

var kindLabels = map[model.ItemKind]string{
	model.KindPizza:    "pizzas",
	model.KindSide:     "sides",
	model.KindBeverage: "beverages",
	model.KindPasta:    "pastas",
	model.KindSalad:    "salads",
	model.KindWings:    "wings",
}

// answerMenu handles the menu/category overlay. It only reads the index, so
// a browsing customer never loses order-in-progress state.
func (uc *implUseCase) answerMenu(res nlu.Result) string {
	if res.Intent == nlu.IntentCategoryQuestion {
		if res.Vegetarian {
			return uc.listVegetarian()
		}
		return uc.listCategory(res.Category)
	}
	return uc.listMenu()
}

func (uc *implUseCase) listMenu() string {
	var sections []string
	for _, kind := range []model.ItemKind{
		model.KindPizza, model.KindWings, model.KindPasta,
		model.KindSalad, model.KindSide, model.KindBeverage,
	} {
		names := uc.namesOfKind(kind)
		if len(names) == 0 {
			continue
		}
		sections = append(sections, fmt.Sprintf("%s: %s", kindLabels[kind], strings.Join(names, ", ")))
	}
	if len(sections) == 0 {
		return "Sorry, the menu is empty right now."
	}
	return "Here's our menu. " + strings.Join(sections, ". ") + "."
}

func (uc *implUseCase) listCategory(kind model.ItemKind) string {
	names := uc.namesOfKind(kind)
	if len(names) == 0 {
		return fmt.Sprintf("No %s available.", kindLabels[kind])
	}
	return fmt.Sprintf("For %s we have: %s.", kindLabels[kind], strings.Join(names, ", "))
}

func (uc *implUseCase) listVegetarian() string {
	var names []string
	for _, e := range uc.index {
		if e.IsVegetarian {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		return "No vegetarian options available."
	}
	return fmt.Sprintf("Our vegetarian options are: %s.", strings.Join(names, ", "))
}

func (uc *implUseCase) namesOfKind(kind model.ItemKind) []string {
	var names []string
	for _, e := range uc.index {
		if e.Kind == kind {
			names = append(names, e.Name)
		}
	}
	return names
}
