package llm

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/nlu"
	"restaurant-order-agent/pkg/gemini"
	pkgLog "restaurant-order-agent/pkg/log"
)

const defaultTimeout = 15 * time.Second

// Interpreter delegates utterance understanding to Gemini while keeping the
// rule interpreter's output contract. It NEVER fails into the dialogue
// engine: any transport, parse, or validation problem yields the empty
// result, and the state machine re-prompts as it would for gibberish.
type Interpreter struct {
	l        pkgLog.Logger
	client   *gemini.Client
	index    []catalog.Entry
	settings model.StoreSettings
	timeout  time.Duration
	menu     string
	byName   map[string]catalog.Entry
}

var _ nlu.Interpreter = (*Interpreter)(nil)

// New creates the LLM-backed interpreter for one store.
func New(l pkgLog.Logger, client *gemini.Client, index []catalog.Entry, settings model.StoreSettings) *Interpreter {
	byName := make(map[string]catalog.Entry, len(index))
	for _, e := range index {
		byName[catalog.Normalize(e.Name)] = e
	}
	return &Interpreter{
		l:        l,
		client:   client,
		index:    index,
		settings: settings,
		timeout:  defaultTimeout,
		menu:     menuBlock(index),
		byName:   byName,
	}
}

// SetTimeout overrides the per-call deadline for model requests.
func (it *Interpreter) SetTimeout(d time.Duration) {
	if d > 0 {
		it.timeout = d
	}
}

// wireResult is the JSON shape the model is instructed to produce.
type wireResult struct {
	Intent          string     `json:"intent"`
	Items           []wireItem `json:"items"`
	Category        string     `json:"category"`
	Vegetarian      bool       `json:"vegetarian"`
	OrderType       string     `json:"order_type"`
	SpiceAmbiguous  bool       `json:"spice_ambiguous"`
	ChangeRequested bool       `json:"change_requested"`
}

type wireItem struct {
	Name    string            `json:"name"`
	Qty     int               `json:"qty"`
	Size    string            `json:"size"`
	Spice   string            `json:"spice"`
	Options map[string]string `json:"options"`
}

func (it *Interpreter) Interpret(ctx context.Context, text string) nlu.Result {
	if strings.TrimSpace(text) == "" {
		return nlu.Result{Intent: nlu.IntentNone}
	}

	ctx, cancel := context.WithTimeout(ctx, it.timeout)
	defer cancel()

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: buildOrderParsingPrompt(it.menu, text)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.1,
			MaxOutputTokens: 1024,
		},
	}

	resp, err := it.client.GenerateContent(ctx, req)
	if err != nil {
		it.l.Warnf(ctx, "llm interpret failed, falling back to empty result: %v", err)
		return nlu.Result{Intent: nlu.IntentNone}
	}

	raw := resp.FirstText()
	var wire wireResult
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &wire); err != nil {
		it.l.Warnf(ctx, "llm returned unparsable JSON, falling back to empty result. Raw=%q", raw)
		return nlu.Result{Intent: nlu.IntentNone}
	}

	return it.validate(ctx, wire)
}

var validIntents = map[string]nlu.Intent{
	"none":              nlu.IntentNone,
	"menu_question":     nlu.IntentMenuQuestion,
	"category_question": nlu.IntentCategoryQuestion,
	"order_items":       nlu.IntentOrderItems,
	"confirm_yes":       nlu.IntentConfirmYes,
	"confirm_no":        nlu.IntentConfirmNo,
	"done":              nlu.IntentDone,
	"order_type":        nlu.IntentOrderType,
}

// validate clamps the model's answer to the catalog and the enum spaces.
// Hallucinated item names are dropped, not guessed at.
func (it *Interpreter) validate(ctx context.Context, wire wireResult) nlu.Result {
	res := nlu.Result{
		Intent:          nlu.IntentNone,
		Vegetarian:      wire.Vegetarian,
		SpiceAmbiguous:  wire.SpiceAmbiguous,
		ChangeRequested: wire.ChangeRequested,
	}

	if intent, ok := validIntents[wire.Intent]; ok {
		res.Intent = intent
	}

	switch model.OrderType(wire.OrderType) {
	case model.OrderPickup, model.OrderDelivery:
		res.OrderType = model.OrderType(wire.OrderType)
	}

	switch model.ItemKind(wire.Category) {
	case model.KindPizza, model.KindSide, model.KindBeverage,
		model.KindPasta, model.KindSalad, model.KindWings:
		res.Category = model.ItemKind(wire.Category)
	}
	if res.Vegetarian && res.Category == "" {
		res.Category = model.KindPizza
	}

	for _, wi := range wire.Items {
		entry, ok := it.byName[catalog.Normalize(wi.Name)]
		if !ok {
			it.l.Warnf(ctx, "llm hallucinated item %q, dropped", wi.Name)
			continue
		}
		res.Items = append(res.Items, it.buildItem(entry, wi))
	}
	res.Items = nlu.MergeItems(res.Items)

	if res.Intent == nlu.IntentOrderItems && len(res.Items) == 0 {
		res.Intent = nlu.IntentNone
	}
	if len(res.Items) > 0 {
		res.Intent = nlu.IntentOrderItems
	}

	return res
}

func (it *Interpreter) buildItem(entry catalog.Entry, wi wireItem) model.LineItem {
	li := model.LineItem{
		Kind: entry.Kind,
		Name: entry.Name,
		Qty:  wi.Qty,
	}
	if li.Qty < 1 || li.Qty > 49 {
		li.Qty = 1
	}

	if entry.Kind == model.KindPizza {
		size := model.Size(title(wi.Size))
		if it.settings.SupportsSize(size) {
			li.Size = size
		}
	}

	if entry.RequiresSpice {
		switch model.SpiceLevel(title(wi.Spice)) {
		case model.SpiceMild, model.SpiceMedium, model.SpiceHot:
			li.Spice = model.SpiceLevel(title(wi.Spice))
		}
	}

	if entry.Kind == model.KindWings && len(wi.Options) > 0 {
		opts := map[string]string{}
		if t := catalog.Normalize(wi.Options[model.OptionWingType]); contains(entry.WingTypes, t) {
			opts[model.OptionWingType] = t
		}
		if f := catalog.Normalize(wi.Options[model.OptionWingFlavor]); contains(entry.WingFlavors, f) {
			opts[model.OptionWingFlavor] = f
		}
		if len(opts) > 0 {
			li.Options = opts
		}
	}

	return li
}

func contains(values []string, v string) bool {
	if v == "" {
		return false
	}
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func title(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
