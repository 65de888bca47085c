package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-order-agent/internal/catalog"
	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/nlu"
	"restaurant-order-agent/internal/order"
	"restaurant-order-agent/internal/order/repository"
)

// Turn runs one dialogue step: interpret the utterance, advance the session
// state machine, and return exactly one reply. Turns for the same session
// are serialized; the machine cannot survive interleaved mutation.
func (uc *implUseCase) Turn(ctx context.Context, sc model.Scope, input order.TurnInput) (order.TurnOutput, error) {
	if sc.SessionID == "" {
		return order.TurnOutput{}, order.ErrEmptySessionID
	}
	if len(uc.index) == 0 {
		return order.TurnOutput{}, order.ErrEmptyCatalog
	}

	unlock := uc.locks.lock(sc.SessionID)
	defer unlock()

	s, err := uc.sessions.Get(ctx, sc.SessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			return order.TurnOutput{}, fmt.Errorf("failed to load session: %w", err)
		}
		s = model.NewSession(sc.SessionID)
	}

	res := uc.interp.Interpret(ctx, input.Text)
	uc.l.Debugf(ctx, "Turn: session %s intent=%s items=%d", s.ID, res.Intent, len(res.Items))

	// Menu and category questions are an overlay: answered from any state,
	// never touching line items or the awaiting cursor.
	if res.Intent == nlu.IntentMenuQuestion || res.Intent == nlu.IntentCategoryQuestion {
		return uc.finishTurn(ctx, s, uc.answerMenu(res))
	}

	if s.Confirming {
		if res.Intent == nlu.IntentConfirmYes {
			return uc.commit(ctx, sc, s)
		}
		// Anything that is not a yes reopens the order. Line items stay.
		s.Confirming = false
		s.Awaiting = nil
		if res.Intent == nlu.IntentConfirmNo && len(res.Items) == 0 {
			return uc.finishTurn(ctx, s, promptWhatChange)
		}
	}

	resolved := false
	if s.Awaiting != nil {
		ok, clarify := uc.resolveAwaiting(s, input.Text, res)
		switch {
		case ok:
			// Filling a slot can make two lines identical, fold them.
			s.Awaiting = nil
			s.LineItems = nlu.MergeItems(s.LineItems)
			resolved = true
		case clarify != "":
			return uc.finishTurn(ctx, s, clarify)
		case len(res.Items) > 0:
			// Not an answer but an edit ("one more margherita" while being
			// asked pickup-or-delivery). Drop the cursor; the slot scan
			// below re-derives it after the merge.
			s.Awaiting = nil
		default:
			// Unparsed answer: repeat the same question verbatim.
			return uc.finishTurn(ctx, s, uc.questionFor(*s.Awaiting, s))
		}
	}

	// A slot answer is an answer, not a fresh order: skip item merging on
	// the same utterance that resolved the awaiting cursor.
	if !resolved && len(res.Items) > 0 {
		if res.ChangeRequested || len(s.LineItems) == 0 {
			s.LineItems = res.Items
		} else {
			s.LineItems = nlu.MergeItems(append(append([]model.LineItem{}, s.LineItems...), res.Items...))
		}
	}

	if res.OrderType != "" {
		s.OrderType = res.OrderType
	}

	if len(s.LineItems) == 0 {
		return uc.finishTurn(ctx, s, promptFirstItem)
	}

	// Conflicting spice mentions in this utterance: block on the first
	// spice-incomplete item with an explicit clarification.
	if res.SpiceAmbiguous {
		if aw := uc.nextAwaiting(s); aw != nil && aw.Slot == model.SlotSpice {
			s.Awaiting = aw
			return uc.finishTurn(ctx, s, promptSpiceClear)
		}
	}

	if aw := uc.nextAwaiting(s); aw != nil {
		s.Awaiting = aw
		return uc.finishTurn(ctx, s, uc.questionFor(*aw, s))
	}

	// Every slot is filled. Present the summary and wait for yes/no.
	s.Confirming = true
	s.Awaiting = nil
	return uc.finishTurn(ctx, s, RenderConfirmation(s))
}

// finishTurn persists the session and wraps the reply.
func (uc *implUseCase) finishTurn(ctx context.Context, s *model.Session, reply string) (order.TurnOutput, error) {
	s.UpdatedAt = time.Now()
	if err := uc.sessions.Put(ctx, s); err != nil {
		return order.TurnOutput{}, fmt.Errorf("failed to store session: %w", err)
	}
	return order.TurnOutput{Reply: reply}, nil
}

// commit finalizes a confirmed order: cut the ticket, drop the session,
// thank the customer.
func (uc *implUseCase) commit(ctx context.Context, sc model.Scope, s *model.Session) (order.TurnOutput, error) {
	s.Completed = true
	s.Confirming = false
	s.UpdatedAt = time.Now()

	t, err := uc.tickets.Commit(ctx, sc, s)
	if err != nil {
		return order.TurnOutput{}, fmt.Errorf("failed to commit order: %w", err)
	}

	if err := uc.sessions.Delete(ctx, s.ID); err != nil {
		uc.l.Warnf(ctx, "commit: failed to delete session %s after ticket #%d: %v", s.ID, t.Number, err)
	}

	reply := fmt.Sprintf("Great, your order is in! Ticket #%d, total $%.2f. ", t.Number, t.Quote.Total)
	if t.OrderType == model.OrderDelivery {
		reply += "We'll have it delivered shortly. Thank you!"
	} else {
		reply += "It'll be ready for pickup soon. Thank you!"
	}

	return order.TurnOutput{Reply: reply, Completed: true, Ticket: &t}, nil
}

// resolveAwaiting tries to fill exactly the awaited slot from this
// utterance. clarify is non-empty only for the ambiguous-spice rejection.
func (uc *implUseCase) resolveAwaiting(s *model.Session, raw string, res nlu.Result) (resolved bool, clarify string) {
	aw := s.Awaiting
	norm := catalog.Normalize(raw)

	item := func() *model.LineItem {
		if aw.ItemIndex < 0 || aw.ItemIndex >= len(s.LineItems) {
			return nil
		}
		return &s.LineItems[aw.ItemIndex]
	}

	switch aw.Slot {
	case model.SlotSize:
		li := item()
		if li == nil {
			return true, ""
		}
		sz := nlu.DetectSize(norm, uc.store.Settings)
		if sz == "" {
			return false, ""
		}
		li.Size = sz
		return true, ""

	case model.SlotSpice:
		li := item()
		if li == nil {
			return true, ""
		}
		spice, ambiguous := nlu.DetectSpice(norm)
		if ambiguous {
			return false, promptSpiceClear
		}
		if spice == "" {
			return false, ""
		}
		li.Spice = spice
		return true, ""

	case model.SlotWingType:
		li := item()
		if li == nil {
			return true, ""
		}
		t := nlu.DetectWingType(norm, aw.Choices)
		if t == "" {
			return false, ""
		}
		if li.Options == nil {
			li.Options = map[string]string{}
		}
		li.Options[model.OptionWingType] = t
		return true, ""

	case model.SlotWingFlavor:
		li := item()
		if li == nil {
			return true, ""
		}
		f := nlu.DetectWingFlavor(norm, aw.Choices)
		if f == "" {
			return false, ""
		}
		if li.Options == nil {
			li.Options = map[string]string{}
		}
		li.Options[model.OptionWingFlavor] = f
		return true, ""

	case model.SlotOrderType:
		ot := res.OrderType
		if ot == "" {
			ot = nlu.DetectOrderType(norm)
		}
		if ot == "" {
			return false, ""
		}
		s.OrderType = ot
		return true, ""

	case model.SlotAddress:
		if !nlu.LooksLikeAddress(norm) {
			return false, ""
		}
		s.Address = strings.TrimSpace(raw)
		return true, ""
	}

	// Unknown slot kind: drop the cursor rather than loop on it.
	return true, ""
}
