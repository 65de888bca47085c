package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/order"
	"restaurant-order-agent/internal/order/repository"
)

func TestTurnSingleUtteranceCompleteItem(t *testing.T) {
	uc, sessions := newTestEngine()

	out, err := turn(uc, "s1", "2 large pepperoni, mild")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "pickup or delivery") {
		t.Errorf("reply = %q, want pickup-or-delivery question", out.Reply)
	}

	s, err := sessions.Get(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.LineItems) != 1 {
		t.Fatalf("line items = %+v, want 1", s.LineItems)
	}
	li := s.LineItems[0]
	if li.Qty != 2 || li.Size != model.SizeLarge || li.Spice != model.SpiceMild {
		t.Errorf("item = %+v, want qty 2, Large, Mild", li)
	}
	if s.Awaiting == nil || s.Awaiting.Slot != model.SlotOrderType {
		t.Errorf("awaiting = %+v, want orderType", s.Awaiting)
	}
}

func TestTurnMenuQuestionAtStart(t *testing.T) {
	uc, sessions := newTestEngine()

	out, err := turn(uc, "s1", "what's on the menu?")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "Pepperoni") || !strings.Contains(out.Reply, "Coke") {
		t.Errorf("menu reply = %q", out.Reply)
	}

	s, err := sessions.Get(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.LineItems) != 0 || s.Awaiting != nil || s.Confirming {
		t.Errorf("menu question mutated session: %+v", s)
	}
}

func TestTurnMenuOverlayKeepsAwaitingCursor(t *testing.T) {
	uc, sessions := newTestEngine()

	// Pepperoni requires spice, so the engine blocks on the spice slot.
	if _, err := turn(uc, "s1", "2 large pepperoni"); err != nil {
		t.Fatal(err)
	}

	out, err := turn(uc, "s1", "what wings do you have?")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "Chicken Wings") {
		t.Errorf("category reply = %q", out.Reply)
	}

	s, _ := sessions.Get(context.Background(), "s1")
	if s.Awaiting == nil || s.Awaiting.Slot != model.SlotSpice {
		t.Fatalf("overlay must not touch the cursor, awaiting = %+v", s.Awaiting)
	}
	if len(s.LineItems) != 1 || s.LineItems[0].Qty != 2 {
		t.Errorf("overlay must not touch items: %+v", s.LineItems)
	}

	// The pending slot still resolves normally afterwards.
	out, err = turn(uc, "s1", "mild")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "pickup or delivery") {
		t.Errorf("reply after overlay = %q, want order-type question", out.Reply)
	}
}

func TestTurnRepeatsQuestionVerbatimOnReject(t *testing.T) {
	uc, _ := newTestEngine()

	out, err := turn(uc, "s1", "a pepperoni please")
	if err != nil {
		t.Fatal(err)
	}
	sizeQ := out.Reply
	if !strings.Contains(sizeQ, "size") {
		t.Fatalf("reply = %q, want size question", sizeQ)
	}

	first, err := turn(uc, "s1", "purple")
	if err != nil {
		t.Fatal(err)
	}
	second, err := turn(uc, "s1", "purple")
	if err != nil {
		t.Fatal(err)
	}
	if first.Reply != sizeQ || second.Reply != sizeQ {
		t.Errorf("rejected answers must repeat the question verbatim:\n%q\n%q\n%q", sizeQ, first.Reply, second.Reply)
	}
}

func TestTurnSpiceAmbiguityReprompts(t *testing.T) {
	uc, sessions := newTestEngine()

	out, err := turn(uc, "s1", "large pepperoni, mild... no hot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "more than one spice level") {
		t.Errorf("reply = %q, want spice clarification", out.Reply)
	}

	s, _ := sessions.Get(context.Background(), "s1")
	if s.LineItems[0].Spice != "" {
		t.Errorf("ambiguous spice must stay unset: %+v", s.LineItems[0])
	}
	if s.Awaiting == nil || s.Awaiting.Slot != model.SlotSpice {
		t.Fatalf("awaiting = %+v, want spice", s.Awaiting)
	}

	if _, err := turn(uc, "s1", "hot"); err != nil {
		t.Fatal(err)
	}
	s, _ = sessions.Get(context.Background(), "s1")
	if s.LineItems[0].Spice != model.SpiceHot {
		t.Errorf("spice = %q, want Hot", s.LineItems[0].Spice)
	}
}

func TestTurnMergesRepeatMentions(t *testing.T) {
	uc, sessions := newTestEngine()

	if _, err := turn(uc, "s1", "2 large margherita"); err != nil {
		t.Fatal(err)
	}
	if _, err := turn(uc, "s1", "1 more large margherita"); err != nil {
		t.Fatal(err)
	}

	s, _ := sessions.Get(context.Background(), "s1")
	if len(s.LineItems) != 1 {
		t.Fatalf("line items = %+v, want single merged entry", s.LineItems)
	}
	if s.LineItems[0].Qty != 3 {
		t.Errorf("qty = %d, want 3", s.LineItems[0].Qty)
	}
}

func TestTurnDeliveryFlowEndToEnd(t *testing.T) {
	uc, sessions := newTestEngine()

	if _, err := turn(uc, "s1", "one large margherita"); err != nil {
		t.Fatal(err)
	}

	out, err := turn(uc, "s1", "delivery")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "address") {
		t.Fatalf("reply = %q, want address question", out.Reply)
	}

	// An implausible address repeats the exact question.
	rejected, err := turn(uc, "s1", "purple")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Reply != out.Reply {
		t.Errorf("address re-ask = %q, want %q", rejected.Reply, out.Reply)
	}

	confirm, err := turn(uc, "s1", "123 Main St")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(confirm.Reply, "123 Main St") || !strings.HasSuffix(confirm.Reply, "Is that correct?") {
		t.Errorf("confirmation = %q", confirm.Reply)
	}

	done, err := turn(uc, "s1", "yes")
	if err != nil {
		t.Fatal(err)
	}
	if !done.Completed || done.Ticket == nil {
		t.Fatalf("output = %+v, want completed with ticket", done)
	}
	if done.Ticket.Number != 1 {
		t.Errorf("ticket number = %d, want 1", done.Ticket.Number)
	}
	if done.Ticket.Quote.Total != 16.19 { // 14.99 + 8% tax
		t.Errorf("total = %.2f, want 16.19", done.Ticket.Quote.Total)
	}
	if done.Ticket.Address != "123 Main St" {
		t.Errorf("address = %q", done.Ticket.Address)
	}

	if _, err := sessions.Get(context.Background(), "s1"); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Errorf("session must be dropped after commit, got err = %v", err)
	}
}

func TestTurnRejectedConfirmationKeepsItems(t *testing.T) {
	uc, sessions := newTestEngine()

	if _, err := turn(uc, "s1", "one large margherita"); err != nil {
		t.Fatal(err)
	}
	if _, err := turn(uc, "s1", "pickup"); err != nil {
		t.Fatal(err)
	}

	out, err := turn(uc, "s1", "no, change the size")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "change") {
		t.Errorf("reply = %q, want what-to-change prompt", out.Reply)
	}

	s, _ := sessions.Get(context.Background(), "s1")
	if s.Confirming {
		t.Error("confirming must be cleared on a no")
	}
	if len(s.LineItems) != 1 {
		t.Errorf("line items must survive a rejected confirmation: %+v", s.LineItems)
	}

	// The edit replaces the item set and re-confirms.
	out, err = turn(uc, "s1", "actually make it a medium margherita")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "Medium Margherita") {
		t.Errorf("re-confirmation = %q", out.Reply)
	}
	s, _ = sessions.Get(context.Background(), "s1")
	if s.LineItems[0].Size != model.SizeMedium {
		t.Errorf("size = %q, want Medium", s.LineItems[0].Size)
	}
}

func TestTurnWingsOptionFlow(t *testing.T) {
	uc, _ := newTestEngine()

	out, err := turn(uc, "s1", "an order of wings")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "boneless or traditional") {
		t.Fatalf("reply = %q, want wing-type question", out.Reply)
	}

	out, err = turn(uc, "s1", "boneless")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "flavor") {
		t.Fatalf("reply = %q, want flavor question", out.Reply)
	}

	out, err = turn(uc, "s1", "buffalo please")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Reply, "pickup or delivery") {
		t.Errorf("reply = %q, want order-type question", out.Reply)
	}
}

func TestTurnUnrecognizedInputPromptsForOrder(t *testing.T) {
	uc, _ := newTestEngine()

	out, err := turn(uc, "s1", "purple elephants")
	if err != nil {
		t.Fatal(err)
	}
	if out.Reply != "What would you like to order?" {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestTurnRequiresSessionID(t *testing.T) {
	uc, _ := newTestEngine()

	_, err := uc.Turn(context.Background(), model.Scope{}, order.TurnInput{Text: "hi"})
	if !errors.Is(err, order.ErrEmptySessionID) {
		t.Errorf("err = %v, want ErrEmptySessionID", err)
	}
}
