package order

import (
	"context"

	"restaurant-order-agent/internal/model"
)

// UseCase is the dialogue engine for taking an order: one utterance in,
// one reply out, session state mutated in between.
type UseCase interface {
	// Greet returns the opening message for a new conversation.
	Greet(ctx context.Context) string

	// Turn processes one customer utterance for the scoped session and
	// returns exactly one reply.
	Turn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)
}
