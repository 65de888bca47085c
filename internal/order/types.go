package order

import "restaurant-order-agent/internal/model"

// TurnInput is one customer utterance.
type TurnInput struct {
	Text string
}

// TurnOutput is the engine's reply for one turn.
type TurnOutput struct {
	Reply     string
	Completed bool          // true once the customer confirmed and the ticket was cut
	Ticket    *model.Ticket // set only when Completed
}
