package model

import "time"

// Quote is the priced total of a finalized order.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Ticket is the finalized, priced order handed to the kitchen once the
// customer has confirmed.
type Ticket struct {
	Number    int        `json:"number"` // sequential per store, assigned by the ticket repository
	SessionID string     `json:"session_id"`
	Channel   string     `json:"channel,omitempty"` // http | telegram
	OrderType OrderType  `json:"order_type"`
	Address   string     `json:"address,omitempty"`
	Items     []LineItem `json:"items"`
	Quote     Quote      `json:"quote"`
	CreatedAt time.Time  `json:"created_at"`
}
