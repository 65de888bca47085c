package http

import (
	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/order"
	"restaurant-order-agent/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"` // empty on the first turn, server assigns one
	Message   string `json:"message" binding:"required,min=1,max=1000"`
}

func (r chatReq) toInput() order.TurnInput {
	return order.TurnInput{Text: r.Message}
}

// --- Response DTOs ---

type ticketResp struct {
	Number    int               `json:"number"`
	OrderType string            `json:"order_type"`
	Subtotal  float64           `json:"subtotal"`
	Tax       float64           `json:"tax"`
	Total     float64           `json:"total"`
	CreatedAt response.DateTime `json:"created_at"`
}

type chatResp struct {
	SessionID string      `json:"session_id"`
	Reply     string      `json:"reply"`
	Completed bool        `json:"completed"`
	Ticket    *ticketResp `json:"ticket,omitempty"`
}

func newChatResp(sessionID string, out order.TurnOutput) chatResp {
	resp := chatResp{
		SessionID: sessionID,
		Reply:     out.Reply,
		Completed: out.Completed,
	}
	if out.Ticket != nil {
		resp.Ticket = newTicketResp(*out.Ticket)
	}
	return resp
}

func newTicketResp(t model.Ticket) *ticketResp {
	return &ticketResp{
		Number:    t.Number,
		OrderType: string(t.OrderType),
		Subtotal:  t.Quote.Subtotal,
		Tax:       t.Quote.Tax,
		Total:     t.Quote.Total,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

type greetingResp struct {
	SessionID string `json:"session_id"`
	Greeting  string `json:"greeting"`
}
