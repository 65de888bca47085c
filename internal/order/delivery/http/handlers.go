package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/pkg/response"
)

const channelHTTP = "http"

// Greeting opens a new conversation: returns the store greeting and a fresh
// session id for the client to thread into /chat.
func (h *handler) Greeting(c *gin.Context) {
	ctx := c.Request.Context()

	response.OK(c, greetingResp{
		SessionID: uuid.NewString(),
		Greeting:  h.uc.Greet(ctx),
	})
}

// Chat processes one customer utterance and returns the engine's reply.
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{
		SessionID: req.SessionID,
		Channel:   channelHTTP,
	}

	out, err := h.uc.Turn(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Turn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(req.SessionID, out))
}
