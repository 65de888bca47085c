package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/order"
	pkgResponse "restaurant-order-agent/pkg/response"
	pkgTelegram "restaurant-order-agent/pkg/telegram"
)

const channelTelegram = "telegram"

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds,
// and a turn through the LLM interpreter can take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// Detach from the request context, which dies with the 200 below.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Sorry, something went wrong. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message as one dialogue turn.
// The chat id doubles as the session id, so each Telegram chat is one
// order-in-progress.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	if msg.Text == "/start" {
		return h.bot.SendMessage(msg.Chat.ID, h.uc.Greet(ctx))
	}

	sc := model.Scope{
		SessionID: fmt.Sprintf("telegram_%d", msg.Chat.ID),
		Channel:   channelTelegram,
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("%d", msg.From.ID)
	}

	out, err := h.uc.Turn(ctx, sc, order.TurnInput{Text: msg.Text})
	if err != nil {
		return fmt.Errorf("turn failed: %w", err)
	}

	return h.bot.SendMessage(msg.Chat.ID, out.Reply)
}
