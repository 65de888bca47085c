package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// processChatReq binds and validates the chat request body. A missing
// session id means a new conversation; the server assigns one so the
// client can thread subsequent turns.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}
