package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/flowerbot/internal/server/http/dto"
)

// BotHandler receives Telegram webhook deliveries.
type BotHandler struct {
	facade BotFacade
	logger *slog.Logger
}

// NewBotHandler constructs BotHandler.
func NewBotHandler(facade BotFacade, logger *slog.Logger) *BotHandler {
	return &BotHandler{facade: facade, logger: logger}
}

// Webhook handles POST /api/bot. It always answers 200 OK; failures are
// only logged.
func (h *BotHandler) Webhook(c *gin.Context) {
	var update dto.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.logger.Warn("malformed bot update", slog.String("error", err.Error()))
		c.String(http.StatusOK, "OK")
		return
	}

	if err := h.facade.HandleUpdate(c.Request.Context(), update.ToModel()); err != nil {
		h.logger.Error("bot update failed",
			slog.Int64("update_id", update.UpdateID),
			slog.String("error", err.Error()),
		)
	}
	c.String(http.StatusOK, "OK")
}

// Status handles GET /api/bot.
func (h *BotHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, "Bot is running")
}
