package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/SamuelRomaoF/financas-bot/internal/dto"
	"github.com/SamuelRomaoF/financas-bot/internal/middleware"
	"github.com/SamuelRomaoF/financas-bot/internal/utils"
	"github.com/gin-gonic/gin"
)

// WebhookHandler receives inbound messages from the WhatsApp gateway,
// routes them and sends the reply back through the gateway.
type WebhookHandler struct {
	router  portssvc.MessageRouterSvc
	sender  portssvc.MessageSender
	posthog *utils.PosthogClientWrapper
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(router portssvc.MessageRouterSvc, sender portssvc.MessageSender, posthog *utils.PosthogClientWrapper) *WebhookHandler {
	return &WebhookHandler{
		router:  router,
		sender:  sender,
		posthog: posthog,
	}
}

// HandleInbound godoc
// @Summary Receive an inbound WhatsApp message
// @Description Routes one inbound message and replies through the gateway. Group messages are acknowledged and dropped.
// @Tags webhook
// @Accept json
// @Produce json
// @Param message body dto.InboundMessageRequest true "Inbound message"
// @Success 200 {object} dto.InboundMessageResponse
// @Success 204 "Group message ignored"
// @Failure 400 {object} ErrorResponse
// @Router /webhook/messages [post]
func (h *WebhookHandler) HandleInbound(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	// Group chats are never answered: replying there would leak one
	// user's finances to the whole group.
	if utils.IsGroupSender(req.SenderID) {
		c.Status(http.StatusNoContent)
		return
	}

	reply, err := h.router.HandleMessage(c.Request.Context(), req.SenderID, req.Text)
	if err != nil {
		logger.Error("Failed to route inbound message",
			slog.String("sender", req.SenderID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process message"})
		return
	}

	if reply == "" {
		c.JSON(http.StatusOK, dto.InboundMessageResponse{Replied: false})
		return
	}

	phoneKey := utils.NormalizePhone(req.SenderID)
	if err := h.sender.SendText(c.Request.Context(), phoneKey, reply); err != nil {
		logger.Error("Failed to send reply",
			slog.String("phone", phoneKey),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to deliver reply"})
		return
	}

	if h.posthog.IsInitialized() {
		h.posthog.Enqueue(phoneKey, "message_handled", map[string]any{
			"has_text": req.Text != "",
		})
	}

	c.JSON(http.StatusOK, dto.InboundMessageResponse{Replied: true})
}

// registerWebhookRoutes sets up the webhook routes.
func registerWebhookRoutes(rg *gin.Engine, h *WebhookHandler, rateLimit gin.HandlerFunc) {
	webhook := rg.Group("/webhook")
	{
		webhook.POST("/messages", rateLimit, h.HandleInbound)
	}
}
