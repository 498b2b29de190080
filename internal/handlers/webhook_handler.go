package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/services"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookHandler принимает события identity provider (Clerk).
// Подпись проверяется через svix до любых побочных эффектов:
// невалидная подпись означает, что тело нельзя даже парсить.
type WebhookHandler struct {
	*BaseHandler
	webhookService services.WebhookService
	verifier       *svix.Webhook
}

func NewWebhookHandler(base *BaseHandler, webhookService services.WebhookService, signingSecret string) (*WebhookHandler, error) {
	verifier, err := svix.NewWebhook(signingSecret)
	if err != nil {
		return nil, err
	}
	return &WebhookHandler{
		BaseHandler:    base,
		webhookService: webhookService,
		verifier:       verifier,
	}, nil
}

func (h *WebhookHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Маршрут без AuthMiddleware: аутентификация - подпись svix.
	r.POST("/webhooks/clerk", h.HandleClerkWebhook)
}

func (h *WebhookHandler) HandleClerkWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.CtxWithError(ctx, "failed to read webhook body", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unable to read request body"))
		return
	}

	if err := h.verifier.Verify(body, c.Request.Header); err != nil {
		logger.CtxWarn(ctx, "webhook signature verification failed",
			"error", err.Error(),
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrInvalidWebhookSignature(err))
		return
	}

	var event dto.ClerkEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.CtxWithError(ctx, "failed to parse webhook payload", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid webhook payload"))
		return
	}

	if err := h.webhookService.HandleEvent(ctx, h.GetDB(c), &event); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
