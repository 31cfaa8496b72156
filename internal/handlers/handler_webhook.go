package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/securyflex/securyflex-backend/internal/core/ports/services"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/middleware"
	"github.com/securyflex/securyflex-backend/internal/platform/metrics"
)

const finqleSignatureHeader = "x-finqle-signature"

type webhookHandler struct {
	paymentService portssvc.PaymentSvcFacade
	webhookSecret  string
}

func newWebhookHandler(ps portssvc.PaymentSvcFacade, secret string) *webhookHandler {
	return &webhookHandler{paymentService: ps, webhookSecret: secret}
}

// registerWebhookRoutes registers the Finqle webhook endpoint. The route is
// public; authenticity comes from the HMAC signature, not a JWT.
func registerWebhookRoutes(r *gin.Engine, paymentService portssvc.PaymentSvcFacade, webhookSecret string) {
	h := newWebhookHandler(paymentService, webhookSecret)
	r.POST("/webhooks/finqle", h.handleFinqle)
}

// handleFinqle godoc
// @Summary Finqle payment webhook
// @Description Verifies the HMAC-SHA256 signature over the raw body before
// @Description processing. Only a signature mismatch is rejected; every other
// @Description failure answers 200 so Finqle does not keep redelivering.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param x-finqle-signature header string true "Hex HMAC-SHA256 of the body"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /webhooks/finqle [post]
func (h *webhookHandler) handleFinqle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues("unknown", "read_error").Inc()
		logger.Error("finqle webhook body read failed", "error", err)
		c.JSON(http.StatusOK, dto.OK(nil))
		return
	}

	if !h.verifySignature(body, c.GetHeader(finqleSignatureHeader)) {
		metrics.WebhookEvents.WithLabelValues("unknown", "invalid_signature").Inc()
		logger.Warn("finqle webhook rejected, signature mismatch")
		c.JSON(http.StatusUnauthorized, dto.Fail("Ongeldige handtekening"))
		return
	}

	var event dto.FinqleWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		// Signed but unparseable. Redelivery would fail the same way, so the
		// event is logged and dropped.
		metrics.WebhookEvents.WithLabelValues("unknown", "parse_error").Inc()
		logger.Error("finqle webhook payload unparseable", "error", err)
		c.JSON(http.StatusOK, dto.OK(nil))
		return
	}

	if err := h.paymentService.HandleFinqleEvent(c.Request.Context(), event); err != nil {
		// Signature already verified, so the event is genuine. A processing
		// failure on a genuine event should not trigger endless redelivery.
		metrics.WebhookEvents.WithLabelValues(string(event.Event), "error").Inc()
		logger.Error("finqle webhook processing failed", "event", event.Event, "error", err)
		c.JSON(http.StatusOK, dto.OK(nil))
		return
	}

	metrics.WebhookEvents.WithLabelValues(string(event.Event), "ok").Inc()
	c.JSON(http.StatusOK, dto.OK(nil))
}

func (h *webhookHandler) verifySignature(body []byte, signature string) bool {
	// No configured secret means verification is disabled (development only).
	if h.webhookSecret == "" {
		return true
	}
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
