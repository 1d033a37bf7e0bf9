package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealth acknowledges webhook endpoint probes.
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": MsgHealthy})
}

// HandleGitHubWebhook processes GitHub webhook events. The response is
// 200 whenever the request itself was well-formed and authentic —
// downstream processing failures are logged and swallowed, because
// senders retire endpoints that return non-2xx.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read raw body — the signature covers these exact bytes, never a
	// re-serialized form.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	// Verify signature when the sender provided one
	if signature := c.GetHeader("X-Hub-Signature-256"); signature != "" {
		if err := h.security.ValidateSignature(body, signature); err != nil {
			h.l.Errorf(ctx, "GitHub signature verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}
	}

	// Check IP allowlist (no-op when unconfigured)
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")
	deliveryID := c.GetHeader("X-GitHub-Delivery")

	switch eventType {
	case "push":
		h.handlePush(c, body)
	case "installation", "pull_request":
		// Accepted but produce no side effect yet
		h.l.Infof(ctx, "Acknowledged %s event (delivery %s)", eventType, deliveryID)
	default:
		h.l.Infof(ctx, "Unhandled GitHub event type: %s (delivery %s)", eventType, deliveryID)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": MsgProcessed})
}

// handlePush parses and dispatches a push payload. The dispatcher runs
// before the response is written so a reader of the 200 can trust that
// every matched project was at least attempted.
func (h *Handler) handlePush(c *gin.Context, body []byte) {
	ctx := c.Request.Context()

	event, err := h.parser.ParsePushEvent(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse push event: %v", err)
		return
	}

	output, err := h.dispatchUC.HandlePush(ctx, *event)
	if err != nil {
		h.l.Errorf(ctx, "Push dispatch failed: %v", err)
		return
	}

	h.l.Infof(ctx, "Push dispatched: %d matched, %d triggered",
		output.MatchedProjects, output.TriggeredCount())
}
