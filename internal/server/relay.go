package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eurotax/satoshi-bot/internal/metrics"
	"github.com/eurotax/satoshi-bot/internal/model"
	"github.com/eurotax/satoshi-bot/internal/notifier"
	"github.com/eurotax/satoshi-bot/internal/relay"
)

// RelayHandler serves the tool relay endpoints.
type RelayHandler struct {
	Registry *relay.Registry
	Sender   notifier.Sender
	Metrics  *metrics.Metrics
}

// NewRelayHandler creates a new relay handler.
func NewRelayHandler(registry *relay.Registry, sender notifier.Sender, m *metrics.Metrics) *RelayHandler {
	return &RelayHandler{Registry: registry, Sender: sender, Metrics: m}
}

func (h *RelayHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Satoshi Signal Bot relay server is running")
}

func (h *RelayHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *RelayHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.Registry.Describe()})
}

// InvokeTool dispatches POST /tools/:name. Completed invocations, including
// recovered failures, answer 200 with the result envelope; rejected input
// answers 400 and upstream transport trouble answers 502.
func (h *RelayHandler) InvokeTool(c *gin.Context) {
	name := c.Param("name")
	op := h.Registry.Get(name)
	if op == nil {
		c.JSON(http.StatusNotFound, model.Failure(fmt.Sprintf("unknown tool: %s", name)))
		return
	}

	args, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Failure("unreadable request body"))
		return
	}
	if len(args) == 0 {
		args = []byte("{}")
	}

	start := time.Now()
	res, err := op.Invoke(c.Request.Context(), args)
	h.Metrics.ToolDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, relay.ErrInvalidInput):
		h.Metrics.ToolInvocations.WithLabelValues(name, "invalid_input").Inc()
		c.JSON(http.StatusBadRequest, model.Failure(err.Error()))
	case err != nil:
		h.Metrics.ToolInvocations.WithLabelValues(name, "transport_error").Inc()
		logrus.WithFields(logrus.Fields{
			"tool":       name,
			"request_id": c.GetString("request_id"),
		}).WithError(err).Warn("tool invocation failed upstream")
		c.JSON(http.StatusBadGateway, model.Failure(err.Error()))
	case res.OK:
		h.Metrics.ToolInvocations.WithLabelValues(name, "success").Inc()
		c.JSON(http.StatusOK, res)
	default:
		h.Metrics.ToolInvocations.WithLabelValues(name, "failure").Inc()
		c.JSON(http.StatusOK, res)
	}
}

// Webhook forwards a TradingView-style alert to the configured chat. Absent
// fields get fixed placeholders; a missing Telegram configuration skips
// delivery without failing the request.
func (h *RelayHandler) Webhook(c *gin.Context) {
	var in model.WebhookAlert
	if err := c.ShouldBindJSON(&in); err != nil {
		h.Metrics.WebhookForwards.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid JSON body"})
		return
	}

	if !h.Sender.IsConfigured() {
		h.Metrics.WebhookForwards.WithLabelValues("skipped").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "skipped", "error": "Telegram not configured"})
		return
	}

	text := notifier.FormatWebhookAlert(in)
	if err := h.Sender.Send(c.Request.Context(), text); err != nil {
		h.Metrics.WebhookForwards.WithLabelValues("error").Inc()
		logrus.WithField("request_id", c.GetString("request_id")).
			WithError(err).Warn("webhook forward failed")
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "error": err.Error()})
		return
	}

	h.Metrics.WebhookForwards.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// NewRelayRouter builds the relay server's routes.
func NewRelayRouter(h *RelayHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(), CountRequests(h.Metrics))

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/tools", h.ListTools)
	router.POST("/tools/:name", h.InvokeTool)
	router.POST("/webhook", h.Webhook)
	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	return router
}
