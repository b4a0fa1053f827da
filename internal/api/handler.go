package api

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/mikz/CSOB-Info24-webhook/internal/parser"
	"github.com/mikz/CSOB-Info24-webhook/internal/webhook"
)

// MessageResponse is the JSON envelope returned by the /mailgun/message route.
type MessageResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Count     int    `json:"count"`
	Delivered int    `json:"delivered"`
}

// Handler wires the inbound Mailgun route to the extraction engine and the
// outbound webhook client.
type Handler struct {
	Hook *webhook.Client
	Log  *log.Logger
}

func NewHandler(hook *webhook.Client, logger *log.Logger) *Handler {
	return &Handler{Hook: hook, Log: logger.WithPrefix("api")}
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/mailgun/message", h.HandleMessage)
	app.Get("/api/health", h.HandleHealth)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleMessage receives a forwarded notification email from Mailgun,
// extracts its transactions and forwards each one to the configured webhook.
// A body with zero recognized transactions is a success; malformed
// transaction text is not.
func (h *Handler) HandleMessage(c *fiber.Ctx) error {
	body := c.FormValue("stripped-text")
	if body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Error: "missing stripped-text form field",
		})
	}

	transactions, err := parser.Extract(body)
	if err != nil {
		h.Log.Error("extraction failed", "err", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(MessageResponse{
			Error: err.Error(),
		})
	}

	h.Log.Info("found transactions", "count", len(transactions))

	delivered := 0
	for _, txn := range transactions {
		status, err := h.Hook.Post(c.UserContext(), txn)
		if err != nil {
			h.Log.Error("webhook delivery failed", "title", txn.Title(), "err", err)
			continue
		}
		h.Log.Info("delivered webhook", "status", status, "title", txn.Title())
		delivered++
	}

	return c.JSON(MessageResponse{
		Success:   true,
		Count:     len(transactions),
		Delivered: delivered,
	})
}
