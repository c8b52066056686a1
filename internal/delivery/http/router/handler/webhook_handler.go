package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"shapeme/config"
	deliverycontext "shapeme/internal/delivery/context"
	"shapeme/internal/delivery/http/response"
	"shapeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderHotmartHottok carries the shared secret Hotmart attaches to every
// webhook call.
const HeaderHotmartHottok = "X-Hotmart-Hottok"

// purchaseApprovedEvent is the only event that provisions an account; every
// other event is acknowledged and ignored so Hotmart stops retrying.
const purchaseApprovedEvent = "PURCHASE_APPROVED"

// WebhookHandler receives purchase notifications from the payment platform.
type WebhookHandler struct {
	uc     usecase.UserUsecase
	secret string
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *WebhookHandler {
	secret := ""
	if cfg.Hotmart != nil {
		secret = cfg.Hotmart.WebhookSecret
	}

	return &WebhookHandler{uc: uc, secret: secret, logger: logger}
}

// hotmartWebhookRequest mirrors the subset of the Hotmart payload the
// provisioning flow needs.
type hotmartWebhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		Purchase struct {
			Transaction string `json:"transaction"`
		} `json:"purchase"`
		Buyer struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"buyer"`
	} `json:"data"`
}

// Hotmart validates the shared secret and provisions an account for an
// approved purchase. Replayed transactions return 200 without side effects
// so the platform never retries a delivered event.
func (h *WebhookHandler) Hotmart(c echo.Context) error {
	if h.secret == "" {
		return response.Error(c, http.StatusServiceUnavailable, "WEBHOOK_DISABLED", "Webhook secret is not configured", "")
	}

	hottok := c.Request().Header.Get(HeaderHotmartHottok)
	if subtle.ConstantTimeCompare([]byte(hottok), []byte(h.secret)) != 1 {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid webhook token")
	}

	var input hotmartWebhookRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if input.Event != purchaseApprovedEvent {
		logger.Info("Ignoring webhook event", slog.String("event", input.Event))

		return response.Success(c, http.StatusOK, echo.Map{"processed": false}, "Event ignored")
	}

	transaction := strings.TrimSpace(input.Data.Purchase.Transaction)
	email := strings.TrimSpace(input.Data.Buyer.Email)
	if transaction == "" || email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "transaction and buyer email are required")
	}

	output, err := h.uc.ProvisionFromPurchase(c.Request().Context(), &usecase.PurchaseInput{
		TransactionID: transaction,
		BuyerEmail:    email,
		BuyerName:     strings.TrimSpace(input.Data.Buyer.Name),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	logger.Info("Processed purchase webhook",
		slog.String("transaction", transaction),
		slog.Bool("created", output.Created),
	)

	return response.Success(c, http.StatusOK, echo.Map{
		"processed": true,
		"created":   output.Created,
		"user_id":   output.User.ID,
	}, "Purchase processed")
}
