package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shapeme/config"
	"shapeme/internal/domain/entity"
	mockuc "shapeme/internal/mocks/usecase"
	"shapeme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "hottok-test-secret"

func newWebhookHandler(t *testing.T, uc usecase.UserUsecase) *WebhookHandler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Hotmart = &config.HotmartConfig{WebhookSecret: testWebhookSecret}

	return NewWebhookHandler(uc, cfg, slog.Default())
}

func postWebhook(hottok, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/hotmart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if hottok != "" {
		req.Header.Set(HeaderHotmartHottok, hottok)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

const approvedPayload = `{
	"event": "PURCHASE_APPROVED",
	"data": {
		"purchase": {"transaction": "HP123456"},
		"buyer": {"email": "buyer@example.com", "name": "Buyer Person"}
	}
}`

func TestWebhookHandler_Hotmart_ApprovedPurchase(t *testing.T) {
	uc := mockuc.NewMockUserUsecase(t)
	uc.On("ProvisionFromPurchase", mock.Anything, &usecase.PurchaseInput{
		TransactionID: "HP123456",
		BuyerEmail:    "buyer@example.com",
		BuyerName:     "Buyer Person",
	}).Return(&usecase.PurchaseOutput{
		User:    &entity.User{ID: 42, Email: "buyer@example.com", IsActive: true},
		Created: true,
	}, nil)

	h := newWebhookHandler(t, uc)
	c, rec := postWebhook(testWebhookSecret, approvedPayload)

	require.NoError(t, h.Hotmart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":true`)
}

func TestWebhookHandler_Hotmart_ReplayedTransaction(t *testing.T) {
	uc := mockuc.NewMockUserUsecase(t)
	uc.On("ProvisionFromPurchase", mock.Anything, mock.Anything).
		Return(&usecase.PurchaseOutput{
			User:    &entity.User{ID: 42, Email: "buyer@example.com"},
			Created: false,
		}, nil)

	h := newWebhookHandler(t, uc)
	c, rec := postWebhook(testWebhookSecret, approvedPayload)

	// Replays still return 200 so the platform does not retry.
	require.NoError(t, h.Hotmart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":false`)
}

func TestWebhookHandler_Hotmart_WrongSecret(t *testing.T) {
	uc := mockuc.NewMockUserUsecase(t)
	h := newWebhookHandler(t, uc)
	c, rec := postWebhook("wrong-secret", approvedPayload)

	require.NoError(t, h.Hotmart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "ProvisionFromPurchase", mock.Anything, mock.Anything)
}

func TestWebhookHandler_Hotmart_IgnoresOtherEvents(t *testing.T) {
	uc := mockuc.NewMockUserUsecase(t)
	h := newWebhookHandler(t, uc)
	c, rec := postWebhook(testWebhookSecret, `{"event": "PURCHASE_REFUNDED", "data": {}}`)

	require.NoError(t, h.Hotmart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"processed":false`)
	uc.AssertNotCalled(t, "ProvisionFromPurchase", mock.Anything, mock.Anything)
}

func TestWebhookHandler_Hotmart_MissingTransaction(t *testing.T) {
	uc := mockuc.NewMockUserUsecase(t)
	h := newWebhookHandler(t, uc)
	c, rec := postWebhook(testWebhookSecret, `{
		"event": "PURCHASE_APPROVED",
		"data": {"purchase": {"transaction": ""}, "buyer": {"email": "buyer@example.com"}}
	}`)

	require.NoError(t, h.Hotmart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_Hotmart_SecretNotConfigured(t *testing.T) {
	uc := mockuc.NewMockUserUsecase(t)
	h := NewWebhookHandler(uc, &config.Config{}, slog.Default())
	c, rec := postWebhook(testWebhookSecret, approvedPayload)

	require.NoError(t, h.Hotmart(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
