package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/doctors-portal/portal-server/internal/core/ports"
)

// HeaderIdempotencyKey lets a client retry checkout without creating a
// second payment intent.
const HeaderIdempotencyKey = "Idempotency-Key"

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Create a card payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Replay key"
// @Param        body             body      paymentIntentRequest  true   "Price in dollars"
// @Success      200              {object}  paymentIntentResponse
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	secret, err := h.service.CreateIntent(c.Request().Context(), req.Price, key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
