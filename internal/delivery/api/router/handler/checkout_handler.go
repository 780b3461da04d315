package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/response"
	"pluma/internal/domain/entity"
	"pluma/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the checkout page and the purchase itself.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// FinalizeRequest is the body of POST /api/v1/checkout.
type FinalizeRequest struct {
	Method string `json:"metodo_pagamento" validate:"required"`
	// Card is validated by the checkout usecase.
	Card *entity.CardDetails `json:"card,omitempty" validate:"-"`
}

// SummaryResponse is the checkout page before payment.
type SummaryResponse struct {
	State          string          `json:"state"`
	Items          []CartLineView  `json:"itens"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	CanCheckout    bool            `json:"can_checkout"`
	PaymentMethods []string        `json:"payment_methods"`
}

// FinalizeResponse is the confirmation page.
type FinalizeResponse struct {
	State        string        `json:"state"`
	Order        OrderView     `json:"pedido"`
	Products     []ProductView `json:"produtos"`
	Entitlements []int64       `json:"entitlements"`
}

// PixResponse carries the placeholder PIX charge.
type PixResponse struct {
	Payload   string          `json:"payload"`
	Amount    decimal.Decimal `json:"valor"`
	PNGBase64 string          `json:"qrcode_png_base64"`
}

// Summary returns the cart as the checkout page renders it.
func (h *CheckoutHandler) Summary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	summary, err := h.checkoutUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	methods := make([]string, 0, len(summary.PaymentMethods))
	for _, m := range summary.PaymentMethods {
		methods = append(methods, string(m))
	}

	return response.Success(c, http.StatusOK, SummaryResponse{
		State:          summary.State,
		Items:          toCartLineViews(summary.Lines),
		Subtotal:       summary.Subtotal,
		CanCheckout:    summary.CanCheckout,
		PaymentMethods: methods,
	})
}

// Finalize pays for the cart and returns the committed order.
func (h *CheckoutHandler) Finalize(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	var req FinalizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.checkoutUC.FinalizePurchase(c.Request().Context(), userID, entity.PaymentInput{
		Method: entity.PaymentMethod(req.Method),
		Card:   req.Card,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, FinalizeResponse{
		State:        string(result.State),
		Order:        toOrderView(result.Order),
		Products:     toProductViews(result.Products),
		Entitlements: result.Entitlements.IDs(),
	})
}

// PixQRCode returns the PIX charge for the cart. With ?format=png the image is sent raw.
func (h *CheckoutHandler) PixQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	pix, err := h.checkoutUC.PixQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "png" {
		return c.Blob(http.StatusOK, "image/png", pix.PNG)
	}

	return response.Success(c, http.StatusOK, PixResponse{
		Payload:   pix.Payload,
		Amount:    pix.Amount,
		PNGBase64: base64.StdEncoding.EncodeToString(pix.PNG),
	})
}
