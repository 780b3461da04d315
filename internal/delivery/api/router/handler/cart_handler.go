package handler

import (
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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the reader's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest is the body of POST /api/v1/cart.
type AddToCartRequest struct {
	ProductID int64 `json:"produto_id" validate:"required,gt=0"`
}

// CartResponse is the cart page.
type CartResponse struct {
	Items    []CartLineView  `json:"itens"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartItemResponse is the row written by an add.
type CartItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"produto_id"`
	Quantity  int   `json:"quantidade"`
}

// ListCart returns the cart lines and their subtotal.
func (h *CartHandler) ListCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	lines, err := h.cartUC.ListCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartResponse{
		Items:    toCartLineViews(lines),
		Subtotal: entity.Subtotal(lines),
	})
}

// AddToCart puts a product in the cart. Adding it again is a no-op.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.cartUC.AddToCart(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})
}

// RemoveFromCart deletes a line. Removing a missing line succeeds.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	itemID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
