package handler

import (
	"log/slog"
	"net/http"

	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/response"
	"pluma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EntitlementHandlerParams holds dependencies for EntitlementHandler, injected by Fx.
type EntitlementHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// EntitlementHandler lists what the reader owns.
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler.
func NewEntitlementHandler(params EntitlementHandlerParams) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// EntitlementsResponse holds the owned ids and the books still in the catalog.
type EntitlementsResponse struct {
	ProductIDs []int64       `json:"produtos_ids"`
	Products   []ProductView `json:"produtos"`
}

// ListEntitlements returns the reader's library.
func (h *EntitlementHandler) ListEntitlements(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	ctx := c.Request().Context()
	owned, err := h.entitlementUC.ResolveEntitlements(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.entitlementUC.OwnedProducts(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, EntitlementsResponse{
		ProductIDs: owned.IDs(),
		Products:   toProductViews(products),
	})
}
