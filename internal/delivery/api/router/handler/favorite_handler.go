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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the wishlist.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteView is one wishlist entry.
type FavoriteView struct {
	ID      int64       `json:"id"`
	Product ProductView `json:"produto"`
	Owned   bool        `json:"owned"`
}

// ToggleResponse reports the membership after a toggle.
type ToggleResponse struct {
	ProductID int64 `json:"produto_id"`
	Favorited bool  `json:"favorited"`
}

// ListFavorites returns the wishlist grouped by genre.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	groups, err := h.favoriteUC.ListFavoritesGroupedByGenre(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make(map[string][]FavoriteView, len(groups))
	for genre, items := range groups {
		entries := make([]FavoriteView, 0, len(items))
		for _, item := range items {
			entries = append(entries, FavoriteView{
				ID:      item.FavoriteID,
				Product: toProductView(&item.Product),
				Owned:   item.Owned,
			})
		}
		views[genre] = entries
	}

	return response.Success(c, http.StatusOK, views)
}

// ToggleFavorite adds or removes a product from the wishlist.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	productID, err := parseID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	favorited, err := h.favoriteUC.ToggleFavorite(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToggleResponse{ProductID: productID, Favorited: favorited})
}

// RemoveFavorite deletes a wishlist entry by its id.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	favoriteID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid favorite ID")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, favoriteID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
