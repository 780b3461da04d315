package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pluma/internal/delivery/api/middleware"
	"pluma/internal/delivery/api/response"
	"pluma/internal/domain/entity"
	"pluma/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalog and the admin product form.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Title           string          `json:"titulo" validate:"required,max=200"`
	Author          string          `json:"autor" validate:"required,max=200"`
	Description     string          `json:"descricao"`
	Genre           string          `json:"genero" validate:"max=60"`
	Language        string          `json:"idioma" validate:"max=40"`
	PageCount       int             `json:"numero_paginas" validate:"gte=0"`
	PublicationYear int             `json:"ano_publicacao" validate:"gte=0"`
	Price           decimal.Decimal `json:"preco"`
	CoverURL        string          `json:"url_capa" validate:"omitempty,url"`
	ContentURL      string          `json:"url_pdf" validate:"omitempty,url"`
}

// ReadResponse points the owner at the book file.
type ReadResponse struct {
	ProductID  int64  `json:"produto_id"`
	Title      string `json:"titulo"`
	ContentURL string `json:"url_pdf"`
}

// ListProducts returns the catalog, filtered by ?genero= and ?q=. Signed-in
// viewers also get favorite and ownership flags.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := entity.ProductFilter{
		Genre:      c.QueryParam("genero"),
		SearchTerm: c.QueryParam("q"),
	}

	ctx := c.Request().Context()
	if userID, ok := middleware.GetUserID(c); ok {
		return response.Success(c, http.StatusOK, toCatalogItemViews(h.catalogUC.ListProductsFor(ctx, userID, filter)))
	}

	return response.Success(c, http.StatusOK, toProductViews(h.catalogUC.ListProducts(ctx, filter)))
}

// ListFeatured returns the newest products for the home page.
func (h *CatalogHandler) ListFeatured(c echo.Context) error {
	products, err := h.catalogUC.ListFeatured(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products))
}

// ListGenres returns the distinct genres of the catalog.
func (h *CatalogHandler) ListGenres(c echo.Context) error {
	genres, err := h.catalogUC.ListGenres(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, genres)
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// CreateProduct adds a product to the catalog.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		Genre:           req.Genre,
		Language:        req.Language,
		PageCount:       req.PageCount,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		CoverURL:        req.CoverURL,
		ContentURL:      req.ContentURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product))
}

// Read hands the book file to an owner.
func (h *CatalogHandler) Read(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AuthRequired(c)
	}

	productID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	output, err := h.catalogUC.Read(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReadResponse{
		ProductID:  output.ProductID,
		Title:      output.Title,
		ContentURL: output.ContentURL,
	})
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}
