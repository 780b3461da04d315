package usecase

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is a product as seen by a particular viewer.
type CatalogItem struct {
	Product   *entity.Product
	Favorited bool
	Owned     bool
}

// CreateProductInput is the admin "new book" form.
type CreateProductInput struct {
	Title           string
	Author          string
	Description     string
	Genre           string
	Language        string
	PageCount       int
	PublicationYear int
	Price           decimal.Decimal
	CoverURL        string
	ContentURL      string
}

// ReadOutput points an owner at the book file.
type ReadOutput struct {
	ProductID  int64
	Title      string
	ContentURL string
}

// CatalogUsecase answers catalog queries.
type CatalogUsecase interface {
	// ListProducts logs backend failures and returns an empty list instead.
	ListProducts(ctx context.Context, filter entity.ProductFilter) []*entity.Product
	// ListProductsFor adds favorite and ownership flags when viewer is signed in.
	ListProductsFor(ctx context.Context, viewer uuid.UUID, filter entity.ProductFilter) []*CatalogItem
	ListFeatured(ctx context.Context) ([]*entity.Product, error)
	ListGenres(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	Read(ctx context.Context, viewer uuid.UUID, productID int64) (*ReadOutput, error)
}
