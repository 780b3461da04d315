// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read and publish operations on the catalog.
type ProductRepository interface {
	// List returns products matching filter ordered by id. Search is a
	// case-insensitive substring match on title OR author, genre is exact.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// ListFeatured returns the first limit products of the catalog.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListGenres returns the distinct non-blank genres, sorted.
	ListGenres(ctx context.Context) ([]string, error)

	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDs returns the products that still exist among ids. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
}
