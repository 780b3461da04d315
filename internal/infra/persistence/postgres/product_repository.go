package postgres

import (
	"context"
	"strings"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so a search term is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns the products matching filter ordered by id.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	filter = filter.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.Genre != "" {
		query = query.Where("genero = ?", filter.Genre)
	}
	if filter.SearchTerm != "" {
		pattern := "%" + likeEscaper.Replace(filter.SearchTerm) + "%"
		query = query.Where("(titulo ILIKE ? OR autor ILIKE ?)", pattern, pattern)
	}

	var models []*model.ProductModel
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toProductsDomain(models), nil
}

// ListFeatured returns the first limit products.
func (repo *productRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	var models []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toProductsDomain(models), nil
}

// ListGenres returns distinct non-blank genres.
func (repo *productRepository) ListGenres(ctx context.Context) ([]string, error) {
	var genres []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("genero IS NOT NULL AND btrim(genero) <> ''").
		Distinct("genero").
		Order("genero").
		Pluck("genero", &genres).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return genres, nil
}

// FindByID retrieves a product by id.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products that still exist among ids.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var models []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toProductsDomain(models), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		Description:     data.Description,
		Genre:           data.Genre,
		Language:        data.Language,
		PageCount:       data.PageCount,
		PublicationYear: data.PublicationYear,
		Price:           data.Price,
		CoverURL:        data.CoverURL,
		ContentURL:      data.ContentURL,
		CreatedAt:       data.CreatedAt,
	}
}

func toProductsDomain(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		Description:     data.Description,
		Genre:           data.Genre,
		Language:        data.Language,
		PageCount:       data.PageCount,
		PublicationYear: data.PublicationYear,
		Price:           data.Price,
		CoverURL:        data.CoverURL,
		ContentURL:      data.ContentURL,
		CreatedAt:       data.CreatedAt,
	}
}
