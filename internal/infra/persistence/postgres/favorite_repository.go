package postgres

import (
	"context"
	"time"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// favoriteEntryRow is the scan target of the favoritos/produtos join.
type favoriteEntryRow struct {
	FavoriteID      int64
	ProductID       int64
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
	CreatedAt       time.Time
}

// Find returns the favorite for (userID, productID).
func (repo *favoriteRepository) Find(ctx context.Context, userID uuid.UUID, productID int64) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ? AND produto_id = ?", userID, productID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toFavoriteDomain(&favoriteM), nil
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already favorited")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the favorite for (userID, productID).
func (repo *favoriteRepository) Delete(ctx context.Context, userID uuid.UUID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("usuario_id = ? AND produto_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// DeleteByID removes a favorite row owned by userID.
func (repo *favoriteRepository) DeleteByID(ctx context.Context, userID uuid.UUID, favoriteID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", favoriteID, userID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// ListEntries returns the user's favorites joined with their products, newest first.
func (repo *favoriteRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error) {
	var rows []favoriteEntryRow
	if err := repo.db.WithContext(ctx).
		Table("favoritos AS f").
		Select(`f.id AS favorite_id, p.id AS product_id, p.titulo AS title, p.autor AS author,
			p.descricao AS description, p.genero AS genre, p.idioma AS language,
			p.numero_paginas AS page_count, p.ano_publicacao AS publication_year, p.preco AS price,
			p.url_capa AS cover_url, p.url_arquivo_pdf AS content_url, p.created_at AS created_at`).
		Joins("JOIN produtos AS p ON p.id = f.produto_id").
		Where("f.usuario_id = ?", userID).
		Order("f.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]entity.FavoriteEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.FavoriteEntry{
			FavoriteID: row.FavoriteID,
			Product: entity.Product{
				ID:              row.ProductID,
				Title:           row.Title,
				Author:          row.Author,
				Description:     row.Description,
				Genre:           row.Genre,
				Language:        row.Language,
				PageCount:       row.PageCount,
				PublicationYear: row.PublicationYear,
				Price:           row.Price,
				CoverURL:        row.CoverURL,
				ContentURL:      row.ContentURL,
				CreatedAt:       row.CreatedAt,
			},
		})
	}

	return entries, nil
}

// ListProductIDs returns the ids of every favorited product.
func (repo *favoriteRepository) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("usuario_id = ?", userID).
		Order("produto_id").
		Pluck("produto_id", &ids).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return ids, nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}
