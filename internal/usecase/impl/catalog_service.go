package impl

import (
	"context"
	"log/slog"
	"strings"

	"pluma/config"
	"pluma/internal/domain/constants"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const defaultFeaturedLimit = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo   repository.ProductRepository
	favoriteRepo  repository.FavoriteRepository
	entitlements  usecase.EntitlementUsecase
	featuredLimit int
	searches      singleflight.Group
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	FavoriteRepo repository.FavoriteRepository
	Entitlements usecase.EntitlementUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	featuredLimit := defaultFeaturedLimit
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.FeaturedLimit > 0 {
		featuredLimit = params.Config.Catalog.FeaturedLimit
	}

	return &catalogService{
		productRepo:   params.ProductRepo,
		favoriteRepo:  params.FavoriteRepo,
		entitlements:  params.Entitlements,
		featuredLimit: featuredLimit,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// ListProducts runs the filtered query, coalescing identical concurrent searches.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) []*entity.Product {
	filter = filter.Normalize()

	result, err, shared := srv.searches.Do(filter.Key(), func() (any, error) {
		return srv.productRepo.List(ctx, filter)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list products",
			slog.String("genre", filter.Genre),
			slog.String("search", filter.SearchTerm),
			slog.Any("error", err),
		)

		return []*entity.Product{}
	}

	if shared {
		srv.log(ctx).Debug("Product search coalesced", slog.String("search", filter.SearchTerm))
	}

	products, _ := result.([]*entity.Product)
	if products == nil {
		return []*entity.Product{}
	}

	return products
}

// ListProductsFor marks favorites and owned books for a signed-in viewer.
// Personalisation failures degrade to unflagged items.
func (srv *catalogService) ListProductsFor(ctx context.Context, viewer uuid.UUID, filter entity.ProductFilter) []*usecase.CatalogItem {
	products := srv.ListProducts(ctx, filter)

	favorites := map[int64]struct{}{}
	owned := entity.Entitlements{}
	if viewer != uuid.Nil && len(products) > 0 {
		ids, err := srv.favoriteRepo.ListProductIDs(ctx, viewer)
		if err != nil {
			srv.log(ctx).Warn("Failed to load favorites for catalog", slog.Any("user_id", viewer), slog.Any("error", err))
		}
		for _, id := range ids {
			favorites[id] = struct{}{}
		}

		resolved, err := srv.entitlements.ResolveEntitlements(ctx, viewer)
		if err != nil {
			srv.log(ctx).Warn("Failed to load entitlements for catalog", slog.Any("user_id", viewer), slog.Any("error", err))
		} else {
			owned = resolved
		}
	}

	items := make([]*usecase.CatalogItem, 0, len(products))
	for _, product := range products {
		_, favorited := favorites[product.ID]
		items = append(items, &usecase.CatalogItem{
			Product:   product,
			Favorited: favorited,
			Owned:     owned.Has(product.ID),
		})
	}

	return items
}

// ListFeatured returns the home page selection.
func (srv *catalogService) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListFeatured(ctx, srv.featuredLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// ListGenres returns the genres offered in the catalog filter.
func (srv *catalogService) ListGenres(ctx context.Context) ([]string, error) {
	genres, err := srv.productRepo.ListGenres(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	return genres, nil
}

// GetProduct retrieves one product.
func (srv *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct publishes a new book from the admin form.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:           strings.TrimSpace(input.Title),
		Author:          strings.TrimSpace(input.Author),
		Description:     strings.TrimSpace(input.Description),
		Genre:           strings.TrimSpace(input.Genre),
		Language:        strings.TrimSpace(input.Language),
		PageCount:       max(input.PageCount, 0),
		PublicationYear: max(input.PublicationYear, 0),
		Price:           input.Price.Round(2),
		CoverURL:        strings.TrimSpace(input.CoverURL),
		ContentURL:      strings.TrimSpace(input.ContentURL),
	}

	switch {
	case product.Title == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("titulo: é obrigatório")
	case product.Author == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("autor: é obrigatório")
	case product.Price.IsNegative():
		return nil, domainerrors.ErrValidationFailed.WithDetails("preco: deve ser maior ou igual a 0")
	}

	if product.Language == "" {
		product.Language = constants.DefaultLanguage
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("title", product.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("product_id", product.ID), slog.String("title", product.Title))

	return product, nil
}

// Read hands out the content URL of an owned book.
func (srv *catalogService) Read(ctx context.Context, viewer uuid.UUID, productID int64) (*usecase.ReadOutput, error) {
	if viewer == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	owned, err := srv.entitlements.ResolveEntitlements(ctx, viewer)
	if err != nil {
		return nil, err
	}

	if !owned.Has(productID) {
		return nil, errors.WithStack(domainerrors.ErrNotEntitled)
	}

	return &usecase.ReadOutput{
		ProductID:  product.ID,
		Title:      product.Title,
		ContentURL: product.ContentURL,
	}, nil
}
