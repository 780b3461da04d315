package postgres

import (
	"context"

	"pluma/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or alters the storefront tables. It never drops columns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	// The order ledger is append-only and every order must carry at least one product.
	if err := db.WithContext(ctx).Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_pedidos_produtos_ids') THEN
				ALTER TABLE pedidos ADD CONSTRAINT chk_pedidos_produtos_ids CHECK (cardinality(produtos_ids) > 0);
			END IF;
		END $$`).Error; err != nil {
		return errors.Wrap(err, "failed to add pedidos constraint")
	}

	return nil
}
