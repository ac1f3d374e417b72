package pgsql

import (
	"context"
	"fmt"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	"github.com/SamuelRomaoF/financas-bot/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryReader {
	return &PgxCategoryRepository{pool: pool}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryReader
var _ portsrepo.CategoryReader = (*PgxCategoryRepository)(nil)

// Helper to convert models.Category from DB to domain.Category
func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		Kind:       domain.CategoryKind(m.Kind),
	}
}

// ListCategoriesByOwner retrieves all of the owner's categories in
// creation order.
func (r *PgxCategoryRepository) ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, owner_id, name, kind
		FROM categories
		WHERE owner_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query categories for owner %s: %v", apperrors.ErrStoreUnavailable, ownerID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var modelCat models.Category
		err := rows.Scan(
			&modelCat.CategoryID,
			&modelCat.OwnerID,
			&modelCat.Name,
			&modelCat.Kind,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(modelCat))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: error iterating category rows: %v", apperrors.ErrStoreUnavailable, rows.Err())
	}

	return categories, nil
}
