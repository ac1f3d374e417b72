package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	"github.com/SamuelRomaoF/financas-bot/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLinkRepository struct {
	pool *pgxpool.Pool
}

// newPgxLinkRepository creates a new repository for account-link data.
func newPgxLinkRepository(pool *pgxpool.Pool) portsrepo.LinkRepositoryFacade {
	return &PgxLinkRepository{pool: pool}
}

// Ensure PgxLinkRepository implements portsrepo.LinkRepositoryFacade
var _ portsrepo.LinkRepositoryFacade = (*PgxLinkRepository)(nil)

// Helper to convert domain.AccountLink to models.AccountLink for DB storage
func toModelLink(d domain.AccountLink) models.AccountLink {
	return models.AccountLink{
		PhoneKey:         d.PhoneKey,
		AccountID:        d.AccountID,
		VerificationCode: d.VerificationCode,
		IsVerified:       d.IsVerified,
		CreatedAt:        d.CreatedAt,
	}
}

// Helper to convert models.AccountLink from DB to domain.AccountLink
func toDomainLink(m models.AccountLink) domain.AccountLink {
	return domain.AccountLink{
		PhoneKey:         m.PhoneKey,
		AccountID:        m.AccountID,
		VerificationCode: m.VerificationCode,
		IsVerified:       m.IsVerified,
		CreatedAt:        m.CreatedAt,
	}
}

// FindLinkByPhone retrieves the link for a normalized phone key.
func (r *PgxLinkRepository) FindLinkByPhone(ctx context.Context, phoneKey string) (*domain.AccountLink, error) {
	query := `
		SELECT phone_key, account_id, verification_code, is_verified, created_at
		FROM account_links
		WHERE phone_key = $1;
	`
	var modelLink models.AccountLink
	var accountID sql.NullString

	err := r.pool.QueryRow(ctx, query, phoneKey).Scan(
		&modelLink.PhoneKey,
		&accountID,
		&modelLink.VerificationCode,
		&modelLink.IsVerified,
		&modelLink.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find link for %s: %v", apperrors.ErrStoreUnavailable, phoneKey, err)
	}

	if accountID.Valid {
		modelLink.AccountID = accountID.String
	}
	domainLink := toDomainLink(modelLink)
	return &domainLink, nil
}

// ListLinks retrieves every account link. Used by the status-check poll,
// which scans the full set instead of relying on the filtered read path.
func (r *PgxLinkRepository) ListLinks(ctx context.Context) ([]domain.AccountLink, error) {
	query := `
		SELECT phone_key, account_id, verification_code, is_verified, created_at
		FROM account_links
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query links: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	links := []domain.AccountLink{}
	for rows.Next() {
		var modelLink models.AccountLink
		var accountID sql.NullString
		err := rows.Scan(
			&modelLink.PhoneKey,
			&accountID,
			&modelLink.VerificationCode,
			&modelLink.IsVerified,
			&modelLink.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		if accountID.Valid {
			modelLink.AccountID = accountID.String
		}
		links = append(links, toDomainLink(modelLink))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: error iterating link rows: %v", apperrors.ErrStoreUnavailable, rows.Err())
	}

	return links, nil
}

// SaveLink inserts a new, unverified link.
func (r *PgxLinkRepository) SaveLink(ctx context.Context, link domain.AccountLink) error {
	modelLink := toModelLink(link)

	query := `
		INSERT INTO account_links (phone_key, account_id, verification_code, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	var accountID sql.NullString
	if modelLink.AccountID != "" {
		accountID = sql.NullString{String: modelLink.AccountID, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelLink.PhoneKey,
		accountID,
		modelLink.VerificationCode,
		modelLink.IsVerified,
		modelLink.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: link for %s already exists", apperrors.ErrDuplicate, modelLink.PhoneKey)
			}
		}
		return fmt.Errorf("%w: failed to save link for %s: %v", apperrors.ErrStoreUnavailable, modelLink.PhoneKey, err)
	}
	return nil
}

// UpdateLink updates the link row identified by link.PhoneKey.
func (r *PgxLinkRepository) UpdateLink(ctx context.Context, link domain.AccountLink) error {
	modelLink := toModelLink(link)

	query := `
		UPDATE account_links
		SET account_id = $2, verification_code = $3, is_verified = $4
		WHERE phone_key = $1;
	`
	var accountID sql.NullString
	if modelLink.AccountID != "" {
		accountID = sql.NullString{String: modelLink.AccountID, Valid: true}
	}

	cmdTag, err := r.pool.Exec(ctx, query,
		modelLink.PhoneKey,
		accountID,
		modelLink.VerificationCode,
		modelLink.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update link for %s: %v", apperrors.ErrStoreUnavailable, modelLink.PhoneKey, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
