package pgsql

import (
	"context"
	"fmt"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	"github.com/SamuelRomaoF/financas-bot/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxFundingAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxFundingAccountRepository creates a new repository for funding-account data.
func newPgxFundingAccountRepository(pool *pgxpool.Pool) portsrepo.FundingAccountReader {
	return &PgxFundingAccountRepository{pool: pool}
}

// Ensure PgxFundingAccountRepository implements portsrepo.FundingAccountReader
var _ portsrepo.FundingAccountReader = (*PgxFundingAccountRepository)(nil)

// Helper to convert models.FundingAccount from DB to domain.FundingAccount
func toDomainFundingAccount(m models.FundingAccount) domain.FundingAccount {
	return domain.FundingAccount{
		FundingAccountID: m.FundingAccountID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Balance:          m.Balance,
		CreatedAt:        m.CreatedAt,
	}
}

// ListFundingAccountsByOwner retrieves the owner's funding accounts in
// creation order. The extractor's default-account fallback depends on this
// ordering being stable.
func (r *PgxFundingAccountRepository) ListFundingAccountsByOwner(ctx context.Context, ownerID string) ([]domain.FundingAccount, error) {
	query := `
		SELECT funding_account_id, owner_id, name, balance, created_at
		FROM funding_accounts
		WHERE owner_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query funding accounts for owner %s: %v", apperrors.ErrStoreUnavailable, ownerID, err)
	}
	defer rows.Close()

	accounts := []domain.FundingAccount{}
	for rows.Next() {
		var modelAcc models.FundingAccount
		var balance decimal.Decimal
		err := rows.Scan(
			&modelAcc.FundingAccountID,
			&modelAcc.OwnerID,
			&modelAcc.Name,
			&balance,
			&modelAcc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan funding account row: %w", err)
		}
		modelAcc.Balance = balance
		accounts = append(accounts, toDomainFundingAccount(modelAcc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: error iterating funding account rows: %v", apperrors.ErrStoreUnavailable, rows.Err())
	}

	return accounts, nil
}
