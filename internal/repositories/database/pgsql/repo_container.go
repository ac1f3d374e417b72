package pgsql

import (
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgsql-backed repositories and bundles
// them for the service container.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LinkRepo:           newPgxLinkRepository(pool),
		FundingAccountRepo: newPgxFundingAccountRepository(pool),
		CategoryRepo:       newPgxCategoryRepository(pool),
		TransactionRepo:    newPgxTransactionRepository(pool),
	}
}
