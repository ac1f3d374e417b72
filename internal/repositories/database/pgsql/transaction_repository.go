package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	"github.com/SamuelRomaoF/financas-bot/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction for DB storage
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:    d.TransactionID,
		OwnerID:          d.OwnerID,
		FundingAccountID: d.FundingAccountID,
		CategoryID:       d.CategoryID,
		Kind:             models.CategoryKind(d.Kind),
		Amount:           d.Amount,
		Description:      d.Description,
		OccurredAt:       d.OccurredAt,
		CreatedAt:        d.CreatedAt,
	}
}

// SaveTransaction persists a new transaction. This is the single terminal
// write of the extraction flow.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, owner_id, funding_account_id, category_id, kind, amount, description, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.OwnerID,
		modelTxn.FundingAccountID,
		modelTxn.CategoryID,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.OccurredAt,
		modelTxn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
			}
		}
		return fmt.Errorf("%w: failed to save transaction %s: %v", apperrors.ErrStoreUnavailable, modelTxn.TransactionID, err)
	}
	return nil
}

// ListMonthEntries retrieves transactions within [from, to] (inclusive)
// joined with their category.
func (r *PgxTransactionRepository) ListMonthEntries(ctx context.Context, ownerID string, from, to time.Time) ([]domain.MonthEntry, error) {
	query := `
		SELECT t.amount, t.kind, c.name
		FROM transactions t
		JOIN categories c ON c.category_id = t.category_id
		WHERE t.owner_id = $1 AND t.occurred_at >= $2 AND t.occurred_at <= $3
		ORDER BY t.occurred_at, t.created_at;
	`
	rows, err := r.pool.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query month entries for owner %s: %v", apperrors.ErrStoreUnavailable, ownerID, err)
	}
	defer rows.Close()

	entries := []domain.MonthEntry{}
	for rows.Next() {
		var entry domain.MonthEntry
		var kind models.CategoryKind
		if err := rows.Scan(&entry.Amount, &kind, &entry.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan month entry row: %w", err)
		}
		entry.Kind = domain.CategoryKind(kind)
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: error iterating month entry rows: %v", apperrors.ErrStoreUnavailable, rows.Err())
	}

	return entries, nil
}
