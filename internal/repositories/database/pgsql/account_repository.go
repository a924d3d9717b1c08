package pgsql

import (
	"context"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	"github.com/crestprop/lease_ledger_app/internal/models"
	"github.com/crestprop/lease_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	account_id, company_id, account_code, name, account_type, currency_code,
	parent_account_id, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.CompanyID, &m.AccountCode, &m.Name, &m.AccountType, &m.CurrencyCode,
		&m.ParentAccountID, &m.Description, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, translateError(err, "account "+accountID+" not found")
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountsByIDs fetches the given accounts in one round trip. Absent IDs
// are simply missing from the result map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	return accounts, rows.Err()
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE company_id = $1 ORDER BY account_code LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	return accounts, rows.Err()
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.AccountID, m.CompanyID, m.AccountCode, m.Name, m.AccountType, m.CurrencyCode,
		m.ParentAccountID, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "account insert failed")
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE accounts SET
			account_code = $2, name = $3, account_type = $4, currency_code = $5,
			parent_account_id = $6, description = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE account_id = $1;`,
		m.AccountID, m.AccountCode, m.Name, m.AccountType, m.CurrencyCode,
		m.ParentAccountID, m.Description, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "account update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "account "+m.AccountID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE accounts SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE account_id = $1;`, accountID, updatedBy)
	if err != nil {
		return translateError(err, "account deactivate failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "account "+accountID+" not found", apperrors.ErrNotFound)
	}
	return nil
}
