package pgsql

import (
	"context"
	"time"

	"github.com/crestprop/lease_ledger_app/internal/apperrors"
	"github.com/crestprop/lease_ledger_app/internal/core/domain"
	portsrepo "github.com/crestprop/lease_ledger_app/internal/core/ports/repositories"
	"github.com/crestprop/lease_ledger_app/internal/models"
	"github.com/crestprop/lease_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `
	user_id, username, name, email, role, password_hash,
	refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Username, &m.Name, &m.Email, &m.Role, &m.PasswordHash,
		&m.RefreshTokenHash, &m.RefreshTokenExpiryTime,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) findUser(ctx context.Context, condition string, arg string, notFoundMsg string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + condition + ` AND deleted_at IS NULL;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, translateError(err, notFoundMsg)
	}
	user := mapping.ToDomainUser(*m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = $1", userID, "user "+userID+" not found")
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username = $1", username, "user not found")
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = $1", email, "user not found")
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE deleted_at IS NULL ORDER BY username LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user", err)
		}
		users = append(users, mapping.ToDomainUser(*m))
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.UserID, m.Username, m.Name, m.Email, m.Role, m.PasswordHash,
		m.RefreshTokenHash, m.RefreshTokenExpiryTime,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.DeletedAt,
	)
	return translateError(err, "user insert failed")
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users SET username = $2, name = $3, email = $4, role = $5, password_hash = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $1 AND deleted_at IS NULL;`,
		m.UserID, m.Username, m.Name, m.Email, m.Role, m.PasswordHash,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "user update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "user "+m.UserID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteUser soft-deletes so audit references stay resolvable.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users SET deleted_at = NOW(), last_updated_at = NOW(), last_updated_by = $2
		WHERE user_id = $1 AND deleted_at IS NULL;`, userID, deletedBy)
	if err != nil {
		return translateError(err, "user delete failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "user "+userID+" not found", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users SET refresh_token_hash = $2, refresh_token_expiry_time = $3, last_updated_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL;`, userID, refreshTokenHash, expiryTime)
	if err != nil {
		return translateError(err, "refresh token update failed")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(404, "user "+userID+" not found", apperrors.ErrNotFound)
	}
	return nil
}
