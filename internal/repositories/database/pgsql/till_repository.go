package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	"github.com/ahmedhedefa/cashier-ca-web/internal/models"
	"github.com/ahmedhedefa/cashier-ca-web/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tillColumns = `till_id, name, disabled_denominations, created_at, created_by, last_updated_at, last_updated_by, version`

type PgxTillRepository struct {
	BaseRepository
}

// newPgxTillRepository creates a new repository for till profiles.
func newPgxTillRepository(pool *pgxpool.Pool) portsrepo.TillRepositoryWithTx {
	return &PgxTillRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TillRepositoryWithTx = (*PgxTillRepository)(nil)

func scanTill(row pgx.Row) (models.Till, error) {
	var t models.Till
	err := row.Scan(
		&t.TillID,
		&t.Name,
		&t.DisabledDenominations,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
		&t.Version,
	)
	return t, err
}

// SaveTill inserts a new till profile.
func (r *PgxTillRepository) SaveTill(ctx context.Context, till domain.Till) error {
	modelTill := mapping.ToModelTill(till)

	query := `
		INSERT INTO tills (` + tillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTill.TillID,
		modelTill.Name,
		modelTill.DisabledDenominations,
		modelTill.CreatedAt,
		modelTill.CreatedBy,
		modelTill.LastUpdatedAt,
		modelTill.LastUpdatedBy,
		modelTill.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: till named %q already exists", apperrors.ErrDuplicate, modelTill.Name)
		}
		return fmt.Errorf("failed to insert till %s: %w", modelTill.TillID, err)
	}
	return nil
}

// FindTillByID retrieves a till profile by its ID.
func (r *PgxTillRepository) FindTillByID(ctx context.Context, tillID string) (*domain.Till, error) {
	query := `SELECT ` + tillColumns + ` FROM tills WHERE till_id = $1;`

	modelTill, err := scanTill(r.Pool.QueryRow(ctx, query, tillID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find till by id %s: %w", tillID, err)
	}

	domainTill := mapping.ToDomainTill(modelTill)
	return &domainTill, nil
}

// ListTills retrieves all till profiles ordered by name.
func (r *PgxTillRepository) ListTills(ctx context.Context) ([]domain.Till, error) {
	query := `SELECT ` + tillColumns + ` FROM tills ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tills: %w", err)
	}
	defer rows.Close()

	modelTills, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Till, error) {
		return scanTill(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tills: %w", err)
	}

	return mapping.ToDomainTillSlice(modelTills), nil
}

// UpdateTill stores new denomination flags and audit fields. The row is locked
// and the write only applies when the stored version is the one the caller
// loaded.
func (r *PgxTillRepository) UpdateTill(ctx context.Context, till domain.Till) (err error) {
	modelTill := mapping.ToModelTill(till)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var storedVersion int
	err = tx.QueryRow(ctx, `SELECT version FROM tills WHERE till_id = $1 FOR UPDATE;`, modelTill.TillID).Scan(&storedVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock till %s: %w", modelTill.TillID, err)
	}
	if storedVersion != modelTill.Version-1 {
		return fmt.Errorf("%w: till %s was changed concurrently", apperrors.ErrNotFound, modelTill.TillID)
	}

	query := `
		UPDATE tills
		SET disabled_denominations = $2,
			last_updated_at = $3,
			last_updated_by = $4,
			version = $5
		WHERE till_id = $1;
	`
	if _, err = tx.Exec(ctx, query,
		modelTill.TillID,
		modelTill.DisabledDenominations,
		modelTill.LastUpdatedAt,
		modelTill.LastUpdatedBy,
		modelTill.Version,
	); err != nil {
		return fmt.Errorf("failed to update till %s: %w", modelTill.TillID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTill removes a till profile.
func (r *PgxTillRepository) DeleteTill(ctx context.Context, tillID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tills WHERE till_id = $1;`, tillID)
	if err != nil {
		return fmt.Errorf("failed to delete till %s: %w", tillID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
