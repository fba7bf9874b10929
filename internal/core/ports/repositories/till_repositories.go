package repositories

import (
	"context"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
)

// TillReader defines read operations for till profiles
type TillReader interface {
	// FindTillByID retrieves a till profile by its unique identifier.
	// Returns apperrors.ErrNotFound when no such till exists.
	FindTillByID(ctx context.Context, tillID string) (*domain.Till, error)

	// ListTills retrieves all till profiles ordered by name.
	ListTills(ctx context.Context) ([]domain.Till, error)
}

// TillWriter defines write operations for till profiles
type TillWriter interface {
	// SaveTill persists a new till. Returns apperrors.ErrDuplicate on a name clash.
	SaveTill(ctx context.Context, till domain.Till) error

	// UpdateTill replaces the stored denomination flags of an existing till.
	UpdateTill(ctx context.Context, till domain.Till) error

	// DeleteTill removes a till profile.
	DeleteTill(ctx context.Context, tillID string) error
}

// TillRepositoryFacade combines all till-related repository interfaces
type TillRepositoryFacade interface {
	TillReader
	TillWriter
}

// TillRepositoryWithTx extends TillRepositoryFacade with transaction capabilities
type TillRepositoryWithTx interface {
	TillRepositoryFacade
	TransactionManager
}
