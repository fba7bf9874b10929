package services

import (
	"context"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
)

// TillReaderSvc defines read operations for till profiles
type TillReaderSvc interface {
	// GetTillByID retrieves a till profile by its ID.
	GetTillByID(ctx context.Context, tillID string) (*domain.Till, error)

	// ListTills retrieves all till profiles.
	ListTills(ctx context.Context) ([]domain.Till, error)
}

// TillWriterSvc defines write operations for till profiles
type TillWriterSvc interface {
	// CreateTill persists a new till profile.
	CreateTill(ctx context.Context, req dto.CreateTillRequest, operatorID string) (*domain.Till, error)

	// UpdateTillDenominations applies enable flags to a stored till.
	UpdateTillDenominations(ctx context.Context, tillID string, req dto.UpdateTillDenominationsRequest, operatorID string) (*domain.Till, error)

	// DeleteTill removes a till profile.
	DeleteTill(ctx context.Context, tillID string, operatorID string) error
}

// TillSvcFacade combines all till-related service interfaces
type TillSvcFacade interface {
	TillReaderSvc
	TillWriterSvc
}
