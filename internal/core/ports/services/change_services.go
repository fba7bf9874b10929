package services

import (
	"context"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
)

// ChangeCalculatorSvc computes change for a cash transaction
type ChangeCalculatorSvc interface {
	// ComputeChange returns the rounded change, its breakdown and top-up hints.
	// Returns apperrors.ErrInsufficientPayment when paid is below due.
	ComputeChange(ctx context.Context, req dto.ComputeChangeRequest) (*domain.ChangeResult, error)
}

// CatalogReaderSvc exposes the denomination catalog
type CatalogReaderSvc interface {
	// Catalog returns a fresh snapshot of the full catalog.
	Catalog(ctx context.Context) domain.DenominationSet

	// RoundingUnit returns the cash rounding unit in cents.
	RoundingUnit() int64
}

// ChangeSvcFacade combines all change-related service interfaces
type ChangeSvcFacade interface {
	ChangeCalculatorSvc
	CatalogReaderSvc
}
