package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	portssvc "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/services"
	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
	"github.com/google/uuid"
)

// tillService implements the TillSvcFacade interface
type tillService struct {
	BaseService
	tillRepo portsrepo.TillRepositoryFacade
}

// NewTillService creates a new till service
func NewTillService(tillRepo portsrepo.TillRepositoryFacade) portssvc.TillSvcFacade {
	return &tillService{tillRepo: tillRepo}
}

var _ portssvc.TillSvcFacade = (*tillService)(nil)

func (s *tillService) CreateTill(ctx context.Context, req dto.CreateTillRequest, operatorID string) (*domain.Till, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: till name is required", apperrors.ErrValidation)
	}

	set, err := domain.DefaultCatalog().WithToggles(req.Enabled)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	till := domain.Till{
		TillID:        uuid.NewString(),
		Name:          name,
		Denominations: set,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
			Version:       1,
		},
	}

	if err := s.tillRepo.SaveTill(ctx, till); err != nil {
		s.LogError(ctx, err, "Failed to save till", slog.String("till_name", name))
		return nil, fmt.Errorf("failed to create till in service: %w", err)
	}

	s.LogInfo(ctx, "Till created",
		slog.String("till_id", till.TillID),
		slog.Any("disabled", set.Disabled()))
	return &till, nil
}

func (s *tillService) GetTillByID(ctx context.Context, tillID string) (*domain.Till, error) {
	till, err := s.tillRepo.FindTillByID(ctx, tillID)
	if err != nil {
		return nil, fmt.Errorf("failed to get till by id in service: %w", err)
	}
	return till, nil
}

func (s *tillService) ListTills(ctx context.Context) ([]domain.Till, error) {
	tills, err := s.tillRepo.ListTills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tills in service: %w", err)
	}
	if tills == nil {
		return []domain.Till{}, nil
	}
	return tills, nil
}

func (s *tillService) UpdateTillDenominations(ctx context.Context, tillID string, req dto.UpdateTillDenominationsRequest, operatorID string) (*domain.Till, error) {
	till, err := s.tillRepo.FindTillByID(ctx, tillID)
	if err != nil {
		return nil, fmt.Errorf("failed to load till for update: %w", err)
	}

	set, err := till.Denominations.WithToggles(req.Enabled)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	till.Denominations = set
	till.LastUpdatedAt = time.Now().UTC()
	till.LastUpdatedBy = operatorID
	till.Version++

	if err := s.tillRepo.UpdateTill(ctx, *till); err != nil {
		s.LogError(ctx, err, "Failed to update till", slog.String("till_id", tillID))
		return nil, fmt.Errorf("failed to update till in service: %w", err)
	}

	s.LogInfo(ctx, "Till denominations updated",
		slog.String("till_id", tillID),
		slog.Any("disabled", set.Disabled()))
	return till, nil
}

func (s *tillService) DeleteTill(ctx context.Context, tillID string, operatorID string) error {
	if err := s.tillRepo.DeleteTill(ctx, tillID); err != nil {
		return fmt.Errorf("failed to delete till in service: %w", err)
	}
	s.LogInfo(ctx, "Till deleted", slog.String("till_id", tillID), slog.String("operator_id", operatorID))
	return nil
}
