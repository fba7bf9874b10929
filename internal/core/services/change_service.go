package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	portssvc "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/services"
	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
	"github.com/ahmedhedefa/cashier-ca-web/internal/utils/changemaking"
)

// changeService implements the ChangeSvcFacade interface
type changeService struct {
	BaseService
	engine     *changemaking.Engine
	tillReader portsrepo.TillReader
}

// ChangeServiceOption is a functional option for configuring the change service
type ChangeServiceOption func(*changeService)

// WithTillReader lets requests start from a stored till profile
func WithTillReader(repo portsrepo.TillReader) ChangeServiceOption {
	return func(s *changeService) {
		s.tillReader = repo
	}
}

// WithEngine overrides the default nickel-rounding engine
func WithEngine(engine *changemaking.Engine) ChangeServiceOption {
	return func(s *changeService) {
		s.engine = engine
	}
}

// NewChangeService creates a new change service with the provided options
func NewChangeService(options ...ChangeServiceOption) portssvc.ChangeSvcFacade {
	svc := &changeService{}
	for _, option := range options {
		option(svc)
	}
	if svc.engine == nil {
		svc.engine = changemaking.NewEngine()
	}
	return svc
}

var _ portssvc.ChangeSvcFacade = (*changeService)(nil)

func (s *changeService) Catalog(ctx context.Context) domain.DenominationSet {
	return domain.DefaultCatalog()
}

func (s *changeService) RoundingUnit() int64 {
	return s.engine.Policy().Unit
}

func (s *changeService) ComputeChange(ctx context.Context, req dto.ComputeChangeRequest) (*domain.ChangeResult, error) {
	set, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	due := domain.ParseAmount(string(req.Due))
	paid := domain.ParseAmount(string(req.Paid))

	result, err := s.engine.Compute(due, paid, set)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientPayment) {
			s.LogInfo(ctx, "Payment below amount due",
				slog.String("due", due.StringFixed(2)),
				slog.String("paid", paid.StringFixed(2)))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Change computed",
		slog.Int64("change", result.Change),
		slog.Int64("pieces", result.Breakdown.Pieces()),
		slog.Int("suggestions", len(result.Suggestions)))
	if result.Breakdown.Leftover > 0 {
		s.LogInfo(ctx, "Change not fully representable with enabled denominations",
			slog.Int64("leftover", result.Breakdown.Leftover))
	}
	return result, nil
}

// snapshot builds the denomination set for one request: the till profile (or
// the full catalog) with the request's toggles applied on top.
func (s *changeService) snapshot(ctx context.Context, req dto.ComputeChangeRequest) (domain.DenominationSet, error) {
	set := domain.DefaultCatalog()

	if req.TillID != "" {
		if s.tillReader == nil {
			return nil, fmt.Errorf("%w: till profiles are not available", apperrors.ErrValidation)
		}
		till, err := s.tillReader.FindTillByID(ctx, req.TillID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load till for change computation", slog.String("till_id", req.TillID))
			return nil, fmt.Errorf("failed to load till %s: %w", req.TillID, err)
		}
		set = till.Denominations
	}

	if len(req.Enabled) > 0 {
		toggled, err := set.WithToggles(req.Enabled)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		set = toggled
	}
	return set, nil
}
