package handlers_test

import (
	"context"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	portssvc "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/services"
	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChangeService ---
type MockChangeService struct {
	mock.Mock
}

func (m *MockChangeService) ComputeChange(ctx context.Context, req dto.ComputeChangeRequest) (*domain.ChangeResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeResult), args.Error(1)
}

func (m *MockChangeService) Catalog(ctx context.Context) domain.DenominationSet {
	args := m.Called(ctx)
	return args.Get(0).(domain.DenominationSet)
}

func (m *MockChangeService) RoundingUnit() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// Ensure mock implements the interface
var _ portssvc.ChangeSvcFacade = (*MockChangeService)(nil)

// --- Mock TillService ---
type MockTillService struct {
	mock.Mock
}

func (m *MockTillService) GetTillByID(ctx context.Context, tillID string) (*domain.Till, error) {
	args := m.Called(ctx, tillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Till), args.Error(1)
}

func (m *MockTillService) ListTills(ctx context.Context) ([]domain.Till, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Till), args.Error(1)
}

func (m *MockTillService) CreateTill(ctx context.Context, req dto.CreateTillRequest, operatorID string) (*domain.Till, error) {
	args := m.Called(ctx, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Till), args.Error(1)
}

func (m *MockTillService) UpdateTillDenominations(ctx context.Context, tillID string, req dto.UpdateTillDenominationsRequest, operatorID string) (*domain.Till, error) {
	args := m.Called(ctx, tillID, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Till), args.Error(1)
}

func (m *MockTillService) DeleteTill(ctx context.Context, tillID string, operatorID string) error {
	args := m.Called(ctx, tillID, operatorID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TillSvcFacade = (*MockTillService)(nil)
