package services_test

import (
	"context"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TillRepository ---
type MockTillRepository struct {
	mock.Mock
}

func (m *MockTillRepository) FindTillByID(ctx context.Context, tillID string) (*domain.Till, error) {
	args := m.Called(ctx, tillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Till), args.Error(1)
}

func (m *MockTillRepository) ListTills(ctx context.Context) ([]domain.Till, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Till), args.Error(1)
}

func (m *MockTillRepository) SaveTill(ctx context.Context, till domain.Till) error {
	args := m.Called(ctx, till)
	return args.Error(0)
}

func (m *MockTillRepository) UpdateTill(ctx context.Context, till domain.Till) error {
	args := m.Called(ctx, till)
	return args.Error(0)
}

func (m *MockTillRepository) DeleteTill(ctx context.Context, tillID string) error {
	args := m.Called(ctx, tillID)
	return args.Error(0)
}

var _ portsrepo.TillRepositoryFacade = (*MockTillRepository)(nil)
